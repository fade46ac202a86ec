// Package main provides the CLI entry point for framegrab.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/framegrab/pkg/adapters/ffmpegmedia"
	"github.com/user/framegrab/pkg/adapters/logger"
	"github.com/user/framegrab/pkg/adapters/mp4probe"
	"github.com/user/framegrab/pkg/adapters/osfilesystem"
	"github.com/user/framegrab/pkg/config"
	"github.com/user/framegrab/pkg/contactsheet"
	"github.com/user/framegrab/pkg/discover"
	"github.com/user/framegrab/pkg/orchestrator"
	"github.com/user/framegrab/pkg/pipeline"
	"github.com/user/framegrab/pkg/ports"
	"github.com/user/framegrab/pkg/qa"
	"github.com/user/framegrab/pkg/stages/probe"
	"github.com/user/framegrab/pkg/stages/render"
	"github.com/user/framegrab/pkg/stages/schedule"
	"github.com/user/framegrab/pkg/summarizer"
)

// Exit codes reported to the calling shell.
const (
	exitOK     = 0
	exitIssues = 1
	exitSetup  = 2
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Extract ExtractCmd `cmd:"" default:"withargs" help:"Extract JPEG frame sequences from a directory of videos."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// ExtractCmd defines the extract subcommand.
type ExtractCmd struct {
	// Required arguments
	InputDir string `arg:"" help:"Directory containing the source videos."`

	// Output options
	OutputDir string `short:"o" help:"Root directory for frame folders (default: beside each video)."`

	// Extraction options
	Interval  *float64 `short:"i" help:"Seconds between sampled frames (default: 30)."`
	Workers   *int     `short:"w" help:"Number of videos processed in parallel (default: CPU count)."`
	Recursive bool     `short:"r" help:"Descend into subdirectories when discovering videos."`
	MaxVideos *int     `help:"Process at most this many videos (0 = unlimited)."`

	// QA sampling options
	SampleDirs   *int   `help:"Number of output folders to spot-check (default: 3)."`
	SampleImages *int   `help:"Images validated per sampled folder (default: 3)."`
	Seed         *int64 `help:"Seed for reproducible QA sampling (default: 42)."`

	// Extras
	ContactSheet bool   `help:"Also write a sheet.jpg overview per video."`
	Report       string `help:"Write a Markdown batch report to this path."`

	// Configuration
	Profile string `help:"YAML profile with defaults for the flags above."`

	// Binary options
	FfmpegPath  string `name:"ffmpeg-path" help:"Path to ffmpeg (falls back to FFMPEG_PATH env, then PATH)."`
	FfprobePath string `name:"ffprobe-path" help:"Path to ffprobe (falls back to FFPROBE_PATH env, then PATH)."`

	// Logging options
	LogLevel string `short:"l" help:"Log level (debug, info, warn, error; default: info)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("framegrab"),
		kong.Description("Convert directories of videos into time-sampled JPEG frame sequences."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the extract command.
func (cmd *ExtractCmd) Run() error {
	cfg, err := cmd.buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %s\n", err)
		os.Exit(exitSetup)
	}

	// Create logger
	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	// Locate external binaries before any work starts
	ffmpegPath, err := ffmpegmedia.FindFFmpeg(cfg.FFmpegPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %s\n", l10n.F("ffmpeg not found: %s", err))
		os.Exit(exitSetup)
	}
	ffprobePath, err := ffmpegmedia.FindFFprobe(cfg.FFprobePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %s\n", l10n.F("ffprobe not found: %s", err))
		os.Exit(exitSetup)
	}

	// Discover videos
	videos, err := discover.Videos(cfg.InputDir, cfg.Recursive)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %s\n", err)
		os.Exit(exitSetup)
	}
	if len(videos) == 0 {
		log.Info(l10n.F("No supported videos found under %s", cfg.InputDir))
		return nil
	}
	if cfg.MaxVideos > 0 && len(videos) > cfg.MaxVideos {
		videos = videos[:cfg.MaxVideos]
	}
	log.Info(l10n.F("Found %d video(s), extracting every %.1f seconds with %d worker(s)",
		len(videos), cfg.IntervalSec, cfg.Workers))

	// Create adapters
	fs := osfilesystem.New()
	prober := mp4probe.New(ffmpegmedia.NewProber(ffprobePath, log), log)
	renderer := ffmpegmedia.NewRenderer(ffmpegPath, log)

	var sheet orchestrator.SheetWriter
	if cfg.ContactSheet {
		sheet = contactsheet.New(fs, log)
	}

	// Create stages and orchestrator
	orch := orchestrator.New(
		probe.NewStage(prober, log),
		schedule.NewStage(),
		render.NewStage(renderer, fs, log),
		fs,
		sheet,
		log,
		cfg.Workers,
	)

	tasks := make([]pipeline.VideoTask, 0, len(videos))
	for _, videoPath := range videos {
		tasks = append(tasks, pipeline.VideoTask{
			VideoPath: videoPath,
			OutputDir: discover.OutputDir(videoPath, cfg.OutputRoot),
			Interval:  cfg.IntervalSec,
		})
	}

	batch := orch.Run(ctx, tasks)

	// Post-run QA sampling
	qaReport := qa.New(prober, fs, log).Run(ctx, batch.Results, qa.Params{
		SampleDirs:         cfg.SampleDirs,
		SampleImagesPerDir: cfg.SampleImages,
		Seed:               cfg.Seed,
	})

	summary := summarizer.NewBuilder().
		WithRunID(batch.RunID).
		WithSettings(summarizer.Settings{
			InputDir:    cfg.InputDir,
			OutputRoot:  cfg.OutputRoot,
			IntervalSec: cfg.IntervalSec,
			Workers:     cfg.Workers,
			Recursive:   cfg.Recursive,
			Seed:        cfg.Seed,
		}).
		WithResults(batch.Results, batch.Unexpected).
		WithQA(qaReport.Checked, qaReport.Passed, qaReport.Lines).
		Build()

	fmt.Print(summarizer.NewTextFormatter().Format(summary))

	if cfg.ReportPath != "" {
		writer := summarizer.NewWriter(summarizer.NewMarkdownFormatter(), fs)
		if err := writer.Write(cfg.ReportPath, summary); err != nil {
			log.Warn(l10n.F("Failed to write report: %s", err))
		} else {
			log.Info(l10n.F("Report saved to %s", cfg.ReportPath))
		}
	}

	if len(batch.VideosWithIssues()) > 0 || batch.Unexpected > 0 {
		os.Exit(exitIssues)
	}
	return nil
}

// buildConfig assembles the effective config: defaults, profile, environment,
// then CLI flag overrides.
func (cmd *ExtractCmd) buildConfig() (config.Config, error) {
	cfg, err := config.Load(cmd.Profile)
	if err != nil {
		return config.Config{}, err
	}

	cfg.InputDir = cmd.InputDir

	cfg = config.NewBuilder(cfg).
		WithOutputRoot(cmd.OutputDir).
		WithInterval(cmd.Interval).
		WithWorkers(cmd.Workers).
		WithRecursive(cmd.Recursive).
		WithMaxVideos(cmd.MaxVideos).
		WithSampleDirs(cmd.SampleDirs).
		WithSampleImages(cmd.SampleImages).
		WithSeed(cmd.Seed).
		WithContactSheet(cmd.ContactSheet).
		WithReportPath(cmd.Report).
		WithBinaries(cmd.FfmpegPath, cmd.FfprobePath).
		WithLogLevel(cmd.LogLevel).
		Build()

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("framegrab version %s", version))
	return nil
}
