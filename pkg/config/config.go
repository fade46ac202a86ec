// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for framegrab.
// Precedence, lowest to highest: defaults, yaml profile, FRAMEGRAB_*
// environment variables, CLI flags.
type Config struct {
	// Input/Output
	InputDir   string `yaml:"input_dir" env:"FRAMEGRAB_INPUT_DIR"`
	OutputRoot string `yaml:"output_root" env:"FRAMEGRAB_OUTPUT_ROOT"`

	// Extraction
	IntervalSec float64 `yaml:"interval_sec" env:"FRAMEGRAB_INTERVAL_SEC"`
	Workers     int     `yaml:"workers" env:"FRAMEGRAB_WORKERS"`
	Recursive   bool    `yaml:"recursive" env:"FRAMEGRAB_RECURSIVE"`
	MaxVideos   int     `yaml:"max_videos" env:"FRAMEGRAB_MAX_VIDEOS"`

	// QA sampling
	SampleDirs   int   `yaml:"sample_dirs" env:"FRAMEGRAB_SAMPLE_DIRS"`
	SampleImages int   `yaml:"sample_images" env:"FRAMEGRAB_SAMPLE_IMAGES"`
	Seed         int64 `yaml:"seed" env:"FRAMEGRAB_SEED"`

	// Extras
	ContactSheet bool   `yaml:"contact_sheet" env:"FRAMEGRAB_CONTACT_SHEET"`
	ReportPath   string `yaml:"report" env:"FRAMEGRAB_REPORT"`

	// Binaries (FFMPEG_PATH/FFPROBE_PATH are also honored by discovery)
	FFmpegPath  string `yaml:"ffmpeg_path" env:"FRAMEGRAB_FFMPEG_PATH"`
	FFprobePath string `yaml:"ffprobe_path" env:"FRAMEGRAB_FFPROBE_PATH"`

	// Logging
	LogLevel string `yaml:"log_level" env:"FRAMEGRAB_LOG_LEVEL"`
}

// Default returns a Config with default values.
func Default() Config {
	return Config{
		IntervalSec:  30,
		Workers:      runtime.NumCPU(),
		MaxVideos:    0,
		SampleDirs:   3,
		SampleImages: 3,
		Seed:         42,
		LogLevel:     "info",
	}
}

// Load builds the effective Config: defaults, then the yaml profile (when
// profilePath is non-empty), then environment variables.
func Load(profilePath string) (Config, error) {
	cfg := Default()

	if profilePath != "" {
		if err := applyProfile(&cfg, profilePath); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}

func applyProfile(cfg *Config, profilePath string) error {
	data, err := os.ReadFile(profilePath)
	if err != nil {
		return fmt.Errorf("read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse profile: %w", err)
	}
	return nil
}

// Validate checks the values a run cannot start without.
func (c *Config) Validate() error {
	if c.IntervalSec <= 0 {
		return fmt.Errorf("interval must be greater than 0, got %v", c.IntervalSec)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0, got %d", c.Workers)
	}
	if c.SampleDirs < 0 || c.SampleImages < 0 {
		return fmt.Errorf("sample sizes must not be negative")
	}
	return nil
}

// Builder applies overrides on top of a loaded Config. Nil pointers leave
// the current value untouched, which lets CLI flags distinguish "not set"
// from zero values.
type Builder struct {
	cfg Config
}

// NewBuilder creates a Builder starting from cfg.
func NewBuilder(cfg Config) *Builder {
	return &Builder{cfg: cfg}
}

// WithOutputRoot overrides the output root directory.
func (b *Builder) WithOutputRoot(dir string) *Builder {
	b.cfg.OutputRoot = dir
	return b
}

// WithInterval overrides the sampling interval.
func (b *Builder) WithInterval(sec *float64) *Builder {
	if sec != nil {
		b.cfg.IntervalSec = *sec
	}
	return b
}

// WithWorkers overrides the worker count.
func (b *Builder) WithWorkers(workers *int) *Builder {
	if workers != nil {
		b.cfg.Workers = *workers
	}
	return b
}

// WithRecursive enables recursive discovery.
func (b *Builder) WithRecursive(recursive bool) *Builder {
	if recursive {
		b.cfg.Recursive = true
	}
	return b
}

// WithMaxVideos overrides the processed-video cap.
func (b *Builder) WithMaxVideos(max *int) *Builder {
	if max != nil {
		b.cfg.MaxVideos = *max
	}
	return b
}

// WithSampleDirs overrides the QA directory sample size.
func (b *Builder) WithSampleDirs(n *int) *Builder {
	if n != nil {
		b.cfg.SampleDirs = *n
	}
	return b
}

// WithSampleImages overrides the QA per-directory image sample size.
func (b *Builder) WithSampleImages(n *int) *Builder {
	if n != nil {
		b.cfg.SampleImages = *n
	}
	return b
}

// WithSeed overrides the QA sampling seed.
func (b *Builder) WithSeed(seed *int64) *Builder {
	if seed != nil {
		b.cfg.Seed = *seed
	}
	return b
}

// WithContactSheet enables contact sheet generation.
func (b *Builder) WithContactSheet(enabled bool) *Builder {
	if enabled {
		b.cfg.ContactSheet = true
	}
	return b
}

// WithReportPath overrides the markdown report path.
func (b *Builder) WithReportPath(path string) *Builder {
	if path != "" {
		b.cfg.ReportPath = path
	}
	return b
}

// WithBinaries overrides the ffmpeg/ffprobe paths.
func (b *Builder) WithBinaries(ffmpegPath, ffprobePath string) *Builder {
	if ffmpegPath != "" {
		b.cfg.FFmpegPath = ffmpegPath
	}
	if ffprobePath != "" {
		b.cfg.FFprobePath = ffprobePath
	}
	return b
}

// WithLogLevel overrides the log level.
func (b *Builder) WithLogLevel(level string) *Builder {
	if level != "" {
		b.cfg.LogLevel = level
	}
	return b
}

// Build returns the final Config.
func (b *Builder) Build() Config {
	return b.cfg
}
