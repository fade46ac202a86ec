// Package orchestrator coordinates the per-video pipeline across a bounded
// worker pool.
package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/user/framegrab/pkg/pipeline"
	"github.com/user/framegrab/pkg/ports"
)

// SheetWriter composes written frames into a single overview image.
type SheetWriter interface {
	Write(framePaths []string, outPath string) error
}

// BatchResult aggregates the outcome of one batch run.
type BatchResult struct {
	// RunID identifies this batch run in logs and reports.
	RunID string

	// Results holds one VideoResult per video that completed its pipeline,
	// in completion order.
	Results []pipeline.VideoResult

	// Unexpected counts jobs that failed without producing a result.
	// Those videos are excluded from Results.
	Unexpected int
}

// TotalRequested sums requested frames across all results.
func (b BatchResult) TotalRequested() int {
	total := 0
	for _, r := range b.Results {
		total += r.Requested
	}
	return total
}

// TotalWritten sums written frames across all results.
func (b BatchResult) TotalWritten() int {
	total := 0
	for _, r := range b.Results {
		total += r.Written
	}
	return total
}

// VideosWithIssues returns the results that need operator attention.
func (b BatchResult) VideosWithIssues() []pipeline.VideoResult {
	var issues []pipeline.VideoResult
	for _, r := range b.Results {
		if r.HasIssues() {
			issues = append(issues, r)
		}
	}
	return issues
}

// Orchestrator runs the probe, schedule and render stages for each video
// and fans the work out over a fixed-size worker pool.
type Orchestrator struct {
	probeStage    pipeline.Stage[pipeline.ProbeInput, pipeline.ProbeResult]
	scheduleStage pipeline.Stage[pipeline.ScheduleInput, pipeline.ScheduleResult]
	renderStage   pipeline.Stage[pipeline.RenderInput, pipeline.RenderResult]
	fs            ports.FileSystem
	sheet         SheetWriter // optional
	logger        ports.Logger
	workers       int
}

// New creates a new Orchestrator. A sheet writer of nil disables contact
// sheet generation. Worker counts below 1 fall back to the machine's CPU
// count.
func New(
	probeStage pipeline.Stage[pipeline.ProbeInput, pipeline.ProbeResult],
	scheduleStage pipeline.Stage[pipeline.ScheduleInput, pipeline.ScheduleResult],
	renderStage pipeline.Stage[pipeline.RenderInput, pipeline.RenderResult],
	fs ports.FileSystem,
	sheet SheetWriter,
	logger ports.Logger,
	workers int,
) *Orchestrator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Orchestrator{
		probeStage:    probeStage,
		scheduleStage: scheduleStage,
		renderStage:   renderStage,
		fs:            fs,
		sheet:         sheet,
		logger:        logger,
		workers:       workers,
	}
}

// RunVideo executes the per-video pipeline: probe, schedule, render.
// Probe and schedule failures short-circuit with zero written frames and a
// single error; render failures accumulate without aborting the job.
func (o *Orchestrator) RunVideo(ctx context.Context, task pipeline.VideoTask) pipeline.VideoResult {
	result := pipeline.VideoResult{
		VideoPath: task.VideoPath,
		OutputDir: task.OutputDir,
	}

	if err := o.fs.MkdirAll(task.OutputDir); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("create output directory: %s", err))
		return result
	}

	probed, err := o.probeStage.Execute(ctx, pipeline.ProbeInput{VideoPath: task.VideoPath})
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	scheduled, err := o.scheduleStage.Execute(ctx, pipeline.ScheduleInput{
		DurationSec: probed.DurationSec,
		IntervalSec: task.Interval,
	})
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	rendered, err := o.renderStage.Execute(ctx, pipeline.RenderInput{
		VideoPath:   task.VideoPath,
		OutputDir:   task.OutputDir,
		DurationSec: probed.DurationSec,
		Timestamps:  scheduled.Timestamps,
	})
	result.Requested = rendered.Requested
	result.Written = rendered.Written
	result.Errors = append(result.Errors, rendered.Errors...)
	result.FramePaths = rendered.FramePaths
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	o.writeSheet(result)

	return result
}

// writeSheet composes the video's written frames into sheet.jpg in its
// output directory. Sheet failures are warnings and never count against
// the video's frames.
func (o *Orchestrator) writeSheet(result pipeline.VideoResult) {
	if o.sheet == nil || result.Written == 0 {
		return
	}
	sheetPath := filepath.Join(result.OutputDir, "sheet.jpg")
	if err := o.sheet.Write(result.FramePaths, sheetPath); err != nil {
		o.logger.Warn("Contact sheet failed for %s: %s", result.VideoPath, err)
		return
	}
	o.logger.Debug("Contact sheet written: %s", sheetPath)
}

// completion funnels one finished job back to the aggregation point.
type completion struct {
	task     pipeline.VideoTask
	result   pipeline.VideoResult
	panicked bool
	panicVal interface{}
}

// Run processes all tasks with the configured worker pool. Results are
// collected in completion order through a single channel; workers never
// touch the aggregate directly. A job that panics is logged and excluded
// from the aggregate rather than aborting the batch.
func (o *Orchestrator) Run(ctx context.Context, tasks []pipeline.VideoTask) BatchResult {
	batch := BatchResult{RunID: uuid.New().String()}

	o.logger.Debug("Batch %s: %d video(s) with %d worker(s)", batch.RunID, len(tasks), o.workers)

	jobs := make(chan pipeline.VideoTask)
	completions := make(chan completion, len(tasks))

	var wg sync.WaitGroup
	for w := 0; w < o.workers; w++ {
		wg.Add(1)
		go o.worker(ctx, &wg, jobs, completions)
	}

	go func() {
		defer close(jobs)
		for _, task := range tasks {
			select {
			case jobs <- task:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(completions)
	}()

	for c := range completions {
		if c.panicked {
			o.logger.Error("[FAIL] %s: %v", c.task.VideoPath, c.panicVal)
			batch.Unexpected++
			continue
		}

		status := "OK"
		if c.result.HasIssues() {
			status = "WARN"
		}
		o.logger.Info("[%s] %s -> %s (%d/%d frames)",
			status, c.result.VideoPath, c.result.OutputDir, c.result.Written, c.result.Requested)
		for _, msg := range c.result.Errors {
			o.logger.Info("  [ERR] %s", msg)
		}

		batch.Results = append(batch.Results, c.result)
	}

	o.logger.Debug("Batch completed: %d/%d frames written", batch.TotalWritten(), batch.TotalRequested())

	return batch
}

// worker consumes tasks until the jobs channel closes. A recover guard
// turns a panicking job into a completion record so one bad video cannot
// take down the batch.
func (o *Orchestrator) worker(ctx context.Context, wg *sync.WaitGroup, jobs <-chan pipeline.VideoTask, completions chan<- completion) {
	defer wg.Done()
	for task := range jobs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					completions <- completion{task: task, panicked: true, panicVal: r}
				}
			}()
			completions <- completion{task: task, result: o.RunVideo(ctx, task)}
		}()
	}
}
