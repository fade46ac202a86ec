// Package summarizer provides summary generation for batch results.
package summarizer

import (
	"time"

	"github.com/user/framegrab/pkg/pipeline"
)

// Summary contains all data collected during one batch run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time
	RunID       string

	// Extraction settings
	Settings Settings

	// Per-video outcomes, in completion order
	Videos []pipeline.VideoResult

	// Aggregate counters
	Totals Totals

	// QA sampling outcome
	QA QAInfo
}

// Settings contains the batch configuration worth reporting.
type Settings struct {
	InputDir    string
	OutputRoot  string // empty when frames land beside each source video
	IntervalSec float64
	Workers     int
	Recursive   bool
	Seed        int64
}

// Totals contains the aggregate frame counters.
type Totals struct {
	Videos           int
	Unexpected       int
	FramesRequested  int
	FramesWritten    int
	VideosWithIssues int
}

// QAInfo contains the sampling validation outcome.
type QAInfo struct {
	Checked int
	Passed  int
	Lines   []string
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithRunID sets the batch run identifier.
func (b *Builder) WithRunID(runID string) *Builder {
	b.summary.RunID = runID
	return b
}

// WithSettings sets the extraction settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithResults sets the per-video outcomes and derives the totals.
func (b *Builder) WithResults(results []pipeline.VideoResult, unexpected int) *Builder {
	b.summary.Videos = results
	totals := Totals{Videos: len(results), Unexpected: unexpected}
	for _, r := range results {
		totals.FramesRequested += r.Requested
		totals.FramesWritten += r.Written
		if r.HasIssues() {
			totals.VideosWithIssues++
		}
	}
	b.summary.Totals = totals
	return b
}

// WithQA sets the sampling validation outcome.
func (b *Builder) WithQA(checked, passed int, lines []string) *Builder {
	b.summary.QA = QAInfo{Checked: checked, Passed: passed, Lines: lines}
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
