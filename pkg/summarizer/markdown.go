package summarizer

import (
	"fmt"
	"strings"
)

// NewMarkdownFormatter returns the formatter used for the on-disk batch
// report.
func NewMarkdownFormatter() Formatter {
	return FormatFunc(formatMarkdown)
}

func formatMarkdown(summary *Summary) string {
	var sb strings.Builder

	sb.WriteString("# Frame Extraction Report\n\n")
	fmt.Fprintf(&sb, "- Generated: %s\n", summary.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "- Run ID: `%s`\n\n", summary.RunID)

	sb.WriteString("## Settings\n\n")
	sb.WriteString("| Setting | Value |\n")
	sb.WriteString("|---|---|\n")
	fmt.Fprintf(&sb, "| Input | `%s` |\n", summary.Settings.InputDir)
	outputRoot := summary.Settings.OutputRoot
	if outputRoot == "" {
		outputRoot = "(beside each source video)"
	}
	fmt.Fprintf(&sb, "| Output root | %s |\n", outputRoot)
	fmt.Fprintf(&sb, "| Interval | %.1f s |\n", summary.Settings.IntervalSec)
	fmt.Fprintf(&sb, "| Workers | %d |\n", summary.Settings.Workers)
	fmt.Fprintf(&sb, "| Recursive | %t |\n", summary.Settings.Recursive)
	fmt.Fprintf(&sb, "| QA seed | %d |\n\n", summary.Settings.Seed)

	sb.WriteString("## Totals\n\n")
	fmt.Fprintf(&sb, "- Videos processed: %d\n", summary.Totals.Videos)
	fmt.Fprintf(&sb, "- Frames requested: %d\n", summary.Totals.FramesRequested)
	fmt.Fprintf(&sb, "- Frames written: %d\n", summary.Totals.FramesWritten)
	fmt.Fprintf(&sb, "- Videos with issues: %d\n", summary.Totals.VideosWithIssues)
	if summary.Totals.Unexpected > 0 {
		fmt.Fprintf(&sb, "- Videos failed unexpectedly: %d\n", summary.Totals.Unexpected)
	}
	sb.WriteString("\n")

	sb.WriteString("## Videos\n\n")
	sb.WriteString("| Video | Output | Written / Requested | Errors |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, video := range summary.Videos {
		fmt.Fprintf(&sb, "| `%s` | `%s` | %d / %d | %d |\n",
			video.VideoPath, video.OutputDir, video.Written, video.Requested, len(video.Errors))
	}
	sb.WriteString("\n")

	var errorLines []string
	for _, video := range summary.Videos {
		for _, msg := range video.Errors {
			errorLines = append(errorLines, fmt.Sprintf("- `%s`: %s", video.VideoPath, msg))
		}
	}
	if len(errorLines) > 0 {
		sb.WriteString("## Errors\n\n")
		for _, line := range errorLines {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## QA Sampling\n\n")
	fmt.Fprintf(&sb, "- Images checked: %d\n", summary.QA.Checked)
	fmt.Fprintf(&sb, "- Images passed: %d\n\n", summary.QA.Passed)
	for _, line := range summary.QA.Lines {
		fmt.Fprintf(&sb, "- %s\n", line)
	}

	return sb.String()
}
