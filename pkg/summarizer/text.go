package summarizer

import (
	"fmt"
	"strings"
)

// NewTextFormatter returns the console formatter producing the [SUMMARY]
// and [QA SAMPLING] blocks printed at the end of a run.
func NewTextFormatter() Formatter {
	return FormatFunc(formatText)
}

func formatText(summary *Summary) string {
	var sb strings.Builder

	sb.WriteString("\n[SUMMARY]\n")
	fmt.Fprintf(&sb, "- Videos processed: %d\n", summary.Totals.Videos)
	fmt.Fprintf(&sb, "- Frames requested: %d\n", summary.Totals.FramesRequested)
	fmt.Fprintf(&sb, "- Frames written:   %d\n", summary.Totals.FramesWritten)
	fmt.Fprintf(&sb, "- Videos with issues: %d\n", summary.Totals.VideosWithIssues)
	if summary.Totals.Unexpected > 0 {
		fmt.Fprintf(&sb, "- Videos failed unexpectedly: %d\n", summary.Totals.Unexpected)
	}

	sb.WriteString("\n[QA SAMPLING]\n")
	fmt.Fprintf(&sb, "- Images checked: %d\n", summary.QA.Checked)
	fmt.Fprintf(&sb, "- Images passed:  %d\n", summary.QA.Passed)
	for _, line := range summary.QA.Lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	return sb.String()
}
