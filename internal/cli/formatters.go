package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/pluqqy/gcodeview/pkg/models"
	"github.com/pluqqy/gcodeview/pkg/report"
)

// TableFormatter helps format tabular output
type TableFormatter struct {
	writer *tabwriter.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	return &TableFormatter{writer: tw}
}

// Header writes the table header
func (t *TableFormatter) Header(columns ...string) {
	fmt.Fprintln(t.writer, strings.Join(columns, "\t"))
	fmt.Fprintln(t.writer, strings.Repeat("-", 60))
}

// Row writes a table row
func (t *TableFormatter) Row(values ...string) {
	fmt.Fprintln(t.writer, strings.Join(values, "\t"))
}

// Flush writes the buffered table to output
func (t *TableFormatter) Flush() {
	t.writer.Flush()
}

// OutputResults formats and outputs a report based on the specified format
func OutputResults(w io.Writer, format string, r *models.Report) error {
	f, err := report.ParseFormat(format)
	if err != nil {
		return err
	}
	return report.Encode(w, f, r)
}

// FormatBytes formats byte count in human-readable format
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.IBytes(uint64(bytes))
}

// Summary describes a report in one line, e.g. "42 settings in 6 categories (1.2 MiB)"
func Summary(r *models.Report, size int64) string {
	noun := "settings"
	if r.Len() == 1 {
		noun = "setting"
	}
	cats := "categories"
	if len(r.Sections) == 1 {
		cats = "category"
	}
	s := fmt.Sprintf("%d %s in %d %s", r.Len(), noun, len(r.Sections), cats)
	if size > 0 {
		s += fmt.Sprintf(" (%s)", FormatBytes(size))
	}
	return s
}

// TruncateString shortens s to maxLen terminal cells, ending in "..." when cut.
// Multi-byte runes are never split.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if ansi.PrintableRuneWidth(s) <= maxLen {
		return s
	}
	tail := "..."
	if maxLen <= len(tail) {
		tail = ""
	}
	return truncate.StringWithTail(s, uint(maxLen), tail)
}
