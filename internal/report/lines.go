package report

import (
	"io"
	"strings"

	"github.com/nao1215/fangscan/internal/model"
)

// LinesWriter outputs one line per fang pair in the form
// "<number> <fang1> <fang2>", ordered by vampire number.
// This is the default output format, designed for piping into sort,
// uniq, diff, and similar tools.
//
// Design decision: The format carries no headers, no counts, and no
// trailing summary. Scanning the same range twice produces byte-identical
// output, so two scans can be compared with a plain diff.
type LinesWriter struct {
	baseWriter
}

// NewLinesWriter creates a LinesWriter that outputs to the given writer.
func NewLinesWriter(output io.Writer) *LinesWriter {
	return &LinesWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs every result line followed by a newline.
// A report with no findings produces no output at all.
func (w *LinesWriter) Write(report *model.ScanReport) (int, error) {
	lines := report.Lines()
	if len(lines) == 0 {
		return 0, nil
	}

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return w.output.Write([]byte(sb.String()))
}
