package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nao1215/fangscan/internal/model"
)

// printer formats counts and bounds with thousands separators for the
// human-readable writers. The lines format never uses it; result lines
// stay machine-parseable.
var printer = message.NewPrinter(language.English)

// SummaryWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SummaryWriter struct {
	baseWriter

	// showEmpty controls whether the findings section is shown when the
	// scan found nothing.
	showEmpty bool

	// verbose enables scan execution details (chunking, workers) in the header.
	verbose bool
}

// SummaryWriterOption configures a SummaryWriter.
type SummaryWriterOption func(*SummaryWriter)

// WithShowEmpty configures the writer to show the findings section even
// when no vampire numbers were found.
func WithShowEmpty(show bool) SummaryWriterOption {
	return func(w *SummaryWriter) {
		w.showEmpty = show
	}
}

// WithVerbose enables verbose output with scan execution details.
func WithVerbose(verbose bool) SummaryWriterOption {
	return func(w *SummaryWriter) {
		w.verbose = verbose
	}
}

// NewSummaryWriter creates a SummaryWriter that outputs to the given writer.
func NewSummaryWriter(output io.Writer, opts ...SummaryWriterOption) *SummaryWriter {
	w := &SummaryWriter{
		baseWriter: newBaseWriter(output),
		showEmpty:  false,
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the full report in human-readable format.
// It generates a Summary from the ScanReport if not already present.
func (w *SummaryWriter) Write(report *model.ScanReport) (int, error) {
	summary := report.Summary
	if summary == nil {
		summary = model.NewSummary(report)
	}

	var sb strings.Builder

	// Header
	w.writeHeader(&sb, report)

	// Summary
	w.writeSummary(&sb, summary)

	// Vampire count per digit length
	w.writeDistribution(&sb, summary)

	// Findings
	w.writeFindings(&sb, report)

	// Footer
	w.writeFooter(&sb)

	// Write to output
	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with scan information.
func (w *SummaryWriter) writeHeader(sb *strings.Builder, report *model.ScanReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                           FANGSCAN REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(printer.Sprintf("Range:          %d .. %d\n", report.Low, report.High))
	sb.WriteString(fmt.Sprintf("Scan Date:      %s\n", report.StartedAt.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Elapsed:        %s\n", report.Elapsed))

	if w.verbose {
		sb.WriteString(fmt.Sprintf("Chunk Size:     %d\n", report.ChunkSize))
		sb.WriteString(fmt.Sprintf("Workers:        %d\n", report.Workers))
		sb.WriteString(fmt.Sprintf("Chunks:         %d (%d failed)\n", report.ChunkCount, report.FailedChunks))
	}

	if report.Interrupted {
		sb.WriteString("Status:         INTERRUPTED (partial results)\n")
	} else if report.ErrorMessage != "" {
		sb.WriteString(fmt.Sprintf("Status:         ERROR - %s\n", report.ErrorMessage))
	} else {
		sb.WriteString("Status:         Complete\n")
	}

	sb.WriteString("\n")
}

// writeSummary writes the scan summary section.
func (w *SummaryWriter) writeSummary(sb *strings.Builder, summary *model.Summary) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SCAN SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(printer.Sprintf("  Numbers Scanned:  %d\n", summary.NumbersScanned))
	sb.WriteString(printer.Sprintf("  Vampire Numbers:  %d\n", summary.VampireCount))
	sb.WriteString(printer.Sprintf("  Fang Pairs:       %d\n", summary.PairCount))
	sb.WriteString(printer.Sprintf("  Multi-Fang:       %d\n", summary.MultiFangCount))

	if summary.VampireCount > 0 {
		sb.WriteString(printer.Sprintf("  Smallest:         %d\n", summary.Smallest))
		sb.WriteString(printer.Sprintf("  Largest:          %d\n", summary.Largest))
	}
	sb.WriteString("\n")
}

// writeDistribution writes the vampire count per digit length.
func (w *SummaryWriter) writeDistribution(sb *strings.Builder, summary *model.Summary) {
	if len(summary.ByDigits) == 0 {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("DIGIT DISTRIBUTION\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	// A uint64 has at most 20 digits; iterating the fixed span keeps the
	// output ordered without sorting map keys.
	for digits := 1; digits <= 20; digits++ {
		count, ok := summary.ByDigits[digits]
		if !ok {
			continue
		}
		sb.WriteString(printer.Sprintf("  %2d digits: %d\n", digits, count))
	}
	sb.WriteString("\n")
}

// writeFindings writes every vampire number with its fang pairs.
func (w *SummaryWriter) writeFindings(sb *strings.Builder, report *model.ScanReport) {
	if !report.HasFindings() && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("VAMPIRE NUMBERS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if !report.HasFindings() {
		sb.WriteString("  No vampire numbers found\n\n")
		return
	}

	for _, finding := range report.Findings {
		for _, pair := range finding.Pairs {
			sb.WriteString(fmt.Sprintf("  %d = %d x %d\n", finding.Number, pair.Fang1, pair.Fang2))
		}
	}
	sb.WriteString("\n")
}

// writeFooter writes the report footer.
func (w *SummaryWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by fangscan\n")
	sb.WriteString("https://github.com/nao1215/fangscan\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
