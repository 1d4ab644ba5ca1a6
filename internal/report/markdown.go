package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/fangscan/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.ScanReport) (int, error) {
	summary := report.Summary
	if summary == nil {
		summary = model.NewSummary(report)
	}

	md := markdown.NewMarkdown(w.output)

	// Header
	w.writeHeader(md, report)

	// Summary
	w.writeSummary(md, report, summary)

	// Findings
	w.writeFindings(md, report)

	// Footer
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with scan information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.ScanReport) {
	md.H1("Fangscan Report")
	md.PlainText("")

	// Basic info table
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Range", printer.Sprintf("`%d .. %d`", report.Low, report.High)},
			{"Scan Date", report.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Numbers Scanned", printer.Sprintf("%d", report.NumbersScanned)},
			{"Elapsed", report.Elapsed.String()},
			{"Status", w.getStatusText(report)},
		},
	})
	md.PlainText("")
}

// getStatusText returns the status text based on report state.
func (w *MarkdownWriter) getStatusText(report *model.ScanReport) string {
	if report.Interrupted {
		return "⚠️ Interrupted (partial results)"
	}
	if report.ErrorMessage != "" {
		return "❌ Error - " + report.ErrorMessage
	}
	return "✅ Complete"
}

// writeSummary writes the scan summary section.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.ScanReport, summary *model.Summary) {
	md.H2("Scan Summary")
	md.PlainText("")

	rows := [][]string{
		{"Vampire Numbers", printer.Sprintf("%d", summary.VampireCount)},
		{"Fang Pairs", printer.Sprintf("%d", summary.PairCount)},
		{"Multi-Fang Vampires", printer.Sprintf("%d", summary.MultiFangCount)},
	}
	if summary.VampireCount > 0 {
		rows = append(rows,
			[]string{"Smallest", printer.Sprintf("%d", summary.Smallest)},
			[]string{"Largest", printer.Sprintf("%d", summary.Largest)},
		)
	}

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Count"},
		Rows:   rows,
	})
	md.PlainText("")

	// Add pie chart if there are findings
	if report.HasFindings() {
		w.writePieChart(md, summary)
	}

	// Add alert based on scan outcome
	w.writeAlert(md, report, summary)
}

// writePieChart writes a mermaid pie chart of vampires per digit length.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, summary *model.Summary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Vampire Digit Distribution"),
		piechart.WithShowData(true),
	)

	// Fixed digit span keeps slice order deterministic without sorting
	for digits := 1; digits <= 20; digits++ {
		count, ok := summary.ByDigits[digits]
		if !ok {
			continue
		}
		chart.LabelAndIntValue(strconv.Itoa(digits)+" digits", uint64(count))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on the scan outcome.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.ScanReport, summary *model.Summary) {
	switch {
	case report.Interrupted:
		md.Warningf(
			"Scan was interrupted before completion. %d of %d chunks finished; the findings below are partial.",
			report.ChunkCount-report.FailedChunks, report.ChunkCount,
		)
	case report.ErrorMessage != "":
		md.Cautionf(
			"Scan completed with failures: %s",
			report.ErrorMessage,
		)
	case summary.MultiFangCount > 0:
		md.Importantf(
			"%d vampire number(s) in this range factor into more than one fang pair.",
			summary.MultiFangCount,
		)
	case report.HasFindings():
		md.Note("Every listed fang pair multiplies to its vampire number using exactly its digits.")
	default:
		md.Tip("No vampire numbers exist in this range.")
	}
	md.PlainText("")
}

// writeFindings writes every vampire number with its fang pairs.
func (w *MarkdownWriter) writeFindings(md *markdown.Markdown, report *model.ScanReport) {
	md.H2("Findings")
	md.PlainText("")

	if !report.HasFindings() {
		md.PlainText("No vampire numbers detected.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(report.Findings))
	for _, finding := range report.Findings {
		for _, pair := range finding.Pairs {
			rows = append(rows, []string{
				strconv.FormatUint(finding.Number, 10),
				strconv.FormatUint(pair.Fang1, 10),
				strconv.FormatUint(pair.Fang2, 10),
			})
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Vampire Number", "Fang 1", "Fang 2"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [fangscan](https://github.com/nao1215/fangscan)*")
}
