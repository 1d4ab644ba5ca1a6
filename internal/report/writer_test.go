package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/fangscan/internal/model"
)

// createTestReport creates a report with sample data for testing.
func createTestReport() *model.ScanReport {
	report := model.NewScanReport(1000, 199999)
	report.ChunkSize = 100
	report.Workers = 4
	report.ChunkCount = 1990
	report.StartedAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	report.Elapsed = 1500 * time.Millisecond
	report.NumbersScanned = 199000

	report.AddFinding(model.Finding{Number: 1260, Pairs: []model.FangPair{{Fang1: 21, Fang2: 60}}})
	report.AddFinding(model.Finding{Number: 1395, Pairs: []model.FangPair{{Fang1: 15, Fang2: 93}}})
	report.AddFinding(model.Finding{Number: 6880, Pairs: []model.FangPair{{Fang1: 80, Fang2: 86}}})
	report.AddFinding(model.Finding{Number: 125460, Pairs: []model.FangPair{{Fang1: 204, Fang2: 615}, {Fang1: 246, Fang2: 510}}})

	// Generate summary
	report.Summary = model.NewSummary(report)

	return report
}

// TestLinesWriter tests the plain result line writer.
func TestLinesWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes one line per fang pair", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewLinesWriter(&buf)
		report := createTestReport()

		n, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := "1260 21 60\n1395 15 93\n6880 80 86\n125460 204 615\n125460 246 510\n"
		if got := buf.String(); got != want {
			t.Errorf("expected output %q, got %q", want, got)
		}
		if n != buf.Len() {
			t.Errorf("expected %d bytes reported, got %d", buf.Len(), n)
		}
	})

	t.Run("empty report produces no output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewLinesWriter(&buf)
		report := model.NewScanReport(1, 999)

		n, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 0 {
			t.Errorf("expected 0 bytes written, got %d", n)
		}
		if buf.Len() != 0 {
			t.Errorf("expected empty output, got %q", buf.String())
		}
	})
}

// TestSummaryWriter tests the human-readable report writer.
func TestSummaryWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes report header", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSummaryWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "FANGSCAN REPORT") {
			t.Error("expected output to contain header")
		}
		if !strings.Contains(output, "1,000 .. 199,999") {
			t.Error("expected output to contain grouped range bounds")
		}
		if !strings.Contains(output, "Status:         Complete") {
			t.Error("expected output to contain complete status")
		}
	})

	t.Run("writes scan summary", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSummaryWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "SCAN SUMMARY") {
			t.Error("expected output to contain scan summary")
		}
		if !strings.Contains(output, "Numbers Scanned:  199,000") {
			t.Error("expected output to contain grouped scan count")
		}
		if !strings.Contains(output, "Vampire Numbers:  4") {
			t.Error("expected output to contain vampire count")
		}
		if !strings.Contains(output, "Fang Pairs:       5") {
			t.Error("expected output to contain pair count")
		}
		if !strings.Contains(output, "Multi-Fang:       1") {
			t.Error("expected output to contain multi-fang count")
		}
		if !strings.Contains(output, "Smallest:         1,260") {
			t.Error("expected output to contain smallest vampire")
		}
		if !strings.Contains(output, "Largest:          125,460") {
			t.Error("expected output to contain largest vampire")
		}
	})

	t.Run("writes digit distribution", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSummaryWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "DIGIT DISTRIBUTION") {
			t.Error("expected output to contain digit distribution section")
		}
		if !strings.Contains(output, "4 digits: 3") {
			t.Error("expected output to contain four digit count")
		}
		if !strings.Contains(output, "6 digits: 1") {
			t.Error("expected output to contain six digit count")
		}
	})

	t.Run("writes findings", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSummaryWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "VAMPIRE NUMBERS") {
			t.Error("expected output to contain findings section")
		}
		if !strings.Contains(output, "1260 = 21 x 60") {
			t.Error("expected output to contain first finding")
		}
		if !strings.Contains(output, "125460 = 204 x 615") {
			t.Error("expected output to contain first pair of multi-fang finding")
		}
		if !strings.Contains(output, "125460 = 246 x 510") {
			t.Error("expected output to contain second pair of multi-fang finding")
		}
	})

	t.Run("verbose mode includes scan details", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSummaryWriter(&buf, WithVerbose(true))
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "Chunk Size:     100") {
			t.Error("expected verbose output to contain chunk size")
		}
		if !strings.Contains(output, "Workers:        4") {
			t.Error("expected verbose output to contain worker count")
		}
		if !strings.Contains(output, "Chunks:         1990 (0 failed)") {
			t.Error("expected verbose output to contain chunk counts")
		}
	})

	t.Run("non-verbose mode hides scan details", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSummaryWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if strings.Contains(output, "Chunk Size:") {
			t.Error("expected chunk size to be hidden without verbose")
		}
	})

	t.Run("handles interrupted report", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSummaryWriter(&buf)
		report := createTestReport()
		report.Interrupted = true
		report.Summary = model.NewSummary(report)

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "INTERRUPTED (partial results)") {
			t.Error("expected output to indicate interruption")
		}
	})

	t.Run("hides findings section when empty", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSummaryWriter(&buf)
		report := model.NewScanReport(1, 999)
		report.NumbersScanned = 999
		report.Summary = model.NewSummary(report)

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if strings.Contains(output, "VAMPIRE NUMBERS") {
			t.Error("expected findings section to be hidden without showEmpty")
		}
		if strings.Contains(output, "Smallest:") {
			t.Error("expected smallest line to be hidden for empty report")
		}
	})

	t.Run("shows empty findings with showEmpty", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSummaryWriter(&buf, WithShowEmpty(true))
		report := model.NewScanReport(1, 999)
		report.NumbersScanned = 999
		report.Summary = model.NewSummary(report)

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "No vampire numbers found") {
			t.Error("expected 'No vampire numbers found' message")
		}
	})
}

// TestSummaryWriterWithError tests report with error status.
func TestSummaryWriterWithError(t *testing.T) {
	t.Parallel()

	t.Run("shows error in status", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSummaryWriter(&buf)
		report := createTestReport()
		report.ErrorMessage = "chunk 3 [1300, 1399]: detector panic: boom"

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "ERROR") {
			t.Error("expected ERROR in status")
		}
		if !strings.Contains(output, "detector panic") {
			t.Error("expected error message in output")
		}
	})
}

// TestSummaryWriterGeneratesSummary tests handling of nil Summary.
func TestSummaryWriterGeneratesSummary(t *testing.T) {
	t.Parallel()

	t.Run("generates summary when nil", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSummaryWriter(&buf)
		report := createTestReport()
		// Intentionally leave Summary as nil
		report.Summary = nil

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "Vampire Numbers:  4") {
			t.Error("expected summary to be generated on the fly")
		}
	})
}

// TestJSONWriter tests the JSON report writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("outputs valid JSON", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Verify it's valid JSON
		var parsed model.ScanReport
		if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}

		if parsed.Low != 1000 || parsed.High != 199999 {
			t.Errorf("expected range [1000, 199999], got [%d, %d]", parsed.Low, parsed.High)
		}
		if len(parsed.Findings) != 4 {
			t.Errorf("expected 4 findings, got %d", len(parsed.Findings))
		}
		if parsed.Summary == nil || parsed.Summary.VampireCount != 4 {
			t.Errorf("expected summary with 4 vampires, got %+v", parsed.Summary)
		}
	})

	t.Run("compact output by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		// Compact JSON should be on fewer lines
		lines := strings.Split(strings.TrimSpace(output), "\n")
		if len(lines) > 1 {
			t.Errorf("expected compact output (1 line), got %d lines", len(lines))
		}
	})

	t.Run("pretty print with indent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithPrettyPrint())
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		// Pretty printed JSON should have multiple lines
		lines := strings.Split(strings.TrimSpace(output), "\n")
		if len(lines) < 5 {
			t.Errorf("expected multi-line output, got %d lines", len(lines))
		}
	})

	t.Run("generates summary when nil", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)
		report := createTestReport()
		report.Summary = nil

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var parsed model.ScanReport
		if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if parsed.Summary == nil {
			t.Error("expected summary to be generated before serialization")
		}
	})

	t.Run("serializes error message", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)
		report := createTestReport()
		report.ErrorMessage = "chunk 3 failed"

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), `"error":"chunk 3 failed"`) {
			t.Errorf("expected error field in JSON output, got: %s", buf.String())
		}
	})
}

// TestWithIndent tests the WithIndent JSON option.
func TestWithIndent(t *testing.T) {
	t.Parallel()

	t.Run("uses custom prefix and indent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithIndent(">>", "\t"))
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		// Should have multiple lines with custom formatting
		lines := strings.Split(strings.TrimSpace(output), "\n")
		if len(lines) < 5 {
			t.Errorf("expected multi-line output, got %d lines", len(lines))
		}
		// Check that prefix is used
		if !strings.Contains(output, ">>") {
			t.Error("expected custom prefix '>>' in output")
		}
		// Check that tab indent is used
		if !strings.Contains(output, "\t") {
			t.Error("expected tab indentation in output")
		}
	})
}

// TestFullJSONWriter tests the full JSON writer with metadata.
func TestFullJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("includes version in output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewFullJSONWriter(&buf, "1.2.3", WithPrettyPrint())
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var parsed JSONReport
		if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}

		if parsed.Version != "1.2.3" {
			t.Errorf("expected version %q, got %q", "1.2.3", parsed.Version)
		}
		if parsed.Report == nil || parsed.Report.Low != 1000 {
			t.Error("expected wrapped report in output")
		}
	})
}

// TestMultiWriter tests writing to multiple outputs.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all writers", func(t *testing.T) {
		t.Parallel()

		var buf1, buf2 bytes.Buffer
		w1 := NewSummaryWriter(&buf1)
		w2 := NewJSONWriter(&buf2)

		multi := NewMultiWriter(w1, w2)
		report := createTestReport()

		_, err := multi.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Check both buffers have content
		if buf1.Len() == 0 {
			t.Error("expected buf1 to have content")
		}
		if buf2.Len() == 0 {
			t.Error("expected buf2 to have content")
		}

		// Verify formats are different
		if strings.Contains(buf1.String(), "{") {
			t.Error("expected buf1 (summary) to not be JSON")
		}
		if !strings.Contains(buf2.String(), "{") {
			t.Error("expected buf2 (JSON) to contain JSON")
		}
	})

	t.Run("handles empty writers list", func(t *testing.T) {
		t.Parallel()

		multi := NewMultiWriter()
		report := createTestReport()

		n, err := multi.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 0 {
			t.Errorf("expected 0 bytes written for empty writers, got %d", n)
		}
	})
}

// TestMarkdownWriter tests the Markdown report writer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes report header", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "# Fangscan Report") {
			t.Error("expected output to contain H1 header")
		}
		if !strings.Contains(output, "1,000 .. 199,999") {
			t.Error("expected output to contain grouped range bounds")
		}
	})

	t.Run("writes scan summary", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "## Scan Summary") {
			t.Error("expected output to contain scan summary header")
		}
		if !strings.Contains(output, "Multi-Fang Vampires") {
			t.Error("expected output to contain multi-fang metric")
		}
	})

	t.Run("writes findings table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "## Findings") {
			t.Error("expected output to contain findings header")
		}
		if !strings.Contains(output, "Vampire Number") {
			t.Error("expected findings table header")
		}
		if !strings.Contains(output, "1260") {
			t.Error("expected output to contain vampire number")
		}
	})

	t.Run("includes pie chart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "pie") {
			t.Error("expected output to contain mermaid pie chart")
		}
		if !strings.Contains(output, "4 digits") {
			t.Error("expected pie chart label for four digit vampires")
		}
	})

	t.Run("includes GitHub alert for multi-fang findings", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "[!IMPORTANT]") {
			t.Error("expected IMPORTANT alert for multi-fang findings")
		}
	})

	t.Run("handles interrupted report", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := createTestReport()
		report.Interrupted = true

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "Interrupted") {
			t.Error("expected output to indicate interruption")
		}
		if !strings.Contains(output, "[!WARNING]") {
			t.Error("expected WARNING alert for interrupted scan")
		}
	})

	t.Run("handles report with no findings", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := model.NewScanReport(1, 999)
		report.NumbersScanned = 999
		report.Summary = model.NewSummary(report)

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "No vampire numbers detected") {
			t.Error("expected message about no findings")
		}
		if !strings.Contains(output, "[!TIP]") {
			t.Error("expected TIP alert for no findings")
		}
	})

	t.Run("writes footer with link", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := createTestReport()

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "https://github.com/nao1215/fangscan") {
			t.Error("expected footer with repository link")
		}
	})
}

// TestMarkdownWriterWithError tests report with error status.
func TestMarkdownWriterWithError(t *testing.T) {
	t.Parallel()

	t.Run("shows error in status", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		report := createTestReport()
		report.ErrorMessage = "chunk 7 failed"

		_, err := w.Write(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "Error") {
			t.Error("expected Error in status")
		}
		if !strings.Contains(output, "chunk 7 failed") {
			t.Error("expected error message in output")
		}
		if !strings.Contains(output, "[!CAUTION]") {
			t.Error("expected CAUTION alert for failed scan")
		}
	})
}
