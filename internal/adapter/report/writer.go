// Package report renders match reports for human and machine consumption.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"radscan/internal/domain"
)

// TextWriter renders the classic per-term section report.
type TextWriter struct{}

// NewTextWriter creates a plain-text report writer.
func NewTextWriter() *TextWriter {
	return &TextWriter{}
}

// Write implements port.ReportWriter.
func (w *TextWriter) Write(out io.Writer, r *domain.MatchReport) error {
	rule := strings.Repeat("=", 55)

	if _, err := fmt.Fprintf(out, "--- Search Results (%s) ---\n", r.Mode); err != nil {
		return err
	}
	fmt.Fprintf(out, "Reports analyzed: %d", r.DocsScanned)
	if r.DocsFiltered > 0 {
		fmt.Fprintf(out, " (filtered out: %d)", r.DocsFiltered)
	}
	if r.DocsSkipped > 0 {
		fmt.Fprintf(out, " (unreadable: %d)", r.DocsSkipped)
	}
	fmt.Fprintln(out)

	for _, tr := range r.Terms {
		fmt.Fprintf(out, "\n%s\n", rule)
		fmt.Fprintf(out, "## Term: %q\n", tr.Term)
		fmt.Fprintf(out, "## Found: %d reports\n", tr.Count)
		fmt.Fprintln(out, rule)
		if len(tr.Files) == 0 {
			fmt.Fprintln(out, "No reports found matching this term.")
			continue
		}
		for _, path := range tr.Files {
			fmt.Fprintf(out, "- %s\n", path)
		}
	}

	fmt.Fprintf(out, "\nTotal unique reports across all terms: %d\n", r.TotalUnique)
	_, err := fmt.Fprintln(out, "--- End of Report ---")
	return err
}

// JSONWriter renders the report as indented JSON.
type JSONWriter struct{}

// NewJSONWriter creates a JSON report writer.
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{}
}

// Write implements port.ReportWriter.
func (w *JSONWriter) Write(out io.Writer, r *domain.MatchReport) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
