// Package report renders a grade-book summary for the console.
package report

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"console-tools/internal/domain"
)

type Format string

const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	switch f {
	case FormatTable, FormatYAML:
		return true
	}
	return false
}

const (
	heavyRule = "======================================================="
	lightRule = "-------------------------------------------------------"
	title     = "                STUDENT GRADE SUMMARY REPORT             "
)

// Writer renders reports in a single format.
type Writer struct {
	format Format
}

func NewWriter(format Format) (*Writer, error) {
	if format == "" {
		format = FormatTable
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("report: unknown format %q", format)
	}
	return &Writer{format: format}, nil
}

func (w *Writer) Write(out io.Writer, rep domain.Report) error {
	switch w.format {
	case FormatYAML:
		return WriteYAML(out, rep)
	default:
		return WriteTable(out, rep)
	}
}

// WriteTable prints the fixed-width summary with two-decimal averages.
func WriteTable(out io.Writer, rep domain.Report) error {
	var b strings.Builder
	b.WriteString("\n" + heavyRule + "\n")
	b.WriteString(title + "\n")
	b.WriteString(heavyRule + "\n")
	fmt.Fprintf(&b, "%-5s | %-30s | %-8s | %-5s\n", "No.", "Name", "Average", "Grade")
	b.WriteString(lightRule + "\n")
	for _, row := range rep.Rows {
		fmt.Fprintf(&b, "%-5d | %-30s | %-8.2f | %-5s\n", row.Index, row.Name, row.Average, row.Letter)
	}
	b.WriteString(heavyRule + "\n")
	fmt.Fprintf(&b, "OVERALL CLASS AVERAGE: %.2f\n", rep.ClassAverage)
	fmt.Fprintf(&b, "Total Students Processed: %d\n", rep.Total)
	b.WriteString(heavyRule + "\n")

	if _, err := io.WriteString(out, b.String()); err != nil {
		return fmt.Errorf("report: write table: %w", err)
	}
	return nil
}

// WriteYAML prints the report as a YAML document.
func WriteYAML(out io.Writer, rep domain.Report) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("report: flush yaml: %w", err)
	}
	return nil
}
