// Package cli renders vecplot results for the terminal.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hyperjump/vecplot/internal/models"
)

// OutputFormat is the format for report output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// ParseOutputFormat maps a --output flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case OutputText, "":
		return OutputText, nil
	case OutputJSON:
		return OutputJSON, nil
	default:
		return OutputText, fmt.Errorf("unknown output format %q; use text or json", s)
	}
}

// WriteReport writes a single vector report to w in the given format.
func WriteReport(w io.Writer, r *models.VectorReport, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		return writeReportText(w, r)
	}
}

func writeReportText(w io.Writer, r *models.VectorReport) error {
	if _, err := fmt.Fprintf(w, "vector:     %s\nmagnitude:  %g\n", r.Vector.Display, r.Magnitude); err != nil {
		return err
	}
	if r.Normalized != nil {
		_, err := fmt.Fprintf(w, "normalized: %s\n", r.Normalized.Display)
		return err
	}
	_, err := fmt.Fprintf(w, "normalized: error: %s\n", r.NormalizeError)
	return err
}
