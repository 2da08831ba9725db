package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/badele/brokenkeys/internal/types"
)

func ExportJSON(w io.Writer, report types.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("error writing JSON: %w", err)
	}
	return nil
}
