package exporter

import (
	"fmt"
	"io"

	"github.com/badele/brokenkeys/internal/types"
)

// SampleInput is echoed in the banner as an example line.
const SampleInput = "Hello, my name is Theodore."

// ExportBanner writes the interactive banner shown before the prompt.
func ExportBanner(w io.Writer, sample, illegal string) error {
	_, err := fmt.Fprintf(w, "\nSample input: %q\nIllegal letters: %s (case sensitive)\nType your input below: \n", sample, illegal)
	return err
}

// ExportText writes one "Illegal word" line per match, in input order.
func ExportText(w io.Writer, matches []types.Match) error {
	for _, m := range matches {
		if _, err := fmt.Fprintf(w, "Illegal word: %s\n", m.Word.Text); err != nil {
			return fmt.Errorf("error writing match: %w", err)
		}
	}
	return nil
}
