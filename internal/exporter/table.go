package exporter

import (
	"fmt"
	"io"

	"github.com/badele/brokenkeys/internal/types"
)

// ExportTable draws every word of list with its verdict. Matches must come
// from the same list.
func ExportTable(w io.Writer, list *types.WordList, matches []types.Match) error {
	byPos := make(map[int]types.Match, len(matches))
	for _, m := range matches {
		byPos[m.Word.Pos] = m
	}

	fmt.Fprintln(w, "┌─────────┬────────┬──────────────────────────────────────┬──────────┬─────────┐")
	fmt.Fprintf(w, "│ %-7s │ %-6s │ %-36s │ %-8s │ %-7s │\n", "Word", "Pos", "Text", "Verdict", "Char")
	fmt.Fprintln(w, "├─────────┼────────┼──────────────────────────────────────┼──────────┼─────────┤")

	for i := 0; i < list.Len(); i++ {
		word := list.At(i)
		verdict := types.VerdictLegal
		char := "-"

		if m, ok := byPos[word.Pos]; ok {
			verdict = types.VerdictIllegal
			char = fmt.Sprintf("%c@%d", m.Char, m.Index)
		}

		_, err := fmt.Fprintf(w, "│ %-7d │ %-6d │ %-36s │ %-8s │ %-7s │\n",
			i+1, word.Pos, truncate(word.Text, 36), verdict, char)
		if err != nil {
			return fmt.Errorf("error writing table: %w", err)
		}
	}

	_, err := fmt.Fprintln(w, "└─────────┴────────┴──────────────────────────────────────┴──────────┴─────────┘")
	return err
}

func truncate(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen-3] + "..."
	}
	return s
}
