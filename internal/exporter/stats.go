package exporter

import (
	"fmt"
	"io"
	"sort"

	"github.com/badele/brokenkeys/internal/types"
)

func ExportStats(w io.Writer, tokenStats types.TokenStats, scanStats types.ScanStats) error {
	fmt.Fprintln(w, "=== Word Statistics ===")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Input size: %d bytes\n", tokenStats.InputSize)
	fmt.Fprintf(w, "  Letters: %d\n", tokenStats.Letters)
	fmt.Fprintf(w, "  Delimiters: %d\n", tokenStats.Delimiters)
	fmt.Fprintf(w, "  Total words: %d\n", scanStats.TotalWords)
	fmt.Fprintf(w, "  Illegal words: %d (%.1f%%)\n", scanStats.IllegalWords, scanStats.IllegalPercent())

	if len(scanStats.CharHits) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "--- Most Used Illegal Characters")
		displayTopN(w, scanStats.CharHits, 10)
	}

	return nil
}

func displayTopN(w io.Writer, data map[string]int, n int) {
	type entry struct {
		Key   string
		Count int
	}

	var entries []entry
	for k, v := range data {
		entries = append(entries, entry{k, v})
	}

	// Ties are broken by key so the output is stable.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})

	for i, e := range entries {
		if i >= n {
			break
		}
		fmt.Fprintf(w, "  %-30s: %5d\n", e.Key, e.Count)
	}
}
