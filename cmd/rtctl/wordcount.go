package main

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/joshuapare/rtcore/rt/dict"
	"github.com/joshuapare/rtcore/rt/host"
	"github.com/joshuapare/rtcore/rt/own"
	"github.com/joshuapare/rtcore/rt/str"
	"github.com/spf13/cobra"
)

var wordcountTop int

func init() {
	cmd := newWordcountCmd()
	cmd.Flags().IntVarP(&wordcountTop, "top", "n", 10, "Number of most frequent words to show (0 = all)")
	rootCmd.AddCommand(cmd)
}

func newWordcountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordcount <file>...",
		Short: "Count word frequencies in files",
		Long: `The wordcount command splits files on ASCII whitespace and counts
each distinct word in a string-keyed runtime map.

Example:
  rtctl wordcount notes.txt
  rtctl wordcount a.txt b.txt --top 3 --json
  RTCORE_LEAKS=1 rtctl wordcount notes.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWordcount(args)
		},
	}
	return cmd
}

type wordCount struct {
	Word  string `json:"word"`
	Count int64  `json:"count"`
}

func isSpace(c byte) bool {
	return c == ' ' || (c >= '\t' && c <= '\r')
}

// countWords adds every word of text to counts and returns the number of
// words seen.
func countWords(counts *dict.StrMap[int64], text *str.Str) int64 {
	var total int64
	b := text.Bytes()
	for i := 0; i < len(b); {
		for i < len(b) && isSpace(b[i]) {
			i++
		}
		start := i
		for i < len(b) && !isSpace(b[i]) {
			i++
		}
		if i == start {
			break
		}
		word := str.Sub(text, int64(start), int64(i-start))
		n, _ := counts.Lookup(word)
		counts.Set(word, n+1)
		word.Release()
		total++
	}
	return total
}

func runWordcount(args []string) error {
	counts := dict.NewStr(own.Prim[int64]())
	defer counts.Release()

	var total int64
	for _, path := range args {
		printVerbose("Reading %s\n", path)
		p := str.FromString(path)
		var text *str.Str
		err := guard("wordcount", func() { text = host.ReadFile(p) })
		p.Release()
		if err != nil {
			return err
		}
		total += countWords(counts, text)
		text.Release()
	}

	words := make([]wordCount, 0, counts.Len())
	for k, n := range counts.All() {
		words = append(words, wordCount{Word: k.String(), Count: n})
	}
	slices.SortFunc(words, func(a, b wordCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Word, b.Word)
	})
	if wordcountTop > 0 && len(words) > wordcountTop {
		words = words[:wordcountTop]
	}

	if jsonOut {
		return printJSON(map[string]any{
			"files":  len(args),
			"words":  total,
			"unique": counts.Len(),
			"top":    words,
		})
	}

	printInfo("%d words, %d unique\n", total, counts.Len())
	for _, w := range words {
		printInfo("%7d %s\n", w.Count, w.Word)
	}
	if verbose {
		st := counts.Stats()
		printVerbose("map: %s\n", formatStats(st))
	}
	return nil
}

func formatStats(st dict.Stats) string {
	return fmt.Sprintf("len=%d cap=%d tombstones=%d load=%.2f max_probe=%d avg_probe=%.2f",
		st.Len, st.Cap, st.Tombstones, st.LoadFactor(), st.MaxProbe, st.AvgProbe)
}
