package main

import (
	"github.com/joshuapare/rtcore/rt/dict"
	"github.com/joshuapare/rtcore/rt/own"
	"github.com/joshuapare/rtcore/rt/str"
	"github.com/spf13/cobra"
)

var (
	mapstatsKeys        int
	mapstatsDeleteEvery int
	mapstatsStringKeys  bool
)

func init() {
	cmd := newMapstatsCmd()
	cmd.Flags().IntVar(&mapstatsKeys, "keys", 1000, "Number of keys to insert")
	cmd.Flags().IntVar(&mapstatsDeleteEvery, "delete-every", 0, "Delete every n-th key after inserting (0 = none)")
	cmd.Flags().BoolVar(&mapstatsStringKeys, "string-keys", false, "Use decimal string keys instead of integers")
	rootCmd.AddCommand(cmd)
}

func newMapstatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mapstats",
		Short: "Report hash map occupancy and probe lengths",
		Long: `The mapstats command fills a runtime hash map with sequential keys,
optionally deletes some of them, and reports slot occupancy, tombstones and
probe distances.

Example:
  rtctl mapstats --keys 5000
  rtctl mapstats --keys 5000 --delete-every 3 --string-keys --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMapstats()
		},
	}
	return cmd
}

func fillIntMap(n, deleteEvery int) dict.Stats {
	m := dict.New(own.IntKeys[int](), own.Prim[int]())
	defer m.Release()
	for i := range n {
		m.Set(i, i)
	}
	if deleteEvery > 0 {
		for i := 0; i < n; i += deleteEvery {
			m.Delete(i)
		}
	}
	return m.Stats()
}

func fillStrMap(n, deleteEvery int) dict.Stats {
	m := dict.NewStr(own.Prim[int]())
	defer m.Release()
	for i := range n {
		k := str.FromInt(int64(i))
		m.Set(k, i)
		k.Release()
	}
	if deleteEvery > 0 {
		for i := 0; i < n; i += deleteEvery {
			k := str.FromInt(int64(i))
			m.Delete(k)
			k.Release()
		}
	}
	return m.Stats()
}

func runMapstats() error {
	var st dict.Stats
	err := guard("mapstats", func() {
		if mapstatsStringKeys {
			st = fillStrMap(mapstatsKeys, mapstatsDeleteEvery)
		} else {
			st = fillIntMap(mapstatsKeys, mapstatsDeleteEvery)
		}
	})
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{
			"len":         st.Len,
			"cap":         st.Cap,
			"tombstones":  st.Tombstones,
			"load_factor": st.LoadFactor(),
			"max_probe":   st.MaxProbe,
			"avg_probe":   st.AvgProbe,
		})
	}
	printInfo("%s\n", formatStats(st))
	return nil
}
