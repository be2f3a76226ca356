package main

import (
	"fmt"
	"strings"

	"github.com/joshuapare/rtcore/rt/codec"
	"github.com/joshuapare/rtcore/rt/host"
	"github.com/joshuapare/rtcore/rt/str"
	"github.com/spf13/cobra"
)

var (
	hexdumpWidth  int
	hexdumpOffset int64
	hexdumpLength int64
)

func init() {
	cmd := newHexdumpCmd()
	cmd.Flags().IntVarP(&hexdumpWidth, "width", "w", 16, "Bytes per line")
	cmd.Flags().Int64Var(&hexdumpOffset, "offset", 0, "Start offset")
	cmd.Flags().Int64VarP(&hexdumpLength, "length", "n", 0, "Bytes to dump (0 = to end)")
	rootCmd.AddCommand(cmd)
}

func newHexdumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hexdump <file>",
		Short: "Dump a file as hex and ASCII",
		Long: `The hexdump command loads a file into a codec buffer and prints
offset, hex bytes and printable ASCII for each line.

Example:
  rtctl hexdump image.bin
  rtctl hexdump image.bin --offset 512 --length 64 --width 8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHexdump(args[0])
		},
	}
	return cmd
}

// loadBuffer reads the file at path into a new codec buffer.
func loadBuffer(path string) (*codec.Buffer, error) {
	p := str.FromString(path)
	defer p.Release()

	var b *codec.Buffer
	err := guard("load", func() {
		content := host.ReadFile(p)
		b = codec.FromStr(content)
		content.Release()
	})
	return b, err
}

// dumpLines renders n bytes from the cursor of b.
func dumpLines(b *codec.Buffer, n int64, width int) []string {
	var lines []string
	for n > 0 {
		off := b.Pos()
		row := min(int64(width), n)
		var hex, ascii strings.Builder
		for i := int64(0); i < row; i++ {
			c := b.ReadU8()
			fmt.Fprintf(&hex, "%02x ", c)
			if c >= 0x20 && c < 0x7f {
				ascii.WriteByte(byte(c))
			} else {
				ascii.WriteByte('.')
			}
		}
		lines = append(lines, fmt.Sprintf("%08x  %-*s |%s|", off, width*3, hex.String(), ascii.String()))
		n -= row
	}
	return lines
}

func runHexdump(path string) error {
	if hexdumpWidth <= 0 {
		return fmt.Errorf("width must be positive, got %d", hexdumpWidth)
	}
	b, err := loadBuffer(path)
	if err != nil {
		return err
	}
	defer b.Release()

	printVerbose("Loaded %d bytes from %s\n", b.Len(), path)

	var lines []string
	err = guard("hexdump", func() {
		b.SetPos(hexdumpOffset)
		n := int64(b.Remaining())
		if hexdumpLength > 0 {
			n = min(n, hexdumpLength)
		}
		lines = dumpLines(b, n, hexdumpWidth)
	})
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{"file": path, "size": b.Len(), "lines": lines})
	}
	for _, l := range lines {
		printInfo("%s\n", l)
	}
	return nil
}
