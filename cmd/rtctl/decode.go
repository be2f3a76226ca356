package main

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/joshuapare/rtcore/rt/codec"
	"github.com/joshuapare/rtcore/rt/host"
	"github.com/joshuapare/rtcore/rt/str"
	"github.com/spf13/cobra"
)

var decodeAs string

func init() {
	cmd := newDecodeCmd()
	cmd.Flags().StringVar(&decodeAs, "as", "utf16le", "Source encoding: utf16le, utf16be or latin1")
	rootCmd.AddCommand(cmd)
}

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "Print a UTF-16 or Latin-1 file as UTF-8",
		Long: `The decode command reads a file through the codec buffer's text
readers and writes the result as UTF-8.

Example:
  rtctl decode notes-utf16.txt
  rtctl decode legacy.txt --as latin1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args[0])
		},
	}
	return cmd
}

func decodeText(b *codec.Buffer, as string) (*str.Str, error) {
	var out *str.Str
	var err error
	switch as {
	case "utf16le", "utf16be":
		order := binary.ByteOrder(binary.LittleEndian)
		if as == "utf16be" {
			order = binary.BigEndian
		}
		err = guard("decode", func() { out = b.ReadUTF16(int64(b.Remaining()/2), order) })
	case "latin1":
		err = guard("decode", func() { out = b.ReadLatin1(int64(b.Remaining())) })
	default:
		return nil, fmt.Errorf("unknown encoding %q", as)
	}
	return out, err
}

func runDecode(path string) error {
	b, err := loadBuffer(path)
	if err != nil {
		return err
	}
	defer b.Release()

	text, err := decodeText(b, decodeAs)
	if err != nil {
		return err
	}
	defer text.Release()

	if b.Remaining() > 0 {
		printVerbose("Ignoring %d trailing byte(s)\n", b.Remaining())
	}
	if quiet {
		return nil
	}
	c := host.NewConsole(os.Stdout)
	c.PrintStr(text)
	c.Println()
	return nil
}
