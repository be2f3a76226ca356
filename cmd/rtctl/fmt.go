package main

import (
	"os"

	"github.com/joshuapare/rtcore/rt/host"
	"github.com/joshuapare/rtcore/rt/str"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newFmtCmd())
}

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt <template> [args...]",
		Short: "Interpolate arguments into a {} template",
		Long: `The fmt command fills each {} in the template with the next argument.
Use {{ and }} for literal braces.

Example:
  rtctl fmt "{} is {} years old" Ada 36
  rtctl fmt "{{literal}} {}" value`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(args)
		},
	}
	return cmd
}

func runFmt(args []string) error {
	tmpl := str.FromString(args[0])
	defer tmpl.Release()

	fargs := make([]host.Arg, 0, len(args)-1)
	owned := make([]*str.Str, 0, len(args)-1)
	defer func() {
		for _, s := range owned {
			s.Release()
		}
	}()
	for _, a := range args[1:] {
		s := str.FromString(a)
		owned = append(owned, s)
		fargs = append(fargs, host.S(s))
	}

	var out *str.Str
	if err := guard("fmt", func() { out = host.Format(tmpl, fargs...) }); err != nil {
		return err
	}
	defer out.Release()

	if !quiet {
		c := host.NewConsole(os.Stdout)
		c.PrintStr(out)
		c.Println()
	}
	return nil
}
