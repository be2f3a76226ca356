package main

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set at link time with -ldflags "-X main.version=...".
var version = "dev"

const rtcoreModule = "github.com/joshuapare/rtcore"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print rtctl and runtime versions",
	Run: func(cmd *cobra.Command, args []string) {
		printInfo("rtctl %s\n", rootCmd.Version)
		printInfo("  rtcore: %s\n", rtcoreVersion())
		printInfo("  go: %s\n", runtime.Version())
	},
}

// rtcoreVersion reports the linked rtcore module version, "(devel)" for a
// replace-directive build.
func rtcoreVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path != rtcoreModule {
			continue
		}
		if dep.Replace != nil {
			return "(devel)"
		}
		return dep.Version
	}
	return "unknown"
}

func init() {
	rootCmd.Version = version
	rootCmd.AddCommand(versionCmd)
}
