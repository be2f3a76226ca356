package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/joshuapare/rtcore/internal/logger"
	"github.com/joshuapare/rtcore/rt/fail"
	"github.com/joshuapare/rtcore/rt/leak"
	"github.com/spf13/cobra"
)

// leakEnv enables leak tracking without the flag.
const leakEnv = "RTCORE_LEAKS"

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	trackLeaks bool
	strictLeak bool

	tracker *leak.Tracker
)

var rootCmd = &cobra.Command{
	Use:   "rtctl",
	Short: "Exercise the rtcore runtime from the command line",
	Long: `rtctl drives the rtcore runtime: reference-counted strings, sequences,
hash maps and the binary codec. Every command can run under the leak detector
(--leaks or RTCORE_LEAKS=1), which reports objects still alive when the
command finishes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setup()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return teardown()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&trackLeaks, "leaks", false, "Report managed objects alive at exit")
	rootCmd.PersistentFlags().
		BoolVar(&strictLeak, "strict-leaks", false, "Fail the command when leaks are reported")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

func leaksEnabled() bool {
	return trackLeaks || os.Getenv(leakEnv) == "1"
}

func setup() {
	logger.Init(logger.Options{Enabled: verbose, Out: os.Stderr, Level: slog.LevelDebug})
	if leaksEnabled() {
		tracker = leak.New(leak.Options{Out: os.Stderr})
		tracker.Install()
		logger.Debug("leak tracking enabled")
	}
}

func teardown() error {
	if tracker == nil {
		return nil
	}
	n := tracker.Close()
	tracker = nil
	if n > 0 && strictLeak {
		return fmt.Errorf("%d object(s) leaked", n)
	}
	return nil
}

// guard runs fn with runtime failures returned as errors instead of
// terminating the process.
func guard(op string, fn func()) error {
	if err := fail.Try(fn); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
