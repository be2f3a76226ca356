package host

import (
	"os"

	"github.com/joshuapare/rtcore/rt/fail"
	"github.com/joshuapare/rtcore/rt/rc"
	"github.com/joshuapare/rtcore/rt/str"
)

var (
	argv = os.Args
	exit = os.Exit
)

// SetArgs replaces the argument vector seen by Argc and Argv.
func SetArgs(args []string) { argv = args }

// Argc returns the number of program arguments, including the program name.
func Argc() int64 { return int64(len(argv)) }

// Argv returns argument i.
func Argv(i int64) *str.Str {
	if i < 0 || i >= int64(len(argv)) {
		fail.OOB(fail.Here(1), "argv: index out of range")
	}
	site := fail.NoSrc
	if rc.Observed() {
		site = fail.Here(1)
	}
	return str.NewAt([]byte(argv[i]), site)
}

// Exit terminates the process with code.
func Exit(code int64) { exit(int(code)) }
