package host

import (
	"errors"
	"os"
	"os/exec"

	"github.com/joshuapare/rtcore/rt/fail"
	"github.com/joshuapare/rtcore/rt/str"
)

// Exec runs cmd through the platform shell with the process's standard
// streams and returns its exit code. It returns -1 when the shell cannot be
// started or the command was terminated by a signal.
func Exec(cmd *str.Str) int64 {
	if cmd == nil {
		fail.Fail(fail.IO, fail.Here(1), "exec: command is nil")
	}
	c := shellCommand(cmd.String())
	c.Stdin, c.Stdout, c.Stderr = os.Stdin, os.Stdout, os.Stderr
	err := c.Run()
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return int64(exitErr.ExitCode())
	}
	return -1
}
