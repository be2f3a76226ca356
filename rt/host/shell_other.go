//go:build !unix

package host

import (
	"os"
	"os/exec"
)

func shellCommand(line string) *exec.Cmd {
	shell := os.Getenv("COMSPEC")
	if shell == "" {
		shell = "cmd.exe"
	}
	return exec.Command(shell, "/C", line)
}
