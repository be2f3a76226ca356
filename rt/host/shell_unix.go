//go:build unix

package host

import "os/exec"

func shellCommand(line string) *exec.Cmd {
	return exec.Command("/bin/sh", "-c", line)
}
