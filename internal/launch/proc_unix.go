//go:build !windows

package launch

import (
	"os/exec"
	"syscall"
)

// detach starts the process in its own process group so it outlives the
// caller.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
