// +build !windows

package process

import (
	"os"
	"os/exec"
	"syscall"
)

func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// signalGroup delivers `sig` to every process in the group led by `proc`,
// so that forked children holding output pipes are stopped too.
func signalGroup(proc *os.Process, sig os.Signal) error {
	if s, ok := sig.(syscall.Signal); ok {
		if err := syscall.Kill(-proc.Pid, s); err == nil {
			return nil
		}
	}

	return proc.Signal(sig)
}
