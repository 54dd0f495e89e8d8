package utils

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/skratchdot/open-golang/open"
)

// EditorCommand builds a shell invocation of the configured editor command
// running inside dir, so a command such as "code ." opens dir itself.
func EditorCommand(command, dir string) *exec.Cmd {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", command)
	} else {
		cmd = exec.Command("sh", "-c", command)
	}
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

// OpenURL opens url in the system's default browser without waiting for it.
func OpenURL(url string) error {
	if err := open.Start(url); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}
