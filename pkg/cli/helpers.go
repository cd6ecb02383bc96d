package cli

import (
	"os"
	"os/exec"
)

// ClearScreen shells out to clear; a failure only costs a messy terminal.
func ClearScreen() {
	cmd := exec.Command("clear")
	cmd.Stdout = os.Stdout

	_ = cmd.Run()
}
