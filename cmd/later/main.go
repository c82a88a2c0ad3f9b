// later saves paused Claude Code conversations for resumption and discovers
// active sessions on the local machine.
package main

import (
	"os"

	"github.com/wethinkt/go-later/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
