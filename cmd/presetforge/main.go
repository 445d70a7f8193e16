package main

import (
	"fmt"
	"os"

	"github.com/vladcraftcom/presetforge/pkg/style"
)

func main() {
	if err := Execute(); err != nil {
		renderer := style.NewRenderer(!stdoutIsTerminal())
		fmt.Fprintln(os.Stderr, renderer.RenderError(err))
		os.Exit(1)
	}
}
