package main

import (
	"os"

	"github.com/mattn/go-isatty"
)

// stdoutIsTerminal reports whether stdout is attached to a terminal.
// Decorated output is disabled when piping.
func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
