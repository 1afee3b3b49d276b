package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/1broseidon/rawhandle/internal/tui"
)

func runTUI(args []string) int {
	if hasHelpArg(args) {
		fmt.Fprintln(os.Stdout, "Usage: handleprobe tui")
		fmt.Fprintln(os.Stdout, "")
		fmt.Fprintln(os.Stdout, "Interactive inspector: browse windows and see the raw handle a")
		fmt.Fprintln(os.Stdout, "rendering library would receive for each.")
		fmt.Fprintln(os.Stdout, "")
		fmt.Fprintln(os.Stdout, "Keybindings:")
		fmt.Fprintln(os.Stdout, "  j/k, ↑/↓  Navigate windows")
		fmt.Fprintln(os.Stdout, "  g/G       Jump to first/last window")
		fmt.Fprintln(os.Stdout, "  r         Refresh window list")
		fmt.Fprintln(os.Stdout, "  q, Esc    Quit")
		return 0
	}
	if len(args) > 0 {
		fmt.Fprintln(os.Stderr, "tui takes no arguments")
		return 2
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "tui requires a terminal; use 'handleprobe list' for scripted output")
		return 1
	}

	backend, err := openBackend()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer backend.Close()

	if err := tui.Run(backend); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
