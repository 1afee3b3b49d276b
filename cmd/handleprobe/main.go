package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/1broseidon/rawhandle/internal/config"
	"github.com/1broseidon/rawhandle/internal/platform"
	"github.com/1broseidon/rawhandle/internal/probe"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "list":
		os.Exit(runList(os.Args[2:]))
	case "active":
		os.Exit(runActive(os.Args[2:]))
	case "display":
		os.Exit(runDisplay(os.Args[2:]))
	case "find":
		os.Exit(runFind(os.Args[2:]))
	case "tui":
		os.Exit(runTUI(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: handleprobe <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Inspect the raw native window and display handles a windowing system")
	fmt.Fprintln(w, "would hand to a rendering library.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  list                List windows with their raw handles")
	fmt.Fprintln(w, "  active              Show the focused window and its raw handle")
	fmt.Fprintln(w, "  display             Show the display/connection handle")
	fmt.Fprintln(w, "  find <substring>    Find a window by title substring")
	fmt.Fprintln(w, "  tui                 Interactive handle inspector")
	fmt.Fprintln(w, "  mcp serve           Start the MCP inspection server (stdio)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'handleprobe <command> --help' for command-specific options.")
}

// loadFormat resolves the output format from flag and config, flag winning.
func loadFormat(flagValue string) (probe.Format, error) {
	if flagValue != "" {
		return probe.ParseFormat(flagValue)
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return probe.ParseFormat(cfg.Output.Format)
}

// openBackend connects to the window system.
func openBackend() (platform.Backend, error) {
	return platform.New()
}

func runList(args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	format := fs.String("format", "", "Output format: yaml or json (default: from config)")

	if hasHelpArg(args) {
		fmt.Fprintln(os.Stdout, "Usage: handleprobe list [--format yaml|json]")
		fmt.Fprintln(os.Stdout, "")
		fmt.Fprintln(os.Stdout, "List normal application windows with their raw handles and the")
		fmt.Fprintln(os.Stdout, "display handle they belong to.")
		return 0
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	f, err := loadFormat(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	backend, err := openBackend()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer backend.Close()

	report, err := probe.Snapshot(backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := report.Render(os.Stdout, f); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runActive(args []string) int {
	fs := flag.NewFlagSet("active", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	format := fs.String("format", "", "Output format: yaml or json (default: from config)")

	if hasHelpArg(args) {
		fmt.Fprintln(os.Stdout, "Usage: handleprobe active [--format yaml|json]")
		return 0
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	f, err := loadFormat(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	backend, err := openBackend()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer backend.Close()

	window, err := backend.ActiveWindow()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	rep := probe.WindowReportOf(window)
	if err := probe.Render(os.Stdout, f, rep); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runDisplay(args []string) int {
	fs := flag.NewFlagSet("display", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	format := fs.String("format", "", "Output format: yaml or json (default: from config)")

	if hasHelpArg(args) {
		fmt.Fprintln(os.Stdout, "Usage: handleprobe display [--format yaml|json]")
		fmt.Fprintln(os.Stdout, "")
		fmt.Fprintln(os.Stdout, "Show the display/connection handle. Works without any window open.")
		return 0
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	f, err := loadFormat(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	backend, err := openBackend()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer backend.Close()

	display, err := backend.Display()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	rep := probe.DisplayReportOf(display)
	if err := probe.Render(os.Stdout, f, rep); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runFind(args []string) int {
	fs := flag.NewFlagSet("find", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	format := fs.String("format", "", "Output format: yaml or json (default: from config)")

	if hasHelpArg(args) {
		fmt.Fprintln(os.Stdout, "Usage: handleprobe find [--format yaml|json] <substring>")
		return 0
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "find takes exactly one title substring")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage: handleprobe find [--format yaml|json] <substring>")
		return 2
	}

	f, err := loadFormat(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	backend, err := openBackend()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer backend.Close()

	window, err := backend.FindWindow(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	rep := probe.WindowReportOf(window)
	if err := probe.Render(os.Stdout, f, rep); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// hasHelpArg checks for a leading help token before flag parsing.
func hasHelpArg(args []string) bool {
	return len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help")
}
