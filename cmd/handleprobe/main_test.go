package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintMainUsageListsAllCommands(t *testing.T) {
	var buf bytes.Buffer
	printMainUsage(&buf)

	out := buf.String()
	for _, cmd := range []string{"list", "active", "display", "find", "tui", "mcp serve"} {
		if !strings.Contains(out, cmd) {
			t.Fatalf("usage missing command %q:\n%s", cmd, out)
		}
	}
}

func TestHasHelpArg(t *testing.T) {
	if !hasHelpArg([]string{"--help"}) || !hasHelpArg([]string{"-h"}) || !hasHelpArg([]string{"help"}) {
		t.Fatalf("help tokens must be recognized")
	}
	if hasHelpArg(nil) || hasHelpArg([]string{"--format", "json"}) {
		t.Fatalf("non-help args must not be recognized as help")
	}
}
