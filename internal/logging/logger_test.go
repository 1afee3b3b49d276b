package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDisabledLoggerIsNoop(t *testing.T) {
	l, err := New(Config{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer l.Close()

	// Must not panic or create files.
	l.Log(ActionFindWindow, map[string]interface{}{"title": "x"})
}

func TestLogWritesSortedDetails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions.log")
	l, err := New(Config{Enabled: true, Level: LevelDebug, FilePath: path, MaxSizeMB: 1, MaxFiles: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l.Log(ActionGetWindowHandle, map[string]interface{}{
		"window": 12345,
		"system": "xcb",
	})
	if err := l.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, "[GET-WINDOW-HANDLE]") {
		t.Fatalf("missing action tag: %q", line)
	}
	// Keys come out sorted: system before window.
	if strings.Index(line, "system=") > strings.Index(line, "window=") {
		t.Fatalf("details not sorted: %q", line)
	}
}

func TestRotationStartsFreshFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions.log")
	l, err := New(Config{Enabled: true, Level: LevelDebug, FilePath: path, MaxSizeMB: 1, MaxFiles: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l.Log(ActionFindWindow, map[string]interface{}{"title": "before"})

	// Push the tracked size past the 1MB threshold so the next write
	// triggers rotation.
	l.currentSize = 2 << 20
	l.Log(ActionFindWindow, map[string]interface{}{"title": "after"})
	if err := l.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	rotated, err := os.ReadFile(path + ".1")
	if err != nil {
		t.Fatalf("expected rotated file: %v", err)
	}
	if !strings.Contains(string(rotated), `title="before"`) {
		t.Fatalf("rotated file missing earlier entry: %q", string(rotated))
	}

	fresh, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read fresh log: %v", err)
	}
	if !strings.Contains(string(fresh), `title="after"`) {
		t.Fatalf("fresh file missing new entry: %q", string(fresh))
	}
}

func TestLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions.log")
	l, err := New(Config{Enabled: true, Level: LevelInfo, FilePath: path, MaxSizeMB: 1, MaxFiles: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// list_windows logs at debug and must be filtered at info level.
	l.Log(ActionListWindows, nil)
	l.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("expected empty log, got %q", string(data))
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("debug") != LevelDebug {
		t.Fatalf("debug mismatch")
	}
	if ParseLevel("WARNING") != LevelWarn {
		t.Fatalf("warning mismatch")
	}
	if ParseLevel("bogus") != LevelInfo {
		t.Fatalf("unknown level must default to info")
	}
}
