package probe

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/rawhandle"
	"github.com/1broseidon/rawhandle/internal/platform"
)

// fakeBackend serves canned records, standing in for a live window system.
type fakeBackend struct {
	windows []platform.Window
	display platform.Display
}

func (f *fakeBackend) ListWindows() ([]platform.Window, error) { return f.windows, nil }

func (f *fakeBackend) ActiveWindow() (platform.Window, error) { return f.windows[0], nil }

func (f *fakeBackend) FindWindow(s string) (platform.Window, error) { return f.windows[0], nil }

func (f *fakeBackend) Display() (platform.Display, error) { return f.display, nil }

func (f *fakeBackend) Close() {}

var _ platform.Backend = (*fakeBackend)(nil)

func testBackend() *fakeBackend {
	return &fakeBackend{
		windows: []platform.Window{
			{
				ID:     0x1400003,
				PID:    4242,
				Title:  "editor",
				Bounds: platform.Rect{X: 10, Y: 20, Width: 800, Height: 600},
				Handle: rawhandle.XcbWindowHandle{Window: 0x1400003, VisualID: 0x21},
			},
			{
				ID:     0x1600001,
				Title:  "terminal",
				Handle: rawhandle.XcbWindowHandle{Window: 0x1600001},
			},
		},
		display: platform.Display{
			Name:   ":0",
			Screen: 0,
			Handle: rawhandle.XcbDisplayHandle{Screen: 0},
		},
	}
}

func TestDescribeWindowFields(t *testing.T) {
	desc := DescribeWindow(rawhandle.Win32WindowHandle{Hwnd: 0xabc})

	if desc.System != "win32" {
		t.Fatalf("expected system win32, got %q", desc.System)
	}
	if desc.Unsupported {
		t.Fatalf("win32 must not be unsupported")
	}
	if len(desc.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(desc.Fields))
	}
	if desc.Fields[0].Name != "hwnd" || desc.Fields[0].Value != "0xabc" || desc.Fields[0].Absent {
		t.Fatalf("unexpected hwnd field: %+v", desc.Fields[0])
	}
	// Zero hinstance is the absence sentinel.
	if desc.Fields[1].Name != "hinstance" || !desc.Fields[1].Absent {
		t.Fatalf("expected absent hinstance, got %+v", desc.Fields[1])
	}
}

func TestDescribeDisplayScreenZeroNotAbsent(t *testing.T) {
	desc := DescribeDisplay(rawhandle.XcbDisplayHandle{Screen: 0})

	var screen *Field
	for i := range desc.Fields {
		if desc.Fields[i].Name == "screen" {
			screen = &desc.Fields[i]
		}
	}
	if screen == nil {
		t.Fatalf("missing screen field in %+v", desc)
	}
	// Screen zero is a real screen, not a sentinel.
	if screen.Absent {
		t.Fatalf("screen 0 must not be marked absent")
	}
}

func TestDescribeDisplayDrmSentinel(t *testing.T) {
	absent := DescribeDisplay(rawhandle.DrmDisplayHandle{FD: -1})
	if !absent.Fields[0].Absent {
		t.Fatalf("fd -1 must be marked absent")
	}

	// Descriptor zero is valid for DRM.
	present := DescribeDisplay(rawhandle.DrmDisplayHandle{FD: 0})
	if present.Fields[0].Absent {
		t.Fatalf("fd 0 must not be marked absent")
	}
}

func TestDescribeDisplayEmptyPayload(t *testing.T) {
	desc := DescribeDisplay(rawhandle.AppKitDisplayHandle{})

	if desc.System != "appkit" {
		t.Fatalf("expected system appkit, got %q", desc.System)
	}
	if len(desc.Fields) != 0 || desc.Unsupported {
		t.Fatalf("empty payload must describe with no fields: %+v", desc)
	}
}

func TestDedupWindows(t *testing.T) {
	h := rawhandle.WindowHandle(rawhandle.XcbWindowHandle{Window: 5})
	windows := []platform.Window{
		{ID: 5, Title: "first", Handle: h},
		{ID: 5, Title: "second pass", Handle: h},
		{ID: 6, Handle: rawhandle.XcbWindowHandle{Window: 6}},
	}

	out := DedupWindows(windows)
	if len(out) != 2 {
		t.Fatalf("expected 2 windows after dedup, got %d", len(out))
	}
	if out[0].Title != "first" {
		t.Fatalf("dedup must keep the first occurrence, got %q", out[0].Title)
	}
}

func TestSnapshotRenderYAML(t *testing.T) {
	rep, err := Snapshot(testBackend())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rep.Windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(rep.Windows))
	}
	if rep.Display == nil || rep.Display.Name != ":0" {
		t.Fatalf("expected display :0, got %+v", rep.Display)
	}

	var buf bytes.Buffer
	if err := rep.Render(&buf, FormatYAML); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	var decoded Report
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("rendered yaml does not parse: %v", err)
	}
	if decoded.Windows[0].Handle.System != "xcb" {
		t.Fatalf("expected xcb handle, got %q", decoded.Windows[0].Handle.System)
	}
	if !strings.Contains(buf.String(), "0x1400003") {
		t.Fatalf("expected window id in output:\n%s", buf.String())
	}
}

func TestSnapshotRenderJSON(t *testing.T) {
	rep, err := Snapshot(testBackend())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := rep.Render(&buf, FormatJSON); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("rendered json does not parse: %v", err)
	}
	if decoded.Windows[1].Bounds != nil {
		t.Fatalf("zero bounds must be omitted, got %+v", decoded.Windows[1].Bounds)
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("write failed") }

func TestRenderSurfacesWriterError(t *testing.T) {
	rep, err := Snapshot(testBackend())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := rep.Render(failWriter{}, FormatYAML); err == nil {
		t.Fatalf("yaml render to a failing writer must report the error")
	}
	if err := rep.Render(failWriter{}, FormatJSON); err == nil {
		t.Fatalf("json render to a failing writer must report the error")
	}
}

func TestParseFormat(t *testing.T) {
	if _, err := ParseFormat("yaml"); err != nil {
		t.Fatalf("yaml must parse: %v", err)
	}
	if _, err := ParseFormat("json"); err != nil {
		t.Fatalf("json must parse: %v", err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
