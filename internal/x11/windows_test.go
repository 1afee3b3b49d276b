package x11

import (
	"testing"

	"github.com/1broseidon/rawhandle"
)

func TestNormalWindowType(t *testing.T) {
	cases := []struct {
		name  string
		types []string
		want  bool
	}{
		{"explicit normal", []string{"_NET_WM_WINDOW_TYPE_NORMAL"}, true},
		{"no type set", nil, true},
		{"dock", []string{"_NET_WM_WINDOW_TYPE_DOCK"}, false},
		{"splash", []string{"_NET_WM_WINDOW_TYPE_SPLASH"}, false},
		{"notification", []string{"_NET_WM_WINDOW_TYPE_NOTIFICATION"}, false},
		{"desktop", []string{"_NET_WM_WINDOW_TYPE_DESKTOP"}, false},
		{"normal wins when listed first", []string{"_NET_WM_WINDOW_TYPE_NORMAL", "_NET_WM_WINDOW_TYPE_DOCK"}, true},
		{"unknown type treated as normal", []string{"_NET_WM_WINDOW_TYPE_UTILITY"}, true},
	}

	for _, tc := range cases {
		if got := normalWindowType(tc.types); got != tc.want {
			t.Fatalf("%s: normalWindowType(%v) = %v, want %v", tc.name, tc.types, got, tc.want)
		}
	}
}

func TestWindowHandleAssembly(t *testing.T) {
	w := Window{id: 12345, visual: 0x21}

	h := w.RawWindowHandle()
	got, ok := h.(rawhandle.XcbWindowHandle)
	if !ok {
		t.Fatalf("expected XcbWindowHandle, got %T", h)
	}
	if got.Window != 12345 {
		t.Fatalf("expected Window=12345, got %d", got.Window)
	}
	if got.VisualID != 0x21 {
		t.Fatalf("expected VisualID=0x21, got %#x", got.VisualID)
	}
}

func TestWindowHandleStableAcrossCalls(t *testing.T) {
	w := Window{id: 7, visual: 3}

	first := w.RawWindowHandle()
	for i := 0; i < 3; i++ {
		if got := w.RawWindowHandle(); got != first {
			t.Fatalf("call %d returned %+v, want stable %+v", i, got, first)
		}
	}
}

func TestWindowHandleSentinelVisual(t *testing.T) {
	// A window whose attributes could not be queried keeps a zero visual;
	// the window ID must still be populated.
	w := Window{id: 42}

	got := w.RawWindowHandle().(rawhandle.XcbWindowHandle)
	if got.Window != 42 || got.VisualID != 0 {
		t.Fatalf("expected {Window:42 VisualID:0}, got %+v", got)
	}
}
