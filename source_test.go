package rawhandle

import "testing"

// fakeWindow is a minimal Window implementer with value receivers, standing
// in for a windowing-library type that owns a native window.
type fakeWindow struct {
	hwnd uintptr
}

func (w fakeWindow) RawWindowHandle() WindowHandle {
	return Win32WindowHandle{Hwnd: w.hwnd, Hinstance: 0x400000}
}

type fakeDisplay struct {
	screen int32
}

func (d fakeDisplay) RawDisplayHandle() DisplayHandle {
	return XcbDisplayHandle{Screen: d.screen}
}

// windowRef wraps a Window the way a consumer-side adapter might, forwarding
// the accessor unchanged.
type windowRef struct {
	inner Window
}

func (r windowRef) RawWindowHandle() WindowHandle {
	return r.inner.RawWindowHandle()
}

func TestPointerDelegationTransparency(t *testing.T) {
	w := fakeWindow{hwnd: 0xabc}

	direct := w.RawWindowHandle()

	// *T picks up the value-receiver method set, so a pointer satisfies the
	// interface and must return the identical handle.
	var viaPointer Window = &w
	if got := viaPointer.RawWindowHandle(); got != direct {
		t.Fatalf("pointer delegation changed handle: got %+v, want %+v", got, direct)
	}
}

func TestWrapperDelegationTransparency(t *testing.T) {
	w := fakeWindow{hwnd: 0xdef}

	var wrapped Window = windowRef{inner: w}
	if got, want := wrapped.RawWindowHandle(), w.RawWindowHandle(); got != want {
		t.Fatalf("wrapper delegation changed handle: got %+v, want %+v", got, want)
	}

	// Delegation composes through multiple indirection layers.
	var doubly Window = windowRef{inner: windowRef{inner: &w}}
	if got, want := doubly.RawWindowHandle(), w.RawWindowHandle(); got != want {
		t.Fatalf("double delegation changed handle: got %+v, want %+v", got, want)
	}
}

func TestAccessorStabilityAcrossCalls(t *testing.T) {
	// Absent a platform event, repeated calls must return the same value.
	d := fakeDisplay{screen: 2}

	first := d.RawDisplayHandle()
	for i := 0; i < 3; i++ {
		if got := d.RawDisplayHandle(); got != first {
			t.Fatalf("call %d returned %+v, want stable %+v", i, got, first)
		}
	}
}

var (
	_ Window  = fakeWindow{}
	_ Window  = (*fakeWindow)(nil)
	_ Display = fakeDisplay{}
	_ Display = (*fakeDisplay)(nil)
)
