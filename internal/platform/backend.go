package platform

import "github.com/1broseidon/rawhandle"

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Window pairs a native window's raw handle with the metadata an inspector
// needs to present it. The handle names the native object; nothing here owns
// or manages it.
type Window struct {
	ID     WindowID
	PID    int
	Title  string
	Bounds Rect
	Handle rawhandle.WindowHandle
}

// Display describes the display connection the window handles belong to.
type Display struct {
	// Name is the platform's display designation (e.g. ":0" on X11),
	// empty when the platform has no such notion.
	Name   string
	Screen int32
	Handle rawhandle.DisplayHandle
}

// Backend abstracts window-system introspection across platforms. Every
// returned record carries a fresh handle snapshot; records are plain values
// with no teardown.
type Backend interface {
	// ListWindows returns the normal application windows currently known
	// to the window system, with their handles.
	ListWindows() ([]Window, error)
	// ActiveWindow returns the currently focused window.
	ActiveWindow() (Window, error)
	// FindWindow returns the first window whose title contains the
	// given substring.
	FindWindow(titleSubstring string) (Window, error)
	// Display returns the display connection record.
	Display() (Display, error)
	// Close releases the underlying connection.
	Close()
}
