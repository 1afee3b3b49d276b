package x11

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/rawhandle"
)

// Window references one X11 window on an open connection and implements
// rawhandle.Window for it.
//
// The visual ID is resolved once, when the Window is created, so repeated
// RawWindowHandle calls return identical values for the lifetime of the
// value. A recreated native window needs a new Window.
type Window struct {
	id     xproto.Window
	visual uint32
}

var _ rawhandle.Window = Window{}

// Window builds a handle source for an X11 window, deriving the visual ID
// from the window attributes when the server can supply it. A window that
// has already been destroyed yields a source with the visual left zero.
func (c *Connection) Window(id xproto.Window) Window {
	w := Window{id: id}
	if attrs, err := xproto.GetWindowAttributes(c.XUtil.Conn(), id).Reply(); err == nil {
		w.visual = uint32(attrs.Visual)
	}
	return w
}

// ID returns the X11 window ID.
func (w Window) ID() xproto.Window {
	return w.id
}

// RawWindowHandle returns the XCB window handle for this window.
func (w Window) RawWindowHandle() rawhandle.WindowHandle {
	return rawhandle.XcbWindowHandle{
		Window:   uint32(w.id),
		VisualID: w.visual,
	}
}
