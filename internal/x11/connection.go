package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"

	"github.com/1broseidon/rawhandle"
)

// Connection manages the X11 connection and implements rawhandle.Display
// for it.
type Connection struct {
	XUtil  *xgbutil.XUtil
	Root   xproto.Window
	screen int32
}

var _ rawhandle.Display = (*Connection)(nil)

// NewConnection establishes a connection to the X11 server.
func NewConnection() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}

	return &Connection{
		XUtil:  xu,
		Root:   xu.RootWin(),
		screen: int32(xu.Conn().DefaultScreen),
	}, nil
}

// RawDisplayHandle returns the display handle for this connection.
//
// xgb speaks the X wire protocol directly, so there is no xcb_connection_t
// to point at and the Connection field stays zero. The screen number is the
// derivable part and is always populated.
func (c *Connection) RawDisplayHandle() rawhandle.DisplayHandle {
	return rawhandle.XcbDisplayHandle{Screen: c.screen}
}

// Screen returns the default screen number.
func (c *Connection) Screen() int32 {
	return c.screen
}

// Close cleanly disconnects from the X11 server.
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
