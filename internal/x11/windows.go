package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// ActiveWindow returns the currently focused window per _NET_ACTIVE_WINDOW.
func (c *Connection) ActiveWindow() (xproto.Window, error) {
	win, err := ewmh.ActiveWindowGet(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("failed to get active window: %w", err)
	}
	if win == 0 {
		return 0, fmt.Errorf("no active window")
	}
	return win, nil
}

// ClientList returns the window manager's top-level client list.
func (c *Connection) ClientList() ([]xproto.Window, error) {
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to get client list: %w", err)
	}
	return clients, nil
}

// WindowTitle returns the window title, preferring _NET_WM_NAME and falling
// back to the ICCCM WM_NAME property.
func (c *Connection) WindowTitle(win xproto.Window) string {
	if name, err := ewmh.WmNameGet(c.XUtil, win); err == nil && name != "" {
		return name
	}
	if name, err := icccm.WmNameGet(c.XUtil, win); err == nil {
		return name
	}
	return ""
}

// WindowPID returns the process ID advertised via _NET_WM_PID, or 0 when the
// window does not expose one.
func (c *Connection) WindowPID(win xproto.Window) int {
	pid, err := ewmh.WmPidGet(c.XUtil, win)
	if err != nil {
		return 0
	}
	return int(pid)
}

// WindowGeometry returns the window's geometry in root coordinates.
func (c *Connection) WindowGeometry(win xproto.Window) (x, y, width, height int, err error) {
	rect, err := xwindow.New(c.XUtil, win).DecorGeometry()
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to get window geometry: %w", err)
	}
	return rect.X(), rect.Y(), rect.Width(), rect.Height(), nil
}

// IsNormalWindow checks if a window is a normal application window.
func (c *Connection) IsNormalWindow(win xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, win)
	if err != nil {
		// If we can't determine type, assume it's normal
		return true
	}
	return normalWindowType(types)
}

// normalWindowType reports whether a _NET_WM_WINDOW_TYPE value list names a
// normal application window. Desktop furniture (docks, splashes,
// notifications) is rejected; an empty list counts as normal.
func normalWindowType(types []string) bool {
	for _, t := range types {
		switch t {
		case "_NET_WM_WINDOW_TYPE_NORMAL":
			return true
		case "_NET_WM_WINDOW_TYPE_DESKTOP",
			"_NET_WM_WINDOW_TYPE_DOCK",
			"_NET_WM_WINDOW_TYPE_SPLASH",
			"_NET_WM_WINDOW_TYPE_NOTIFICATION":
			return false
		}
	}
	return true
}

// FindWindowByTitle searches the client list for a window whose title
// contains the given substring. Returns the first match.
func (c *Connection) FindWindowByTitle(substring string) (xproto.Window, error) {
	if substring == "" {
		return 0, fmt.Errorf("empty title substring")
	}

	clients, err := c.ClientList()
	if err != nil {
		return 0, err
	}
	for _, win := range clients {
		if strings.Contains(c.WindowTitle(win), substring) {
			return win, nil
		}
	}
	return 0, fmt.Errorf("no window found with title containing %q", substring)
}
