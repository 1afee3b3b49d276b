//go:build linux

package platform

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/rawhandle/internal/x11"
)

// LinuxBackend wraps an X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn *x11.Connection
}

var _ Backend = (*LinuxBackend)(nil)

// New opens a fresh X11 connection and returns a backend over it.
func New() (*LinuxBackend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{conn: conn}, nil
}

// NewFromConnection wraps an existing X11 connection.
func NewFromConnection(conn *x11.Connection) *LinuxBackend {
	return &LinuxBackend{conn: conn}
}

// Close disconnects from the X11 server.
func (b *LinuxBackend) Close() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// ListWindows returns the normal application windows in the client list.
func (b *LinuxBackend) ListWindows() ([]Window, error) {
	clients, err := b.conn.ClientList()
	if err != nil {
		return nil, err
	}

	windows := make([]Window, 0, len(clients))
	for _, win := range clients {
		if !b.conn.IsNormalWindow(win) {
			continue
		}
		windows = append(windows, b.windowInfo(win))
	}

	sort.Slice(windows, func(i, j int) bool {
		return windows[i].ID < windows[j].ID
	})

	return windows, nil
}

// ActiveWindow returns the currently focused window.
func (b *LinuxBackend) ActiveWindow() (Window, error) {
	win, err := b.conn.ActiveWindow()
	if err != nil {
		return Window{}, err
	}
	return b.windowInfo(win), nil
}

// FindWindow returns the first window whose title contains the substring.
func (b *LinuxBackend) FindWindow(titleSubstring string) (Window, error) {
	win, err := b.conn.FindWindowByTitle(titleSubstring)
	if err != nil {
		return Window{}, err
	}
	return b.windowInfo(win), nil
}

// Display returns the X11 display record.
func (b *LinuxBackend) Display() (Display, error) {
	return Display{
		Name:   os.Getenv("DISPLAY"),
		Screen: b.conn.Screen(),
		Handle: b.conn.RawDisplayHandle(),
	}, nil
}

// windowInfo assembles a Window record, filling every field the server can
// supply and leaving the rest at their zero values.
func (b *LinuxBackend) windowInfo(win xproto.Window) Window {
	info := Window{
		ID:     WindowID(win),
		PID:    b.conn.WindowPID(win),
		Title:  b.conn.WindowTitle(win),
		Handle: b.conn.Window(win).RawWindowHandle(),
	}
	if x, y, w, h, err := b.conn.WindowGeometry(win); err == nil {
		info.Bounds = Rect{X: x, Y: y, Width: w, Height: h}
	}
	return info
}
