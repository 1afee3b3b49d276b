package rawhandle

// AppKitWindowHandle is a raw window handle for AppKit.
//
// Availability: commonly seen on macOS systems.
type AppKitWindowHandle struct {
	// NSView is a pointer to the content NSView.
	NSView uintptr
	// NSWindow is a pointer to the NSWindow, or zero if only the view is
	// available (for example inside a hosted view hierarchy).
	NSWindow uintptr
}

func (AppKitWindowHandle) System() System  { return SystemAppKit }
func (AppKitWindowHandle) isWindowHandle() {}

// AppKitDisplayHandle is a raw display handle for AppKit. AppKit has no
// separate display connection, so the payload is empty.
type AppKitDisplayHandle struct{}

func (AppKitDisplayHandle) System() System   { return SystemAppKit }
func (AppKitDisplayHandle) isDisplayHandle() {}
