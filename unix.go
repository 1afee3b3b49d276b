package rawhandle

// XlibWindowHandle is a raw window handle for Xlib.
//
// Availability: commonly seen on Linux and the BSDs, but also anywhere an X
// compatibility layer such as XQuartz or WSLg is running.
type XlibWindowHandle struct {
	// Window is an Xlib Window.
	Window uint64
	// VisualID is an Xlib VisualID, or zero if unknown.
	VisualID uint64
}

func (XlibWindowHandle) System() System  { return SystemXlib }
func (XlibWindowHandle) isWindowHandle() {}

// XlibDisplayHandle is a raw display handle for Xlib.
type XlibDisplayHandle struct {
	// Display is a pointer to an Xlib Display.
	Display uintptr
	// Screen is an X11 screen number. Zero is a valid screen, not a
	// sentinel: a handle with Display unset is what signals absence.
	Screen int32
}

func (XlibDisplayHandle) System() System   { return SystemXlib }
func (XlibDisplayHandle) isDisplayHandle() {}

// XcbWindowHandle is a raw window handle for XCB.
//
// Availability: as for [XlibWindowHandle].
type XcbWindowHandle struct {
	// Window is an XCB xcb_window_t.
	Window uint32
	// VisualID is an XCB xcb_visualid_t, or zero if unknown.
	VisualID uint32
}

func (XcbWindowHandle) System() System  { return SystemXcb }
func (XcbWindowHandle) isWindowHandle() {}

// XcbDisplayHandle is a raw display handle for XCB.
type XcbDisplayHandle struct {
	// Connection is a pointer to an xcb_connection_t, or zero when the
	// implementation speaks the X protocol without libxcb (pure wire
	// clients have no C connection object to point at).
	Connection uintptr
	// Screen is an X11 screen number. See [XlibDisplayHandle.Screen].
	Screen int32
}

func (XcbDisplayHandle) System() System   { return SystemXcb }
func (XcbDisplayHandle) isDisplayHandle() {}

// WaylandWindowHandle is a raw window handle for Wayland.
//
// Availability: commonly seen on Linux systems running a Wayland compositor.
type WaylandWindowHandle struct {
	// Surface is a pointer to a wl_surface.
	Surface uintptr
}

func (WaylandWindowHandle) System() System  { return SystemWayland }
func (WaylandWindowHandle) isWindowHandle() {}

// WaylandDisplayHandle is a raw display handle for Wayland.
type WaylandDisplayHandle struct {
	// Display is a pointer to a wl_display.
	Display uintptr
}

func (WaylandDisplayHandle) System() System   { return SystemWayland }
func (WaylandDisplayHandle) isDisplayHandle() {}

// DrmWindowHandle is a raw window handle for the Linux Direct Rendering
// Manager, for programs rendering to a plane without a windowing system.
type DrmWindowHandle struct {
	// Plane is a DRM plane object ID.
	Plane uint32
}

func (DrmWindowHandle) System() System  { return SystemDrm }
func (DrmWindowHandle) isWindowHandle() {}

// DrmDisplayHandle is a raw display handle for the Linux Direct Rendering
// Manager.
type DrmDisplayHandle struct {
	// FD is the DRM device file descriptor, or -1 if unavailable. The
	// sentinel here is -1 rather than zero because zero is a valid
	// descriptor.
	FD int32
}

func (DrmDisplayHandle) System() System   { return SystemDrm }
func (DrmDisplayHandle) isDisplayHandle() {}

// GbmWindowHandle is a raw window handle for the Generic Buffer Manager,
// typically paired with DRM on Linux systems without a compositor.
type GbmWindowHandle struct {
	// Surface is a pointer to a gbm_surface.
	Surface uintptr
}

func (GbmWindowHandle) System() System  { return SystemGbm }
func (GbmWindowHandle) isWindowHandle() {}

// GbmDisplayHandle is a raw display handle for the Generic Buffer Manager.
type GbmDisplayHandle struct {
	// Device is a pointer to a gbm_device.
	Device uintptr
}

func (GbmDisplayHandle) System() System   { return SystemGbm }
func (GbmDisplayHandle) isDisplayHandle() {}
