// Package rawhandle defines a platform-agnostic interchange format for native
// window and display handles.
//
// A windowing library implements [Window] and/or [Display]; a graphics or
// interop library consumes the [WindowHandle] and [DisplayHandle] values they
// return and opens a surface against the native object those values name.
// Neither side needs to know the other's concrete types, only this package.
//
// This package performs no window creation, rendering, or resource
// management, and it never validates handle values at runtime. Validity is a
// caller-enforced precondition: any non-zero field in a returned payload must
// name a currently valid native object, and it is up to the implementer to
// uphold that. Zero fields are sentinels meaning "unavailable here".
package rawhandle

// System identifies the windowing system a handle payload belongs to.
//
// The set of systems grows over time. Code switching on a System (or
// type-switching on a handle union) must keep a default arm for values added
// in later releases; see [WindowHandle].
type System string

const (
	SystemWin32   System = "win32"
	SystemWinRT   System = "winrt"
	SystemWindows System = "windows"
	SystemXlib    System = "xlib"
	SystemXcb     System = "xcb"
	SystemWayland System = "wayland"
	SystemDrm     System = "drm"
	SystemGbm     System = "gbm"
	SystemAppKit  System = "appkit"
	SystemUIKit   System = "uikit"
	SystemAndroid System = "android"
	SystemWeb     System = "web"
	SystemHaiku   System = "haiku"
	SystemOrbital System = "orbital"
)

// Window is implemented by types that own or reference a native window.
//
// RawWindowHandle is a pure snapshot accessor: no side effects, no error
// return. It cannot fail in-process; if no valid handle can be produced the
// implementer should not exist in the first place.
//
// Implementers must make a best-effort attempt to fill in every payload field
// they can derive, even indirectly, from whatever accessors the platform
// exposes. A zero field should mean the value is genuinely unavailable on
// this platform or configuration, not that nobody bothered.
//
// The value returned by repeated calls on the same logical window must denote
// the same native object for as long as no platform-specific event (such as
// surface recreation) indicates otherwise. Callers may cache the value across
// calls under that condition; this package does not detect or signal such
// events.
//
// Implementations should use value receivers so that both T and *T satisfy
// the interface with identical results.
type Window interface {
	RawWindowHandle() WindowHandle
}

// Display is implemented by types that own or reference a native display or
// display-server connection.
//
// A display is not tied to any particular window: a program may hold a
// display handle with zero windows (headless rendering) or share one
// connection across many windows. The accessor contract is otherwise
// identical to [Window]: pure snapshot, no failure mode, best-effort field
// population, stable between calls absent a platform event.
type Display interface {
	RawDisplayHandle() DisplayHandle
}
