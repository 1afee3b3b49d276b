package rawhandle

// DisplayHandle is a raw display handle for one particular windowing system.
//
// The display usually represents a connection to a display server rather
// than any one window; some APIs use it without ever creating a window
// (offscreen rendering, headless event handling). Windowing systems without
// a separate display concept carry empty payload structs.
//
// The union mechanics are the same as [WindowHandle]: dynamic type as tag,
// assignment in, type assertion out, structural equality (payloads stored by
// value, never by pointer), map-key safe, and non-exhaustive — every type
// switch needs a default arm. Because
// WindowHandle and DisplayHandle are distinct interface types, a window
// payload can never be extracted from a DisplayHandle (or vice versa); the
// mix-up fails to compile rather than returning garbage.
type DisplayHandle interface {
	// System reports the windowing system this payload belongs to.
	System() System

	isDisplayHandle()
}
