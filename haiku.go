package rawhandle

// HaikuWindowHandle is a raw window handle for Haiku.
//
// Availability: commonly seen on Haiku systems.
type HaikuWindowHandle struct {
	// BWindow is a pointer to a BWindow object.
	BWindow uintptr
	// BDirectWindow is a pointer to a BDirectWindow object, or zero if the
	// window is not a direct window.
	BDirectWindow uintptr
}

func (HaikuWindowHandle) System() System  { return SystemHaiku }
func (HaikuWindowHandle) isWindowHandle() {}

// HaikuDisplayHandle is a raw display handle for Haiku. Haiku has no
// separate display connection, so the payload is empty.
type HaikuDisplayHandle struct{}

func (HaikuDisplayHandle) System() System   { return SystemHaiku }
func (HaikuDisplayHandle) isDisplayHandle() {}
