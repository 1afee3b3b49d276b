package rawhandle

// OrbitalWindowHandle is a raw window handle for Orbital.
//
// Availability: commonly seen on Redox OS systems.
type OrbitalWindowHandle struct {
	// Window is an Orbital window identifier.
	Window uintptr
}

func (OrbitalWindowHandle) System() System  { return SystemOrbital }
func (OrbitalWindowHandle) isWindowHandle() {}

// OrbitalDisplayHandle is a raw display handle for Orbital. Orbital has no
// separate display connection, so the payload is empty.
type OrbitalDisplayHandle struct{}

func (OrbitalDisplayHandle) System() System   { return SystemOrbital }
func (OrbitalDisplayHandle) isDisplayHandle() {}
