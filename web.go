package rawhandle

// WebWindowHandle is a raw window handle for the web.
//
// Availability: commonly seen in browser environments (wasm targets).
type WebWindowHandle struct {
	// ID is the unpadded value of the `data-raw-handle` attribute on the
	// canvas element this handle names. Zero means no canvas has been
	// registered.
	ID uint32
}

func (WebWindowHandle) System() System  { return SystemWeb }
func (WebWindowHandle) isWindowHandle() {}

// WebDisplayHandle is a raw display handle for the web. Browsers have no
// display connection, so the payload is empty.
type WebDisplayHandle struct{}

func (WebDisplayHandle) System() System   { return SystemWeb }
func (WebDisplayHandle) isDisplayHandle() {}
