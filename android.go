package rawhandle

// AndroidNDKWindowHandle is a raw window handle for Android NDK.
//
// Availability: commonly seen on Android systems.
type AndroidNDKWindowHandle struct {
	// NativeWindow is a pointer to an ANativeWindow.
	NativeWindow uintptr
}

func (AndroidNDKWindowHandle) System() System  { return SystemAndroid }
func (AndroidNDKWindowHandle) isWindowHandle() {}

// AndroidDisplayHandle is a raw display handle for Android. Android has no
// separate display connection, so the payload is empty.
type AndroidDisplayHandle struct{}

func (AndroidDisplayHandle) System() System   { return SystemAndroid }
func (AndroidDisplayHandle) isDisplayHandle() {}
