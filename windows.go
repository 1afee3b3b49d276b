package rawhandle

// Win32WindowHandle is a raw window handle for Win32.
//
// Availability: commonly seen on Windows systems.
type Win32WindowHandle struct {
	// Hwnd is the HWND of the window.
	Hwnd uintptr
	// Hinstance is the HINSTANCE of the module that created the window.
	Hinstance uintptr
}

func (Win32WindowHandle) System() System  { return SystemWin32 }
func (Win32WindowHandle) isWindowHandle() {}

// WinRTWindowHandle is a raw window handle for WinRT.
//
// Availability: commonly seen on Windows systems.
type WinRTWindowHandle struct {
	// CoreWindow is a pointer to an ICoreWindow object.
	CoreWindow uintptr
}

func (WinRTWindowHandle) System() System  { return SystemWinRT }
func (WinRTWindowHandle) isWindowHandle() {}

// WindowsDisplayHandle is a raw display handle for Windows.
//
// Win32 and WinRT have no separate display connection, so the payload is
// empty.
//
// Availability: commonly seen on Windows systems.
type WindowsDisplayHandle struct{}

func (WindowsDisplayHandle) System() System   { return SystemWindows }
func (WindowsDisplayHandle) isDisplayHandle() {}
