package rawhandle

// UIKitWindowHandle is a raw window handle for UIKit.
//
// Availability: commonly seen on iOS, iPadOS, and tvOS systems.
type UIKitWindowHandle struct {
	// UIView is a pointer to the content UIView.
	UIView uintptr
	// UIViewController is a pointer to the owning UIViewController, or
	// zero if unavailable.
	UIViewController uintptr
	// UIWindow is a pointer to the UIWindow, or zero if unavailable.
	UIWindow uintptr
}

func (UIKitWindowHandle) System() System  { return SystemUIKit }
func (UIKitWindowHandle) isWindowHandle() {}

// UIKitDisplayHandle is a raw display handle for UIKit. UIKit has no
// separate display connection, so the payload is empty.
type UIKitDisplayHandle struct{}

func (UIKitDisplayHandle) System() System   { return SystemUIKit }
func (UIKitDisplayHandle) isDisplayHandle() {}
