package probe

import (
	"fmt"

	"github.com/1broseidon/rawhandle"
)

// Field is one native identifier inside a handle payload, formatted for
// display.
type Field struct {
	Name string `json:"name" yaml:"name"`
	// Value is the raw numeric value in hex.
	Value string `json:"value" yaml:"value"`
	// Absent marks a sentinel value: the identifier is unavailable on this
	// platform or configuration.
	Absent bool `json:"absent,omitempty" yaml:"absent,omitempty"`
}

// HandleDesc is a serializable description of one handle union value.
type HandleDesc struct {
	System string  `json:"system" yaml:"system"`
	Fields []Field `json:"fields,omitempty" yaml:"fields,omitempty"`
	// Unsupported is set when the payload type postdates this build. The
	// union is non-exhaustive, so this is an expected outcome, not an
	// error.
	Unsupported bool `json:"unsupported,omitempty" yaml:"unsupported,omitempty"`
}

// ptrField formats a pointer-like or identifier field, marking zero as the
// absence sentinel.
func ptrField(name string, v uint64) Field {
	return Field{Name: name, Value: fmt.Sprintf("%#x", v), Absent: v == 0}
}

// numField formats a field whose zero value is meaningful (screen numbers).
func numField(name string, v int64) Field {
	return Field{Name: name, Value: fmt.Sprintf("%#x", uint64(v))}
}

// DescribeWindow flattens a window handle into a field listing. Payload
// types unknown to this build come back with Unsupported set and the tag
// preserved.
func DescribeWindow(h rawhandle.WindowHandle) HandleDesc {
	desc := HandleDesc{System: string(h.System())}

	switch p := h.(type) {
	case rawhandle.Win32WindowHandle:
		desc.Fields = []Field{
			ptrField("hwnd", uint64(p.Hwnd)),
			ptrField("hinstance", uint64(p.Hinstance)),
		}
	case rawhandle.WinRTWindowHandle:
		desc.Fields = []Field{ptrField("core_window", uint64(p.CoreWindow))}
	case rawhandle.XlibWindowHandle:
		desc.Fields = []Field{
			ptrField("window", p.Window),
			ptrField("visual_id", p.VisualID),
		}
	case rawhandle.XcbWindowHandle:
		desc.Fields = []Field{
			ptrField("window", uint64(p.Window)),
			ptrField("visual_id", uint64(p.VisualID)),
		}
	case rawhandle.WaylandWindowHandle:
		desc.Fields = []Field{ptrField("surface", uint64(p.Surface))}
	case rawhandle.DrmWindowHandle:
		desc.Fields = []Field{ptrField("plane", uint64(p.Plane))}
	case rawhandle.GbmWindowHandle:
		desc.Fields = []Field{ptrField("gbm_surface", uint64(p.Surface))}
	case rawhandle.AppKitWindowHandle:
		desc.Fields = []Field{
			ptrField("ns_view", uint64(p.NSView)),
			ptrField("ns_window", uint64(p.NSWindow)),
		}
	case rawhandle.UIKitWindowHandle:
		desc.Fields = []Field{
			ptrField("ui_view", uint64(p.UIView)),
			ptrField("ui_view_controller", uint64(p.UIViewController)),
			ptrField("ui_window", uint64(p.UIWindow)),
		}
	case rawhandle.AndroidNDKWindowHandle:
		desc.Fields = []Field{ptrField("a_native_window", uint64(p.NativeWindow))}
	case rawhandle.WebWindowHandle:
		desc.Fields = []Field{ptrField("id", uint64(p.ID))}
	case rawhandle.HaikuWindowHandle:
		desc.Fields = []Field{
			ptrField("b_window", uint64(p.BWindow)),
			ptrField("b_direct_window", uint64(p.BDirectWindow)),
		}
	case rawhandle.OrbitalWindowHandle:
		desc.Fields = []Field{ptrField("window", uint64(p.Window))}
	default:
		desc.Unsupported = true
	}

	return desc
}

// DescribeDisplay flattens a display handle into a field listing, with the
// same unknown-tag behavior as DescribeWindow.
func DescribeDisplay(h rawhandle.DisplayHandle) HandleDesc {
	desc := HandleDesc{System: string(h.System())}

	switch p := h.(type) {
	case rawhandle.WindowsDisplayHandle,
		rawhandle.AppKitDisplayHandle,
		rawhandle.UIKitDisplayHandle,
		rawhandle.AndroidDisplayHandle,
		rawhandle.WebDisplayHandle,
		rawhandle.HaikuDisplayHandle,
		rawhandle.OrbitalDisplayHandle:
		// Empty payload: the system has no separate display connection.
	case rawhandle.XlibDisplayHandle:
		desc.Fields = []Field{
			ptrField("display", uint64(p.Display)),
			numField("screen", int64(p.Screen)),
		}
	case rawhandle.XcbDisplayHandle:
		desc.Fields = []Field{
			ptrField("connection", uint64(p.Connection)),
			numField("screen", int64(p.Screen)),
		}
	case rawhandle.WaylandDisplayHandle:
		desc.Fields = []Field{ptrField("display", uint64(p.Display))}
	case rawhandle.DrmDisplayHandle:
		desc.Fields = []Field{{
			Name:   "fd",
			Value:  fmt.Sprintf("%d", p.FD),
			Absent: p.FD < 0,
		}}
	case rawhandle.GbmDisplayHandle:
		desc.Fields = []Field{ptrField("gbm_device", uint64(p.Device))}
	default:
		desc.Unsupported = true
	}

	return desc
}
