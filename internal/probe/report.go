package probe

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/rawhandle"
	"github.com/1broseidon/rawhandle/internal/platform"
)

// Format selects a report serialization.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name from a flag or config value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q (want yaml or json)", s)
	}
}

// BoundsReport is window geometry in screen coordinates.
type BoundsReport struct {
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// WindowReport describes one window and its raw handle.
type WindowReport struct {
	ID     uint32        `json:"id" yaml:"id"`
	Title  string        `json:"title,omitempty" yaml:"title,omitempty"`
	PID    int           `json:"pid,omitempty" yaml:"pid,omitempty"`
	Bounds *BoundsReport `json:"bounds,omitempty" yaml:"bounds,omitempty"`
	Handle HandleDesc    `json:"handle" yaml:"handle"`
}

// DisplayReport describes the display connection.
type DisplayReport struct {
	Name   string     `json:"name,omitempty" yaml:"name,omitempty"`
	Screen int32      `json:"screen" yaml:"screen"`
	Handle HandleDesc `json:"handle" yaml:"handle"`
}

// Report is the full inspection snapshot.
type Report struct {
	Display *DisplayReport `json:"display,omitempty" yaml:"display,omitempty"`
	Windows []WindowReport `json:"windows" yaml:"windows"`
}

// WindowReportOf converts a backend window record into its report form.
func WindowReportOf(w platform.Window) WindowReport {
	rep := WindowReport{
		ID:     uint32(w.ID),
		Title:  w.Title,
		PID:    w.PID,
		Handle: DescribeWindow(w.Handle),
	}
	if w.Bounds != (platform.Rect{}) {
		rep.Bounds = &BoundsReport{
			X:      w.Bounds.X,
			Y:      w.Bounds.Y,
			Width:  w.Bounds.Width,
			Height: w.Bounds.Height,
		}
	}
	return rep
}

// DisplayReportOf converts a backend display record into its report form.
func DisplayReportOf(d platform.Display) DisplayReport {
	return DisplayReport{
		Name:   d.Name,
		Screen: d.Screen,
		Handle: DescribeDisplay(d.Handle),
	}
}

// Snapshot collects a full report from the backend: the display record plus
// every listed window, deduplicated by handle value.
func Snapshot(b platform.Backend) (*Report, error) {
	windows, err := b.ListWindows()
	if err != nil {
		return nil, fmt.Errorf("failed to list windows: %w", err)
	}

	rep := &Report{Windows: make([]WindowReport, 0, len(windows))}
	for _, w := range DedupWindows(windows) {
		rep.Windows = append(rep.Windows, WindowReportOf(w))
	}

	if display, err := b.Display(); err == nil {
		dr := DisplayReportOf(display)
		rep.Display = &dr
	}

	return rep, nil
}

// DedupWindows drops windows whose handle value has already been seen,
// preserving first-seen order. Handle equality is structural over tag and
// payload, so two records are duplicates exactly when they name the same
// native object the same way.
func DedupWindows(windows []platform.Window) []platform.Window {
	seen := make(map[rawhandle.WindowHandle]struct{}, len(windows))
	out := make([]platform.Window, 0, len(windows))
	for _, w := range windows {
		if _, ok := seen[w.Handle]; ok {
			continue
		}
		seen[w.Handle] = struct{}{}
		out = append(out, w)
	}
	return out
}

// Render serializes the report in the requested format.
func (r *Report) Render(w io.Writer, format Format) error {
	return Render(w, format, r)
}

// Render serializes any report value in the requested format.
func Render(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		// Close flushes the encoder; its error is the write error.
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(v); err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
