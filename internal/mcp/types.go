package mcp

import "github.com/1broseidon/rawhandle/internal/probe"

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct {
	TitleContains string `json:"title_contains,omitempty" jsonschema:"Only include windows whose title contains this substring"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []probe.WindowReport `json:"windows"`
}

// GetWindowHandleInput is the input for the get_window_handle tool. Exactly
// one of window_id or active selects the window; active wins when both are
// set.
type GetWindowHandleInput struct {
	WindowID uint32 `json:"window_id,omitempty" jsonschema:"Window identifier as reported by list_windows"`
	Active   bool   `json:"active,omitempty" jsonschema:"Inspect the currently focused window instead of a specific ID"`
}

// GetWindowHandleOutput is the output for the get_window_handle tool.
type GetWindowHandleOutput struct {
	Window probe.WindowReport `json:"window"`
}

// GetDisplayHandleInput is the input for the get_display_handle tool.
type GetDisplayHandleInput struct{}

// GetDisplayHandleOutput is the output for the get_display_handle tool.
type GetDisplayHandleOutput struct {
	Display probe.DisplayReport `json:"display"`
}

// FindWindowInput is the input for the find_window tool.
type FindWindowInput struct {
	TitleContains string `json:"title_contains" jsonschema:"required,Title substring to search for"`
}

// FindWindowOutput is the output for the find_window tool.
type FindWindowOutput struct {
	Window probe.WindowReport `json:"window"`
}
