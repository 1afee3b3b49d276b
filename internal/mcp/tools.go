package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/rawhandle/internal/logging"
	"github.com/1broseidon/rawhandle/internal/probe"
)

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	windows, err := s.backend.ListWindows()
	if err != nil {
		return nil, ListWindowsOutput{}, fmt.Errorf("failed to list windows: %w", err)
	}

	out := ListWindowsOutput{Windows: make([]probe.WindowReport, 0, len(windows))}
	for _, w := range probe.DedupWindows(windows) {
		if args.TitleContains != "" && !strings.Contains(w.Title, args.TitleContains) {
			continue
		}
		out.Windows = append(out.Windows, probe.WindowReportOf(w))
	}

	if s.logger != nil {
		s.logger.Log(logging.ActionListWindows, map[string]interface{}{
			"window_count": len(out.Windows),
			"filtered":     args.TitleContains != "",
		})
	}

	return nil, out, nil
}

func (s *Server) handleGetWindowHandle(_ context.Context, _ *mcpsdk.CallToolRequest, args GetWindowHandleInput) (*mcpsdk.CallToolResult, GetWindowHandleOutput, error) {
	if !args.Active && args.WindowID == 0 {
		return nil, GetWindowHandleOutput{}, fmt.Errorf("either window_id or active must be set")
	}

	if args.Active {
		w, err := s.backend.ActiveWindow()
		if err != nil {
			return nil, GetWindowHandleOutput{}, fmt.Errorf("failed to get active window: %w", err)
		}
		s.logWindowHandle(w.Title, uint32(w.ID))
		return nil, GetWindowHandleOutput{Window: probe.WindowReportOf(w)}, nil
	}

	windows, err := s.backend.ListWindows()
	if err != nil {
		return nil, GetWindowHandleOutput{}, fmt.Errorf("failed to list windows: %w", err)
	}
	for _, w := range windows {
		if uint32(w.ID) == args.WindowID {
			s.logWindowHandle(w.Title, uint32(w.ID))
			return nil, GetWindowHandleOutput{Window: probe.WindowReportOf(w)}, nil
		}
	}

	return nil, GetWindowHandleOutput{}, fmt.Errorf("no window with id %d", args.WindowID)
}

func (s *Server) logWindowHandle(title string, id uint32) {
	if s.logger == nil {
		return
	}
	s.logger.Log(logging.ActionGetWindowHandle, map[string]interface{}{
		"window": id,
		"title":  title,
	})
}

func (s *Server) handleGetDisplayHandle(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetDisplayHandleInput) (*mcpsdk.CallToolResult, GetDisplayHandleOutput, error) {
	display, err := s.backend.Display()
	if err != nil {
		return nil, GetDisplayHandleOutput{}, fmt.Errorf("failed to get display: %w", err)
	}

	if s.logger != nil {
		s.logger.Log(logging.ActionGetDisplayHandle, map[string]interface{}{
			"screen": display.Screen,
		})
	}

	return nil, GetDisplayHandleOutput{Display: probe.DisplayReportOf(display)}, nil
}

func (s *Server) handleFindWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args FindWindowInput) (*mcpsdk.CallToolResult, FindWindowOutput, error) {
	if args.TitleContains == "" {
		return nil, FindWindowOutput{}, fmt.Errorf("title_contains must not be empty")
	}

	w, err := s.backend.FindWindow(args.TitleContains)
	if err != nil {
		return nil, FindWindowOutput{}, fmt.Errorf("failed to find window: %w", err)
	}

	if s.logger != nil {
		s.logger.Log(logging.ActionFindWindow, map[string]interface{}{
			"title_contains": args.TitleContains,
			"window":         uint32(w.ID),
		})
	}

	return nil, FindWindowOutput{Window: probe.WindowReportOf(w)}, nil
}
