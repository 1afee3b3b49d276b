package mcp

import (
	"context"
	"log"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/rawhandle/internal/config"
	"github.com/1broseidon/rawhandle/internal/logging"
	"github.com/1broseidon/rawhandle/internal/platform"
)

const (
	ServerName    = "handleprobe"
	ServerVersion = "0.1.0"
)

// Server is the MCP server exposing window-handle inspection tools.
type Server struct {
	mcpServer *mcpsdk.Server
	backend   platform.Backend
	logger    *logging.Logger
}

// NewServer creates an MCP server over the given backend.
func NewServer(cfg *config.Config, backend platform.Backend) (*Server, error) {
	var logger *logging.Logger
	if cfg.Logging.Enabled {
		filePath := cfg.Logging.File
		if filePath == "" {
			var err error
			filePath, err = config.DefaultLogPath()
			if err != nil {
				return nil, err
			}
		}
		var err error
		logger, err = logging.New(logging.Config{
			Enabled:   true,
			Level:     logging.ParseLevel(cfg.Logging.Level),
			FilePath:  filePath,
			MaxSizeMB: cfg.Logging.MaxSizeMB,
			MaxFiles:  cfg.Logging.MaxFiles,
		})
		if err != nil {
			log.Printf("Warning: failed to initialize MCP logger: %v", err)
			logger = nil
		}
	}

	s := &Server{
		backend: backend,
		logger:  logger,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s, nil
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// Close releases server resources.
func (s *Server) Close() error {
	if s == nil || s.logger == nil {
		return nil
	}
	return s.logger.Close()
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List the windows currently known to the window system, each with its raw native handle broken into fields. Handle values name live native objects; they are snapshots, not capabilities, and stay valid only while the window exists.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_window_handle",
		Description: "Get the raw native window handle for one window, selected by window_id (from list_windows) or active=true for the focused window.",
	}, s.handleGetWindowHandle)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_display_handle",
		Description: "Get the raw native display/connection handle for the window system this probe is attached to.",
	}, s.handleGetDisplayHandle)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "find_window",
		Description: "Find the first window whose title contains the given substring and return it with its raw handle.",
	}, s.handleFindWindow)
}
