package mcpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"meta-ads/internal/core/port"
)

const (
	serverName    = "meta-ads"
	serverVersion = "0.1.0"
)

// Server is the inbound MCP adapter. It registers the five campaign
// tools against a CampaignPlanner and serves them over stdio or the
// streamable HTTP transport.
type Server struct {
	server *mcp.Server
	logger *slog.Logger
}

// NewServer creates the MCP server with all tools registered.
func NewServer(planner port.CampaignPlanner, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	mcp.AddTool(s, CreateCampaignTool(), CreateCampaignHandler(planner))
	mcp.AddTool(s, GetCampaignStatusTool(), GetCampaignStatusHandler(planner))
	mcp.AddTool(s, PauseCampaignTool(), PauseCampaignHandler(planner))
	mcp.AddTool(s, ActivateCampaignTool(), ActivateCampaignHandler(planner))
	mcp.AddTool(s, DeleteCampaignTool(), DeleteCampaignHandler(planner))

	return &Server{server: s, logger: logger}
}

// RunStdio serves the MCP protocol on stdin/stdout and blocks until
// the client disconnects or the context is cancelled.
func (s *Server) RunStdio(ctx context.Context) error {
	s.logger.Info("mcp server listening on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Run serves the MCP protocol on a custom transport. Used by tests.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.server.Run(ctx, transport)
}

// Router returns the HTTP handler for the streamable HTTP transport:
// the MCP endpoint at /mcp plus a liveness probe.
func (s *Server) Router() http.Handler {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/mcp", handler)
	return r
}
