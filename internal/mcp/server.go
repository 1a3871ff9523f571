// Package mcp exposes the placement engine and snap-area model as MCP
// tools over stdio.
package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/snaprect/internal/calc"
	"github.com/1broseidon/snaprect/internal/snapareas"
)

const (
	ServerName    = "snaprect"
	ServerVersion = "0.1.0"
)

// Server is the MCP server over the placement engine.
type Server struct {
	mcpServer *mcpsdk.Server
	engine    *calc.Engine
	model     *snapareas.Model
	settings  calc.CalculationSettings
}

// NewServer builds an MCP server over an engine, a snap-area model, and
// the calculation settings every placement request uses.
func NewServer(engine *calc.Engine, model *snapareas.Model, settings calc.CalculationSettings) *Server {
	s := &Server{
		engine:   engine,
		model:    model,
		settings: settings,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "calculate_placement",
		Description: "Calculate the target rectangle for a window action given the window's current rectangle and the visible screen frame. Pass last_action from the previous result to cycle sizes on repeated actions.",
	}, s.handleCalculatePlacement)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "resolve_snap_area",
		Description: "Resolve which action or compound area a screen edge/corner zone triggers, merging saved overrides with the built-in defaults.",
	}, s.handleResolveSnapArea)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_snap_area",
		Description: "Configure a screen zone to trigger a single action or a compound area, or clear its override to revert to the built-in default. Persists immediately.",
	}, s.handleSetSnapArea)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_snap_areas",
		Description: "List all eight zones and their current configuration for one orientation.",
	}, s.handleListSnapAreas)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "migrate_legacy_settings",
		Description: "Fold legacy settings (sixths toggle, ignored-zones bitmask) into the per-zone snap area tables. Runs at most once; reports whether it acted.",
	}, s.handleMigrate)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_actions",
		Description: "List every window action the placement engine knows.",
	}, s.handleListActions)
}
