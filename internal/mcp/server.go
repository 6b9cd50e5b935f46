// Package mcp exposes the layout engine to Model Context Protocol
// clients: an agent can hand it a reaction's participants and get back
// a computed diagram layout, without shelling out to the CLI.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/reactome-tools/reaction-layout/pkg/layout"
	"github.com/reactome-tools/reaction-layout/pkg/onto"
)

// Server adapts the layout engine to MCP.
type Server struct {
	mcpServer *server.MCPServer
	dag       *onto.DAG
}

// NewServer creates an MCP server backed by dag, the ontology snapshot
// every compute_reaction_layout call resolves compartments against.
func NewServer(dag *onto.DAG) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer("reaction-layout", "1.0.0"),
		dag:       dag,
	}
	s.registerTools()
	s.registerPrompts()
	return s
}

// Serve starts the MCP server on stdio.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool(
		"compute_reaction_layout",
		mcp.WithDescription("Compute a deterministic 2D layout for a biochemical reaction, given its participants and their roles. Returns positioned entities and compartments as JSON."),
		mcp.WithString("model", mcp.Required(), mcp.Description("The reaction/participant model, JSON-encoded per the reaction-layout input schema")),
	), s.handleComputeLayout)
}

func (s *Server) registerPrompts() {
	s.mcpServer.AddPrompt(mcp.NewPrompt(
		"reaction-layout-aware",
		mcp.WithPromptDescription("Explains the reaction-layout input schema and roles"),
	), s.handleGetPrompt)
}

func (s *Server) handleComputeLayout(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := mcp.ParseString(request, "model", "")
	if raw == "" {
		return mcp.NewToolResultError("model is required"), nil
	}

	in, err := layout.ReadInput(strings.NewReader(raw))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid model: %v", err)), nil
	}

	result, err := layout.Compute(ctx, in, s.dag)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("compute failed: %v", err)), nil
	}

	var buf strings.Builder
	if err := layout.WriteLayout(result, &buf); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
	}

	return mcp.NewToolResultText(buf.String()), nil
}

func (s *Server) handleGetPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	name := request.Params.Name
	if name != "reaction-layout-aware" {
		return nil, fmt.Errorf("prompt not found: %s", name)
	}

	promptText := `You are interacting with reaction-layout, a deterministic 2D layout engine for biochemical reaction diagrams.

Concepts:
- Reaction: the central glyph every participant connects to.
- Entity: a physical participant (protein, complex, chemical, set, gene, RNA...).
- Role: INPUT, OUTPUT, CATALYST, POSITIVE_REGULATOR, or NEGATIVE_REGULATOR. An entity may carry more than one role.
- Compartment: the cellular location an entity or the reaction lives in, organized as a tree by "surrounded by" relationships.

Call compute_reaction_layout with a JSON model naming the reaction, its participants, their roles, and their compartments, to get back pixel positions for every glyph and connector.
`

	return mcp.NewGetPromptResult(
		"reaction-layout-aware",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(promptText)),
		},
	), nil
}
