// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Tessera dashboard tools for LLM integration via stdio
// transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tesseralabs/tessera/internal/dashservice"
	"github.com/tesseralabs/tessera/internal/ordering"
)

// Server wraps the MCP server with Tessera tools.
type Server struct {
	mcp *server.MCPServer
	svc *dashservice.Service
}

// New creates a new MCP server with all Tessera tools registered.
func New(svc *dashservice.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Tessera",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_cards",
		mcp.WithDescription("List all dashboard cards with their links, in display order."),
	), s.listCards)

	s.mcp.AddTool(mcp.NewTool("add_card",
		mcp.WithDescription("Create a new card at the end of the dashboard."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Card title")),
		mcp.WithString("color", mcp.Description("Tailwind color token (e.g. emerald-500); defaults to blue-500")),
	), s.addCard)

	s.mcp.AddTool(mcp.NewTool("add_link",
		mcp.WithDescription("Append a link to an existing card."),
		mcp.WithString("cardId", mcp.Required(), mcp.Description("ID of the card to add the link to")),
		mcp.WithString("title", mcp.Required(), mcp.Description("Link title")),
		mcp.WithString("url", mcp.Required(), mcp.Description("Link URL")),
		mcp.WithString("icon", mcp.Description("Lucide icon name; defaults to link")),
		mcp.WithString("color", mcp.Description("Tailwind color token; defaults to blue-500")),
	), s.addLink)

	s.mcp.AddTool(mcp.NewTool("move_link",
		mcp.WithDescription("Move a link from one card to a different card at the given position. "+
			"Same-card moves are rejected; use reorder_cards semantics via the HTTP API for those."),
		mcp.WithString("linkId", mcp.Required(), mcp.Description("ID of the link to move")),
		mcp.WithString("fromCardId", mcp.Required(), mcp.Description("ID of the card currently holding the link")),
		mcp.WithString("toCardId", mcp.Required(), mcp.Description("ID of the destination card")),
		mcp.WithNumber("index", mcp.Description("Insertion index in the destination card (clamped; defaults to 0)")),
	), s.moveLink)

	s.mcp.AddTool(mcp.NewTool("reorder_cards",
		mcp.WithDescription("Reorder dashboard cards. Cards omitted from the list keep their "+
			"relative order after the listed ones."),
		mcp.WithArray("order", mcp.Required(), mcp.Description("Card IDs in the desired display order")),
	), s.reorderCards)

	s.mcp.AddTool(mcp.NewTool("export_dashboard",
		mcp.WithDescription("Export the full dashboard (cards, links, settings) as a JSON backup payload."),
	), s.exportDashboard)

	s.mcp.AddTool(mcp.NewTool("get_dashboard_contract",
		mcp.WithDescription("Returns the canonical Tessera dashboard document contract. "+
			"Call this before constructing import payloads to ensure correct structure."),
	), s.getDashboardContract)

	// Resource: dashboard format contract.
	s.mcp.AddResource(
		mcp.NewResource("tessera://dashboard-format", "Dashboard Format Contract",
			mcp.WithResourceDescription("Canonical dashboard document format that all payloads must follow."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readDashboardFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listCards(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := s.svc.Dashboard(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(state.Document.Cards, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) addCard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	color, _ := req.GetArguments()["color"].(string)

	card, err := s.svc.AddCard(ctx, ordering.CardTemplate{Title: title, Color: color}, "")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("created card %s at position %d", card.ID, card.Order)), nil
}

func (s *Server) addLink(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cardID, err := req.RequireString("cardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	url, err := req.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := req.GetArguments()
	icon, _ := args["icon"].(string)
	color, _ := args["color"].(string)
	tmpl := ordering.LinkTemplate{
		Title: title,
		URL:   url,
		Icon:  icon,
		Color: color,
	}
	link, err := s.svc.AddLink(ctx, cardID, tmpl, "")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("card not found: %s", cardID)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("created link %s in card %s", link.ID, cardID)), nil
}

func (s *Server) moveLink(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	linkID, err := req.RequireString("linkId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	fromCardID, err := req.RequireString("fromCardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	toCardID, err := req.RequireString("toCardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	index := 0
	if n, ok := req.GetArguments()["index"].(float64); ok {
		index = int(n)
	}

	if err := s.svc.MoveLink(ctx, linkID, fromCardID, toCardID, index, ""); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("moved link %s to card %s", linkID, toCardID)), nil
}

func (s *Server) reorderCards(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, ok := req.GetArguments()["order"].([]any)
	if !ok || len(raw) == 0 {
		return mcp.NewToolResultError("order must be a non-empty list of card IDs"), nil
	}
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		id, ok := v.(string)
		if !ok {
			return mcp.NewToolResultError("order entries must be strings"), nil
		}
		ids = append(ids, id)
	}

	state, err := s.svc.ReorderCards(ctx, ids, "")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var order []string
	for _, c := range state.Document.Cards {
		order = append(order, c.ID)
	}
	return mcp.NewToolResultText("new order: " + strings.Join(order, ", ")), nil
}

func (s *Server) exportDashboard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := s.svc.Export(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) getDashboardContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(DashboardFormatContract), nil
}

func (s *Server) readDashboardFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "tessera://dashboard-format",
			MIMEType: "text/markdown",
			Text:     DashboardFormatContract,
		},
	}, nil
}
