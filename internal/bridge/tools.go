// Package bridge exposes every API endpoint as an MCP tool so an external
// agent host can call the directory.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"

	"sports-health-centers-api/internal/client"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	ServerName    = "Sports Centers"
	ServerVersion = "1.0.0"
)

// NewServer builds an MCP server with one tool per endpoint.
func NewServer(api *client.Client) *server.MCPServer {
	s := server.NewMCPServer(ServerName, ServerVersion, server.WithToolCapabilities(false))
	s.AddTools(Tools(api)...)
	return s
}

// Tools returns the tool definitions bound to api.
func Tools(api *client.Client) []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("search_centers",
				mcp.WithDescription("Search sports and health centers by keyword (name, description, or discipline)."),
				mcp.WithString("query", mcp.Required(), mcp.Description("Keyword, at least 2 characters")),
			),
			Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				q, err := req.RequireString("query")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return result(api.Search(ctx, q))
			},
		},
		{
			Tool: mcp.NewTool("get_all_centers",
				mcp.WithDescription("Get all sports and health centers with optional pagination."),
				mcp.WithNumber("limit", mcp.DefaultNumber(100), mcp.Description("Page size, 1 to 500")),
				mcp.WithNumber("offset", mcp.DefaultNumber(0), mcp.Description("Records to skip")),
			),
			Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return result(api.Centers(ctx, req.GetInt("limit", 100), req.GetInt("offset", 0)))
			},
		},
		{
			Tool: mcp.NewTool("get_center_by_id",
				mcp.WithDescription("Get details of a specific center by its ID."),
				mcp.WithString("center_id", mcp.Required(), mcp.Description("Center id")),
			),
			Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				id, err := req.RequireString("center_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return result(api.Center(ctx, id))
			},
		},
		{
			Tool: mcp.NewTool("find_by_discipline",
				mcp.WithDescription("Find centers offering a specific sport/discipline (e.g., Tennis, Basket, Natation, Karaté)."),
				mcp.WithString("discipline", mcp.Required(), mcp.Description("Discipline name")),
			),
			Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				name, err := req.RequireString("discipline")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return result(api.ByDiscipline(ctx, name))
			},
		},
		{
			Tool: mcp.NewTool("find_by_pathology",
				mcp.WithDescription("Find centers that handle a specific health condition (e.g., Cancer, diabète, cardiovasculaires)."),
				mcp.WithString("pathology", mcp.Required(), mcp.Description("Pathology name")),
			),
			Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				name, err := req.RequireString("pathology")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return result(api.ByPathology(ctx, name))
			},
		},
		{
			Tool: mcp.NewTool("find_nearby",
				mcp.WithDescription("Find centers within a given radius of a location. Returns results sorted by distance."),
				mcp.WithNumber("lat", mcp.Required(), mcp.Description("Latitude in decimal degrees")),
				mcp.WithNumber("lng", mcp.Required(), mcp.Description("Longitude in decimal degrees")),
				mcp.WithNumber("radius_km", mcp.DefaultNumber(50), mcp.Description("Search radius in kilometers, 1 to 500")),
			),
			Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				lat, err := req.RequireFloat("lat")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				lng, err := req.RequireFloat("lng")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return result(api.Nearby(ctx, lat, lng, req.GetFloat("radius_km", 50)))
			},
		},
		{
			Tool: mcp.NewTool("list_disciplines",
				mcp.WithDescription("List all available sports/disciplines across all centers."),
			),
			Handler: func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return result(api.Disciplines(ctx))
			},
		},
		{
			Tool: mcp.NewTool("list_pathologies",
				mcp.WithDescription("List all health conditions/pathologies handled by centers."),
			),
			Handler: func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return result(api.Pathologies(ctx))
			},
		},
	}
}

// result renders v as indented JSON with non-ASCII kept literal. API
// failures become tool errors so the host can show them.
func result(v any, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return mcp.NewToolResultError("encode result: " + err.Error()), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}
