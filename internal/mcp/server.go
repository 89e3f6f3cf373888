// Package mcp implements the Model Context Protocol server, exposing docsite
// operations to LLMs. Assistants can validate a site's links, respace
// Markdown sources and read the guides through a standardised protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/docsite/extension"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio.
// Uses stdio transport for compatibility with Claude Desktop and other MCP clients.
func Serve(extCtx extension.Context) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := NewServer(extCtx)

	slog.Info("docsite MCP server ready", "version", Version, "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// NewServer builds the MCP server with every built-in and extension tool
// registered.
func NewServer(extCtx extension.Context) *server.MCPServer {
	h := &handlers{ext: extCtx}

	s := server.NewMCPServer(
		"docsite",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s, h)
	registerTools(s, h)
	registerExtensionTools(s, extCtx, extension.All())
	return s
}

// handlers provides MCP request handlers with access to the shared context.
type handlers struct {
	ext extension.Context
}

// registerResources exposes the guides as readable resources.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			guideURIPrefix+"{topic}",
			"Guide",
			mcp.WithTemplateDescription("Read an embedded docsite guide by topic"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		h.readGuide,
	)
}

// registerTools exposes the built-in docsite tools.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("docsite_guide",
			mcp.WithDescription("Get help/guide content for docsite commands"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g., 'links', 'pangu') or empty for the main guide")),
		),
		h.getGuide,
	)

	s.AddTool(
		mcp.NewTool("docsite_config_get",
			mcp.WithDescription("Get a configuration value"),
			mcp.WithString("key", mcp.Description("Config key (links.root, links.index, pangu.pattern, pangu.ignore, author.name) or empty for all")),
		),
		h.configGet,
	)

	s.AddTool(
		mcp.NewTool("docsite_config_set",
			mcp.WithDescription("Set a configuration value"),
			mcp.WithString("key", mcp.Required(), mcp.Description("Config key (links.root, links.index, pangu.pattern, pangu.ignore, author.name)")),
			mcp.WithString("value", mcp.Required(), mcp.Description("Value to set; lists are comma-separated")),
		),
		h.configSet,
	)
}

// registerExtensionTools adds the tools each extension declares, binding
// the shared context into every handler.
func registerExtensionTools(s *server.MCPServer, extCtx extension.Context, exts []extension.Extension) {
	for _, ext := range exts {
		for _, t := range ext.MCPTools() {
			handler := t.Handler
			s.AddTool(t.Tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handler(ctx, extCtx, req)
			})
		}
	}
}
