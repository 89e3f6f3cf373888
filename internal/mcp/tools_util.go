// tools_util.go provides helpers shared by the built-in MCP tools.

package mcp

import (
	"github.com/jpl-au/docsite/extension"
	"github.com/mark3labs/mcp-go/mcp"
)

// jsonResult serialises any value as pretty-printed JSON and wraps it in an
// MCP text result, the same shape extension tools return.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	return extension.JSONResult(v)
}
