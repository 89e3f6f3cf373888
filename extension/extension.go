// Package extension provides the plugin architecture for docsite. Extensions
// encapsulate related functionality (commands, MCP tools) and register at
// init time, so a new tool is added without touching the CLI root or the
// MCP server.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for docsite extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions receive the shared Context before their first
// command runs.
type Initializable interface {
	Extension
	Init(ctx Context) error
}
