// Package core provides the core extension for docsite.
// It registers commands: config, serve, guide, version.
package core

import (
	"github.com/jpl-au/docsite/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var _ extension.Extension = (*Extension)(nil)

// Name returns "core" - this extension provides the supporting commands.
func (e *Extension) Name() string { return "core" }

// Commands returns the configuration, documentation and server commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newServeCmd(),
		newGuideCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil - the guide and config tools are registered by the
// MCP server itself.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}
