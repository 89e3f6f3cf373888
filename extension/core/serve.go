// serve.go implements the "docsite serve" command for MCP server operation.
//
// Unlike other commands that run and exit, serve blocks handling MCP
// requests over stdio until the client disconnects.

package core

import (
	"github.com/jpl-au/docsite/cmd"
	"github.com/jpl-au/docsite/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Tools:
  docsite_check_links   validate internal links
  docsite_pangu         normalise CJK/Latin spacing
  docsite_guide         read the embedded guides
  docsite_config_get    read configuration
  docsite_config_set    change configuration`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	return mcp.Serve(cmd.Context())
}
