// Package links provides the internal link validator for rendered sites.
// Registers command: check-links. MCP tool: docsite_check_links.
package links

import (
	"context"
	"fmt"

	"github.com/jpl-au/docsite/cmd"
	"github.com/jpl-au/docsite/extension"
	"github.com/jpl-au/docsite/internal/config"
	"github.com/jpl-au/docsite/internal/linkcheck"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/jpl-au/docsite/internal/progress"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the links extension.
type Extension struct {
	cfg *config.Config
}

// Compile-time interface compliance.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "links".
func (e *Extension) Name() string { return "links" }

// Init stores the loaded configuration for root and index defaults.
func (e *Extension) Init(ctx extension.Context) error {
	e.cfg = ctx.Config()
	return nil
}

// Commands returns the check-links command.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{e.newCheckLinksCmd()}
}

// MCPTools exposes link validation to LLM clients.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{{
		Tool: mcp.NewTool("docsite_check_links",
			mcp.WithDescription("Validate internal href/src links and #anchors across the rendered HTML site. Returns every broken reference."),
			mcp.WithString("root", mcp.Description("Site directory to scan (default: links.root config, usually 'docs')")),
			mcp.WithString("index", mcp.Description("Document served for directory links (default: index.html)")),
		),
		Handler: checkLinksTool,
	}}
}

func (e *Extension) newCheckLinksCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "check-links [root]",
		Short: "Validate internal links in rendered HTML",
		Long: `Scans every .html file under root and checks each href and src.

Local paths must exist; a trailing directory resolves to its index document.
Fragments must match an id in the same document (#id) or in the target HTML
document (page.html#id). External, mailto:, data: and {{templated}} references
are skipped.

  docsite check-links            # root from config (default: docs)
  docsite check-links public     # explicit root
  docsite check-links -o json    # machine-readable result

Exits 1 when any link is broken.`,
		Args: cobra.MaximumNArgs(1),
		RunE: e.runCheckLinks,
	}
	c.Flags().String(extension.FlagIndex, "", "Document served for directory links (default: links.index config)")
	return c
}

func (e *Extension) runCheckLinks(c *cobra.Command, args []string) error {
	root := e.cfg.LinksRoot()
	if len(args) > 0 {
		root = args[0]
	}
	index, _ := c.Flags().GetString(extension.FlagIndex)
	if index == "" {
		index = e.cfg.LinksIndex()
	}

	opts := []linkcheck.Option{linkcheck.WithIndex(index)}
	if !cmd.JSON() {
		opts = append(opts, linkcheck.WithProgress(func(total int) linkcheck.Reporter {
			return progress.New("Checking...", total)
		}))
	}

	res, err := check(root, opts...)
	log.Event("links:check-links", "check").
		Author(cmd.Author()).
		Path(root).
		Count(len(res.Findings)).
		Detail("documents", res.Documents).
		Detail("references", res.References).
		Write(err)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if cmd.JSON() {
		if err := cmd.PrintJSON(res); err != nil {
			return err
		}
		if !res.OK() {
			return cmd.Fail(c)
		}
		return nil
	}

	if !res.OK() {
		w := cmd.ErrOut()
		fmt.Fprintf(w, "\n  Broken links (%d):\n", len(res.Findings))
		for _, f := range res.Findings {
			fmt.Fprintf(w, "    %s\n", f)
		}
		fmt.Fprintln(w)
		return cmd.Fail(c)
	}
	fmt.Fprintln(cmd.Out(), "All internal links OK")
	return nil
}

// check runs one validation over root.
func check(root string, opts ...linkcheck.Option) (linkcheck.Result, error) {
	v, err := linkcheck.New(root, opts...)
	if err != nil {
		return linkcheck.Result{}, err
	}
	res, err := v.Run()
	if res.Findings == nil {
		res.Findings = []linkcheck.Finding{}
	}
	return res, err
}

// checkLinksTool handles docsite_check_links tool calls.
func checkLinksTool(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := extCtx.Config()
	root := req.GetString("root", cfg.LinksRoot())
	index := req.GetString("index", cfg.LinksIndex())

	res, err := check(root, linkcheck.WithIndex(index))
	log.Event("mcp:docsite_check_links", "check").
		Author("mcp").
		Path(root).
		Count(len(res.Findings)).
		Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return extension.JSONResult(res)
}
