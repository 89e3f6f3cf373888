// Package pangu provides CJK/Latin spacing for Markdown sources.
// Registers command: pangu. MCP tool: docsite_pangu.
package pangu

import (
	"context"
	"fmt"
	"os"

	"github.com/jpl-au/docsite/cmd"
	"github.com/jpl-au/docsite/extension"
	"github.com/jpl-au/docsite/internal/config"
	"github.com/jpl-au/docsite/internal/diff"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/jpl-au/docsite/internal/progress"
	"github.com/jpl-au/docsite/internal/respace"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the pangu extension.
type Extension struct {
	cfg *config.Config
}

// Compile-time interface compliance.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "pangu".
func (e *Extension) Name() string { return "pangu" }

// Init stores the loaded configuration for file discovery.
func (e *Extension) Init(ctx extension.Context) error {
	e.cfg = ctx.Config()
	return nil
}

// Commands returns the pangu command.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{e.newPanguCmd()}
}

// MCPTools exposes the respacer to LLM clients.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{{
		Tool: mcp.NewTool("docsite_pangu",
			mcp.WithDescription("Insert spaces between CJK and Latin text in Markdown prose. Code, URLs and front matter are never touched."),
			mcp.WithArray("files", mcp.WithStringItems(), mcp.Description("Files to format (default: every file matching pangu.pattern)")),
			mcp.WithBoolean("check", mcp.Description("Report files that would change without writing them")),
			mcp.WithBoolean("diff", mcp.Description("Include a line diff for each changed file")),
		),
		Handler: panguTool,
	}}
}

func (e *Extension) newPanguCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "pangu [files...]",
		Short: "Normalise CJK/Latin spacing in Markdown",
		Long: `Inserts spaces between CJK and Latin text in Markdown prose.

Only plain text is rewritten. Inline code, fenced code, link URLs, HTML and
YAML front matter are left byte-for-byte intact. A document whose front
matter sets "pangu: false" is skipped.

  docsite pangu                  # every file matching pangu.pattern
  docsite pangu README.md        # explicit files
  docsite pangu --check          # CI: exit 1 if anything would change
  docsite pangu --check --diff   # and show what would change

Without files, walks the current directory for pangu.pattern (default
**/*.md), skipping .git and the pangu.ignore directories.`,
		RunE: e.runPangu,
	}
	c.Flags().Bool(extension.FlagCheck, false, "Report files that would change without writing")
	c.Flags().Bool(extension.FlagDiff, false, "Show a diff for each changed file")
	return c
}

// summary is the JSON shape of a run.
type summary struct {
	Check   bool             `json:"check"`
	Files   int              `json:"files"`
	Changed int              `json:"changed"`
	Results []respace.Result `json:"results"`
}

func (e *Extension) runPangu(c *cobra.Command, args []string) error {
	check, _ := c.Flags().GetBool(extension.FlagCheck)
	showDiff, _ := c.Flags().GetBool(extension.FlagDiff)

	files, err := respace.Files(args, ".", e.cfg.PanguPattern(), e.cfg.PanguIgnore())
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	var prog *progress.Progress
	if !cmd.JSON() {
		prog = progress.New("Formatting...", len(files))
	}
	colour := term.IsTerminal(int(os.Stdout.Fd()))

	sum, err := run(files, respace.Options{Check: check, Diff: showDiff}, func(r respace.Result) {
		if prog != nil {
			prog.Increment()
			prog.Print()
		}
		if !r.Changed || cmd.JSON() {
			return
		}
		if prog != nil {
			prog.Done()
		}
		fmt.Fprintln(cmd.Out(), r.Summary(check))
		if r.Diff != "" {
			d := r.Diff
			if colour {
				d = diff.Colourise(d)
			}
			fmt.Fprint(cmd.Out(), d)
		}
	})
	if prog != nil {
		prog.Done()
	}

	action := "format"
	if check {
		action = "check"
	}
	log.Event("pangu:pangu", action).
		Author(cmd.Author()).
		Count(sum.Changed).
		Detail("files", sum.Files).
		Write(err)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if err := cmd.PrintJSON(sum); err != nil {
		return err
	}
	if check && sum.Changed > 0 {
		return cmd.Fail(c)
	}
	return nil
}

// run processes files in order and stops at the first I/O error. Each
// result is passed to each before the next file is read.
func run(files []string, opts respace.Options, each func(respace.Result)) (summary, error) {
	sum := summary{Check: opts.Check, Files: len(files), Results: []respace.Result{}}
	for _, f := range files {
		res, err := respace.Process(f, opts)
		if err != nil {
			return sum, err
		}
		if res.Changed {
			sum.Changed++
			sum.Results = append(sum.Results, res)
		}
		if each != nil {
			each(res)
		}
	}
	return sum, nil
}

// panguTool handles docsite_pangu tool calls.
func panguTool(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := extCtx.Config()
	opts := respace.Options{
		Check: req.GetBool("check", false),
		Diff:  req.GetBool("diff", false),
	}

	files, err := respace.Files(req.GetStringSlice("files", nil), ".", cfg.PanguPattern(), cfg.PanguIgnore())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	sum, err := run(files, opts, nil)
	log.Event("mcp:docsite_pangu", "format").
		Author("mcp").
		Count(sum.Changed).
		Detail("check", opts.Check).
		Detail("files", sum.Files).
		Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return extension.JSONResult(sum)
}
