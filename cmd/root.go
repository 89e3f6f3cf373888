/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to isolate cobra setup from extension
// initialisation logic.
//
// Design: PersistentPreRunE loads configuration and initialises extensions
// lazily. Bootstrap commands (config, guide, version) skip this so they keep
// working when the config file is malformed; "docsite config" is how users
// repair it.

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/jpl-au/docsite/internal/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// ErrFailed signals a completed run whose result is a failure: broken links
// were found, or check mode found files that would change. The command has
// already reported the details; Execute exits 1 without printing it.
var ErrFailed = errors.New("check failed")

// Fail returns ErrFailed and stops cobra from printing usage for it.
func Fail(c *cobra.Command) error {
	c.SilenceUsage = true
	return ErrFailed
}

var rootCmd = &cobra.Command{
	Use:   "docsite",
	Short: "Link validation and CJK spacing for static documentation sites",
	Long: `Tooling for a static documentation pipeline.

  docsite check-links   # validate internal links in rendered HTML
  docsite pangu         # normalise CJK/Latin spacing in Markdown sources

Run "docsite guide" for the full guide.`,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		if author == "" {
			author = detectAuthor()
		}

		if bootstrapCommands[topLevelCmdName(cmd)] {
			return nil
		}
		if err := initExtensions(); err != nil {
			if JSON() {
				_ = PrintJSON(map[string]string{"error": err.Error()})
				cmd.SilenceUsage = true
				return ErrFailed
			}
			return fmt.Errorf("initialise extensions: %w", err)
		}
		return nil
	},
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "docsite config links.root", returns "config".
func topLevelCmdName(cmd *cobra.Command) string {
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Loads .env, opens audit logging, registers extensions and executes the
// command. Exit code 1 indicates an error or a failed check.
func Execute() {
	// .env is optional; only a present-but-unreadable file is worth a warning
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: loading .env: %v\n", err)
	}

	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer log.Close()
	if wd, err := os.Getwd(); err == nil {
		log.SetProject(wd)
	}

	registerExtensions()
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	if !errors.Is(err, ErrFailed) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	log.Close()
	os.Exit(1)
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
