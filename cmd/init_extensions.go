/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Design: Extensions register during init() but aren't initialised until
// first command execution. This two-phase pattern lets every command be
// declared up front while configuration is only loaded for commands that
// use it. The config is loaded once and shared via the Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/docsite/extension"
	"github.com/jpl-au/docsite/internal/config"
)

// bootstrapCommands skip configuration loading and extension init.
var bootstrapCommands = map[string]bool{
	"config":     true,
	"guide":      true,
	"version":    true,
	"help":       true,
	"completion": true,
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions loads configuration and injects it into extensions.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		extContext = extension.NewContext(cfg)

		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

// Context returns the shared extension context. It is nil until a
// non-bootstrap command has started.
func Context() extension.Context {
	return extContext
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}
	})
}
