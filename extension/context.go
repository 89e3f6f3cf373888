// context.go defines the Context interface for extension access to shared
// state.
//
// Design: Context uses an interface so tests can supply their own
// configuration. Extensions receive it during Init(), not at construction,
// because they register before configuration is loaded.

package extension

import (
	"github.com/jpl-au/docsite/internal/config"
)

// Context provides extensions controlled access to shared state.
type Context interface {
	// Config returns user configuration: link root, index document,
	// respacer pattern and ignores.
	Config() *config.Config
}

// extContext implements Context.
type extContext struct {
	cfg *config.Config
}

// NewContext creates a new extension context.
func NewContext(cfg *config.Config) Context {
	return &extContext{cfg: cfg}
}

// Config returns the loaded user configuration.
func (c *extContext) Config() *config.Config {
	return c.cfg
}
