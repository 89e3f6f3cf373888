// Package all imports all core docsite extensions.
// Import this package to register all built-in commands.
package all

import (
	// Core extensions - each registers itself via init()
	_ "github.com/jpl-au/docsite/extension/core"
	_ "github.com/jpl-au/docsite/extension/links"
	_ "github.com/jpl-au/docsite/extension/pangu"
)
