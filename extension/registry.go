// registry.go holds the process-wide list of extensions. Each extension
// package registers itself from init(), so the list is complete before
// cmd wires commands or the MCP server wires tools.

package extension

import "sync"

var (
	mu         sync.RWMutex
	extensions []Extension
	names      = make(map[string]struct{})
)

// Register adds e to the registry. It panics when the name is taken:
// registration runs from init(), so a clash is a build mistake, not a
// runtime condition.
func Register(e Extension) {
	mu.Lock()
	defer mu.Unlock()

	name := e.Name()
	if _, taken := names[name]; taken {
		panic("extension already registered: " + name)
	}
	names[name] = struct{}{}
	extensions = append(extensions, e)
}

// All returns the registered extensions in registration order, which is
// the order their commands appear in help output.
func All() []Extension {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Extension, len(extensions))
	copy(out, extensions)
	return out
}
