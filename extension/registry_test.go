package extension

import (
	"testing"

	"github.com/jpl-au/docsite/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

// testExtension is a minimal Extension implementation for testing.
type testExtension struct {
	name string
}

func (e testExtension) Name() string               { return e.name }
func (e testExtension) Commands() []*cobra.Command { return nil }
func (e testExtension) MCPTools() []MCPTool        { return nil }

func TestRegister_PanicOnDuplicate(t *testing.T) {
	name := "test-duplicate-panic"
	Register(testExtension{name: name})

	assert.Panics(t, func() {
		Register(testExtension{name: name})
	})
}

func TestRegister_Order(t *testing.T) {
	Register(testExtension{name: "test-order-a"})
	Register(testExtension{name: "test-order-b"})

	var a, b int
	all := All()
	for i, e := range all {
		switch e.Name() {
		case "test-order-a":
			a = i
		case "test-order-b":
			b = i
		}
	}
	assert.Less(t, a, b)
	assert.Equal(t, "test-order-a", all[a].Name())
}

func TestAll_ReturnsCopy(t *testing.T) {
	Register(testExtension{name: "test-copy"})

	all := All()
	all[0] = testExtension{name: "replaced"}
	assert.NotEqual(t, "replaced", All()[0].Name())
}

func TestNewContext(t *testing.T) {
	cfg := &config.Config{}
	assert.Same(t, cfg, NewContext(cfg).Config())
}
