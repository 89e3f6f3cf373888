package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	main, err := Get("")
	require.NoError(t, err)
	assert.Contains(t, main, "# docsite Guide")

	links, err := Get("links")
	require.NoError(t, err)
	assert.Contains(t, links, "check-links")

	_, err = Get("missing")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	topics, err := List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"config", "links", "pangu", "serve"}, topics)
}
