package cmd

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("get single key after set", func(t *testing.T) {
		env := newTestEnv(t)

		env.run("config", "author.name", "Test User")

		out := env.run("config", "author.name")
		env.equals(out, "Test User")
	})

	t.Run("get all shows defaults", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config")
		env.contains(out, "links.root: docs")
		env.contains(out, "links.index: index.html")
		env.contains(out, "pangu.pattern: **/*.md")
		env.contains(out, "pangu.ignore: node_modules,docs")
	})

	t.Run("json", func(t *testing.T) {
		env := newTestEnv(t)

		var all map[string]string
		require.NoError(t, json.Unmarshal([]byte(env.run("config", "-o", "json")), &all))
		assert.Equal(t, "docs", all["links.root"])
	})

	t.Run("env overrides links.root", func(t *testing.T) {
		env := newTestEnv(t)
		env.setenv("DOCSITE_LINKS_ROOT", "public")

		env.equals(env.run("config", "links.root"), "public")
	})

	t.Run("dotenv overrides links.root", func(t *testing.T) {
		env := newTestEnv(t)
		env.write(".env", "DOCSITE_LINKS_ROOT=site\n")

		env.equals(env.run("config", "links.root"), "site")
	})
}

func TestConfig_Set(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"author name", "author.name", "New Name", "New Name"},
		{"links root", "links.root", "public", "public"},
		{"links index", "links.index", "home.html", "home.html"},
		{"pangu pattern", "pangu.pattern", "content/**/*.md", "content/**/*.md"},
		{"pangu ignore", "pangu.ignore", "vendor, build", "vendor,build"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)

			out := env.run("config", tc.key, tc.value)
			env.contains(out, "(global)")

			env.equals(env.run("config", tc.key), tc.want)
			assert.FileExists(t, filepath.Join(env.home, ".docsite", "config.yaml"))
		})
	}
}

func TestConfig_Local(t *testing.T) {
	env := newTestEnv(t)

	env.run("config", "links.root", "global-out")
	out := env.run("config", "--local", "links.root", "local-out")
	env.contains(out, "(local)")

	assert.FileExists(t, filepath.Join(env.dir, ".docsite", "config.yaml"))
	env.equals(env.run("config", "links.root"), "local-out")
}

func TestConfig_Errors(t *testing.T) {
	t.Run("invalid key", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("config", "invalid.key", "value")
		assert.Error(t, err)
		env.contains(out, "unknown config key")
	})

	t.Run("invalid value", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("config", "links.index", "sub/index.html")
		assert.Error(t, err)
		env.contains(out, "invalid config value")
	})

	t.Run("malformed file blocks commands but not config", func(t *testing.T) {
		env := newTestEnv(t)
		env.write(".docsite/config.yaml", "links: [unclosed")

		out, err := env.runErr("check-links")
		assert.Error(t, err)
		env.contains(out, "malformed config file")

		// config reports the same problem
		out, err = env.runErr("config")
		assert.Error(t, err)
		env.contains(out, "malformed config file")
	})
}
