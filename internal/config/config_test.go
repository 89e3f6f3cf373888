package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches to a fresh directory and points HOME at another.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvLinksRoot, "")
	return dir
}

func TestDefaults(t *testing.T) {
	chdir(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeGlobal, cfg.Scope())
	assert.Equal(t, "docs", cfg.LinksRoot())
	assert.Equal(t, "index.html", cfg.LinksIndex())
	assert.Equal(t, "**/*.md", cfg.PanguPattern())
	assert.Equal(t, []string{"node_modules", "docs"}, cfg.PanguIgnore())
}

func TestLinksRoot_EnvOverride(t *testing.T) {
	chdir(t)
	cfg := &Config{Links: Links{Root: "site"}}
	assert.Equal(t, "site", cfg.LinksRoot())

	t.Setenv(EnvLinksRoot, "public")
	assert.Equal(t, "public", cfg.LinksRoot())
}

func TestLocalOverridesGlobal(t *testing.T) {
	chdir(t)

	global := &Config{}
	require.NoError(t, global.Set("links.root", "global-out"))
	require.NoError(t, global.SaveScope(ScopeGlobal))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "global-out", cfg.LinksRoot())

	local := &Config{}
	require.NoError(t, local.Set("links.root", "local-out"))
	require.NoError(t, local.SaveScope(ScopeLocal))

	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeLocal, cfg.Scope())
	assert.Equal(t, "local-out", cfg.LinksRoot())
}

func TestSetGet(t *testing.T) {
	tests := []struct {
		key   string
		value string
		want  string
	}{
		{"author.name", "Ada", "Ada"},
		{"links.root", "public", "public"},
		{"links.index", "default.html", "default.html"},
		{"pangu.pattern", "content/**/*.md", "content/**/*.md"},
		{"pangu.ignore", "vendor, build,,", "vendor,build"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			chdir(t)
			cfg := &Config{}
			assert.False(t, cfg.IsSet(tt.key))
			require.NoError(t, cfg.Set(tt.key, tt.value))
			assert.True(t, cfg.IsSet(tt.key))
			got, err := cfg.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSet_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"links.index", "sub/index.html"},
		{"pangu.pattern", "[unclosed"},
		{"pangu.ignore", "../outside"},
		{"pangu.ignore", "/abs"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := &Config{}
			err := cfg.Set(tt.key, tt.value)
			assert.ErrorIs(t, err, ErrInvalidValue)
			assert.False(t, cfg.IsSet(tt.key), "invalid value must not stick")
		})
	}
}

func TestSet_UnknownKey(t *testing.T) {
	cfg := &Config{}
	assert.ErrorIs(t, cfg.Set("sync.files", "true"), ErrUnknownKey)
	_, err := cfg.Get("nope")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestSet_EmptyIgnoreRestoresDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Set("pangu.ignore", "vendor"))
	require.NoError(t, cfg.Set("pangu.ignore", ""))
	assert.Equal(t, DefaultPanguIgnore(), cfg.PanguIgnore())
}

func TestAll(t *testing.T) {
	chdir(t)
	all := (&Config{}).All()
	assert.Len(t, all, len(ValidKeys()))
	assert.Equal(t, "node_modules,docs", all["pangu.ignore"])
}

func TestLoad_Malformed(t *testing.T) {
	chdir(t)
	require.NoError(t, os.MkdirAll(".docsite", 0o755))
	require.NoError(t, os.WriteFile(LocalPath(), []byte("links: [unclosed"), 0o644))

	_, err := Load()
	assert.ErrorContains(t, err, "malformed config file")
}

func TestLoad_InvalidValue(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".docsite"), 0o755))
	require.NoError(t, os.WriteFile(LocalPath(), []byte("links:\n  index: a/b.html\n"), 0o644))

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidValue)
}
