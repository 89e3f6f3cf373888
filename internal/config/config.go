// Package config provides reading and writing of docsite configuration.
// Supports both global (~/.docsite/config.yaml) and local (.docsite/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// EnvLinksRoot overrides links.root when set.
const EnvLinksRoot = "DOCSITE_LINKS_ROOT"

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.docsite/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is repository-specific config in .docsite/config.yaml
	ScopeLocal
)

// Author represents the author recorded in the audit log.
type Author struct {
	Name string `yaml:"name,omitempty"`
}

// Links configures check-links.
type Links struct {
	Root  string `yaml:"root,omitempty"`
	Index string `yaml:"index,omitempty"`
}

// Pangu configures the respacer's file discovery.
type Pangu struct {
	Pattern string   `yaml:"pattern,omitempty"`
	Ignore  []string `yaml:"ignore,omitempty"`
}

// Defaults applied when not configured.
const (
	DefaultLinksRoot    = "docs"
	DefaultLinksIndex   = "index.html"
	DefaultPanguPattern = "**/*.md"
)

// DefaultPanguIgnore lists directories skipped by the respacer walk.
// node_modules holds dependencies and docs holds generated output.
func DefaultPanguIgnore() []string {
	return []string{"node_modules", "docs"}
}

// Config contains configuration for docsite.
type Config struct {
	Author Author `yaml:"author,omitempty"`
	Links  Links  `yaml:"links,omitempty"`
	Pangu  Pangu  `yaml:"pangu,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are usable.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	err := validation.Errors{
		"links.index":   validation.Validate(c.Links.Index, validation.By(fileName)),
		"pangu.pattern": validation.Validate(c.Pangu.Pattern, validation.By(globPattern)),
		"pangu.ignore":  validation.Validate(c.Pangu.Ignore, validation.Each(validation.By(relativeDir))),
	}.Filter()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return nil
}

func fileName(value any) error {
	s, _ := value.(string)
	if strings.ContainsAny(s, `/\`) {
		return validation.NewError("config.links.index", "must be a file name")
	}
	return nil
}

func globPattern(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := path.Match(strings.ReplaceAll(s, "**", "*"), ""); err != nil {
		return validation.NewError("config.pangu.pattern", err.Error())
	}
	return nil
}

func relativeDir(value any) error {
	s, _ := value.(string)
	if s == "" || path.IsAbs(s) || strings.HasPrefix(path.Clean(s), "..") {
		return validation.NewError("config.pangu.ignore", "must be a relative directory")
	}
	return nil
}

// LinksRoot returns the directory check-links scans. The environment wins
// over the file, and both fall back to "docs".
func (c *Config) LinksRoot() string {
	if v := os.Getenv(EnvLinksRoot); v != "" {
		return v
	}
	if c.Links.Root == "" {
		return DefaultLinksRoot
	}
	return c.Links.Root
}

// LinksIndex returns the document served for directory references.
func (c *Config) LinksIndex() string {
	if c.Links.Index == "" {
		return DefaultLinksIndex
	}
	return c.Links.Index
}

// PanguPattern returns the glob selecting files to respace.
func (c *Config) PanguPattern() string {
	if c.Pangu.Pattern == "" {
		return DefaultPanguPattern
	}
	return c.Pangu.Pattern
}

// PanguIgnore returns the directories skipped when walking for files.
func (c *Config) PanguIgnore() []string {
	if c.Pangu.Ignore == nil {
		return DefaultPanguIgnore()
	}
	return c.Pangu.Ignore
}

// LocalPath returns the path to the local (repository) config file.
func LocalPath() string {
	return filepath.Join(".docsite", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.docsite/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".docsite", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
