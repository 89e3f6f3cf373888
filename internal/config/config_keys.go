// config_keys.go provides key-value access to configuration settings.
//
// The CLI and MCP server address settings by dotted string keys
// (e.g., "links.root"); this file maps those keys onto the YAML structure.
// List values are exchanged as comma-separated strings.

package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"author.name",
		"links.root", "links.index",
		"pangu.pattern", "pangu.ignore",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the effective value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "author.name":
		return c.Author.Name, nil
	case "links.root":
		return c.LinksRoot(), nil
	case "links.index":
		return c.LinksIndex(), nil
	case "pangu.pattern":
		return c.PanguPattern(), nil
	case "pangu.ignore":
		return strings.Join(c.PanguIgnore(), ","), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key. The resulting config is
// validated; on failure the previous value is restored.
func (c *Config) Set(key, value string) error {
	prev := *c
	prev.Pangu.Ignore = slices.Clone(c.Pangu.Ignore)

	switch key {
	case "author.name":
		c.Author.Name = value
	case "links.root":
		c.Links.Root = value
	case "links.index":
		c.Links.Index = value
	case "pangu.pattern":
		c.Pangu.Pattern = value
	case "pangu.ignore":
		c.Pangu.Ignore = splitList(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	if err := c.Validate(); err != nil {
		*c = prev
		return err
	}
	return nil
}

// All returns all effective configuration values as a map.
func (c *Config) All() map[string]string {
	all := make(map[string]string, len(ValidKeys()))
	for _, k := range ValidKeys() {
		all[k], _ = c.Get(k)
	}
	return all
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "author.name":
		return c.Author.Name != ""
	case "links.root":
		return c.Links.Root != ""
	case "links.index":
		return c.Links.Index != ""
	case "pangu.pattern":
		return c.Pangu.Pattern != ""
	case "pangu.ignore":
		return c.Pangu.Ignore != nil
	default:
		return false
	}
}

// splitList parses "a, b,,c" into [a b c]. An empty string yields nil,
// which restores the defaults.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
