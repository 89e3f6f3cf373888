// ids.go holds the per-run cache of anchor identifiers.
//
// A document can be the target of many references, so its id set is
// extracted once and reused. The cache belongs to a single Run; nothing is
// shared between runs. It grows instead of evicting, so no document is
// parsed twice however many targets sit outside the root.

package linkcheck

import (
	"fmt"
	"os"
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"
)

var idPattern = regexp.MustCompile(`\bid="([^"]+)"`)

// IDSet is the set of identifiers declared in one document.
type IDSet map[string]struct{}

// Has reports whether id is declared.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// ParseIDs extracts every id="..." value from raw markup.
func ParseIDs(content []byte) IDSet {
	ids := make(IDSet)
	for _, m := range idPattern.FindAllSubmatch(content, -1) {
		ids[string(m[1])] = struct{}{}
	}
	return ids
}

// IDCache maps resolved document paths to their id sets.
type IDCache struct {
	cache *lru.Cache[string, IDSet]
	size  int
}

// NewIDCache creates a cache with room for size documents. Capacity
// doubles when it fills up.
func NewIDCache(size int) (*IDCache, error) {
	if size < 1 {
		size = 1
	}
	c, err := lru.New[string, IDSet](size)
	if err != nil {
		return nil, fmt.Errorf("creating id cache: %w", err)
	}
	return &IDCache{cache: c, size: size}, nil
}

// Get returns the id set for path, reading the file on first access.
func (c *IDCache) Get(path string) (IDSet, error) {
	if ids, ok := c.cache.Get(path); ok {
		return ids, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return c.put(path, content), nil
}

// From returns the id set for path, parsing content if the path has not
// been seen yet. Callers use it when they already hold the file's bytes.
func (c *IDCache) From(path string, content []byte) IDSet {
	if ids, ok := c.cache.Get(path); ok {
		return ids
	}
	return c.put(path, content)
}

func (c *IDCache) put(path string, content []byte) IDSet {
	ids := ParseIDs(content)
	if c.cache.Len() >= c.size {
		c.size *= 2
		c.cache.Resize(c.size)
	}
	c.cache.Add(path, ids)
	return ids
}
