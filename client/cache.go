package client

import (
	"sort"
	"strings"
	"sync"
)

// queryCache is the in-memory store behind the read methods. Keys combine
// the endpoint path with the serialized parameters so distinct filter
// combinations never collide. It is derived state only: mutations invalidate
// entries, they never patch them.
type queryCache struct {
	mu      sync.RWMutex
	entries map[string]interface{}
}

func newQueryCache() *queryCache {
	return &queryCache{entries: make(map[string]interface{})}
}

// cacheKey serializes params in sorted order so the key is stable regardless
// of map iteration.
func cacheKey(path string, params map[string]string) string {
	if len(params) == 0 {
		return path
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(path)
	for _, k := range keys {
		b.WriteByte('?')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	return b.String()
}

func (c *queryCache) get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *queryCache) set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// invalidatePrefix drops every entry whose key starts with prefix. Used after
// mutations to flush all cached variants of the article list.
func (c *queryCache) invalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}
