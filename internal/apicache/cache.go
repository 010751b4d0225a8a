// Package apicache remembers which management API path last worked for a
// given device family, so repeat scans skip straight to the right path
// instead of walking the full trial order.
package apicache

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
)

// Cache is a flat JSON file mapping "manufacturer/model" to the last API
// path that returned usable data. It is purely an optimization: a missing,
// unreadable, or corrupt file just means the default trial order applies.
type Cache struct {
	path   string
	logger *zap.Logger

	mu      sync.Mutex
	entries map[string]string
}

// Open loads the cache at path. Load failures are logged and swallowed; the
// returned cache is always usable. An empty path yields an in-memory cache
// that never persists.
func Open(path string, logger *zap.Logger) *Cache {
	c := &Cache{
		path:    path,
		logger:  logger,
		entries: make(map[string]string),
	}

	if path == "" {
		return c
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("api cache unreadable, starting empty",
				zap.String("path", path), zap.Error(err))
		}
		return c
	}

	if err := json.Unmarshal(data, &c.entries); err != nil {
		logger.Warn("api cache corrupt, starting empty",
			zap.String("path", path), zap.Error(err))
		c.entries = make(map[string]string)
	}

	return c
}

func key(manufacturer, model string) string {
	return fmt.Sprintf("%s/%s", manufacturer, model)
}

// Lookup returns the cached API path for a manufacturer/model pair.
func (c *Cache) Lookup(manufacturer, model string) (string, bool) {
	if manufacturer == "" || model == "" {
		return "", false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	path, ok := c.entries[key(manufacturer, model)]
	return path, ok
}

// Record stores the API path that worked for a manufacturer/model pair and
// persists the cache best-effort.
func (c *Cache) Record(manufacturer, model, apiPath string) {
	if manufacturer == "" || model == "" || apiPath == "" {
		return
	}

	c.mu.Lock()
	c.entries[key(manufacturer, model)] = apiPath
	data, err := json.MarshalIndent(c.entries, "", "  ")
	c.mu.Unlock()

	if err != nil || c.path == "" {
		return
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		c.logger.Debug("api cache write failed",
			zap.String("path", c.path), zap.Error(err))
	}
}

// Reorder returns the trial order with the cached path for the given device
// family moved to the front. Without a cache hit the default order is
// returned unchanged.
func (c *Cache) Reorder(manufacturer, model string, defaults []string) []string {
	cached, ok := c.Lookup(manufacturer, model)
	if !ok {
		return defaults
	}

	ordered := make([]string, 0, len(defaults)+1)
	ordered = append(ordered, cached)
	for _, p := range defaults {
		if p != cached {
			ordered = append(ordered, p)
		}
	}
	return ordered
}
