package app

import "github.com/rizface/dnet/internal/models"

// DetailCache stores inspected networks keyed by network ID.
// Entries live until the next list refresh, which invalidates everything.
// It is not safe for concurrent use; access is confined to the Bubble Tea update loop.
type DetailCache struct {
	entries map[string]*models.NetworkDetail
}

// NewDetailCache creates an empty cache.
func NewDetailCache() *DetailCache {
	return &DetailCache{entries: make(map[string]*models.NetworkDetail)}
}

// Get returns the cached detail for the given ID, or nil and false on miss.
func (c *DetailCache) Get(id string) (*models.NetworkDetail, bool) {
	d, ok := c.entries[id]
	return d, ok
}

// Set stores a detail entry in the cache, replacing any existing entry.
func (c *DetailCache) Set(id string, detail *models.NetworkDetail) {
	c.entries[id] = detail
}

// Invalidate clears all cached entries.
func (c *DetailCache) Invalidate() {
	c.entries = make(map[string]*models.NetworkDetail)
}

// Len returns the number of cached entries.
func (c *DetailCache) Len() int {
	return len(c.entries)
}
