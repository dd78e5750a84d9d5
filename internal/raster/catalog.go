package raster

import "smokegate/internal/core"

// Entry is one captioned image of a Catalog.
type Entry struct {
	Image   string `yaml:"image"`
	Caption string `yaml:"caption"`
}

// Source converts the entry into an ingestion source.
func (e Entry) Source() Source {
	return Source{Image: e.Image, Caption: e.Caption}
}

// Catalog picks random entries for the "next image" request, never the same
// one twice in a row when there is a choice.
type Catalog struct {
	entries []Entry
	rng     *core.RNG
	last    int
}

// NewCatalog returns a catalog over entries seeded deterministically.
func NewCatalog(entries []Entry, seed int64) *Catalog {
	return &Catalog{entries: entries, rng: core.NewRNG(seed), last: -1}
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Next returns a random entry, or false when the catalog is empty.
func (c *Catalog) Next() (Entry, bool) {
	n := c.Len()
	if n == 0 {
		return Entry{}, false
	}
	idx := c.rng.IntN(n)
	if n > 1 && idx == c.last {
		idx = (idx + 1 + c.rng.IntN(n-1)) % n
	}
	c.last = idx
	return c.entries[idx], true
}
