package pricing

import "sync/atomic"

// Catalog holds the snapshot new sessions are priced with.
type Catalog struct {
	current atomic.Pointer[Snapshot]
}

func NewCatalog(initial *Snapshot) *Catalog {
	c := &Catalog{}
	c.current.Store(initial)
	return c
}

func (c *Catalog) Current() *Snapshot {
	return c.current.Load()
}

// Install replaces the current snapshot. In-flight sessions keep the price they started with.
func (c *Catalog) Install(s *Snapshot) {
	c.current.Store(s)
}
