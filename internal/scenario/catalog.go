package scenario

import "sync"

// Catalog holds the scenario list and the per-scenario datasets populated by
// the preloader. Datasets are insert-once: a second insert for the same id is
// ignored, so entries are never overwritten after they become visible.
// Absence of an entry (fetch failed or still pending) is not an error.
type Catalog struct {
	mu        sync.RWMutex
	scenarios []Scenario
	datasets  map[string]Dataset
}

func NewCatalog() *Catalog {
	return &Catalog{datasets: make(map[string]Dataset)}
}

// Insert records a dataset for id. Returns false if the id is already
// present or the dataset is nil.
func (c *Catalog) Insert(id string, ds Dataset) bool {
	if ds == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.datasets[id]; ok {
		return false
	}
	c.datasets[id] = ds
	return true
}

// Dataset returns the dataset for id, if it has been loaded.
func (c *Catalog) Dataset(id string) (Dataset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ds, ok := c.datasets[id]
	return ds, ok
}

// SetScenarios records the display list fetched from the backend.
func (c *Catalog) SetScenarios(list []Scenario) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scenarios = append([]Scenario(nil), list...)
}

// Scenarios returns the display list. Empty until the list fetch completes;
// empty forever if it failed.
func (c *Catalog) Scenarios() []Scenario {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Scenario(nil), c.scenarios...)
}
