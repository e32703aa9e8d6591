package scenario

import "sync"

// Store holds the single active scenario id. It is the only writer surface
// for that cell: the scenario picker calls Select, and the idle watchdog
// calls Select(Baseline). Everything else reads.
type Store struct {
	mu      sync.RWMutex
	catalog *Catalog
	active  string
	subs    []func(id string)
}

func NewStore(catalog *Catalog) *Store {
	return &Store{catalog: catalog, active: Baseline}
}

// Select sets the active scenario unconditionally. Selecting an id whose
// dataset has not loaded yet is legal: resolution degrades to baseline until
// the dataset arrives. Subscribers are notified after every call, even when
// the id is unchanged (an idle reset on baseline is a visible no-op).
func (s *Store) Select(id string) {
	s.mu.Lock()
	s.active = id
	subs := append(make([]func(string), 0, len(s.subs)), s.subs...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(id)
	}
}

// Current returns the active scenario id.
func (s *Store) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Subscribe registers fn to run after each Select. Callbacks run on the
// selecting goroutine and must not call back into the store's write path.
func (s *Store) Subscribe(fn func(id string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// ResolvedData returns the active scenario's override object for viewKey, or
// nil when the baseline is active, the dataset is absent, or the key does not
// hold an object. Nil means "render baseline data unchanged".
func (s *Store) ResolvedData(viewKey string) map[string]any {
	s.mu.RLock()
	active := s.active
	s.mu.RUnlock()

	if active == Baseline {
		return nil
	}
	ds, ok := s.catalog.Dataset(active)
	if !ok {
		return nil
	}
	override, ok := ds[viewKey].(map[string]any)
	if !ok {
		return nil
	}
	return override
}
