package engine

import "sync"

// Selection tracks which metrics are visible in the rendered line. It is
// safe for concurrent use: the host shell toggles modules from its event
// loop while the engine reads them during ticks.
type Selection struct {
	mu      sync.Mutex
	enabled map[MetricKey]bool
}

// NewSelection builds a Selection from a string-keyed enabled map (the
// persisted config shape), applying DefaultEnabled for any missing key.
// Keys outside the closed MetricKey set are ignored.
func NewSelection(enabled map[string]bool) *Selection {
	m := make(map[MetricKey]bool, len(DisplayOrder))
	for _, key := range DisplayOrder {
		v, ok := enabled[string(key)]
		if !ok {
			v = DefaultEnabled[key]
		}
		m[key] = v
	}
	return &Selection{enabled: m}
}

// Enabled reports whether the given metric is currently visible.
func (s *Selection) Enabled(key MetricKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled[key]
}

// Toggle flips the enabled state for key and returns the new state.
// The mutation is purely in-memory; persistence happens separately via
// Snapshot when the user asks for it.
func (s *Selection) Toggle(key MetricKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled[key] = !s.enabled[key]
	return s.enabled[key]
}

// Snapshot returns an independent string-keyed copy of the current
// selection, suitable for handing to the persistence layer.
func (s *Selection) Snapshot() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]bool, len(s.enabled))
	for key, v := range s.enabled {
		out[string(key)] = v
	}
	return out
}
