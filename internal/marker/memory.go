package marker

import (
	"context"
	"sync"
)

// MemoryMap is a Map that keeps its markers in process memory.
type MemoryMap struct {
	mu      sync.RWMutex
	markers []*Marker
}

// NewMemoryMap creates an empty in-memory map
func NewMemoryMap() *MemoryMap {
	return &MemoryMap{}
}

// AddMarker attaches m to the map.
func (mm *MemoryMap) AddMarker(ctx context.Context, m *Marker) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.markers = append(mm.markers, m)
	return nil
}

// Markers returns the attached markers in attach order.
func (mm *MemoryMap) Markers(ctx context.Context) ([]*Marker, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	out := make([]*Marker, len(mm.markers))
	copy(out, mm.markers)
	return out, nil
}

// MemoryStore hands out one MemoryMap per map id.
type MemoryStore struct {
	mu   sync.Mutex
	maps map[string]*MemoryMap
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{maps: make(map[string]*MemoryMap)}
}

// Map returns the map with the given id, creating it on first use.
func (s *MemoryStore) Map(id string) *MemoryMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.maps[id]
	if !ok {
		m = NewMemoryMap()
		s.maps[id] = m
	}
	return m
}
