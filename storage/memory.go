package storage

import (
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/katalvlaran/secretsanta/matching"
	"github.com/katalvlaran/secretsanta/roster"
)

// MemoryStore keeps everything in process memory. Values are copied on the way
// in and out, so callers never share slices with the store.
type MemoryStore struct {
	mu       sync.RWMutex
	snapshot roster.Snapshot
	draws    map[string]Draw
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{draws: make(map[string]Draw)}
}

func (m *MemoryStore) Load() (roster.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return copySnapshot(m.snapshot), nil
}

func (m *MemoryStore) Save(s roster.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.snapshot = copySnapshot(s)
	return nil
}

func (m *MemoryStore) SaveDraw(d Draw) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d.Pairs = append(matching.Assignment(nil), d.Pairs...)
	m.draws[d.ID] = d
	return nil
}

func (m *MemoryStore) LoadDraw(id string) (Draw, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, ok := m.draws[id]
	if !ok {
		return Draw{}, fmt.Errorf("%w: %s", ErrDrawNotFound, id)
	}
	d.Pairs = append(matching.Assignment(nil), d.Pairs...)
	return d, nil
}

func (m *MemoryStore) ListDraws() ([]Draw, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	draws := lo.Map(lo.Values(m.draws), func(d Draw, _ int) Draw {
		d.Pairs = append(matching.Assignment(nil), d.Pairs...)
		return d
	})
	sort.Slice(draws, func(i, j int) bool {
		if draws[i].CreatedAt.Equal(draws[j].CreatedAt) {
			return draws[i].ID < draws[j].ID
		}
		return draws[i].CreatedAt.Before(draws[j].CreatedAt)
	})
	return draws, nil
}

func (m *MemoryStore) Close() error { return nil }

func copySnapshot(s roster.Snapshot) roster.Snapshot {
	return roster.Snapshot{
		Participants: append([]string(nil), s.Participants...),
		Exclusions:   append([]matching.Exclusion(nil), s.Exclusions...),
	}
}

var _ Store = (*MemoryStore)(nil)
