package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps snapshots in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Snapshot
}

func NewMemory() *MemoryStore {
	return &MemoryStore{sessions: map[string]Snapshot{}}
}

func (m *MemoryStore) SaveSession(_ context.Context, snap Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, ok := m.sessions[snap.ID]; ok {
		snap.CreatedAt = prev.CreatedAt
	}
	m.sessions[snap.ID] = snap.clone()
	return nil
}

func (m *MemoryStore) GetSession(_ context.Context, id string) (*Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := snap.clone()
	return &out, nil
}

func (m *MemoryStore) DeleteSession(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *MemoryStore) ListSessions(_ context.Context, limit, offset int) ([]Snapshot, error) {
	m.mu.RLock()
	all := make([]Snapshot, 0, len(m.sessions))
	for _, snap := range m.sessions {
		all = append(all, snap.clone())
	}
	m.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].UpdatedAt.Equal(all[j].UpdatedAt) {
			return all[i].ID > all[j].ID
		}
		return all[i].UpdatedAt.After(all[j].UpdatedAt)
	})
	if offset < 0 {
		offset = 0
	}
	if offset >= len(all) {
		return []Snapshot{}, nil
	}
	all = all[offset:]
	if limit >= 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (m *MemoryStore) Ping(context.Context) error { return nil }

func (m *MemoryStore) Close() {}
