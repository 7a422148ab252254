package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Memory is an in-memory Repo. Values are kept as JSON so Load behaves
// exactly like the SQLite store.
type Memory struct {
	mu      sync.Mutex
	values  map[Key][]byte
	updated map[Key]time.Time

	// FailWith, when set, is returned by every Save and Load.
	FailWith error
}

var _ Repo = (*Memory)(nil)

// NewMemory creates an empty in-memory Repo.
func NewMemory() *Memory {
	return &Memory{
		values:  make(map[Key][]byte),
		updated: make(map[Key]time.Time),
	}
}

func (m *Memory) Save(_ context.Context, key Key, v any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWith != nil {
		return m.FailWith
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	m.values[key] = b
	m.updated[key] = time.Now()
	return nil
}

func (m *Memory) Load(_ context.Context, key Key, dst any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWith != nil {
		return m.FailWith
	}
	b, ok := m.values[key]
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return nil
}

func (m *Memory) Delete(_ context.Context, key Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	delete(m.updated, key)
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = make(map[Key][]byte)
	m.updated = make(map[Key]time.Time)
	return nil
}

func (m *Memory) Entries(_ context.Context) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := make([]Entry, 0, len(m.values))
	for k, v := range m.values {
		entries = append(entries, Entry{Key: k, Size: len(v), UpdatedAt: m.updated[k]})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries, nil
}

// Raw returns the JSON stored under key, or nil.
func (m *Memory) Raw(key Key) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key]
}
