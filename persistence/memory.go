package persistence

import (
	"fmt"
	"sync"
)

// MemoryStore keeps encoded snapshots in memory.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string][]byte)}
}

func (s *MemoryStore) Save(slot string, save *CharacterSave) error {
	data, err := encode(save)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[slot] = data
	return nil
}

func (s *MemoryStore) Load(slot string) (*CharacterSave, error) {
	s.mu.Lock()
	data, ok := s.items[slot]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("load %q: %w", slot, ErrNoSave)
	}
	return decode(slot, data)
}

func (s *MemoryStore) Delete(slot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, slot)
	return nil
}
