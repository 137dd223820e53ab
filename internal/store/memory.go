package store

import (
	"encoding/json"
	"errors"
	"sync"
)

var errWriteFailed = errors.New("write failed")

// MemStore is an in-memory Store used by tests and as a fallback when no
// data directory is usable.
type MemStore struct {
	mu sync.RWMutex
	m  map[string][]byte

	// FailWrites makes every Save return an error, for exercising the
	// swallowed write-failure path.
	FailWrites bool
}

func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string][]byte)}
}

func (s *MemStore) Close() error { return nil }

func (s *MemStore) Load(key string, v any) error {
	s.mu.RLock()
	b, ok := s.m[key]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	return json.Unmarshal(b, v)
}

func (s *MemStore) Save(key string, v any) error {
	if s.FailWrites {
		return errWriteFailed
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.m[key] = b
	s.mu.Unlock()
	return nil
}
