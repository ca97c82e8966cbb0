package kv

import "sync"

type inmemStore struct {
	mutex sync.RWMutex
	table map[string][]byte
}

var _ Store = (*inmemStore)(nil)

// OpenInmemStore returns a memory-backed store, mainly for tests.
func OpenInmemStore() Store {
	return &inmemStore{table: make(map[string][]byte)}
}

func (s *inmemStore) Get(key string) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	val, ok := s.table[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	cp := make([]byte, len(val))
	copy(cp, val)
	return cp, nil
}

func (s *inmemStore) Set(key string, val []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	cp := make([]byte, len(val))
	copy(cp, val)
	s.table[key] = cp
	return nil
}

func (s *inmemStore) Delete(key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.table, key)
	return nil
}
