package filestore

import (
	"fmt"
	"io"
	"sync"
)

// FakeStore keeps uploads in memory for tests.
type FakeStore struct {
	mu    sync.Mutex
	seq   int
	files map[string][]byte
}

func NewFakeStore() *FakeStore {
	return &FakeStore{files: make(map[string][]byte)}
}

func (s *FakeStore) Save(fileName string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	key := fmt.Sprintf("posts/%d-%s", s.seq, fileName)
	s.files[key] = data
	return key, nil
}

func (s *FakeStore) Contents(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[key]
	return data, ok
}
