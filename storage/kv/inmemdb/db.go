package inmemdb

import (
	"encoding/json"
	"reflect"
	"sync"

	"github.com/trezcool/learnhub/core"
)

// Store is an in-memory core.Store for tests and dry runs.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ core.Store = (*Store)(nil) // interface compliance check

func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Load(name string, dest interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.data[name]
	if !ok {
		return nil
	}
	// decode through a scratch value so a shape mismatch partway through
	// cannot leave partial records in dest
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return nil
	}
	scratch := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(data, scratch.Interface()); err != nil {
		return nil // malformed data is treated as an empty collection
	}
	rv.Elem().Set(scratch.Elem())
	return nil
}

func (s *Store) Save(name string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = data
	return nil
}

func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, name)
	return nil
}

func (s *Store) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.data[name]
	return ok
}

// SetRaw stores raw bytes under a collection name, bypassing encoding.
// Tests use it to simulate malformed persisted data.
func (s *Store) SetRaw(name string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = data
}
