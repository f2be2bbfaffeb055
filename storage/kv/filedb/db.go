package filedb

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/learnhub/core"
)

// Store persists each collection as a JSON file under a data directory.
// Writes go to a temp file first and are renamed into place, so a partially
// written collection is never observable.
type Store struct {
	dir string
	mu  sync.RWMutex
}

var _ core.Store = (*Store)(nil) // interface compliance check

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating data dir %s", dir)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load decodes the collection into dest. A missing or malformed file leaves
// dest untouched; neither is an error to the caller. Decoding goes through a
// scratch value so a shape mismatch partway through cannot leave partial
// records behind.
func (s *Store) Load(name string, dest interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := ioutil.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "reading collection %s", name)
	}
	decodeInto(data, dest)
	return nil
}

// decodeInto unmarshals into a scratch value of dest's type and assigns it to
// dest only on full success. dest must be a non-nil pointer.
func decodeInto(data []byte, dest interface{}) {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return
	}
	scratch := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(data, scratch.Interface()); err != nil {
		return // malformed data is treated as an empty collection
	}
	rv.Elem().Set(scratch.Elem())
}

// Save replaces the whole collection.
func (s *Store) Save(name string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encoding collection %s", name)
	}

	tmp, err := ioutil.TempFile(s.dir, name+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "writing collection %s", name)
	}
	if _, err = tmp.Write(data); err == nil {
		err = tmp.Close()
	} else {
		_ = tmp.Close()
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return errors.Wrapf(err, "writing collection %s", name)
	}
	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		_ = os.Remove(tmp.Name())
		return errors.Wrapf(err, "replacing collection %s", name)
	}
	return nil
}

// Delete removes the collection; removing an absent collection is a no-op.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "deleting collection %s", name)
	}
	return nil
}

// Has reports whether the collection has ever been written.
func (s *Store) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := os.Stat(s.path(name))
	return err == nil
}
