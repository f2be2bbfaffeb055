package core

// Store persists named record collections.
//
// Load decodes the collection named `name` into `dest`; a missing or
// malformed collection leaves `dest` untouched and returns nil.
// Save replaces the whole collection; partial writes are never observable.
// Delete removes the collection and is a no-op when it is absent.
// Has reports whether the collection has ever been written.
type Store interface {
	Load(name string, dest interface{}) error
	Save(name string, v interface{}) error
	Delete(name string) error
	Has(name string) bool
}
