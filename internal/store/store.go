// Package store is the persisted key-value settings store backing the
// snap-area model. The snap-area code treats it as opaque; callers pick
// the file-backed implementation or the in-memory one.
package store

// Store reads and writes typed settings values. A false second return
// means the key has never been set. Writes persist immediately in
// implementations that persist at all.
type Store interface {
	GetString(key string) (string, bool)
	SetString(key, value string)
	GetBool(key string) (bool, bool)
	SetBool(key string, value bool)
	GetInt(key string) (int, bool)
	SetInt(key string, value int)
}
