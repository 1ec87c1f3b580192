package storage

import "fmt"

// KV is the injected durable key-value capability the core persists
// through. Implementations must be safe for use from a single process;
// no cross-process coordination is required.
type KV interface {
	// Get returns the value for key. The boolean is false when the key
	// has never been written; that is not an error.
	Get(key string) ([]byte, bool, error)

	// Put durably stores value under key, replacing any previous value.
	Put(key string, value []byte) error

	// Close releases driver resources.
	Close() error
}

// Driver names accepted in configuration.
const (
	DriverSQLite = "sqlite"
	DriverBadger = "badger"
	DriverMemory = "memory"
)

// Open constructs the KV for a configured driver. Path is the database
// file (sqlite) or directory (badger); the memory driver ignores it.
func Open(driver, path string) (KV, error) {
	switch driver {
	case DriverSQLite:
		return OpenSQLite(path)
	case DriverBadger:
		return OpenBadger(BadgerConfig{Path: path, SyncWrites: true})
	case DriverMemory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", driver)
	}
}
