// Package store owns the authoritative routine collection.
//
// All mutation goes through the defined operations (Add, Replace,
// Remove, Toggle); callers never reach into a routine's fields directly.
// Reads return copies, so a caller holding a snapshot cannot alias the
// authoritative state.
//
// The collection persists as a whole through the injected Persister on
// every mutation. A mutation is atomic from the caller's perspective:
// if persistence fails the in-memory change is rolled back and the error
// returned, so the store never exposes a half-applied state.
//
// Consumers that derive views subscribe for change notification; the
// store fires subscribers synchronously after each persisted mutation,
// which is the reconciliation point for any locally mirrored state.
package store
