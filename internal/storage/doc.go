// Package storage provides the durable persistence boundary: a
// string-keyed, byte-valued KV capability plus the JSON codec that
// round-trips the routine collection through it.
//
// Three drivers implement the KV interface:
//   - sqlite: single-file database in WAL mode (the default)
//   - badger: embedded LSM key-value store
//   - memory: in-process map, for tests
//
// The collection persists as a whole under one key on every mutation;
// there is no incremental persistence. Reads degrade rather than fail:
// an absent key, a corrupt payload, or a driver read error all yield an
// empty collection, so the application stays usable with zero routines.
package storage
