// Package routine defines the tracked-habit model and the validated form
// boundary through which it is created and edited.
//
// A Routine's identity (ID, CreatedAt) is immutable after creation; every
// other field is replaceable as a whole on edit. CompletedDates is a set
// of canonical YYYY-MM-DD day keys kept as a sorted, duplicate-free slice
// so that serialization is deterministic.
//
// Form input arrives as a closed FormData structure and is validated at
// this boundary before it ever reaches the store. Validation failures are
// field-scoped ValidationErrors: they block the save that produced them
// and nothing else.
package routine
