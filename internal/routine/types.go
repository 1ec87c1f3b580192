package routine

import (
	"slices"
	"time"
)

// Routine is one tracked habit.
type Routine struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`

	// CompletedDates holds canonical YYYY-MM-DD day keys, sorted
	// ascending with no duplicates. Membership is the only semantic;
	// order exists for deterministic serialization.
	CompletedDates []string `json:"completed_dates"`
}

// FormData is the closed payload for create and edit operations.
// Color is structurally unconstrained (any string is accepted); Name and
// Description limits are enforced by Validate.
type FormData struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description,omitempty" validate:"max=200"`
	Color       string `json:"color"`
}

// Completed reports whether the routine has a completion for the given
// day key.
func (r *Routine) Completed(key string) bool {
	_, found := slices.BinarySearch(r.CompletedDates, key)
	return found
}

// ToggleDay flips membership of the day key: present is removed, absent
// is inserted in sort position. Reports the resulting state (true when
// the day is now completed). A strict flip, not a set-to-true.
func (r *Routine) ToggleDay(key string) bool {
	i, found := slices.BinarySearch(r.CompletedDates, key)
	if found {
		r.CompletedDates = slices.Delete(r.CompletedDates, i, i+1)
		return false
	}
	r.CompletedDates = slices.Insert(r.CompletedDates, i, key)
	return true
}

// CompletedSet returns the completion set keyed for membership tests.
func (r *Routine) CompletedSet() map[string]struct{} {
	set := make(map[string]struct{}, len(r.CompletedDates))
	for _, key := range r.CompletedDates {
		set[key] = struct{}{}
	}
	return set
}

// TotalCompleted is the plain cardinality of the completion set,
// unbounded by any analytics window.
func (r *Routine) TotalCompleted() int {
	return len(r.CompletedDates)
}

// Clone returns a deep copy; callers may mutate it without affecting the
// original.
func (r *Routine) Clone() Routine {
	out := *r
	out.CompletedDates = slices.Clone(r.CompletedDates)
	return out
}
