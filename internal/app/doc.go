// Package app orchestrates user-facing operations over the store.
//
// Manager is the routine lifecycle surface: it validates form input at
// the boundary, preserves identity on edit, requires caller-supplied
// confirmation for delete, and passes toggles straight through (any
// calendar date, past or future, may be toggled).
//
// View is the navigation coordinator: which screen is active and which
// routine is selected. It keeps a local mirror of the selected
// routine's completion set for instant toggle feedback, but the store
// is the source of truth: every store notification resynchronizes the
// mirror, so the two can never diverge past a notification boundary.
// Deleting the selected routine forces the view back to the list.
package app
