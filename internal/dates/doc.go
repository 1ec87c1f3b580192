// Package dates provides the calendar primitives the rest of the
// application is keyed on.
//
// Every completion is identified by a canonical day key in the form
// YYYY-MM-DD, derived from the *local* calendar day of a time.Time.
// FormatDate is the single canonicalization point: any code that turns a
// time into a lookup key must go through it, or completion toggling and
// the derived statistics would disagree about what "the same day" means.
//
// Month grids are always 42 cells (6 full weeks starting on the Sunday
// on/before the 1st). The fixed length gives renderers a uniform height;
// cells outside the target month carry InMonth=false.
//
// Functions that depend on "now" take it explicitly (either a time.Time
// or a Clock), so derivations stay pure and testable.
package dates
