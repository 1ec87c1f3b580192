package app

import (
	"slices"
	"sync"

	"github.com/roach88/routinely/internal/routine"
	"github.com/roach88/routinely/internal/store"
)

// Screen identifies the active screen.
type Screen string

const (
	// ScreenList shows every routine.
	ScreenList Screen = "list"

	// ScreenDetail shows the selected routine's calendar and analytics.
	ScreenDetail Screen = "detail"
)

// View tracks navigation state and the detail screen's optimistic
// completion mirror. It subscribes to the store on construction; the
// store's notification is the reconciliation point after which the
// mirror always matches the authoritative set.
type View struct {
	mu       sync.Mutex
	store    *store.Store
	screen   Screen
	selected string   // routine id, "" when none
	mirror   []string // local copy of the selected routine's CompletedDates
}

// NewView creates a view on the list screen, subscribed to the store.
func NewView(s *store.Store) *View {
	v := &View{store: s, screen: ScreenList}
	s.Subscribe(v.reconcile)
	return v
}

// Screen returns the active screen.
func (v *View) Screen() Screen {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.screen
}

// SelectedID returns the selected routine id, or "".
func (v *View) SelectedID() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selected
}

// Select navigates to the detail screen for the routine. Reports false
// without navigating when the id is unknown.
func (v *View) Select(id string) bool {
	r, ok := v.store.Get(id)
	if !ok {
		return false
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.screen = ScreenDetail
	v.selected = id
	v.mirror = slices.Clone(r.CompletedDates)
	return true
}

// Deselect navigates back to the list screen.
func (v *View) Deselect() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.toListLocked()
}

// Selected re-fetches the selected routine from the store. The view
// never serves a cached routine: the store wins on every read.
func (v *View) Selected() (routine.Routine, bool) {
	v.mu.Lock()
	id := v.selected
	v.mu.Unlock()

	if id == "" {
		return routine.Routine{}, false
	}
	return v.store.Get(id)
}

// Mirror returns the optimistic completion mirror for the detail
// screen. Between a local toggle and the store's notification it may
// run ahead of the authoritative set; it is resynchronized on every
// store change and always superseded by the authoritative value.
func (v *View) Mirror() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.mirror)
}

// ToggleMirror flips a day key in the local mirror only, for instant
// feedback before the store mutation lands. The next store
// notification replaces the mirror wholesale.
func (v *View) ToggleMirror(key string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	i, found := slices.BinarySearch(v.mirror, key)
	if found {
		v.mirror = slices.Delete(v.mirror, i, i+1)
		return
	}
	v.mirror = slices.Insert(v.mirror, i, key)
}

// reconcile runs on every store notification: resynchronize the mirror
// from the authoritative set, or fall back to the list screen when the
// selected routine no longer exists.
func (v *View) reconcile() {
	v.mu.Lock()
	id := v.selected
	v.mu.Unlock()

	if id == "" {
		return
	}

	r, ok := v.store.Get(id)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.selected != id {
		// Navigation raced the notification; the later state wins.
		return
	}
	if !ok {
		v.toListLocked()
		return
	}
	v.mirror = slices.Clone(r.CompletedDates)
}

func (v *View) toListLocked() {
	v.screen = ScreenList
	v.selected = ""
	v.mirror = nil
}
