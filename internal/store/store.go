package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roach88/routinely/internal/dates"
	"github.com/roach88/routinely/internal/routine"
)

// Persister is the persistence capability injected into the store.
// storage.RoutineStore is the production implementation.
type Persister interface {
	// Load reads the persisted collection; implementations degrade read
	// failures to an empty collection rather than erroring.
	Load() ([]routine.Routine, error)

	// Save durably replaces the persisted collection as a whole.
	Save([]routine.Routine) error
}

// Store is the single source of truth for the routine collection.
//
// Thread-safety: all methods are safe for concurrent use, though the
// application model is single-threaded synchronous mutation.
// Subscribers are fired outside the lock, so they may read back into
// the store.
type Store struct {
	mu       sync.Mutex
	routines []routine.Routine
	persist  Persister
	clock    dates.Clock
	logger   *zap.Logger
	subs     []func()
}

// New creates a store hydrated from the persister. Load failures have
// already degraded to an empty collection inside the persister, so New
// itself cannot fail.
func New(persist Persister, clock dates.Clock, logger *zap.Logger) *Store {
	if clock == nil {
		clock = dates.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	loaded, err := persist.Load()
	if err != nil {
		// Defensive: Persister implementations degrade instead, but an
		// unexpected error still must not take the application down.
		logger.Warn("load failed, starting with empty collection", zap.Error(err))
		loaded = nil
	}

	logger.Debug("store hydrated", zap.Int("routines", len(loaded)))
	return &Store{
		routines: loaded,
		persist:  persist,
		clock:    clock,
		logger:   logger,
	}
}

// Subscribe registers a callback fired synchronously after every
// persisted mutation, in registration order.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// List returns a copy of every routine, in insertion order.
func (s *Store) List() []routine.Routine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]routine.Routine, len(s.routines))
	for i := range s.routines {
		out[i] = s.routines[i].Clone()
	}
	return out
}

// Get returns a copy of the routine with the given id.
func (s *Store) Get(id string) (routine.Routine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.routines[i].Clone(), true
	}
	return routine.Routine{}, false
}

// Len returns the number of routines.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.routines)
}

// Add appends a new routine built from the form: fresh time-ordered id,
// CreatedAt now, empty completion set. The form is assumed validated.
func (s *Store) Add(form routine.FormData) (routine.Routine, error) {
	id, err := newID()
	if err != nil {
		return routine.Routine{}, err
	}

	r := routine.Routine{
		ID:             id,
		Name:           form.Name,
		Description:    form.Description,
		Color:          form.Color,
		CreatedAt:      s.clock.Now(),
		CompletedDates: []string{},
	}

	s.mu.Lock()
	s.routines = append(s.routines, r)
	if err := s.saveLocked(); err != nil {
		s.routines = s.routines[:len(s.routines)-1]
		s.mu.Unlock()
		return routine.Routine{}, err
	}
	out := r.Clone()
	s.mu.Unlock()

	s.logger.Info("routine added", zap.String("id", r.ID), zap.String("name", r.Name))
	s.notify()
	return out, nil
}

// Replace swaps the stored entry whose id matches. Identity fields (ID,
// CreatedAt) are always kept from the stored entry; everything else is
// taken from the replacement. Returns false, with no error, when the id
// is absent.
func (s *Store) Replace(r routine.Routine) (bool, error) {
	s.mu.Lock()
	i := s.indexOf(r.ID)
	if i < 0 {
		s.mu.Unlock()
		s.logger.Debug("replace: id not found", zap.String("id", r.ID))
		return false, nil
	}

	prev := s.routines[i]
	next := r.Clone()
	next.CreatedAt = prev.CreatedAt
	s.routines[i] = next

	if err := s.saveLocked(); err != nil {
		s.routines[i] = prev
		s.mu.Unlock()
		return false, err
	}
	s.mu.Unlock()

	s.logger.Info("routine replaced", zap.String("id", next.ID), zap.String("name", next.Name))
	s.notify()
	return true, nil
}

// Remove deletes the routine with the given id. Returns false, with no
// error, when the id is absent.
func (s *Store) Remove(id string) (bool, error) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		s.logger.Debug("remove: id not found", zap.String("id", id))
		return false, nil
	}

	prev := s.routines
	next := make([]routine.Routine, 0, len(prev)-1)
	next = append(next, prev[:i]...)
	next = append(next, prev[i+1:]...)
	s.routines = next

	if err := s.saveLocked(); err != nil {
		s.routines = prev
		s.mu.Unlock()
		return false, err
	}
	s.mu.Unlock()

	s.logger.Info("routine removed", zap.String("id", id))
	s.notify()
	return true, nil
}

// Toggle canonicalizes the date and strictly flips its membership in the
// routine's completion set. completed reports the resulting state; found
// is false, with no error, when the id is absent.
func (s *Store) Toggle(id string, date time.Time) (completed, found bool, err error) {
	key := dates.FormatDate(date)

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		s.logger.Debug("toggle: id not found", zap.String("id", id))
		return false, false, nil
	}

	prev := s.routines[i].Clone()
	completed = s.routines[i].ToggleDay(key)

	if err := s.saveLocked(); err != nil {
		s.routines[i] = prev
		s.mu.Unlock()
		return false, true, err
	}
	s.mu.Unlock()

	s.logger.Info("completion toggled",
		zap.String("id", id),
		zap.String("date", key),
		zap.Bool("completed", completed),
	)
	s.notify()
	return completed, true, nil
}

func (s *Store) indexOf(id string) int {
	for i := range s.routines {
		if s.routines[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) saveLocked() error {
	if err := s.persist.Save(s.routines); err != nil {
		s.logger.Error("persist failed, rolling back", zap.Error(err))
		return fmt.Errorf("store: %w", err)
	}
	return nil
}

// notify fires subscribers outside the lock so they can read back into
// the store.
func (s *Store) notify() {
	s.mu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// newID allocates a time-ordered UUID (v7): unique and monotonically
// distinguishable across creations.
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("store: allocate id: %w", err)
	}
	return id.String(), nil
}
