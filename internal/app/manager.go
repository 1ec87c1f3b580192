package app

import (
	"time"

	"go.uber.org/zap"

	"github.com/roach88/routinely/internal/routine"
	"github.com/roach88/routinely/internal/store"
)

// ConfirmFunc asks the boundary (prompt, flag, dialog) to confirm a
// destructive operation on the given routine.
type ConfirmFunc func(r routine.Routine) bool

// Manager is the lifecycle surface for routines. All writes flow
// through it; it owns boundary validation and nothing else. Storage
// and persistence stay in the store.
type Manager struct {
	store  *store.Store
	logger *zap.Logger
}

// NewManager wires a manager over the store.
func NewManager(s *store.Store, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: s, logger: logger}
}

// Store exposes the underlying store for read-only projections.
func (m *Manager) Store() *store.Store {
	return m.store
}

// Create validates the form and adds a new routine. Validation
// failures return *routine.ValidationErrors and change nothing.
func (m *Manager) Create(form routine.FormData) (routine.Routine, error) {
	form = form.Normalize()
	if err := form.Validate(); err != nil {
		m.logger.Debug("create blocked by validation", zap.Error(err))
		return routine.Routine{}, err
	}
	return m.store.Add(form)
}

// Edit validates the form and replaces every non-identity field of the
// routine with the submitted values. The completion set is carried
// over untouched; ID and CreatedAt are immutable. Returns found=false,
// with no error, when the id is absent.
func (m *Manager) Edit(id string, form routine.FormData) (routine.Routine, bool, error) {
	form = form.Normalize()
	if err := form.Validate(); err != nil {
		m.logger.Debug("edit blocked by validation", zap.String("id", id), zap.Error(err))
		return routine.Routine{}, false, err
	}

	current, ok := m.store.Get(id)
	if !ok {
		return routine.Routine{}, false, nil
	}

	next := current.Clone()
	next.Name = form.Name
	next.Description = form.Description
	next.Color = form.Color

	replaced, err := m.store.Replace(next)
	if err != nil {
		return routine.Routine{}, false, err
	}
	if !replaced {
		return routine.Routine{}, false, nil
	}

	updated, _ := m.store.Get(id)
	return updated, true, nil
}

// Delete removes a routine after the boundary confirms. A nil confirm
// means the boundary already confirmed. Returns false when the id is
// absent or confirmation was withheld; neither is an error.
func (m *Manager) Delete(id string, confirm ConfirmFunc) (bool, error) {
	r, ok := m.store.Get(id)
	if !ok {
		return false, nil
	}
	if confirm != nil && !confirm(r) {
		m.logger.Debug("delete not confirmed", zap.String("id", id), zap.String("name", r.Name))
		return false, nil
	}
	return m.store.Remove(id)
}

// Toggle flips completion of the given calendar day. No validation
// beyond canonicalization: any date may be toggled.
func (m *Manager) Toggle(id string, date time.Time) (completed, found bool, err error) {
	return m.store.Toggle(id, date)
}
