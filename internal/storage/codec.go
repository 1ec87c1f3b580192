package storage

import (
	"encoding/json"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/roach88/routinely/internal/dates"
	"github.com/roach88/routinely/internal/routine"
)

// DefaultKey is the KV key the routine collection persists under.
const DefaultKey = "routines"

// RoutineStore round-trips the whole routine collection through a KV as
// one JSON document. CreatedAt serializes as RFC 3339 and is revived to
// a time value on load; day keys are validated and deduplicated.
type RoutineStore struct {
	kv     KV
	key    string
	logger *zap.Logger
}

// NewRoutineStore wraps a KV. A nil logger falls back to zap.NewNop.
func NewRoutineStore(kv KV, logger *zap.Logger) *RoutineStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoutineStore{kv: kv, key: DefaultKey, logger: logger}
}

// Load reads the persisted collection. Absent key, corrupt payload, and
// driver read errors all degrade to an empty collection: the application
// must stay usable with zero routines rather than fail to start.
func (s *RoutineStore) Load() ([]routine.Routine, error) {
	data, ok, err := s.kv.Get(s.key)
	if err != nil {
		s.logger.Warn("persisted routines unreadable, starting empty", zap.Error(err))
		return nil, nil
	}
	if !ok {
		return nil, nil
	}

	var loaded []routine.Routine
	if err := json.Unmarshal(data, &loaded); err != nil {
		s.logger.Warn("persisted routines corrupt, starting empty", zap.Error(err))
		return nil, nil
	}

	out := make([]routine.Routine, 0, len(loaded))
	seen := make(map[string]bool, len(loaded))
	for _, r := range loaded {
		if r.ID == "" || seen[r.ID] {
			s.logger.Warn("dropping persisted routine with missing or duplicate id",
				zap.String("id", r.ID), zap.String("name", r.Name))
			continue
		}
		seen[r.ID] = true
		r.CompletedDates = sanitizeDayKeys(r.CompletedDates, s.logger)
		out = append(out, r)
	}
	return out, nil
}

// Save persists the whole collection. Unlike Load, failures here are
// real errors: the caller needs to know the mutation did not stick.
func (s *RoutineStore) Save(routines []routine.Routine) error {
	data, err := json.Marshal(routines)
	if err != nil {
		return fmt.Errorf("encode routines: %w", err)
	}
	if err := s.kv.Put(s.key, data); err != nil {
		return fmt.Errorf("persist routines: %w", err)
	}
	return nil
}

// sanitizeDayKeys drops malformed and duplicate day keys and returns the
// remainder sorted, restoring the set invariant on data that may have
// been hand-edited or written by an older build.
func sanitizeDayKeys(keys []string, logger *zap.Logger) []string {
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		if !dates.IsValidDayKey(key) {
			logger.Warn("dropping malformed completed date", zap.String("key", key))
			continue
		}
		out = append(out, key)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
