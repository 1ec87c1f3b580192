package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/routinely/internal/routine"
)

func mustCreate(t *testing.T, m *Manager, name string) routine.Routine {
	t.Helper()
	r, err := m.Create(routine.FormData{Name: name, Color: "#3B82F6"})
	require.NoError(t, err)
	return r
}

func TestView_SelectDeselect(t *testing.T) {
	m, v, _ := newTestApp(t)
	r := mustCreate(t, m, "Gym")

	assert.Equal(t, ScreenList, v.Screen())
	assert.Empty(t, v.SelectedID())

	require.True(t, v.Select(r.ID))
	assert.Equal(t, ScreenDetail, v.Screen())
	assert.Equal(t, r.ID, v.SelectedID())

	v.Deselect()
	assert.Equal(t, ScreenList, v.Screen())
	assert.Empty(t, v.SelectedID())
}

func TestView_SelectUnknownID(t *testing.T) {
	_, v, _ := newTestApp(t)

	assert.False(t, v.Select("ghost"))
	assert.Equal(t, ScreenList, v.Screen(), "failed select does not navigate")
	assert.Empty(t, v.SelectedID())
}

func TestView_SelectedReadsThroughToStore(t *testing.T) {
	m, v, _ := newTestApp(t)
	r := mustCreate(t, m, "Gym")
	require.True(t, v.Select(r.ID))

	_, found, err := m.Edit(r.ID, routine.FormData{Name: "Strength", Color: "#EF4444"})
	require.NoError(t, err)
	require.True(t, found)

	got, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, "Strength", got.Name, "the store wins on every read")
}

func TestView_SelectedNone(t *testing.T) {
	_, v, _ := newTestApp(t)
	_, ok := v.Selected()
	assert.False(t, ok)
}

func TestView_DeleteSelectedReturnsToList(t *testing.T) {
	m, v, _ := newTestApp(t)
	r := mustCreate(t, m, "Gym")
	require.True(t, v.Select(r.ID))

	deleted, err := m.Delete(r.ID, nil)
	require.NoError(t, err)
	require.True(t, deleted)

	assert.Equal(t, ScreenList, v.Screen())
	assert.Empty(t, v.SelectedID())
	assert.Empty(t, v.Mirror())
}

func TestView_DeleteOtherKeepsSelection(t *testing.T) {
	m, v, _ := newTestApp(t)
	keep := mustCreate(t, m, "Gym")
	drop := mustCreate(t, m, "Read")
	require.True(t, v.Select(keep.ID))

	deleted, err := m.Delete(drop.ID, nil)
	require.NoError(t, err)
	require.True(t, deleted)

	assert.Equal(t, ScreenDetail, v.Screen())
	assert.Equal(t, keep.ID, v.SelectedID())
}

func TestView_MirrorReconciledOnToggle(t *testing.T) {
	m, v, _ := newTestApp(t)
	r := mustCreate(t, m, "Gym")
	require.True(t, v.Select(r.ID))
	assert.Empty(t, v.Mirror())

	day := time.Date(2024, time.March, 9, 8, 0, 0, 0, time.Local)
	_, _, err := m.Toggle(r.ID, day)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-09"}, v.Mirror(), "notification resynchronizes the mirror")

	_, _, err = m.Toggle(r.ID, day)
	require.NoError(t, err)
	assert.Empty(t, v.Mirror())
}

func TestView_ToggleMirrorIsOptimistic(t *testing.T) {
	m, v, _ := newTestApp(t)
	r := mustCreate(t, m, "Gym")
	require.True(t, v.Select(r.ID))

	v.ToggleMirror("2024-03-09")
	assert.Equal(t, []string{"2024-03-09"}, v.Mirror(), "local flip lands before the store write")

	// The store mutation then confirms the optimistic value.
	_, _, err := m.Toggle(r.ID, time.Date(2024, time.March, 9, 8, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-09"}, v.Mirror())
}

func TestView_ToggleMirrorSupersededByStore(t *testing.T) {
	m, v, _ := newTestApp(t)
	r := mustCreate(t, m, "Gym")
	require.True(t, v.Select(r.ID))

	// Optimistic flip that no store mutation backs up.
	v.ToggleMirror("2024-03-09")

	// Any store change replaces the mirror with the authoritative set.
	_, _, err := m.Toggle(r.ID, time.Date(2024, time.March, 8, 8, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-08"}, v.Mirror(), "authoritative set wins over the stale flip")
}

func TestView_ToggleMirrorKeepsSortOrder(t *testing.T) {
	m, v, _ := newTestApp(t)
	r := mustCreate(t, m, "Gym")
	require.True(t, v.Select(r.ID))

	v.ToggleMirror("2024-03-09")
	v.ToggleMirror("2024-03-07")
	v.ToggleMirror("2024-03-08")
	assert.Equal(t, []string{"2024-03-07", "2024-03-08", "2024-03-09"}, v.Mirror())

	v.ToggleMirror("2024-03-08")
	assert.Equal(t, []string{"2024-03-07", "2024-03-09"}, v.Mirror())
}

func TestView_SelectSnapshotsMirror(t *testing.T) {
	m, v, _ := newTestApp(t)
	r := mustCreate(t, m, "Gym")
	_, _, err := m.Toggle(r.ID, time.Date(2024, time.March, 9, 8, 0, 0, 0, time.Local))
	require.NoError(t, err)

	require.True(t, v.Select(r.ID))
	assert.Equal(t, []string{"2024-03-09"}, v.Mirror(), "select seeds the mirror from the store")
}
