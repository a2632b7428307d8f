package garden

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTreeForSchedules(t *testing.T) (Controller, uint64) {
	t.Helper()

	c := newTestController(t)
	require.NoError(t, c.CreateTree("oak"))

	trees := c.AllTrees()
	require.Len(t, trees, 1)
	return c, trees[0].ID
}

func TestSetWateringSchedule(t *testing.T) {
	c, treeID := newTreeForSchedules(t)

	t.Run("validates the day of week", func(t *testing.T) {
		assert.ErrorIs(t, c.SetWateringSchedule(treeID, -1, 6, 30), ErrInvalidInput)
		assert.ErrorIs(t, c.SetWateringSchedule(treeID, 7, 6, 30), ErrInvalidInput)
	})

	t.Run("validates the start hour", func(t *testing.T) {
		assert.ErrorIs(t, c.SetWateringSchedule(treeID, 2, -1, 30), ErrInvalidInput)
		assert.ErrorIs(t, c.SetWateringSchedule(treeID, 2, 24, 30), ErrInvalidInput)
	})

	t.Run("validates the duration", func(t *testing.T) {
		assert.ErrorIs(t, c.SetWateringSchedule(treeID, 2, 6, 0), ErrInvalidInput)
		assert.ErrorIs(t, c.SetWateringSchedule(treeID, 2, 6, -5), ErrInvalidInput)
	})

	t.Run("missing tree", func(t *testing.T) {
		assert.ErrorIs(t, c.SetWateringSchedule(999, 2, 6, 30), ErrNotFound)
	})

	t.Run("a second write for the same day updates in place", func(t *testing.T) {
		require.NoError(t, c.SetWateringSchedule(treeID, 2, 6, 30))
		require.NoError(t, c.SetWateringSchedule(treeID, 2, 8, 45))

		schedules, err := c.WateringSchedules(treeID)
		require.NoError(t, err)
		require.Len(t, schedules, 1)
		assert.Equal(t, 2, schedules[0].DayOfWeek)
		assert.Equal(t, 8, schedules[0].StartHour)
		assert.Equal(t, 45, schedules[0].Duration)
	})
}

func TestWateringSchedules(t *testing.T) {
	c, treeID := newTreeForSchedules(t)

	t.Run("missing tree", func(t *testing.T) {
		_, err := c.WateringSchedules(999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty for a tree without schedules", func(t *testing.T) {
		schedules, err := c.WateringSchedules(treeID)
		require.NoError(t, err)
		assert.Empty(t, schedules)
	})

	t.Run("ordered by day then hour", func(t *testing.T) {
		require.NoError(t, c.SetWateringSchedule(treeID, 5, 7, 20))
		require.NoError(t, c.SetWateringSchedule(treeID, 1, 18, 15))
		require.NoError(t, c.SetWateringSchedule(treeID, 3, 6, 10))

		schedules, err := c.WateringSchedules(treeID)
		require.NoError(t, err)
		require.Len(t, schedules, 3)
		assert.Equal(t, 1, schedules[0].DayOfWeek)
		assert.Equal(t, 3, schedules[1].DayOfWeek)
		assert.Equal(t, 5, schedules[2].DayOfWeek)
	})
}

func TestDeleteWateringSchedule(t *testing.T) {
	c, treeID := newTreeForSchedules(t)

	t.Run("missing schedule", func(t *testing.T) {
		assert.ErrorIs(t, c.DeleteWateringSchedule(999), ErrNotFound)
	})

	t.Run("removes one schedule by its own id", func(t *testing.T) {
		require.NoError(t, c.SetWateringSchedule(treeID, 2, 6, 30))

		schedules, err := c.WateringSchedules(treeID)
		require.NoError(t, err)
		require.Len(t, schedules, 1)

		require.NoError(t, c.DeleteWateringSchedule(schedules[0].ID))

		schedules, err = c.WateringSchedules(treeID)
		require.NoError(t, err)
		assert.Empty(t, schedules)
	})
}
