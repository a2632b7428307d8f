package garden

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantlab/treewatch-backend/garden/model"
)

func strPtr(s string) *string {
	return &s
}

func TestCreateTree(t *testing.T) {
	t.Run("rejects an empty name", func(t *testing.T) {
		c := newTestController(t)
		assert.ErrorIs(t, c.CreateTree(""), ErrInvalidInput)
	})

	t.Run("plants a tree dated today", func(t *testing.T) {
		c := newTestController(t)
		require.NoError(t, c.CreateTree("oak"))

		trees := c.AllTrees()
		require.Len(t, trees, 1)
		assert.Equal(t, "oak", trees[0].Name)
		assert.Equal(t, Today(), trees[0].Date)
	})

	t.Run("same-named trees share one plant", func(t *testing.T) {
		c := newTestController(t)
		require.NoError(t, c.CreateTree("oak"))
		require.NoError(t, c.CreateTree("oak"))

		trees := c.AllTrees()
		require.Len(t, trees, 2)
		assert.Equal(t, trees[0].PlantID, trees[1].PlantID)
		assert.EqualValues(t, 1, plantCount(t, c))
	})
}

func TestAllTrees(t *testing.T) {
	c := newTestController(t)

	require.NoError(t, c.CreateTree("oak"))
	require.NoError(t, c.CreateTree("birch"))
	require.NoError(t, c.CreateTree("maple"))

	// Spread the planted dates out so the ordering is observable.
	dates := map[string]string{"oak": "2023-01-10", "birch": "2024-06-01", "maple": "2022-11-30"}
	for name, date := range dates {
		r := c.DB().Exec("UPDATE trees SET date = ? WHERE id_plants = (SELECT id FROM plants WHERE name = ?)", date, name)
		require.NoError(t, r.Error)
	}

	trees := c.AllTrees()
	require.Len(t, trees, 3)
	assert.Equal(t, "birch", trees[0].Name)
	assert.Equal(t, "oak", trees[1].Name)
	assert.Equal(t, "maple", trees[2].Name)
}

func TestTreeByID(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.CreateTree("oak"))

	t.Run("returns the joined view", func(t *testing.T) {
		trees := c.AllTrees()
		require.Len(t, trees, 1)

		tree, err := c.TreeByID(trees[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "oak", tree.Name)
		assert.Equal(t, trees[0].PlantID, tree.PlantID)
	})

	t.Run("missing tree", func(t *testing.T) {
		_, err := c.TreeByID(999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUpdateTree(t *testing.T) {
	t.Run("missing tree", func(t *testing.T) {
		c := newTestController(t)
		assert.ErrorIs(t, c.UpdateTree(999, strPtr("oak"), nil), ErrNotFound)
	})

	t.Run("no fields is a no-op", func(t *testing.T) {
		c := newTestController(t)
		require.NoError(t, c.CreateTree("oak"))
		id := c.AllTrees()[0].ID

		require.NoError(t, c.UpdateTree(id, nil, nil))

		tree, err := c.TreeByID(id)
		require.NoError(t, err)
		assert.Equal(t, "oak", tree.Name)
		assert.Equal(t, Today(), tree.Date)
	})

	t.Run("unparseable date leaves the row untouched", func(t *testing.T) {
		c := newTestController(t)
		require.NoError(t, c.CreateTree("oak"))
		id := c.AllTrees()[0].ID

		err := c.UpdateTree(id, nil, strPtr("not a date"))
		assert.ErrorIs(t, err, ErrInvalidInput)

		tree, err := c.TreeByID(id)
		require.NoError(t, err)
		assert.Equal(t, Today(), tree.Date)
	})

	t.Run("same name still writes a new date", func(t *testing.T) {
		c := newTestController(t)
		require.NoError(t, c.CreateTree("oak"))
		before, err := c.TreeByID(c.AllTrees()[0].ID)
		require.NoError(t, err)

		require.NoError(t, c.UpdateTree(before.ID, strPtr("oak"), strPtr("2023-05-01")))

		after, err := c.TreeByID(before.ID)
		require.NoError(t, err)
		assert.Equal(t, "2023-05-01", after.Date)
		assert.Equal(t, before.PlantID, after.PlantID)
	})

	t.Run("new name repoints the plant", func(t *testing.T) {
		c := newTestController(t)
		require.NoError(t, c.CreateTree("oak"))
		before, err := c.TreeByID(c.AllTrees()[0].ID)
		require.NoError(t, err)

		require.NoError(t, c.UpdateTree(before.ID, strPtr("birch"), strPtr("2023-05-01")))

		after, err := c.TreeByID(before.ID)
		require.NoError(t, err)
		assert.Equal(t, "birch", after.Name)
		assert.Equal(t, "2023-05-01", after.Date)
		assert.NotEqual(t, before.PlantID, after.PlantID)

		// Renaming does not clean up the now-orphaned plant.
		var count int64
		require.NoError(t, c.DB().Model(&model.Plant{}).Where("name = ?", "oak").Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("normalizes the supplied date format", func(t *testing.T) {
		c := newTestController(t)
		require.NoError(t, c.CreateTree("oak"))
		id := c.AllTrees()[0].ID

		require.NoError(t, c.UpdateTree(id, nil, strPtr("March 5, 2024")))

		tree, err := c.TreeByID(id)
		require.NoError(t, err)
		assert.Equal(t, "2024-03-05", tree.Date)
	})
}

func TestDeleteTree(t *testing.T) {
	t.Run("missing tree", func(t *testing.T) {
		c := newTestController(t)
		assert.ErrorIs(t, c.DeleteTree(999), ErrNotFound)
	})

	t.Run("last tree removes its plant", func(t *testing.T) {
		c := newTestController(t)
		require.NoError(t, c.CreateTree("oak"))
		id := c.AllTrees()[0].ID

		require.NoError(t, c.DeleteTree(id))
		assert.Empty(t, c.AllTrees())
		assert.EqualValues(t, 0, plantCount(t, c))
	})

	t.Run("a shared plant survives", func(t *testing.T) {
		c := newTestController(t)
		require.NoError(t, c.CreateTree("oak"))
		require.NoError(t, c.CreateTree("oak"))

		require.NoError(t, c.DeleteTree(c.AllTrees()[0].ID))
		assert.Len(t, c.AllTrees(), 1)
		assert.EqualValues(t, 1, plantCount(t, c))
	})

	t.Run("schedules are not cascade-deleted", func(t *testing.T) {
		c := newTestController(t)
		require.NoError(t, c.CreateTree("oak"))
		id := c.AllTrees()[0].ID

		require.NoError(t, c.SetWateringSchedule(id, 2, 6, 30))
		require.NoError(t, c.DeleteTree(id))

		var count int64
		require.NoError(t, c.DB().Model(&model.WateringSchedule{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})
}
