package garden

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/verdantlab/treewatch-backend/garden/model"
)

// AllTrees returns every tracked tree joined with its plant, most
// recently planted first. Storage failures are logged and yield an
// empty list rather than an error.
func (c *controller) AllTrees() []model.TreeInfo {
	var trees []model.TreeInfo
	r := c.db.Model(&model.Tree{}).
		Select("trees.id, plants.id AS plant_id, plants.name, trees.date").
		Joins("JOIN plants ON trees.id_plants = plants.id").
		Order("trees.date DESC").
		Scan(&trees)
	if r.Error != nil {
		log.Println("error fetching trees:", r.Error)
		return []model.TreeInfo{}
	}

	return trees
}

func (c *controller) TreeByID(id uint64) (*model.TreeInfo, error) {
	var tree model.TreeInfo
	r := c.db.Model(&model.Tree{}).
		Select("trees.id, plants.id AS plant_id, plants.name, trees.date").
		Joins("JOIN plants ON trees.id_plants = plants.id").
		Where("trees.id = ?", id).
		Scan(&tree)
	if r.Error != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, r.Error)
	}
	if r.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: tree %d", ErrNotFound, id)
	}

	return &tree, nil
}

func (c *controller) TreeExists(id uint64) (bool, error) {
	var count int64
	r := c.db.Model(&model.Tree{}).Where("id = ?", id).Count(&count)
	if r.Error != nil {
		return false, fmt.Errorf("%w: %v", ErrStorage, r.Error)
	}

	return count > 0, nil
}

// CreateTree registers a new tree under the given plant name, creating
// the plant record on first use. The planted date is today.
func (c *controller) CreateTree(name string) error {
	if name == "" {
		return fmt.Errorf("%w: tree name is required", ErrInvalidInput)
	}

	date := Today()
	return c.db.Transaction(func(tx *gorm.DB) error {
		plantID, err := resolveOrCreatePlant(tx, name)
		if err != nil {
			return err
		}

		tree := model.Tree{
			PlantID: plantID,
			Date:    date,
		}
		if r := tx.Omit("Plant").Create(&tree); r.Error != nil {
			return fmt.Errorf("%w: %v", ErrStorage, r.Error)
		}

		return nil
	})
}

// UpdateTree applies a new plant name and/or planted date. A name equal
// to the current one counts as unchanged, so a supplied date still
// lands through the date-only branch.
func (c *controller) UpdateTree(id uint64, name *string, date *string) error {
	if name != nil && *name == "" {
		name = nil
	}
	if date != nil && *date == "" {
		date = nil
	}

	current, err := c.TreeByID(id)
	if err != nil {
		return err
	}

	if name == nil && date == nil {
		return nil
	}

	formattedDate := current.Date
	if date != nil {
		formattedDate, err = ParseDate(*date)
		if err != nil {
			return err
		}
	}

	if name != nil && *name != current.Name {
		return c.db.Transaction(func(tx *gorm.DB) error {
			plantID, err := resolveOrCreatePlant(tx, *name)
			if err != nil {
				return err
			}

			r := tx.Model(&model.Tree{}).Where("id = ?", id).
				Updates(map[string]interface{}{"id_plants": plantID, "date": formattedDate})
			if r.Error != nil {
				return fmt.Errorf("%w: %v", ErrStorage, r.Error)
			}

			return nil
		})
	}

	if formattedDate != current.Date {
		r := c.db.Model(&model.Tree{}).Where("id = ?", id).Update("date", formattedDate)
		if r.Error != nil {
			return fmt.Errorf("%w: %v", ErrStorage, r.Error)
		}
	}

	return nil
}

// DeleteTree removes a tree and, when it was the last tree of its
// plant, the plant record too. Watering schedules and sensor readings
// are kept.
func (c *controller) DeleteTree(id uint64) error {
	var tree model.Tree
	r := c.db.First(&tree, id)
	if errors.Is(r.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: tree %d", ErrNotFound, id)
	}
	if r.Error != nil {
		return fmt.Errorf("%w: %v", ErrStorage, r.Error)
	}

	return c.db.Transaction(func(tx *gorm.DB) error {
		if r := tx.Delete(&model.Tree{}, id); r.Error != nil {
			return fmt.Errorf("%w: %v", ErrStorage, r.Error)
		}

		return deletePlantIfUnreferenced(tx, tree.PlantID)
	})
}

// InsertReadings appends sensor reading rows in one batched insert.
func (c *controller) InsertReadings(readings []model.SensorReading) error {
	if len(readings) == 0 {
		return nil
	}

	if r := c.db.Create(&readings); r.Error != nil {
		return fmt.Errorf("%w: %v", ErrStorage, r.Error)
	}

	return nil
}
