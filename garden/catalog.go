package garden

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/verdantlab/treewatch-backend/garden/model"
)

// ResolveOrCreatePlant returns the id of the plant with the given name,
// inserting a new row the first time the name is seen.
func (c *controller) ResolveOrCreatePlant(name string) (uint64, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: plant name is required", ErrInvalidInput)
	}

	var plantID uint64
	err := c.db.Transaction(func(tx *gorm.DB) error {
		id, err := resolveOrCreatePlant(tx, name)
		if err != nil {
			return err
		}
		plantID = id
		return nil
	})
	if err != nil {
		return 0, err
	}

	return plantID, nil
}

func resolveOrCreatePlant(tx *gorm.DB, name string) (uint64, error) {
	var plant model.Plant
	r := tx.Where("name = ?", name).First(&plant)
	if r.Error == nil {
		return plant.ID, nil
	}
	if !errors.Is(r.Error, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: %v", ErrStorage, r.Error)
	}

	plant = model.Plant{Name: name}
	if r := tx.Create(&plant); r.Error != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorage, r.Error)
	}

	return plant.ID, nil
}

// DeletePlantIfUnreferenced removes the plant row once no tree points
// at it anymore. Still-referenced or already-deleted plants are left
// alone.
func (c *controller) DeletePlantIfUnreferenced(plantID uint64) error {
	return deletePlantIfUnreferenced(c.db, plantID)
}

func deletePlantIfUnreferenced(tx *gorm.DB, plantID uint64) error {
	var count int64
	r := tx.Model(&model.Tree{}).Where("id_plants = ?", plantID).Count(&count)
	if r.Error != nil {
		return fmt.Errorf("%w: %v", ErrStorage, r.Error)
	}
	if count > 0 {
		return nil
	}

	if r := tx.Delete(&model.Plant{}, plantID); r.Error != nil {
		return fmt.Errorf("%w: %v", ErrStorage, r.Error)
	}

	return nil
}
