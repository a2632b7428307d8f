package garden

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/verdantlab/treewatch-backend/garden/model"
)

// SetWateringSchedule stores the watering window for a tree on one day
// of the week. A tree has at most one window per day, so a second write
// for the same day overwrites the existing one.
func (c *controller) SetWateringSchedule(treeID uint64, dayOfWeek, startHour, duration int) error {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return fmt.Errorf("%w: day of week must be between 0 (Sunday) and 6 (Saturday)", ErrInvalidInput)
	}
	if startHour < 0 || startHour > 23 {
		return fmt.Errorf("%w: start hour must be between 0 and 23", ErrInvalidInput)
	}
	if duration <= 0 {
		return fmt.Errorf("%w: duration must be greater than 0", ErrInvalidInput)
	}

	exists, err := c.TreeExists(treeID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: tree %d", ErrNotFound, treeID)
	}

	return c.db.Transaction(func(tx *gorm.DB) error {
		var existing model.WateringSchedule
		r := tx.Where("tree_id = ? AND day_of_week = ?", treeID, dayOfWeek).First(&existing)
		if r.Error == nil {
			r = tx.Model(&model.WateringSchedule{}).Where("id = ?", existing.ID).
				Updates(map[string]interface{}{"start_hour": startHour, "duration": duration})
			if r.Error != nil {
				return fmt.Errorf("%w: %v", ErrStorage, r.Error)
			}
			return nil
		}
		if !errors.Is(r.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %v", ErrStorage, r.Error)
		}

		schedule := model.WateringSchedule{
			TreeID:    treeID,
			DayOfWeek: dayOfWeek,
			StartHour: startHour,
			Duration:  duration,
		}
		if r := tx.Create(&schedule); r.Error != nil {
			return fmt.Errorf("%w: %v", ErrStorage, r.Error)
		}

		return nil
	})
}

// WateringSchedules lists a tree's watering windows ordered by day of
// week, then start hour.
func (c *controller) WateringSchedules(treeID uint64) ([]model.WateringSchedule, error) {
	exists, err := c.TreeExists(treeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: tree %d", ErrNotFound, treeID)
	}

	var schedules []model.WateringSchedule
	r := c.db.Where("tree_id = ?", treeID).
		Order("day_of_week, start_hour").
		Find(&schedules)
	if r.Error != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, r.Error)
	}

	return schedules, nil
}

func (c *controller) DeleteWateringSchedule(scheduleID uint64) error {
	var schedule model.WateringSchedule
	r := c.db.First(&schedule, scheduleID)
	if errors.Is(r.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: schedule %d", ErrNotFound, scheduleID)
	}
	if r.Error != nil {
		return fmt.Errorf("%w: %v", ErrStorage, r.Error)
	}

	if r := c.db.Delete(&model.WateringSchedule{}, scheduleID); r.Error != nil {
		return fmt.Errorf("%w: %v", ErrStorage, r.Error)
	}

	return nil
}
