package garden

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/verdantlab/treewatch-backend/garden/model"
)

type Controller interface {
	DB() *gorm.DB

	ResolveOrCreatePlant(name string) (uint64, error)
	DeletePlantIfUnreferenced(plantID uint64) error

	AllTrees() []model.TreeInfo
	TreeByID(id uint64) (*model.TreeInfo, error)
	TreeExists(id uint64) (bool, error)
	CreateTree(name string) error
	UpdateTree(id uint64, name *string, date *string) error
	DeleteTree(id uint64) error

	SetWateringSchedule(treeID uint64, dayOfWeek, startHour, duration int) error
	WateringSchedules(treeID uint64) ([]model.WateringSchedule, error)
	DeleteWateringSchedule(scheduleID uint64) error

	InsertReadings(readings []model.SensorReading) error
}

type controller struct {
	db *gorm.DB
}

func NewController(settings Settings) (Controller, error) {

	db, err := gorm.Open(sqlite.Open(settings.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	r := db.Exec("PRAGMA foreign_keys = ON", nil)
	if r.Error != nil {
		return nil, r.Error
	}

	db.AutoMigrate(&model.Plant{})
	db.AutoMigrate(&model.Tree{})
	db.AutoMigrate(&model.WateringSchedule{})
	db.AutoMigrate(&model.SensorReading{})

	c := controller{
		db: db,
	}

	return &c, nil
}

func (c *controller) DB() *gorm.DB {
	return c.db
}
