package model

type Plant struct {
	ID   uint64 `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex"`
}

func (Plant) TableName() string {
	return "plants"
}

type Tree struct {
	ID      uint64 `json:"id" gorm:"primaryKey"`
	PlantID uint64 `json:"plantID" gorm:"column:id_plants;not null"`
	Plant   Plant  `json:"plant" gorm:"foreignKey:PlantID;references:ID"`
	Date    string `json:"date"`
}

func (Tree) TableName() string {
	return "trees"
}

type WateringSchedule struct {
	ID        uint64 `json:"id" gorm:"primaryKey"`
	TreeID    uint64 `json:"treeID" gorm:"column:tree_id;uniqueIndex:idx_watering_tree_day"`
	DayOfWeek int    `json:"dayOfWeek" gorm:"column:day_of_week;uniqueIndex:idx_watering_tree_day"`
	StartHour int    `json:"startHour" gorm:"column:start_hour"`
	Duration  int    `json:"duration"`
}

func (WateringSchedule) TableName() string {
	return "watering_schedule"
}

type SensorReading struct {
	TreeID     uint64  `json:"tree_id" gorm:"column:id_tree"`
	MetricName string  `json:"name" gorm:"column:metric_name"`
	Value      float64 `json:"value"`
	Date       string  `json:"date"`
	IsRunning  int     `json:"isRunning" gorm:"column:is_running"`
}

func (SensorReading) TableName() string {
	return "sensor_readings"
}

// TreeInfo is the joined tree+plant view returned by listings.
type TreeInfo struct {
	ID      uint64 `json:"id"`
	PlantID uint64 `json:"plant_id"`
	Name    string `json:"name"`
	Date    string `json:"date"`
}
