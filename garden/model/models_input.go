package model

type TreeInput struct {
	Name string `json:"name"`
}

type TreeUpdateInput struct {
	Name *string `json:"name"`
	Date *string `json:"date"`
}

type ScheduleInput struct {
	DayOfWeek *int `json:"dayOfWeek"`
	StartHour *int `json:"startHour"`
	Duration  *int `json:"duration"`
}

type SampleInput struct {
	TreeID      int64    `json:"treeId"`
	Temperature *float64 `json:"temperature"`
	Light       *float64 `json:"light"`
	Moisture    *float64 `json:"moisture"`
	PumpStatus  int      `json:"pumpStatus"`
}

type PumpInput struct {
	State interface{} `json:"state"`
}

type StateInput struct {
	State string `json:"state"`
}
