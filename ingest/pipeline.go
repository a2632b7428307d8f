package ingest

import (
	"fmt"
	"log"

	"github.com/verdantlab/treewatch-backend/garden"
	"github.com/verdantlab/treewatch-backend/garden/model"
)

// Tree the readings are filed under when a device reports none.
const defaultTreeID = 1

// Pipeline validates and normalizes raw field-device telemetry before
// it is stored as sensor readings.
type Pipeline struct {
	controller garden.Controller
}

func New(controller garden.Controller) *Pipeline {
	return &Pipeline{
		controller: controller,
	}
}

// QueryInput carries the raw query-string values pushed by the ESP
// firmware. Everything arrives as a string and may be missing.
type QueryInput struct {
	Temperature string
	Light       string
	Moisture    string
	TreeID      string
	IsRunning   string
}

// InsertedReading echoes one stored reading back to the device.
type InsertedReading struct {
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	TreeID    uint64  `json:"tree_id"`
	Date      string  `json:"date"`
	IsRunning int     `json:"isRunning"`
}

type Result struct {
	TreeID    uint64
	Date      string
	IsRunning int
	Inserted  []InsertedReading
}

// IngestFromQuery validates and stores a query-style telemetry push.
// Missing or malformed identifiers fall back to defaults; metrics that
// do not parse are dropped rather than failing the whole push.
func (p *Pipeline) IngestFromQuery(in QueryInput) (*Result, error) {
	treeID := int64(defaultTreeID)
	if in.TreeID != "" {
		parsed, ok := parseIntPrefix(in.TreeID)
		if !ok {
			log.Printf("invalid tree id %q, using default %d", in.TreeID, defaultTreeID)
		} else {
			treeID = parsed
		}
	}

	isRunning := 0
	if in.IsRunning != "" {
		if parsed, ok := parseIntPrefix(in.IsRunning); ok {
			isRunning = int(parsed)
		}
	}

	if treeID <= 0 {
		return nil, fmt.Errorf("%w: tree id must be greater than 0", garden.ErrInvalidInput)
	}

	metrics := surviving([]metricField{
		parseMetric("temperature", in.Temperature),
		parseMetric("light", in.Light),
		parseMetric("moisture", in.Moisture),
	})
	if len(metrics) == 0 {
		return nil, fmt.Errorf("%w: no valid sensor data received", garden.ErrInvalidInput)
	}

	exists, err := p.controller.TreeExists(uint64(treeID))
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: tree %d", garden.ErrNotFound, treeID)
	}

	return p.store(uint64(treeID), isRunning, metrics)
}

// IngestFromBody stores a structured telemetry sample. Unlike the query
// path there is no tree-existence check, and the pump status is stored
// exactly as supplied.
func (p *Pipeline) IngestFromBody(in model.SampleInput) (*Result, error) {
	if in.TreeID <= 0 {
		return nil, fmt.Errorf("%w: invalid tree id", garden.ErrInvalidInput)
	}

	metrics := surviving([]metricField{
		metricFromNumber("temperature", in.Temperature),
		metricFromNumber("light", in.Light),
		metricFromNumber("moisture", in.Moisture),
	})
	if len(metrics) == 0 {
		return nil, fmt.Errorf("%w: no valid sensor data received", garden.ErrInvalidInput)
	}

	return p.store(uint64(in.TreeID), in.PumpStatus, metrics)
}

func (p *Pipeline) store(treeID uint64, isRunning int, metrics []metricField) (*Result, error) {
	date := garden.Today()

	readings := make([]model.SensorReading, len(metrics))
	inserted := make([]InsertedReading, len(metrics))
	for i, m := range metrics {
		readings[i] = model.SensorReading{
			TreeID:     treeID,
			MetricName: m.name,
			Value:      m.value,
			Date:       date,
			IsRunning:  isRunning,
		}
		inserted[i] = InsertedReading{
			Name:      m.name,
			Value:     m.value,
			TreeID:    treeID,
			Date:      date,
			IsRunning: isRunning,
		}
	}

	if err := p.controller.InsertReadings(readings); err != nil {
		return nil, err
	}

	return &Result{
		TreeID:    treeID,
		Date:      date,
		IsRunning: isRunning,
		Inserted:  inserted,
	}, nil
}
