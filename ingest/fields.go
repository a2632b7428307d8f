package ingest

import (
	"log"
	"math"
	"strconv"
	"strings"
)

// Tagged outcome of parsing one loosely-typed telemetry field.
type fieldStatus int

const (
	fieldOK fieldStatus = iota
	fieldSkip
	fieldInvalid
)

type metricField struct {
	name   string
	status fieldStatus
	value  float64
}

// parseMetric classifies a raw query value: an absent field is skipped,
// a finite float is usable, anything else is invalid.
func parseMetric(name, raw string) metricField {
	if raw == "" {
		return metricField{name: name, status: fieldSkip}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return metricField{name: name, status: fieldInvalid}
	}

	return metricField{name: name, status: fieldOK, value: v}
}

func metricFromNumber(name string, v *float64) metricField {
	if v == nil {
		return metricField{name: name, status: fieldSkip}
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return metricField{name: name, status: fieldInvalid}
	}

	return metricField{name: name, status: fieldOK, value: *v}
}

// parseIntPrefix reads the leading optional sign and digit run of a
// string, ignoring whatever the firmware appends after it ("3.5" and
// "3abc" both parse as 3).
func parseIntPrefix(raw string) (int64, bool) {
	s := strings.TrimSpace(raw)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, false
	}

	v, err := strconv.ParseInt(s[:j], 10, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

// surviving drops skipped and invalid fields. Invalid values are worth
// a log line since the device sent garbage, not nothing.
func surviving(fields []metricField) []metricField {
	kept := make([]metricField, 0, len(fields))
	for _, f := range fields {
		switch f.status {
		case fieldOK:
			kept = append(kept, f)
		case fieldInvalid:
			log.Printf("dropping invalid %s value", f.name)
		}
	}

	return kept
}
