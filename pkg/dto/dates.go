// Package dto holds the wire shapes exchanged with the finance backend.
// Request and response payloads are kept separate from the in-memory
// domain entities; see pkg/mapper for the conversion.
package dto

import (
	"encoding/json"
	"time"
)

// Date layouts the backend is known to emit. Tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
}

const dateWireLayout = "2006-01-02"

// now is swapped out in tests.
var now = time.Now

// ApiDate is a date field that tolerates the three timestamp shapes the
// backend emits. Anything unparseable is normalized to the current time
// instead of failing the whole payload; Fallback records that this
// happened so callers can log it. Serializes as plain yyyy-MM-dd.
type ApiDate struct {
	time.Time
	Fallback bool
}

// NewApiDate wraps t for outgoing payloads.
func NewApiDate(t time.Time) ApiDate {
	return ApiDate{Time: t}
}

// UnmarshalJSON never returns an error: bad input falls back to now.
func (d *ApiDate) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		d.Time = now()
		d.Fallback = true
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t
			d.Fallback = false
			return nil
		}
	}
	d.Time = now()
	d.Fallback = true
	return nil
}

// MarshalJSON always emits yyyy-MM-dd regardless of the parsed precision.
func (d ApiDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateWireLayout))
}
