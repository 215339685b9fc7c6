package models

import "time"

// AlertRecord is a single dispatched alert.
type AlertRecord struct {
	Seq          int64           `json:"seq,omitempty"` // history position, 0 until stored
	ID           string          `json:"id"`
	OccurredAt   time.Time       `json:"occurred_at"`
	Target       Target          `json:"target"`
	Strategy     CoolingStrategy `json:"strategy"`
	Label        string          `json:"label,omitempty"`
	TemperatureC float64         `json:"temperature_c"` // °C
	Breach       Breach          `json:"breach"`
}
