package models

import "time"

// Threshold and over-limit kinds.
const (
	KindTemperature = "temp"
	KindHumidity    = "hum"
)

// Threshold is the accepted band for one measured quantity.
type Threshold struct {
	MinVal float64 `json:"min_val"`
	MaxVal float64 `json:"max_val"`
}

// OverLimitRecord is an alert posted by the device when a value left its band.
type OverLimitRecord struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}
