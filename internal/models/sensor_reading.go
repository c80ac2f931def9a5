package models

import "time"

// SensorReading is one temperature/humidity sample.
type SensorReading struct {
	Time        time.Time `json:"time"`
	Temperature float64   `json:"nhiet_do"` // °C
	Humidity    float64   `json:"do_am"`    // %
}
