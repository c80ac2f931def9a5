package handlers

import (
	"time"

	"home_relay/internal/models"
)

// MessageResponse acknowledges a write.
type MessageResponse struct {
	Msg string `json:"msg" example:"saved"`
}

// ErrorResponse is the body of every 4xx/5xx answer.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid body"`
}

// StatusResponse is the body of /health.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// EnvRequest documents the post_env payload.
// The device keys nhiet_do/do_am are accepted as aliases.
type EnvRequest struct {
	Temperature float64 `json:"temperature" example:"25.5"`
	Humidity    float64 `json:"humidity" example:"61"`
}

// ThresholdRequest is the accepted band of one quantity.
type ThresholdRequest struct {
	MinVal *float64 `json:"min_val" binding:"required" example:"18"`
	MaxVal *float64 `json:"max_val" binding:"required" example:"30"`
}

// ScheduleRequest is the daily switch-on time of a relay.
type ScheduleRequest struct {
	OnTime      string `json:"on_time" binding:"required" example:"06:30:00"`
	DurationSec int    `json:"duration_s" binding:"required" example:"900"`
}

// RelayStatusRequest switches a relay off (0) or on (1).
type RelayStatusRequest struct {
	Status *int `json:"status" binding:"required" example:"1"`
}

// RelayModeRequest selects auto (0) or manual (1) mode.
type RelayModeRequest struct {
	Mode *int `json:"mode" binding:"required" example:"1"`
}

// ReportRequest asks for the report of one day.
type ReportRequest struct {
	Email string `json:"email" example:"ops@example.com"`
	Date  string `json:"date" binding:"required" example:"10-01-2024"`
}

// RelayLogResponse lists the on/off events of one day.
type RelayLogResponse struct {
	Date   string              `json:"date" example:"10-01-2024"`
	Count  int                 `json:"count"`
	Events []models.RelayEvent `json:"events"`
}

// SensorReadingResponse documents one element of get_env.
type SensorReadingResponse struct {
	Time        time.Time `json:"time"`
	Temperature float64   `json:"nhiet_do" example:"25.5"`
	Humidity    float64   `json:"do_am" example:"61"`
}
