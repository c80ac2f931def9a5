package models

import "time"

// Relay ids accepted by the API.
const (
	MinRelayID = 1
	MaxRelayID = 4
)

// Relay actions, derived from the log an event is stored in.
const (
	ActionOn  = "ON"
	ActionOff = "OFF"
)

// Relay modes.
const (
	ModeAuto   = 0
	ModeManual = 1
)

// RelayEvent is a single on/off transition.
type RelayEvent struct {
	Relay  int       `json:"relay"`
	Action string    `json:"action"` // ON | OFF
	Time   time.Time `json:"time"`
}

// RelaySchedule is the daily switch-on time of a relay.
type RelaySchedule struct {
	Relay       int    `json:"relay"`
	OnTime      string `json:"on_time"` // HH:MM:SS
	DurationSec int    `json:"duration_s"`
}

type RelayStatus struct {
	Relay      int       `json:"relay"`
	Status     int       `json:"status"` // 0 off, 1 on
	UpdateTime time.Time `json:"update_time"`
}

type RelayMode struct {
	Relay      int       `json:"relay"`
	Mode       int       `json:"mode"` // 0 auto, 1 manual
	UpdateTime time.Time `json:"update_time"`
}

// ValidRelayID reports whether id addresses one of the installed relays.
func ValidRelayID(id int) bool {
	return id >= MinRelayID && id <= MaxRelayID
}
