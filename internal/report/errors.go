package report

import (
	"fmt"
	"time"
)

// NoDataError means the Store holds no sensor reading for the requested day.
type NoDataError struct {
	Date time.Time
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no sensor data for %s", e.Date.Format(DateLayout))
}
