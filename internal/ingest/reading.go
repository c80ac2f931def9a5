package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"home_relay/internal/models"
)

// Accepted keys for each value, in order of preference.
var (
	temperatureKeys = []string{"temperature", "nhiet_do"}
	humidityKeys    = []string{"humidity", "do_am"}
)

// DecodeReading parses a JSON object carrying a temperature and a humidity.
// Values may be numbers or numeric strings. The reading time is left zero
// so the Store stamps it with the server clock.
func DecodeReading(payload []byte) (models.SensorReading, error) {
	var raw map[string]any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return models.SensorReading{}, fmt.Errorf("decode reading: %w", err)
	}
	temp, err := firstFloat(raw, temperatureKeys)
	if err != nil {
		return models.SensorReading{}, err
	}
	hum, err := firstFloat(raw, humidityKeys)
	if err != nil {
		return models.SensorReading{}, err
	}
	return models.SensorReading{Temperature: temp, Humidity: hum}, nil
}

func firstFloat(raw map[string]any, keys []string) (float64, error) {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok {
			continue
		}
		f, err := toFloat(v)
		if err != nil {
			return 0, fmt.Errorf("field %s: %w", k, err)
		}
		return f, nil
	}
	return 0, fmt.Errorf("missing field %s", strings.Join(keys, " or "))
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(x), 64)
	default:
		return 0, errors.New("not a number")
	}
}
