// Package ride models ride tracking records: flat summaries of completed
// rides (date, duration, distance, averages) as produced by the CSV
// converter. Interval workout templates live in internal/workout.
package ride

import (
	"encoding/json"

	"github.com/akarl16/cycling-workouts/internal/jsonval"
)

// WorkoutTypes is the allowed set for the workoutType field.
var WorkoutTypes = []string{
	"recovery", "endurance", "tempo", "threshold", "interval", "race", "other",
}

// ValidWorkoutType reports whether s is an allowed workout type.
func ValidWorkoutType(s string) bool {
	for _, t := range WorkoutTypes {
		if s == t {
			return true
		}
	}
	return false
}

// Record is a single ride tracking document. Required: id, date, duration,
// distance. Decoding is tolerant; validation reports mistyped fields.
type Record struct {
	ID          jsonval.Str `json:"id"`
	Date        jsonval.Str `json:"date"`
	WorkoutType jsonval.Str `json:"workoutType"`
	Notes       jsonval.Str `json:"notes"`

	Duration      jsonval.Num `json:"duration"` // minutes
	Distance      jsonval.Num `json:"distance"` // km
	AvgSpeed      jsonval.Num `json:"avgSpeed"`
	MaxSpeed      jsonval.Num `json:"maxSpeed"`
	ElevationGain jsonval.Num `json:"elevationGain"`

	AvgHeartRate jsonval.Int `json:"avgHeartRate"`
	MaxHeartRate jsonval.Int `json:"maxHeartRate"`
	AvgCadence   jsonval.Int `json:"avgCadence"`
	MaxCadence   jsonval.Int `json:"maxCadence"`
	AvgPower     jsonval.Int `json:"avgPower"`
	MaxPower     jsonval.Int `json:"maxPower"`
	Calories     jsonval.Int `json:"calories"`
}

// Decode parses a single ride record document.
func Decode(data []byte) (*Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
