package validate

import (
	"fmt"

	"github.com/akarl16/cycling-workouts/internal/jsonval"
	"github.com/akarl16/cycling-workouts/internal/ride"
)

// RideDocument decodes data as a single ride record and validates it.
func RideDocument(data []byte) []Error {
	r, err := ride.Decode(data)
	if err != nil {
		return []Error{{Kind: KindParseError, Message: fmt.Sprintf("invalid JSON: %v", err)}}
	}
	return Ride(r)
}

// Ride validates a ride tracking record: required fields, field types, and
// value constraints (non-negative numerics, workoutType enum).
func Ride(r *ride.Record) []Error {
	var v errs

	for _, f := range []struct {
		name    string
		present bool
	}{
		{"id", r.ID.Present()},
		{"date", r.Date.Present()},
		{"duration", r.Duration.Present()},
		{"distance", r.Distance.Present()},
	} {
		if !f.present {
			v.add(f.name, KindMissingField, "missing required field %q", f.name)
		}
	}

	checkStr := func(s jsonval.Str, name string) {
		if !s.Present() {
			return
		}
		if _, ok := s.Value(); !ok {
			v.add(name, KindInvalidValue, "field %q should be a string", name)
		}
	}
	checkStr(r.ID, "id")
	checkStr(r.Date, "date")
	checkStr(r.Notes, "notes")

	checkNum := func(n jsonval.Num, name string) {
		if !n.Present() {
			return
		}
		val, ok := n.Value()
		if !ok {
			v.add(name, KindInvalidValue, "field %q should be a number", name)
			return
		}
		if val < 0 {
			v.add(name, KindInvalidValue, "field %q should be >= 0, got %v", name, val)
		}
	}
	checkNum(r.Duration, "duration")
	checkNum(r.Distance, "distance")
	checkNum(r.AvgSpeed, "avgSpeed")
	checkNum(r.MaxSpeed, "maxSpeed")
	checkNum(r.ElevationGain, "elevationGain")

	checkInt := func(n jsonval.Int, name string) {
		if !n.Present() {
			return
		}
		val, ok := n.Value()
		if !ok {
			v.add(name, KindInvalidValue, "field %q should be an integer", name)
			return
		}
		if val < 0 {
			v.add(name, KindInvalidValue, "field %q should be >= 0, got %d", name, val)
		}
	}
	checkInt(r.AvgHeartRate, "avgHeartRate")
	checkInt(r.MaxHeartRate, "maxHeartRate")
	checkInt(r.AvgCadence, "avgCadence")
	checkInt(r.MaxCadence, "maxCadence")
	checkInt(r.AvgPower, "avgPower")
	checkInt(r.MaxPower, "maxPower")
	checkInt(r.Calories, "calories")

	if r.WorkoutType.Present() {
		if t, ok := r.WorkoutType.Value(); !ok || !ride.ValidWorkoutType(t) {
			v.add("workoutType", KindInvalidEnum,
				"workoutType must be one of %v, got %s", ride.WorkoutTypes, describe(r.WorkoutType))
		}
	}

	return v.list
}
