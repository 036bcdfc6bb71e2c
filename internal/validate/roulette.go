package validate

import (
	"fmt"

	"github.com/akarl16/cycling-workouts/internal/workout"
)

// Slot enums.
var (
	intervalTypes  = []string{"work", "recovery"}
	durationRanges = []string{"short", "medium", "long"}
)

// checkRoulette validates a Melodic Roulette workout: reusable work block
// definitions plus an ordered list of playlist slots. The standard
// sequence/intervals shape rules do not apply in this mode.
func (v *workoutChecker) checkRoulette(w *workout.Workout) {
	switch {
	case !w.WorkBlockDefinitions.Present():
		v.add("", KindMissingField, "missing required field \"workBlockDefinitions\"")
	case !w.WorkBlockDefinitions.IsArray():
		v.add("workBlockDefinitions", KindInvalidValue, "'workBlockDefinitions' must be an array")
	case w.WorkBlockDefinitions.Len() == 0:
		v.add("workBlockDefinitions", KindEmptyBlock, "'workBlockDefinitions' must have at least one definition")
	default:
		for i, def := range w.WorkBlockDefinitions.Items {
			v.checkWorkBlockDef(def, fmt.Sprintf("workBlockDefinitions[%d]", i))
		}
	}

	switch {
	case !w.Slots.Present():
		v.add("", KindMissingField, "missing required field \"slots\"")
	case !w.Slots.IsArray():
		v.add("slots", KindInvalidValue, "'slots' must be an array")
	case w.Slots.Len() == 0:
		v.add("slots", KindEmptyBlock, "'slots' must have at least one slot")
	default:
		for i, slot := range w.Slots.Items {
			v.checkSlot(slot, fmt.Sprintf("slots[%d]", i))
		}
	}
}

func (v *workoutChecker) checkWorkBlockDef(def workout.WorkBlockDef, path string) {
	v.requireString(def.Name, joinPath(path, "name"))

	specs := 0
	for _, present := range []bool{def.PowerZone.Present(), def.PowerZoneRange.Present(), def.Alternating.Present()} {
		if present {
			specs++
		}
	}
	switch {
	case specs == 0:
		v.add(path, KindMissingField, "must have either 'powerZone', 'powerZoneRange', or 'alternating'")
	case specs > 1:
		v.add(path, KindConflictingFields, "cannot have more than one of 'powerZone', 'powerZoneRange', and 'alternating'")
	}

	if def.PowerZone.Present() {
		v.checkZone(def.PowerZone, joinPath(path, "powerZone"))
	}
	if def.PowerZoneRange.Present() {
		v.checkZoneRange(def.PowerZoneRange, joinPath(path, "powerZoneRange"))
	}
	if def.Alternating.Present() {
		v.checkAlternating(def.Alternating, joinPath(path, "alternating"))
	}
	v.checkCadence(def.Cadence, joinPath(path, "cadence"))
}

func (v *workoutChecker) checkSlot(slot workout.Slot, path string) {
	v.requireString(slot.ID, joinPath(path, "id"))
	v.recordID(slot.ID, joinPath(path, "id"))
	v.requireString(slot.PlaylistID, joinPath(path, "playlistId"))

	isWork := false
	if !slot.IntervalType.Present() {
		v.add(path, KindMissingField, "missing required field \"intervalType\"")
	} else if t, ok := slot.IntervalType.Value(); !ok || !contains(intervalTypes, t) {
		v.add(joinPath(path, "intervalType"), KindInvalidEnum,
			"intervalType must be 'work' or 'recovery', got %s", describe(slot.IntervalType))
	} else {
		isWork = t == "work"
	}

	if slot.DurationRange.Present() {
		if r, ok := slot.DurationRange.Value(); !ok || !contains(durationRanges, r) {
			v.add(joinPath(path, "durationRange"), KindInvalidEnum,
				"durationRange must be one of %v, got %s", durationRanges, describe(slot.DurationRange))
		}
	}

	// Power targets for work slots come from workBlockDefinitions; only
	// recovery slots may fix their own target or cadence.
	if slot.PowerZone.Present() && slot.PowerZoneRange.Present() {
		v.add(path, KindConflictingFields, "cannot have both 'powerZone' and 'powerZoneRange'")
	}
	if slot.PowerZone.Present() {
		if isWork {
			v.add(joinPath(path, "powerZone"), KindUnexpectedField,
				"powerZone not allowed for work slots (use workBlockDefinitions instead)")
		}
		v.checkZone(slot.PowerZone, joinPath(path, "powerZone"))
	}
	if slot.PowerZoneRange.Present() {
		if isWork {
			v.add(joinPath(path, "powerZoneRange"), KindUnexpectedField,
				"powerZoneRange not allowed for work slots (use workBlockDefinitions instead)")
		}
		v.checkZoneRange(slot.PowerZoneRange, joinPath(path, "powerZoneRange"))
	}
	if slot.Cadence.Present() {
		if isWork {
			v.add(joinPath(path, "cadence"), KindUnexpectedField,
				"cadence not allowed for work slots (use workBlockDefinitions instead)")
		}
		v.checkCadence(slot.Cadence, joinPath(path, "cadence"))
	}
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
