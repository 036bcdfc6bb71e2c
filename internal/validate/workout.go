package validate

import (
	"fmt"

	"github.com/akarl16/cycling-workouts/internal/jsonval"
	"github.com/akarl16/cycling-workouts/internal/workout"
)

const (
	cadenceMin = 40
	cadenceMax = 150
)

// Document decodes data as a single workout object and validates it. Input
// that is not valid JSON yields a single ParseError finding.
func Document(data []byte) []Error {
	w, err := workout.Decode(data)
	if err != nil {
		return []Error{{Kind: KindParseError, Message: fmt.Sprintf("invalid JSON: %v", err)}}
	}
	return Workout(w)
}

// Workout validates a decoded workout document and returns every finding in
// document order. An empty result means the document is valid.
func Workout(w *workout.Workout) []Error {
	v := &workoutChecker{seen: map[string]bool{}}

	v.requireString(w.ID, "id")
	v.requireString(w.Name, "name")

	if w.Mode.Present() {
		mode, ok := w.Mode.Value()
		switch {
		case ok && mode == workout.ModeMelodicRoulette:
			v.checkRoulette(w)
			v.checkTheme(w)
			return v.list
		default:
			v.add("mode", KindInvalidEnum, "mode must be %q, got %s", workout.ModeMelodicRoulette, describe(w.Mode))
		}
	}

	hasSequence := w.Sequence.Present()
	hasIntervals := w.Intervals.Present()
	hasBlocks := w.Blocks.Present()

	switch {
	case !hasSequence && !hasIntervals:
		v.add("", KindMissingField, "workout must have either 'sequence' or 'intervals'")
	case hasSequence && hasIntervals:
		v.add("", KindConflictingFields, "'sequence' and legacy 'intervals' are mutually exclusive")
	}
	if hasSequence && hasBlocks {
		v.add("", KindConflictingFields, "'sequence' and legacy 'blocks' are mutually exclusive")
	}

	if hasSequence {
		if !w.Sequence.IsArray() {
			v.add("sequence", KindInvalidValue, "'sequence' must be an array")
		}
		for i, item := range w.Sequence.Items {
			v.checkSequenceItem(item, fmt.Sprintf("sequence[%d]", i))
		}
	}
	if hasIntervals {
		if !w.Intervals.IsArray() {
			v.add("intervals", KindInvalidValue, "'intervals' must be an array")
		}
		for i, iv := range w.Intervals.Items {
			v.checkInterval(iv, fmt.Sprintf("intervals[%d]", i), false)
		}
	}
	if hasBlocks {
		if !w.Blocks.IsArray() {
			v.add("blocks", KindInvalidValue, "'blocks' must be an array")
		}
		for i, b := range w.Blocks.Items {
			v.checkBlock(b, fmt.Sprintf("blocks[%d]", i), false)
		}
	}

	v.checkTotalDuration(w)
	v.checkTheme(w)

	return v.list
}

type workoutChecker struct {
	errs

	// seen tracks every interval and block id in the document, so the Nth
	// occurrence past the first yields a DuplicateId at the offending path.
	seen map[string]bool
}

func (v *workoutChecker) requireString(s jsonval.Str, path string) {
	if !s.Present() {
		v.add(path, KindMissingField, "missing required field %q", lastSegment(path))
		return
	}
	if val, ok := s.Value(); !ok || val == "" {
		v.add(path, KindMissingField, "%q must be a non-empty string", lastSegment(path))
	}
}

func (v *workoutChecker) recordID(s jsonval.Str, path string) {
	id, ok := s.Value()
	if !ok || id == "" {
		return
	}
	if v.seen[id] {
		v.add(path, KindDuplicateID, "duplicate id %q", id)
		return
	}
	v.seen[id] = true
}

func (v *workoutChecker) checkSequenceItem(item workout.SequenceItem, path string) {
	switch item.Kind {
	case workout.KindInterval:
		v.checkInterval(item.Interval, path, true)
	case workout.KindBlock:
		v.checkBlock(item.Block, path, true)
	default:
		if !item.Type.Present() {
			v.add(path, KindMissingField, "missing 'type' field")
			return
		}
		v.add(joinPath(path, "type"), KindInvalidEnum,
			"type must be 'interval' or 'block', got %s", describe(item.Type))
	}
}

// checkInterval applies the uniform interval rules. inSequence distinguishes
// the positional 'type' rule: sequence entries carry it, nested and legacy
// intervals must not.
func (v *workoutChecker) checkInterval(iv workout.Interval, path string, inSequence bool) {
	if !inSequence && iv.Type.Present() {
		v.add(joinPath(path, "type"), KindUnexpectedField, "unexpected 'type' field")
	}

	v.requireString(iv.ID, joinPath(path, "id"))
	v.requireString(iv.Name, joinPath(path, "name"))
	v.recordID(iv.ID, joinPath(path, "id"))

	if !iv.Duration.Present() {
		v.add(path, KindMissingField, "missing required field \"duration\"")
	} else if d, ok := iv.Duration.Value(); !ok || d < 1 {
		v.add(joinPath(path, "duration"), KindInvalidDuration, "duration must be a positive integer")
	}

	hasZone := iv.PowerZone.Present()
	hasRange := iv.PowerZoneRange.Present()
	hasAlt := iv.Alternating.Present()

	switch {
	case hasAlt && hasRange:
		v.add(path, KindConflictingFields, "'powerZoneRange' cannot be combined with 'alternating'")
	case !hasAlt && !hasZone && !hasRange:
		v.add(path, KindMissingField, "must have either 'powerZone' or 'powerZoneRange'")
	case !hasAlt && hasZone && hasRange:
		v.add(path, KindConflictingFields, "cannot have both 'powerZone' and 'powerZoneRange'")
	}

	if hasZone {
		v.checkZone(iv.PowerZone, joinPath(path, "powerZone"))
	}
	if hasRange {
		v.checkZoneRange(iv.PowerZoneRange, joinPath(path, "powerZoneRange"))
	}
	if hasAlt {
		v.checkAlternating(iv.Alternating, joinPath(path, "alternating"))
	}

	v.checkCadence(iv.Cadence, joinPath(path, "cadence"))

	if iv.Notes.Present() {
		if _, ok := iv.Notes.Value(); !ok {
			v.add(joinPath(path, "notes"), KindInvalidValue, "notes must be a string")
		}
	}
}

func (v *workoutChecker) checkBlock(b workout.Block, path string, inSequence bool) {
	if !inSequence && b.Type.Present() {
		v.add(joinPath(path, "type"), KindUnexpectedField, "unexpected 'type' field")
	}

	v.requireString(b.ID, joinPath(path, "id"))
	v.requireString(b.Name, joinPath(path, "name"))
	v.recordID(b.ID, joinPath(path, "id"))

	if !b.Repetitions.Present() {
		v.add(path, KindMissingField, "missing required field \"repetitions\"")
	} else if r, ok := b.Repetitions.Value(); !ok || r < 1 {
		v.add(joinPath(path, "repetitions"), KindInvalidRepetitions, "repetitions must be a positive integer")
	}

	switch {
	case !b.Intervals.Present():
		v.add(path, KindMissingField, "missing required field \"intervals\"")
	case !b.Intervals.IsArray():
		v.add(joinPath(path, "intervals"), KindInvalidValue, "intervals must be an array")
	case b.Intervals.Len() == 0:
		v.add(joinPath(path, "intervals"), KindEmptyBlock, "intervals array cannot be empty")
	default:
		for i, iv := range b.Intervals.Items {
			v.checkInterval(iv, fmt.Sprintf("%s.intervals[%d]", path, i), false)
		}
	}
}

func (v *workoutChecker) checkZone(z workout.ZoneRef, path string) {
	if _, err := z.Value(); err != nil {
		v.add(path, KindInvalidPowerZone, "%v", err)
	}
}

func (v *workoutChecker) checkZoneRange(r workout.ZoneRange, path string) {
	if !r.IsObject() {
		v.add(path, KindInvalidValue, "powerZoneRange must be an object")
		return
	}
	if !r.Start.Present() {
		v.add(path, KindMissingField, "powerZoneRange missing 'start'")
	} else {
		v.checkZone(r.Start, joinPath(path, "start"))
	}
	if !r.End.Present() {
		v.add(path, KindMissingField, "powerZoneRange missing 'end'")
	} else {
		v.checkZone(r.End, joinPath(path, "end"))
	}
}

func (v *workoutChecker) checkAlternating(a workout.Alternating, path string) {
	if !a.IsObject() {
		v.add(path, KindInvalidValue, "alternating must be an object")
		return
	}
	if !a.PowerZoneA.Present() {
		v.add(path, KindMissingField, "missing 'powerZoneA'")
	} else {
		v.checkZone(a.PowerZoneA, joinPath(path, "powerZoneA"))
	}
	if !a.PowerZoneB.Present() {
		v.add(path, KindMissingField, "missing 'powerZoneB'")
	} else {
		v.checkZone(a.PowerZoneB, joinPath(path, "powerZoneB"))
	}
	v.checkCadence(a.CadenceA, joinPath(path, "cadenceA"))
	v.checkCadence(a.CadenceB, joinPath(path, "cadenceB"))
	if a.StartWithZone.Present() {
		if s, ok := a.StartWithZone.Value(); !ok || (s != "A" && s != "B") {
			v.add(joinPath(path, "startWithZone"), KindInvalidEnum,
				"startWithZone must be \"A\" or \"B\", got %s", describe(a.StartWithZone))
		}
	}
}

func (v *workoutChecker) checkCadence(c jsonval.Int, path string) {
	if !c.Present() {
		return
	}
	if n, ok := c.Value(); !ok || n < cadenceMin || n > cadenceMax {
		v.add(path, KindInvalidCadence,
			"cadence must be an integer between %d and %d", cadenceMin, cadenceMax)
	}
}

func (v *workoutChecker) checkTheme(w *workout.Workout) {
	if !w.Theme.Present() {
		return
	}
	if t, ok := w.Theme.Value(); !ok || !workout.ValidTheme(t) {
		v.add("theme", KindInvalidEnum, "theme must be one of %v, got %s", workout.Themes, describe(w.Theme))
	}
}

// checkTotalDuration reconciles a declared totalDuration against the sum of
// resolved interval durations. Durations or repetitions that failed earlier
// checks contribute zero, so this check still runs and reports independently.
func (v *workoutChecker) checkTotalDuration(w *workout.Workout) {
	if !w.TotalDuration.Present() {
		return
	}
	declared, ok := w.TotalDuration.Value()
	if !ok || declared < 0 {
		v.add("totalDuration", KindInvalidDuration, "totalDuration must be a non-negative integer")
		return
	}

	computed := w.ResolvedDuration()
	if computed != declared {
		v.addError(Error{
			Path:     "totalDuration",
			Kind:     KindDurationMismatch,
			Message:  fmt.Sprintf("totalDuration is %d but resolved durations sum to %d", declared, computed),
			Expected: computed,
			Actual:   declared,
		})
	}
}

// describe renders a field's string value for error messages, quoting
// strings and noting mistyped values.
func describe(s jsonval.Str) string {
	if val, ok := s.Value(); ok {
		return fmt.Sprintf("%q", val)
	}
	return "a non-string value"
}

func lastSegment(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' || path[i] == ']' {
			return path[i+1:]
		}
	}
	return path
}
