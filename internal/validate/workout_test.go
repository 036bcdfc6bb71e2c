package validate

import (
	"fmt"
	"testing"
)

func kinds(list []Error) []Kind {
	out := make([]Kind, len(list))
	for i, e := range list {
		out[i] = e.Kind
	}
	return out
}

func countKind(list []Error, k Kind) int {
	n := 0
	for _, e := range list {
		if e.Kind == k {
			n++
		}
	}
	return n
}

func findKind(t *testing.T, list []Error, k Kind) Error {
	t.Helper()
	for _, e := range list {
		if e.Kind == k {
			return e
		}
	}
	t.Fatalf("no %s error in %v", k, kinds(list))
	return Error{}
}

// TestValidSequenceWorkout verifies that a conforming sequence-format
// document produces no findings.
func TestValidSequenceWorkout(t *testing.T) {
	doc := `{
		"id": "sweet-spot-builder",
		"name": "Sweet Spot Builder",
		"description": "Two sweet spot efforts with recovery",
		"theme": "default",
		"totalDuration": 1800,
		"sequence": [
			{"type": "interval", "id": "warmup", "name": "Warmup", "duration": 600, "powerZone": 2, "cadence": 90},
			{"type": "block", "id": "main", "name": "Main Set", "repetitions": 2, "intervals": [
				{"id": "work", "name": "Sweet Spot", "duration": 300, "powerZone": "Z4-"},
				{"id": "rest", "name": "Recovery", "duration": 120, "powerZone": "Zone 1"}
			]},
			{"type": "interval", "id": "cooldown", "name": "Cooldown", "duration": 360,
				"powerZoneRange": {"start": "Z2", "end": "Z1"}}
		]
	}`
	if errs := Document([]byte(doc)); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

// TestValidLegacyWorkout verifies the legacy intervals/blocks format.
func TestValidLegacyWorkout(t *testing.T) {
	doc := `{
		"id": "legacy-ride",
		"name": "Legacy Ride",
		"intervals": [
			{"id": "a", "name": "Steady", "duration": 1200, "powerZone": 3}
		],
		"blocks": [
			{"id": "b", "name": "Surges", "repetitions": 4, "intervals": [
				{"id": "b-on", "name": "On", "duration": 30, "powerZone": "Z6"},
				{"id": "b-off", "name": "Off", "duration": 90, "powerZone": 1}
			]}
		]
	}`
	if errs := Document([]byte(doc)); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestParseErrorShortCircuits(t *testing.T) {
	errs := Document([]byte(`{"id": "x",`))
	if len(errs) != 1 {
		t.Fatalf("errors = %d, want 1", len(errs))
	}
	if errs[0].Kind != KindParseError {
		t.Errorf("kind = %s, want ParseError", errs[0].Kind)
	}
}

func TestMissingTopLevelFields(t *testing.T) {
	errs := Document([]byte(`{"sequence": []}`))
	if countKind(errs, KindMissingField) != 2 {
		t.Errorf("expected 2 MissingField (id, name), got %v", errs)
	}
}

// TestSequenceIntervalsConflict: a document supplying both sequence and
// legacy intervals is rejected with ConflictingFields.
func TestSequenceIntervalsConflict(t *testing.T) {
	doc := `{
		"id": "w", "name": "W",
		"sequence": [{"type": "interval", "id": "a", "name": "A", "duration": 60, "powerZone": 2}],
		"intervals": [{"id": "b", "name": "B", "duration": 60, "powerZone": 2}]
	}`
	errs := Document([]byte(doc))
	if countKind(errs, KindConflictingFields) != 1 {
		t.Errorf("expected one ConflictingFields, got %v", errs)
	}
}

func TestNeitherSequenceNorIntervals(t *testing.T) {
	errs := Document([]byte(`{"id": "w", "name": "W"}`))
	if countKind(errs, KindMissingField) != 1 {
		t.Errorf("expected one MissingField, got %v", errs)
	}
}

// TestDuplicateIDs: N occurrences of an id past the first yield N-1 errors,
// each at the offending path, including collisions across blocks.
func TestDuplicateIDs(t *testing.T) {
	doc := `{
		"id": "w", "name": "W",
		"sequence": [
			{"type": "interval", "id": "x", "name": "One", "duration": 60, "powerZone": 2},
			{"type": "interval", "id": "x", "name": "Two", "duration": 60, "powerZone": 2},
			{"type": "block", "id": "blk", "name": "Block", "repetitions": 2, "intervals": [
				{"id": "x", "name": "Three", "duration": 60, "powerZone": 2}
			]}
		]
	}`
	errs := Document([]byte(doc))
	if countKind(errs, KindDuplicateID) != 2 {
		t.Fatalf("expected 2 DuplicateId, got %v", errs)
	}
	var paths []string
	for _, e := range errs {
		if e.Kind == KindDuplicateID {
			paths = append(paths, e.Path)
		}
	}
	if paths[0] != "sequence[1].id" {
		t.Errorf("first duplicate path = %q", paths[0])
	}
	if paths[1] != "sequence[2].intervals[0].id" {
		t.Errorf("second duplicate path = %q", paths[1])
	}
}

// TestPowerZoneGrammar checks the accepted and rejected zone spellings
// through a full document.
func TestPowerZoneGrammar(t *testing.T) {
	intervalDoc := func(zone string) string {
		return fmt.Sprintf(`{
			"id": "w", "name": "W",
			"sequence": [{"type": "interval", "id": "i", "name": "I", "duration": 60, "powerZone": %s}]
		}`, zone)
	}

	for _, z := range []string{`"Z1"`, `"z7"`, `"Zone 4"`, `"Z3+"`, `"5-"`, `"3"`, `2`, `7`} {
		if errs := Document([]byte(intervalDoc(z))); countKind(errs, KindInvalidPowerZone) != 0 {
			t.Errorf("powerZone %s: unexpected InvalidPowerZone: %v", z, errs)
		}
	}
	for _, z := range []string{`"Z0"`, `"Z8"`, `"zone"`, `"8"`, `"3++"`, `0`, `8`, `3.5`, `true`} {
		if errs := Document([]byte(intervalDoc(z))); countKind(errs, KindInvalidPowerZone) == 0 {
			t.Errorf("powerZone %s: expected InvalidPowerZone, got %v", z, errs)
		}
	}
}

func TestPowerZoneRangeEndinvalid(t *testing.T) {
	doc := `{
		"id": "w", "name": "W",
		"sequence": [{"type": "interval", "id": "i", "name": "I", "duration": 60,
			"powerZoneRange": {"start": "Z2", "end": "Z9"}}]
	}`
	errs := Document([]byte(doc))
	e := findKind(t, errs, KindInvalidPowerZone)
	if e.Path != "sequence[0].powerZoneRange.end" {
		t.Errorf("path = %q", e.Path)
	}
}

func TestPowerZoneRangeMissingEnd(t *testing.T) {
	doc := `{
		"id": "w", "name": "W",
		"sequence": [{"type": "interval", "id": "i", "name": "I", "duration": 60,
			"powerZoneRange": {"start": "Z2"}}]
	}`
	errs := Document([]byte(doc))
	if countKind(errs, KindMissingField) != 1 {
		t.Errorf("expected one MissingField for range end, got %v", errs)
	}
}

func TestPowerSpecExclusive(t *testing.T) {
	doc := `{
		"id": "w", "name": "W",
		"sequence": [{"type": "interval", "id": "i", "name": "I", "duration": 60,
			"powerZone": 3, "powerZoneRange": {"start": 1, "end": 2}}]
	}`
	errs := Document([]byte(doc))
	if countKind(errs, KindConflictingFields) != 1 {
		t.Errorf("expected ConflictingFields, got %v", errs)
	}

	doc = `{
		"id": "w", "name": "W",
		"sequence": [{"type": "interval", "id": "i", "name": "I", "duration": 60}]
	}`
	errs = Document([]byte(doc))
	if countKind(errs, KindMissingField) != 1 {
		t.Errorf("expected MissingField for power spec, got %v", errs)
	}
}

// TestCadenceBounds: 39 and 151 are rejected, 40 and 150 accepted.
func TestCadenceBounds(t *testing.T) {
	docFor := func(cadence int) string {
		return fmt.Sprintf(`{
			"id": "w", "name": "W",
			"sequence": [{"type": "interval", "id": "i", "name": "I", "duration": 60,
				"powerZone": 2, "cadence": %d}]
		}`, cadence)
	}
	for _, c := range []int{40, 150, 95} {
		if errs := Document([]byte(docFor(c))); countKind(errs, KindInvalidCadence) != 0 {
			t.Errorf("cadence %d: unexpected InvalidCadence: %v", c, errs)
		}
	}
	for _, c := range []int{39, 151, 0, -10} {
		if errs := Document([]byte(docFor(c))); countKind(errs, KindInvalidCadence) != 1 {
			t.Errorf("cadence %d: expected one InvalidCadence", c)
		}
	}
}

func TestInvalidDuration(t *testing.T) {
	for _, d := range []string{`0`, `-5`, `12.5`, `"60"`} {
		doc := fmt.Sprintf(`{
			"id": "w", "name": "W",
			"sequence": [{"type": "interval", "id": "i", "name": "I", "duration": %s, "powerZone": 2}]
		}`, d)
		errs := Document([]byte(doc))
		if countKind(errs, KindInvalidDuration) != 1 {
			t.Errorf("duration %s: expected InvalidDuration, got %v", d, errs)
		}
	}
}

// TestTypeTagRules: sequence entries must carry type, block children must not.
func TestTypeTagRules(t *testing.T) {
	doc := `{
		"id": "w", "name": "W",
		"sequence": [
			{"id": "i", "name": "I", "duration": 60, "powerZone": 2},
			{"type": "block", "id": "b", "name": "B", "repetitions": 2, "intervals": [
				{"type": "interval", "id": "c", "name": "C", "duration": 60, "powerZone": 2}
			]}
		]
	}`
	errs := Document([]byte(doc))
	miss := findKind(t, errs, KindMissingField)
	if miss.Path != "sequence[0]" {
		t.Errorf("MissingField path = %q", miss.Path)
	}
	unexp := findKind(t, errs, KindUnexpectedField)
	if unexp.Path != "sequence[1].intervals[0].type" {
		t.Errorf("UnexpectedField path = %q", unexp.Path)
	}
}

func TestUnknownSequenceType(t *testing.T) {
	doc := `{
		"id": "w", "name": "W",
		"sequence": [{"type": "ramp", "id": "i", "name": "I", "duration": 60, "powerZone": 2}]
	}`
	errs := Document([]byte(doc))
	e := findKind(t, errs, KindInvalidEnum)
	if e.Path != "sequence[0].type" {
		t.Errorf("path = %q", e.Path)
	}
}

// TestBlockDurationReconciliation: repetitions=3 over 60s+30s children gives
// 270; declaring 270 is clean, declaring 269 yields exactly one
// DurationMismatch carrying expected=270, actual=269.
func TestBlockDurationReconciliation(t *testing.T) {
	docFor := func(total int) string {
		return fmt.Sprintf(`{
			"id": "w", "name": "W", "totalDuration": %d,
			"sequence": [
				{"type": "block", "id": "b", "name": "B", "repetitions": 3, "intervals": [
					{"id": "on", "name": "On", "duration": 60, "powerZone": 5},
					{"id": "off", "name": "Off", "duration": 30, "powerZone": 1}
				]}
			]
		}`, total)
	}

	if errs := Document([]byte(docFor(270))); len(errs) != 0 {
		t.Errorf("totalDuration 270: expected no errors, got %v", errs)
	}

	errs := Document([]byte(docFor(269)))
	if countKind(errs, KindDurationMismatch) != 1 {
		t.Fatalf("expected one DurationMismatch, got %v", errs)
	}
	e := findKind(t, errs, KindDurationMismatch)
	if e.Expected != 270 || e.Actual != 269 {
		t.Errorf("expected/actual = %v/%v, want 270/269", e.Expected, e.Actual)
	}
}

// TestDurationMismatchWithMalformedDuration: malformed durations count as
// zero so reconciliation still runs and reports independently.
func TestDurationMismatchWithMalformedDuration(t *testing.T) {
	doc := `{
		"id": "w", "name": "W", "totalDuration": 300,
		"sequence": [
			{"type": "interval", "id": "a", "name": "A", "duration": 240, "powerZone": 2},
			{"type": "interval", "id": "b", "name": "B", "duration": -1, "powerZone": 2}
		]
	}`
	errs := Document([]byte(doc))
	if countKind(errs, KindInvalidDuration) != 1 {
		t.Errorf("expected InvalidDuration, got %v", errs)
	}
	e := findKind(t, errs, KindDurationMismatch)
	if e.Expected != 240 || e.Actual != 300 {
		t.Errorf("expected/actual = %v/%v, want 240/300", e.Expected, e.Actual)
	}
}

// TestWaveIntervalsEndToEnd mirrors the documented Wave Intervals layout:
// 240s warmup, a block of 90s+60s repeated twice (300s), 240s cooldown,
// declared total 780.
func TestWaveIntervalsEndToEnd(t *testing.T) {
	doc := `{
		"id": "wave-intervals",
		"name": "Wave Intervals",
		"totalDuration": 780,
		"theme": "criterium",
		"sequence": [
			{"type": "interval", "id": "warmup", "name": "Warmup", "duration": 240, "powerZone": "Z2"},
			{"type": "block", "id": "waves", "name": "Waves", "repetitions": 2, "intervals": [
				{"id": "wave-up", "name": "Wave Up", "duration": 90, "powerZone": "Z5"},
				{"id": "wave-down", "name": "Wave Down", "duration": 60, "powerZone": "Z3-"}
			]},
			{"type": "interval", "id": "cooldown", "name": "Cooldown", "duration": 240, "powerZone": "Z1"}
		]
	}`
	if errs := Document([]byte(doc)); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

// TestAlternatingDisplayDefault: alternating supplies its own zones, and a
// sibling powerZone is permitted as a display default but must still parse.
func TestAlternatingDisplayDefault(t *testing.T) {
	doc := `{
		"id": "w", "name": "W",
		"sequence": [{"type": "interval", "id": "i", "name": "I", "duration": 60,
			"powerZone": "Z4",
			"alternating": {"powerZoneA": "Z5", "powerZoneB": "Z2", "cadenceA": 100, "cadenceB": 70, "startWithZone": "B"}}]
	}`
	if errs := Document([]byte(doc)); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}

	bad := `{
		"id": "w", "name": "W",
		"sequence": [{"type": "interval", "id": "i", "name": "I", "duration": 60,
			"powerZone": "Z9",
			"alternating": {"powerZoneA": "Z5", "powerZoneB": "Z2"}}]
	}`
	errs := Document([]byte(bad))
	if countKind(errs, KindInvalidPowerZone) != 1 {
		t.Errorf("display default must still parse: %v", errs)
	}
}

func TestAlternatingWithoutPowerZone(t *testing.T) {
	doc := `{
		"id": "w", "name": "W",
		"sequence": [{"type": "interval", "id": "i", "name": "I", "duration": 60,
			"alternating": {"powerZoneA": 5, "powerZoneB": 2}}]
	}`
	if errs := Document([]byte(doc)); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestAlternatingConflictsWithRange(t *testing.T) {
	doc := `{
		"id": "w", "name": "W",
		"sequence": [{"type": "interval", "id": "i", "name": "I", "duration": 60,
			"powerZoneRange": {"start": 1, "end": 2},
			"alternating": {"powerZoneA": 5, "powerZoneB": 2}}]
	}`
	errs := Document([]byte(doc))
	if countKind(errs, KindConflictingFields) != 1 {
		t.Errorf("expected ConflictingFields, got %v", errs)
	}
}

func TestAlternatingDefects(t *testing.T) {
	doc := `{
		"id": "w", "name": "W",
		"sequence": [{"type": "interval", "id": "i", "name": "I", "duration": 60,
			"alternating": {"powerZoneA": "Z5", "cadenceA": 200, "startWithZone": "C"}}]
	}`
	errs := Document([]byte(doc))
	if countKind(errs, KindMissingField) != 1 { // powerZoneB
		t.Errorf("expected MissingField for powerZoneB, got %v", errs)
	}
	if countKind(errs, KindInvalidCadence) != 1 {
		t.Errorf("expected InvalidCadence for cadenceA, got %v", errs)
	}
	if e := findKind(t, errs, KindInvalidEnum); e.Path != "sequence[0].alternating.startWithZone" {
		t.Errorf("InvalidEnum path = %q", e.Path)
	}
}

func TestEmptyBlock(t *testing.T) {
	doc := `{
		"id": "w", "name": "W",
		"sequence": [{"type": "block", "id": "b", "name": "B", "repetitions": 2, "intervals": []}]
	}`
	errs := Document([]byte(doc))
	e := findKind(t, errs, KindEmptyBlock)
	if e.Path != "sequence[0].intervals" {
		t.Errorf("path = %q", e.Path)
	}
}

func TestInvalidRepetitions(t *testing.T) {
	for _, r := range []string{`0`, `-2`, `1.5`, `"3"`} {
		doc := fmt.Sprintf(`{
			"id": "w", "name": "W",
			"sequence": [{"type": "block", "id": "b", "name": "B", "repetitions": %s, "intervals": [
				{"id": "i", "name": "I", "duration": 60, "powerZone": 2}
			]}]
		}`, r)
		errs := Document([]byte(doc))
		if countKind(errs, KindInvalidRepetitions) != 1 {
			t.Errorf("repetitions %s: expected InvalidRepetitions, got %v", r, errs)
		}
	}
}

func TestThemeEnum(t *testing.T) {
	base := `{"id": "w", "name": "W", "theme": %q,
		"sequence": [{"type": "interval", "id": "i", "name": "I", "duration": 60, "powerZone": 2}]}`
	for _, theme := range []string{"default", "halloween", "wintry", "custom"} {
		doc := fmt.Sprintf(base, theme)
		if errs := Document([]byte(doc)); len(errs) != 0 {
			t.Errorf("theme %q: expected no errors, got %v", theme, errs)
		}
	}
	doc := fmt.Sprintf(base, "easter")
	errs := Document([]byte(doc))
	if e := findKind(t, errs, KindInvalidEnum); e.Path != "theme" {
		t.Errorf("path = %q", e.Path)
	}
}

// TestCollectAll: a document with several independent defects reports all of
// them in a single run.
func TestCollectAll(t *testing.T) {
	doc := `{
		"name": 42,
		"totalDuration": 100,
		"theme": "easter",
		"sequence": [
			{"type": "interval", "id": "i", "name": "I", "duration": 0, "powerZone": "Z8", "cadence": 30}
		]
	}`
	errs := Document([]byte(doc))
	for _, k := range []Kind{KindMissingField, KindInvalidDuration, KindInvalidPowerZone,
		KindInvalidCadence, KindInvalidEnum, KindDurationMismatch} {
		if countKind(errs, k) == 0 {
			t.Errorf("missing %s in %v", k, kinds(errs))
		}
	}
}
