package validate

import "testing"

// TestValidRouletteWorkout covers the slot-based Melodic Roulette format:
// no sequence/intervals requirement, work targets via definitions.
func TestValidRouletteWorkout(t *testing.T) {
	doc := `{
		"id": "melodic-roulette-60",
		"name": "Melodic Roulette",
		"mode": "melodic-roulette",
		"theme": "custom",
		"workBlockDefinitions": [
			{"name": "VO2 Surge", "powerZone": "Z5", "cadence": 100},
			{"name": "Threshold Hold", "powerZoneRange": {"start": "Z4-", "end": "Z4+"}},
			{"name": "Switchback", "alternating": {"powerZoneA": "Z5", "powerZoneB": "Z2", "cadenceA": 95}}
		],
		"slots": [
			{"id": "s1", "intervalType": "work", "playlistId": "pl-upbeat", "durationRange": "short"},
			{"id": "s2", "intervalType": "recovery", "playlistId": "pl-chill", "powerZone": "Z1", "cadence": 85}
		]
	}`
	if errs := Document([]byte(doc)); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestRouletteMissingSections(t *testing.T) {
	doc := `{"id": "r", "name": "R", "mode": "melodic-roulette"}`
	errs := Document([]byte(doc))
	if countKind(errs, KindMissingField) != 2 {
		t.Errorf("expected MissingField for workBlockDefinitions and slots, got %v", errs)
	}
}

func TestRouletteEmptySections(t *testing.T) {
	doc := `{"id": "r", "name": "R", "mode": "melodic-roulette",
		"workBlockDefinitions": [], "slots": []}`
	errs := Document([]byte(doc))
	if countKind(errs, KindEmptyBlock) != 2 {
		t.Errorf("expected two EmptyBlock, got %v", errs)
	}
}

// TestRouletteWorkBlockExclusivity: a definition carries exactly one of
// powerZone, powerZoneRange, alternating.
func TestRouletteWorkBlockExclusivity(t *testing.T) {
	doc := `{"id": "r", "name": "R", "mode": "melodic-roulette",
		"workBlockDefinitions": [
			{"name": "None"},
			{"name": "Both", "powerZone": "Z4", "alternating": {"powerZoneA": 5, "powerZoneB": 2}}
		],
		"slots": [{"id": "s", "intervalType": "work", "playlistId": "pl"}]}`
	errs := Document([]byte(doc))
	if countKind(errs, KindMissingField) != 1 {
		t.Errorf("expected MissingField for empty definition, got %v", errs)
	}
	if e := findKind(t, errs, KindConflictingFields); e.Path != "workBlockDefinitions[1]" {
		t.Errorf("ConflictingFields path = %q", e.Path)
	}
}

// TestRouletteWorkSlotRestrictions: work slots may not fix their own power
// target or cadence.
func TestRouletteWorkSlotRestrictions(t *testing.T) {
	doc := `{"id": "r", "name": "R", "mode": "melodic-roulette",
		"workBlockDefinitions": [{"name": "Surge", "powerZone": "Z5"}],
		"slots": [
			{"id": "s1", "intervalType": "work", "playlistId": "pl", "powerZone": "Z3", "cadence": 90},
			{"id": "s2", "intervalType": "sprint", "playlistId": "pl", "durationRange": "epic"}
		]}`
	errs := Document([]byte(doc))
	if countKind(errs, KindUnexpectedField) != 2 {
		t.Errorf("expected UnexpectedField for powerZone and cadence on work slot, got %v", errs)
	}
	if countKind(errs, KindInvalidEnum) != 2 { // intervalType and durationRange
		t.Errorf("expected InvalidEnum for intervalType and durationRange, got %v", errs)
	}
}

func TestInvalidMode(t *testing.T) {
	doc := `{"id": "w", "name": "W", "mode": "freestyle",
		"sequence": [{"type": "interval", "id": "i", "name": "I", "duration": 60, "powerZone": 2}]}`
	errs := Document([]byte(doc))
	if e := findKind(t, errs, KindInvalidEnum); e.Path != "mode" {
		t.Errorf("path = %q", e.Path)
	}
	// Standard validation still ran.
	if countKind(errs, KindInvalidEnum) != 1 || len(errs) != 1 {
		t.Errorf("expected only the mode error, got %v", errs)
	}
}
