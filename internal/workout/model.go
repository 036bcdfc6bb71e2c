// Package workout models interval workout documents: the unified sequence
// format, the legacy intervals/blocks format, and Melodic Roulette workouts.
//
// Decoding is deliberately tolerant. Field wrappers from internal/jsonval
// capture raw JSON without failing, so a document with mistyped or missing
// fields still decodes and the validator can report the complete defect set.
package workout

import (
	"encoding/json"

	"github.com/akarl16/cycling-workouts/internal/jsonval"
	"github.com/akarl16/cycling-workouts/internal/zone"
)

// ModeMelodicRoulette marks slot-based workouts driven by music playlists.
const ModeMelodicRoulette = "melodic-roulette"

// Themes is the fixed set of allowed workout themes.
var Themes = []string{
	"default", "halloween", "christmas", "wintry",
	"valentines", "holyhill", "criterium", "custom",
}

// ValidTheme reports whether s is an allowed theme.
func ValidTheme(s string) bool {
	for _, t := range Themes {
		if s == t {
			return true
		}
	}
	return false
}

// Workout is a single workout document.
type Workout struct {
	ID            jsonval.Str  `json:"id"`
	Name          jsonval.Str  `json:"name"`
	Description   jsonval.Str  `json:"description"`
	TotalDuration jsonval.Int  `json:"totalDuration"`
	Theme         jsonval.Str  `json:"theme"`
	IsSample      jsonval.Bool `json:"isSample"`

	// Unified format: ordered execution list of intervals and blocks.
	Sequence jsonval.List[SequenceItem] `json:"sequence"`

	// Legacy format: separate interval and block arrays.
	Intervals jsonval.List[Interval] `json:"intervals"`
	Blocks    jsonval.List[Block]    `json:"blocks"`

	// Melodic Roulette format.
	Mode                 jsonval.Str                `json:"mode"`
	WorkBlockDefinitions jsonval.List[WorkBlockDef] `json:"workBlockDefinitions"`
	Slots                jsonval.List[Slot]         `json:"slots"`
}

// Decode parses a single workout document.
func Decode(data []byte) (*Workout, error) {
	var w Workout
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// ItemKind discriminates the sequence item union.
type ItemKind int

const (
	KindUnknown ItemKind = iota
	KindInterval
	KindBlock
)

// SequenceItem is a tagged union over Interval and Block, discriminated by
// the "type" field. Kind is KindUnknown when the tag is absent or not one of
// "interval"/"block".
type SequenceItem struct {
	Kind ItemKind
	Type jsonval.Str

	Interval Interval // populated when Kind == KindInterval
	Block    Block    // populated when Kind == KindBlock
}

func (si *SequenceItem) UnmarshalJSON(b []byte) error {
	var probe struct {
		Type jsonval.Str `json:"type"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return nil // not an object; surfaces as a missing type tag
	}
	si.Type = probe.Type
	switch t, _ := probe.Type.Value(); t {
	case "interval":
		si.Kind = KindInterval
		_ = json.Unmarshal(b, &si.Interval)
	case "block":
		si.Kind = KindBlock
		_ = json.Unmarshal(b, &si.Block)
	}
	return nil
}

// Interval is a single contiguous training segment.
type Interval struct {
	Type     jsonval.Str `json:"type"` // positional: required in sequence, forbidden elsewhere
	ID       jsonval.Str `json:"id"`
	Name     jsonval.Str `json:"name"`
	Duration jsonval.Int `json:"duration"` // seconds
	Notes    jsonval.Str `json:"notes"`

	PowerZone      ZoneRef     `json:"powerZone"`
	PowerZoneRange ZoneRange   `json:"powerZoneRange"`
	Cadence        jsonval.Int `json:"cadence"`

	Alternating Alternating `json:"alternating"`
}

// ZoneRef is a power zone reference: a JSON integer or string, parsed
// through the zone grammar.
type ZoneRef struct {
	raw json.RawMessage
}

func (z *ZoneRef) UnmarshalJSON(b []byte) error {
	z.raw = append(json.RawMessage(nil), b...)
	return nil
}

func (z ZoneRef) Present() bool { return len(z.raw) > 0 }

// Value parses the reference into a zone.Value.
func (z ZoneRef) Value() (zone.Value, error) {
	var raw any
	if err := json.Unmarshal(z.raw, &raw); err != nil {
		raw = string(z.raw)
	}
	return zone.Parse(raw)
}

// ZoneRange is a {start, end} pair of power zone values.
type ZoneRange struct {
	present  bool
	isObject bool

	Start ZoneRef
	End   ZoneRef
}

func (r *ZoneRange) UnmarshalJSON(b []byte) error {
	r.present = true
	var obj struct {
		Start ZoneRef `json:"start"`
		End   ZoneRef `json:"end"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil
	}
	r.isObject = true
	r.Start, r.End = obj.Start, obj.End
	return nil
}

func (r ZoneRange) Present() bool  { return r.present }
func (r ZoneRange) IsObject() bool { return r.isObject }

// Alternating describes an interval that switches between two power targets.
type Alternating struct {
	present  bool
	isObject bool

	PowerZoneA    ZoneRef
	PowerZoneB    ZoneRef
	CadenceA      jsonval.Int
	CadenceB      jsonval.Int
	StartWithZone jsonval.Str // "A" or "B", default "A"
}

func (a *Alternating) UnmarshalJSON(b []byte) error {
	a.present = true
	var obj struct {
		PowerZoneA    ZoneRef     `json:"powerZoneA"`
		PowerZoneB    ZoneRef     `json:"powerZoneB"`
		CadenceA      jsonval.Int `json:"cadenceA"`
		CadenceB      jsonval.Int `json:"cadenceB"`
		StartWithZone jsonval.Str `json:"startWithZone"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil
	}
	a.isObject = true
	a.PowerZoneA = obj.PowerZoneA
	a.PowerZoneB = obj.PowerZoneB
	a.CadenceA = obj.CadenceA
	a.CadenceB = obj.CadenceB
	a.StartWithZone = obj.StartWithZone
	return nil
}

func (a Alternating) Present() bool  { return a.present }
func (a Alternating) IsObject() bool { return a.isObject }

// Block is a named group of intervals repeated a fixed number of times.
type Block struct {
	Type        jsonval.Str            `json:"type"`
	ID          jsonval.Str            `json:"id"`
	Name        jsonval.Str            `json:"name"`
	Repetitions jsonval.Int            `json:"repetitions"`
	Intervals   jsonval.List[Interval] `json:"intervals"`
}

// ResolvedDuration returns the interval's duration in seconds, or zero when
// the field is missing or malformed.
func (iv Interval) ResolvedDuration() int {
	d, ok := iv.Duration.Value()
	if !ok || d < 1 {
		return 0
	}
	return d
}

// ResolvedDuration returns repetitions times the sum of child interval
// durations. Malformed repetitions or durations contribute zero.
func (b Block) ResolvedDuration() int {
	reps, ok := b.Repetitions.Value()
	if !ok || reps < 1 {
		return 0
	}
	sum := 0
	for _, iv := range b.Intervals.Items {
		sum += iv.ResolvedDuration()
	}
	return reps * sum
}

// ResolvedDuration sums the contributions of every sequence or legacy entry:
// a bare interval contributes its duration, a block contributes repetitions
// times the sum of its children.
func (w *Workout) ResolvedDuration() int {
	total := 0
	for _, item := range w.Sequence.Items {
		switch item.Kind {
		case KindInterval:
			total += item.Interval.ResolvedDuration()
		case KindBlock:
			total += item.Block.ResolvedDuration()
		}
	}
	for _, iv := range w.Intervals.Items {
		total += iv.ResolvedDuration()
	}
	for _, b := range w.Blocks.Items {
		total += b.ResolvedDuration()
	}
	return total
}

// ItemCount returns the number of top-level entries in whichever execution
// list the document uses (sequence, legacy arrays, or roulette slots).
func (w *Workout) ItemCount() int {
	if w.Sequence.Present() {
		return w.Sequence.Len()
	}
	if mode, _ := w.Mode.Value(); mode == ModeMelodicRoulette {
		return w.Slots.Len()
	}
	return w.Intervals.Len() + w.Blocks.Len()
}

// WorkBlockDef is a Melodic Roulette work block definition: a reusable power
// target drawn at random during the ride.
type WorkBlockDef struct {
	Name           jsonval.Str `json:"name"`
	PowerZone      ZoneRef     `json:"powerZone"`
	PowerZoneRange ZoneRange   `json:"powerZoneRange"`
	Alternating    Alternating `json:"alternating"`
	Cadence        jsonval.Int `json:"cadence"`
}

// Slot is a Melodic Roulette playlist slot.
type Slot struct {
	ID             jsonval.Str `json:"id"`
	IntervalType   jsonval.Str `json:"intervalType"` // "work" or "recovery"
	PlaylistID     jsonval.Str `json:"playlistId"`
	DurationRange  jsonval.Str `json:"durationRange"` // "short", "medium", "long"
	PowerZone      ZoneRef     `json:"powerZone"`
	PowerZoneRange ZoneRange   `json:"powerZoneRange"`
	Cadence        jsonval.Int `json:"cadence"`
}
