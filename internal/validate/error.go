// Package validate checks workout and ride documents for structural and
// semantic defects. Validators are pure: they perform no I/O, never panic on
// malformed-but-parseable input, and return every finding as data so one run
// surfaces the complete defect set for a document.
package validate

import "fmt"

// Kind classifies a validation finding.
type Kind string

const (
	KindParseError         Kind = "ParseError"
	KindMissingField       Kind = "MissingField"
	KindUnexpectedField    Kind = "UnexpectedField"
	KindConflictingFields  Kind = "ConflictingFields"
	KindDuplicateID        Kind = "DuplicateId"
	KindInvalidDuration    Kind = "InvalidDuration"
	KindInvalidPowerZone   Kind = "InvalidPowerZone"
	KindInvalidCadence     Kind = "InvalidCadence"
	KindInvalidRepetitions Kind = "InvalidRepetitions"
	KindEmptyBlock         Kind = "EmptyBlock"
	KindInvalidEnum        Kind = "InvalidEnum"
	KindDurationMismatch   Kind = "DurationMismatch"

	// KindInvalidValue covers fields whose JSON type or value is wrong in a
	// way the kinds above do not name (a string where a number belongs, a
	// negative distance, an array field holding a scalar).
	KindInvalidValue Kind = "InvalidValue"
)

// Error is a single validation finding. Expected and Actual are set for
// numeric mismatches such as DurationMismatch.
type Error struct {
	Path     string `json:"path,omitempty"`
	Kind     Kind   `json:"kind"`
	Message  string `json:"message"`
	Expected any    `json:"expected,omitempty"`
	Actual   any    `json:"actual,omitempty"`
}

func (e Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Path, e.Kind, e.Message)
}

// errs accumulates findings during a walk.
type errs struct {
	list []Error
}

func (c *errs) add(path string, kind Kind, format string, args ...any) {
	c.list = append(c.list, Error{Path: path, Kind: kind, Message: fmt.Sprintf(format, args...)})
}

func (c *errs) addError(e Error) {
	c.list = append(c.list, e)
}

func joinPath(base, field string) string {
	if base == "" {
		return field
	}
	return base + "." + field
}
