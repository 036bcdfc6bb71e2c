// Package jsonval provides tolerant JSON field wrappers.
//
// Each wrapper captures a field's raw JSON instead of failing the decode
// when the value has the wrong type. That keeps document decoding total:
// validators inspect what was actually present and report every defect in
// one pass, rather than aborting on the first mistyped field.
package jsonval

import "encoding/json"

// Str is a JSON string field that records presence and tolerates bad types.
type Str struct {
	raw json.RawMessage
}

func (s *Str) UnmarshalJSON(b []byte) error {
	s.raw = append(json.RawMessage(nil), b...)
	return nil
}

// Present reports whether the field appeared in the document.
func (s Str) Present() bool { return len(s.raw) > 0 }

// Value returns the string value and whether the raw JSON was a string.
func (s Str) Value() (string, bool) {
	var v string
	if err := json.Unmarshal(s.raw, &v); err != nil {
		return "", false
	}
	return v, true
}

// String returns the value, or "" when absent or mistyped.
func (s Str) String() string {
	v, _ := s.Value()
	return v
}

// Int is a JSON integer field. Fractional numbers and non-numbers are
// present but do not yield a value.
type Int struct {
	raw json.RawMessage
}

func (n *Int) UnmarshalJSON(b []byte) error {
	n.raw = append(json.RawMessage(nil), b...)
	return nil
}

func (n Int) Present() bool { return len(n.raw) > 0 }

// Value returns the integer value and whether the raw JSON was an integer.
func (n Int) Value() (int, bool) {
	var v int
	if err := json.Unmarshal(n.raw, &v); err != nil {
		return 0, false
	}
	return v, true
}

// Num is a JSON number field (integer or fractional).
type Num struct {
	raw json.RawMessage
}

func (n *Num) UnmarshalJSON(b []byte) error {
	n.raw = append(json.RawMessage(nil), b...)
	return nil
}

func (n Num) Present() bool { return len(n.raw) > 0 }

// Value returns the numeric value and whether the raw JSON was a number.
func (n Num) Value() (float64, bool) {
	var v float64
	if err := json.Unmarshal(n.raw, &v); err != nil {
		return 0, false
	}
	return v, true
}

// Bool is a JSON boolean field.
type Bool struct {
	raw json.RawMessage
}

func (b *Bool) UnmarshalJSON(data []byte) error {
	b.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (b Bool) Present() bool { return len(b.raw) > 0 }

func (b Bool) Value() (bool, bool) {
	var v bool
	if err := json.Unmarshal(b.raw, &v); err != nil {
		return false, false
	}
	return v, true
}

// List is a JSON array field of tolerant elements. Elements that are not
// objects decode to their zero value, so element-level defects surface as
// missing required fields instead of a decode failure.
type List[T any] struct {
	present bool
	isArray bool
	Items   []T
}

func (l *List[T]) UnmarshalJSON(b []byte) error {
	l.present = true
	var elems []json.RawMessage
	if err := json.Unmarshal(b, &elems); err != nil {
		return nil
	}
	l.isArray = true
	l.Items = make([]T, len(elems))
	for i, e := range elems {
		// Best effort per element; zero value on mismatch.
		_ = json.Unmarshal(e, &l.Items[i])
	}
	return nil
}

// Present reports whether the field appeared in the document.
func (l List[T]) Present() bool { return l.present }

// IsArray reports whether the raw JSON was actually an array.
func (l List[T]) IsArray() bool { return l.isArray }

// Len returns the element count, zero when absent or mistyped.
func (l List[T]) Len() int { return len(l.Items) }
