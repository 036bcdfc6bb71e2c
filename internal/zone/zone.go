// Package zone parses and validates power zone values.
//
// A power zone is a training-intensity band 1-7, optionally refined with a
// trailing + or -. Workout JSON represents zones either as bare integers or
// as strings like "3", "Z3", "Zone 3", "z3+".
package zone

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Modifier is the optional +/- refinement on a zone.
type Modifier int

const (
	ModNone Modifier = iota
	ModPlus
	ModMinus
)

func (m Modifier) String() string {
	switch m {
	case ModPlus:
		return "+"
	case ModMinus:
		return "-"
	default:
		return ""
	}
}

// Value is a parsed power zone.
type Value struct {
	Zone     int // 1..7
	Modifier Modifier
}

func (v Value) String() string {
	return "Z" + strconv.Itoa(v.Zone) + v.Modifier.String()
}

// stringRe matches the documented zone grammar: an optional Z or Zone prefix
// (case-insensitive), optional whitespace, a digit 1-7, and an optional
// trailing + or -.
var stringRe = regexp.MustCompile(`^(?:[Zz](?:one)?\s*)?([1-7])([+-])?$`)

// Parse converts a raw zone representation into a Value. Integers must lie
// in 1..7; strings must match the zone grammar exactly.
func Parse(raw any) (Value, error) {
	switch z := raw.(type) {
	case int:
		return parseInt(z)
	case int64:
		return parseInt(int(z))
	case float64:
		// JSON numbers decode as float64; only whole values are zones.
		if z != float64(int(z)) {
			return Value{}, fmt.Errorf("power zone must be an integer, got %v", z)
		}
		return parseInt(int(z))
	case string:
		return ParseString(z)
	default:
		return Value{}, fmt.Errorf("power zone must be integer or string, got %T", raw)
	}
}

// ParseString parses a zone string like "Z3+" or "Zone 5".
func ParseString(s string) (Value, error) {
	m := stringRe.FindStringSubmatch(s)
	if m == nil {
		return Value{}, fmt.Errorf("invalid power zone format: %q", s)
	}
	n, _ := strconv.Atoi(m[1])
	v := Value{Zone: n}
	switch m[2] {
	case "+":
		v.Modifier = ModPlus
	case "-":
		v.Modifier = ModMinus
	}
	return v, nil
}

func parseInt(n int) (Value, error) {
	if n < 1 || n > 7 {
		return Value{}, fmt.Errorf("power zone must be 1-7, got %d", n)
	}
	return Value{Zone: n}, nil
}

// Valid reports whether raw is a well-formed zone value.
func Valid(raw any) bool {
	_, err := Parse(raw)
	return err == nil
}

// Normalize returns the canonical "Z<n>[+|-]" spelling for a raw zone value,
// or the input's string form unchanged when it does not parse.
func Normalize(raw any) string {
	v, err := Parse(raw)
	if err != nil {
		return strings.TrimSpace(fmt.Sprint(raw))
	}
	return v.String()
}
