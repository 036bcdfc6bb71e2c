// Package convert turns ride tracking CSV exports into JSON documents.
//
// The CSV has a header row; each subsequent row becomes one ride record.
// Cell values are coerced per the column type table below, empty or
// unconvertible cells are omitted, and rows that produce no fields at all
// are skipped.
package convert

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

type fieldType int

const (
	typeString fieldType = iota
	typeNumber
	typeInteger
)

// fieldTypes maps ride record columns to their JSON types. Unknown columns
// are carried through as strings.
var fieldTypes = map[string]fieldType{
	"id":            typeString,
	"date":          typeString,
	"duration":      typeNumber,
	"distance":      typeNumber,
	"avgSpeed":      typeNumber,
	"maxSpeed":      typeNumber,
	"avgHeartRate":  typeInteger,
	"maxHeartRate":  typeInteger,
	"avgCadence":    typeInteger,
	"maxCadence":    typeInteger,
	"avgPower":      typeInteger,
	"maxPower":      typeInteger,
	"calories":      typeInteger,
	"elevationGain": typeNumber,
	"workoutType":   typeString,
	"notes":         typeString,
}

// Record is one converted ride document.
type Record map[string]any

// ID returns the record's id field.
func (r Record) ID() string {
	id, _ := r["id"].(string)
	return id
}

// Result reports the outcome of a conversion.
type Result struct {
	Records     []Record
	RowsSkipped int // rows that produced no fields
	IDsAssigned int // rows with no id that received a generated one
}

// CSV reads a ride CSV export and converts each row to a record. Rows
// missing an id are assigned a generated UUID so every record can be
// persisted as its own file.
func CSV(r io.Reader) (*Result, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return &Result{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	res := &Result{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}

		rec := Record{}
		for i, cell := range row {
			if i >= len(header) {
				break
			}
			v := convertValue(cell, fieldTypes[header[i]])
			if v != nil {
				rec[header[i]] = v
			}
		}
		if len(rec) == 0 {
			res.RowsSkipped++
			continue
		}
		if rec.ID() == "" {
			rec["id"] = uuid.NewString()
			res.IDsAssigned++
		}
		res.Records = append(res.Records, rec)
	}

	return res, nil
}

// convertValue coerces a CSV cell into the column's JSON type. Empty and
// unconvertible cells yield nil and are omitted from the record.
func convertValue(cell string, ft fieldType) any {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	switch ft {
	case typeInteger:
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil
		}
		return int(math.Trunc(f))
	case typeNumber:
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil
		}
		return f
	default:
		return cell
	}
}
