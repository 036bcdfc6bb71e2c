// Package schema validates workout documents against the embedded JSON
// Schema. This is the structural companion to internal/validate: the schema
// checks shapes and types, the validator checks cross-field semantics like
// id uniqueness and duration reconciliation.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed workout-schema.json
var workoutSchema string

const schemaName = "workout-schema.json"

// Raw returns the embedded schema document.
func Raw() string { return workoutSchema }

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// Compile returns the embedded workout schema, compiling it once.
func Compile() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaName, strings.NewReader(workoutSchema)); err != nil {
			compileErr = fmt.Errorf("loading embedded schema: %w", err)
			return
		}
		compiled, compileErr = compiler.Compile(schemaName)
	})
	return compiled, compileErr
}

// Validate checks a raw workout document against the schema and returns one
// message per violation, ordered by instance location. A nil slice means the
// document conforms. Input that is not valid JSON yields a single message.
func Validate(data []byte) ([]string, error) {
	s, err := Compile()
	if err != nil {
		return nil, err
	}
	return validateAgainst(s, data)
}

// ValidateFile is Validate against a schema file on disk instead of the
// embedded one.
func ValidateFile(schemaPath string, data []byte) ([]string, error) {
	s, err := jsonschema.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("compiling schema %s: %w", schemaPath, err)
	}
	return validateAgainst(s, data)
}

func validateAgainst(s *jsonschema.Schema, data []byte) ([]string, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return []string{fmt.Sprintf("invalid JSON: %v", err)}, nil
	}

	err := s.Validate(doc)
	if err == nil {
		return nil, nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{err.Error()}, nil
	}

	msgs := flatten(ve)
	sort.Strings(msgs)
	return msgs, nil
}

// flatten collects leaf causes of a validation error tree.
func flatten(ve *jsonschema.ValidationError) []string {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		return []string{fmt.Sprintf("%s: %s", loc, ve.Message)}
	}
	var msgs []string
	for _, cause := range ve.Causes {
		msgs = append(msgs, flatten(cause)...)
	}
	return msgs
}
