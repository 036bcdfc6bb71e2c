package mcpserver

import (
	"encoding/json"

	"github.com/akarl16/cycling-workouts/internal/library"
)

// DataSource abstracts the workout library for MCP tools, so handlers can be
// tested against a fixture without touching the filesystem.
type DataSource interface {
	List() ([]library.Entry, error)
	Get(id string) (*library.Entry, json.RawMessage, error)
}

// Compile-time check: *library.Library satisfies DataSource.
var _ DataSource = (*library.Library)(nil)
