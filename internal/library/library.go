// Package library reads workout documents from flat files. It owns the I/O
// the validator deliberately avoids: expanding glob patterns, reading files,
// and deciding whether a file holds a single workout or an array of them.
package library

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/akarl16/cycling-workouts/internal/validate"
	"github.com/akarl16/cycling-workouts/internal/workout"
)

// Document is one workout document located in a file.
type Document struct {
	File  string
	Index int // position within an array file; -1 for a single-object file
	Raw   json.RawMessage
}

// Ref renders the document's location for output, e.g. "all.json[2]".
func (d Document) Ref() string {
	if d.Index < 0 {
		return d.File
	}
	return fmt.Sprintf("%s[%d]", d.File, d.Index)
}

// FileResult holds the documents read from one file, or the read error.
// One unreadable file never aborts a batch.
type FileResult struct {
	File string
	Docs []Document
	Err  error
}

// ExpandGlobs resolves path patterns into a sorted, de-duplicated file list.
// Literal paths pass through even when no glob matches them.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := map[string]bool{}
	var files []string
	for _, pat := range patterns {
		matches, err := filepath.Glob(pat)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pat, err)
		}
		if matches == nil {
			matches = []string{pat}
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// LoadFiles reads each file and splits array files into individual
// documents. Per-file failures are recorded in the result, not returned.
func LoadFiles(paths []string) []FileResult {
	results := make([]FileResult, 0, len(paths))
	for _, path := range paths {
		res := FileResult{File: path}
		data, err := os.ReadFile(path)
		if err != nil {
			res.Err = err
		} else {
			res.Docs = Split(path, data)
		}
		results = append(results, res)
	}
	return results
}

// Split decides whether data holds a single workout object or an array of
// them. Anything that is not a well-formed array is treated as a single
// document, leaving ParseError reporting to the validator.
func Split(file string, data []byte) []Document {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var elems []json.RawMessage
		if err := json.Unmarshal(data, &elems); err == nil {
			docs := make([]Document, len(elems))
			for i, e := range elems {
				docs[i] = Document{File: file, Index: i, Raw: e}
			}
			return docs
		}
	}
	return []Document{{File: file, Index: -1, Raw: data}}
}

// Entry summarizes one workout in a library listing.
type Entry struct {
	File     string `json:"file"`
	ID       string `json:"id"`
	Name     string `json:"name"`
	Theme    string `json:"theme,omitempty"`
	Mode     string `json:"mode,omitempty"`
	Duration int    `json:"duration"` // resolved seconds
	Items    int    `json:"items"`
	Errors   int    `json:"errors"`
}

// Library lists and fetches workouts from a root directory of JSON files.
type Library struct {
	root string
	log  *slog.Logger
}

// New creates a Library over the given root directory.
func New(root string, log *slog.Logger) *Library {
	return &Library{root: root, log: log}
}

// Root returns the library's root directory.
func (l *Library) Root() string { return l.root }

// List walks the root directory and summarizes every workout document found
// in .json files. Unreadable files are logged and skipped.
func (l *Library) List() ([]Entry, error) {
	var entries []Entry
	err := filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			l.log.Warn("skipping unreadable file", "path", path, "error", err)
			return nil
		}
		rel, relErr := filepath.Rel(l.root, path)
		if relErr != nil {
			rel = path
		}
		for _, doc := range Split(rel, data) {
			entries = append(entries, summarize(doc))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", l.root, err)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].File != entries[j].File {
			return entries[i].File < entries[j].File
		}
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

// Get returns the entry and raw JSON for the workout with the given id.
func (l *Library) Get(id string) (*Entry, json.RawMessage, error) {
	var found *Document
	err := filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || found != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		rel, relErr := filepath.Rel(l.root, path)
		if relErr != nil {
			rel = path
		}
		for _, doc := range Split(rel, data) {
			w, decErr := workout.Decode(doc.Raw)
			if decErr != nil {
				continue
			}
			if w.ID.String() == id {
				match := doc
				found = &match
				return fs.SkipAll
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking %s: %w", l.root, err)
	}
	if found == nil {
		return nil, nil, fmt.Errorf("workout %q not found under %s", id, l.root)
	}
	entry := summarize(*found)
	return &entry, found.Raw, nil
}

func summarize(doc Document) Entry {
	e := Entry{File: doc.Ref()}
	w, err := workout.Decode(doc.Raw)
	if err != nil {
		e.Errors = 1
		return e
	}
	e.ID = w.ID.String()
	e.Name = w.Name.String()
	e.Theme = w.Theme.String()
	e.Mode = w.Mode.String()
	e.Duration = w.ResolvedDuration()
	e.Items = w.ItemCount()
	e.Errors = len(validate.Workout(w))
	return e
}
