package profile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Store is an immutable mapping from subject ID to parsed profile Document,
// built once by Load. Safe for concurrent readers.
type Store struct {
	profiles map[string]*Document
	subjects []string
}

// LoadOptions controls Load diagnostics.
type LoadOptions struct {
	// Verbose enables per-file progress and skip diagnostics on Diag.
	Verbose bool

	// Diag receives diagnostics when Verbose is set. Nil means discard.
	Diag io.Writer
}

// Load scans dir (non-recursively) for *.json files and parses each into a
// Document keyed by file stem. A missing directory or one without matching
// files yields an empty store. Unparseable files are skipped; the rest of
// the load still succeeds. Duplicate subject IDs resolve last-write-wins in
// directory order.
func Load(dir string, opts LoadOptions) *Store {
	diag := opts.Diag
	if diag == nil {
		diag = io.Discard
	}

	store := &Store{profiles: make(map[string]*Document)}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if opts.Verbose {
			_, _ = fmt.Fprintf(diag, "cannot read %s: %v\n", dir, err)
		}

		return store
	}

	for _, entry := range entries {
		if entry.IsDir() || !isProfileFile(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			if opts.Verbose {
				_, _ = fmt.Fprintf(diag, "skipping %s: %v\n", entry.Name(), readErr)
			}

			continue
		}

		doc, parseErr := ParseDocument(data)
		if parseErr != nil {
			if opts.Verbose {
				_, _ = fmt.Fprintf(diag, "skipping %s: %v\n", entry.Name(), parseErr)
			}

			continue
		}

		id := subjectID(entry.Name())

		if _, exists := store.profiles[id]; exists && opts.Verbose {
			_, _ = fmt.Fprintf(diag, "duplicate subject %s: overwriting with %s\n", id, entry.Name())
		}

		store.profiles[id] = doc
	}

	store.subjects = make([]string, 0, len(store.profiles))
	for id := range store.profiles {
		store.subjects = append(store.subjects, id)
	}

	sort.Strings(store.subjects)

	if opts.Verbose {
		_, _ = fmt.Fprintf(diag, "loaded %d profiles from %s\n", len(store.subjects), dir)
	}

	return store
}

// isProfileFile reports whether name looks like a profile JSON file.
// Extension is matched case-insensitively.
func isProfileFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), profileExt)
}

// subjectID derives the subject identifier from a profile file name.
func subjectID(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Len returns the number of loaded profiles.
func (s *Store) Len() int {
	return len(s.subjects)
}

// Subjects returns the subject IDs in sorted order.
func (s *Store) Subjects() []string {
	out := make([]string, len(s.subjects))
	copy(out, s.subjects)

	return out
}

// Get looks up one subject's Document. The second return is false when the
// subject is not in the store; Get never fails otherwise.
func (s *Store) Get(id string) (*Document, bool) {
	doc, ok := s.profiles[id]

	return doc, ok
}
