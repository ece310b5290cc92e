package cli

import (
	"github.com/prevoccupai/ohp/internal/profile"
)

const (
	// pathEnumDepth is the fixed enumeration depth for --paths.
	pathEnumDepth = 6

	// pathDisplayLimit caps how many paths --paths prints.
	pathDisplayLimit = 50
)

// execPaths prints up to the first pathDisplayLimit enumerated paths for one
// subject, with a count of the remainder when truncated.
func execPaths(o *IO, store *profile.Store, subject string) error {
	doc, err := lookup(store, subject)
	if err != nil {
		return err
	}

	paths, err := profile.EnumeratePaths(doc, pathEnumDepth)
	if err != nil {
		return err
	}

	o.Printf("paths for %s (%d total):\n", subject, len(paths))

	shown := paths
	if len(shown) > pathDisplayLimit {
		shown = shown[:pathDisplayLimit]
	}

	for _, path := range shown {
		o.Println(" ", path)
	}

	if rest := len(paths) - len(shown); rest > 0 {
		o.Printf("  ... and %d more\n", rest)
	}

	return nil
}
