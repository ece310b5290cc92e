package cli

import (
	"fmt"

	"github.com/prevoccupai/ohp/internal/profile"
)

// execInspect prints a depth-bounded outline of one subject's profile.
func execInspect(o *IO, store *profile.Store, subject string, depth int) error {
	if depth < 0 {
		return fmt.Errorf("%w: %d", profile.ErrInvalidDepth, depth)
	}

	doc, err := lookup(store, subject)
	if err != nil {
		return err
	}

	o.Printf("%s (depth %d):\n", subject, depth)

	return profile.Inspect(o.Out(), doc, depth)
}
