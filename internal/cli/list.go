package cli

import (
	"fmt"

	"github.com/prevoccupai/ohp/internal/profile"
)

// execList prints the sorted subject IDs.
func execList(o *IO, store *profile.Store) error {
	subjects := store.Subjects()

	o.Printf("subjects (%d):\n", len(subjects))

	for _, subject := range subjects {
		o.Println(" ", subject)
	}

	return nil
}

// lookup fetches one subject's document, mapping absence to a user-facing
// error.
func lookup(store *profile.Store, subject string) (*profile.Document, error) {
	if subject == "" {
		return nil, profile.ErrSubjectRequired
	}

	doc, ok := store.Get(subject)
	if !ok {
		return nil, fmt.Errorf("%w: %s", profile.ErrSubjectNotFound, subject)
	}

	return doc, nil
}
