package cli

import (
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/prevoccupai/ohp/internal/profile"
)

// maxListedSubjects bounds the subject preview in the default info output.
const maxListedSubjects = 10

func printUsage(o *IO, fs *flag.FlagSet) {
	o.Println("Usage: ohp [directory] [flags]")
	o.Println()
	o.Println("Explore Occupational Health profile JSON files: list subjects,")
	o.Println("inspect document structure, enumerate data paths, and summarize")
	o.Println("field availability across subjects.")
	o.Println()
	o.Println("Flags:")
	o.Printf("%s", fs.FlagUsages())
	o.Println()
	o.Println("Examples:")
	o.Println("  ohp ./oh_profiles --list")
	o.Println("  ohp ./oh_profiles --inspect SUBJ001 --depth 2")
	o.Println("  ohp ./oh_profiles --summary --export summary.csv")
}

// printInfo is the no-flag default action: profile count, a subject preview,
// and example invocations.
func printInfo(o *IO, cfg profile.Config, store *profile.Store) {
	subjects := store.Subjects()

	o.Printf("ohp - loaded %d profiles from %s\n", len(subjects), cfg.ProfileDirAbs)

	shown := subjects
	if len(shown) > maxListedSubjects {
		shown = shown[:maxListedSubjects]
	}

	o.Printf("subjects: %s", strings.Join(shown, ", "))

	if rest := len(subjects) - len(shown); rest > 0 {
		o.Printf(" ... and %d more", rest)
	}

	o.Println()
	o.Println()
	o.Println("Examples:")
	o.Printf("  ohp %s --list\n", cfg.ProfileDir)
	o.Printf("  ohp %s --inspect %s\n", cfg.ProfileDir, subjects[0])
	o.Printf("  ohp %s --summary\n", cfg.ProfileDir)
}
