package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prevoccupai/ohp/internal/cli"
)

func TestSummaryTable(t *testing.T) {
	t.Parallel()

	r := cli.NewCLI(t)
	r.WriteProfile("S1", `{"demographics": {"age": 52}, "lifestyle": {"smoking": "no"}}`)
	r.WriteProfile("S2", `{}`)

	stdout := r.MustRun("--quiet", "--summary")

	cli.AssertContains(t, stdout, "SUBJECT")
	cli.AssertContains(t, stdout, "DEMOGRAPHICS")
	cli.AssertContains(t, stdout, "S1")
	cli.AssertContains(t, stdout, "S2")
	cli.AssertContains(t, stdout, "yes")
	cli.AssertContains(t, stdout, "no")
	cli.AssertContains(t, stdout, "Total: 2 subjects")
}

func TestSummaryIncludesEmptySubjects(t *testing.T) {
	t.Parallel()

	r := cli.NewCLI(t)
	r.WriteProfile("EMPTY", `{}`)

	stdout := r.MustRun("--quiet", "--summary")

	cli.AssertContains(t, stdout, "EMPTY")
	cli.AssertContains(t, stdout, "Total: 1 subjects")
}

func TestSummaryExport(t *testing.T) {
	t.Parallel()

	r := cli.NewCLI(t)
	r.WriteProfile("S1", `{"demographics": {"age": 52}}`)

	exportPath := filepath.Join(r.Dir, "summary.csv")

	stdout := r.MustRun("--quiet", "--summary", "--export", exportPath)

	cli.AssertContains(t, stdout, "exported summary to "+exportPath)

	data, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}

	content := string(data)

	if !strings.HasPrefix(content, "subject,demographics,") {
		t.Errorf("CSV header mismatch:\n%s", content)
	}

	cli.AssertContains(t, content, "S1,yes,yes,")
}
