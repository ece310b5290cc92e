package cli_test

import (
	"testing"

	"github.com/prevoccupai/ohp/internal/cli"
)

const inspectFixture = `{
	"demographics": {"age": 52, "sex": "f"},
	"assessments": {"audiometry": {"left": [20, 25]}}
}`

func TestInspectSubject(t *testing.T) {
	t.Parallel()

	r := cli.NewCLI(t)
	r.WriteProfile("S1", inspectFixture)

	stdout := r.MustRun("--quiet", "--inspect", "S1")

	cli.AssertContains(t, stdout, "S1 (depth 3):")
	cli.AssertContains(t, stdout, "demographics: {mapping, 2 keys}")
	cli.AssertContains(t, stdout, "age: number = 52")
	cli.AssertContains(t, stdout, `sex: string = "f"`)
}

func TestInspectDepthFlag(t *testing.T) {
	t.Parallel()

	r := cli.NewCLI(t)
	r.WriteProfile("S1", inspectFixture)

	stdout := r.MustRun("--quiet", "--inspect", "S1", "--depth", "1")

	cli.AssertContains(t, stdout, "demographics: {mapping, 2 keys}")
	cli.AssertContains(t, stdout, "audiometry: {mapping, 1 key} ...")
	cli.AssertNotContains(t, stdout, "left")
}

func TestInspectUnknownSubject(t *testing.T) {
	t.Parallel()

	r := cli.NewCLI(t)
	r.WriteProfile("S1", `{}`)

	stderr := r.MustFail("--quiet", "--inspect", "ghost")

	cli.AssertContains(t, stderr, "subject not found: ghost")
}

func TestInspectNegativeDepth(t *testing.T) {
	t.Parallel()

	r := cli.NewCLI(t)
	r.WriteProfile("S1", `{}`)

	stderr := r.MustFail("--quiet", "--inspect", "S1", "--depth=-1")

	cli.AssertContains(t, stderr, "depth must be non-negative")
}
