package cli_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/prevoccupai/ohp/internal/cli"
)

func TestPathsForSubject(t *testing.T) {
	t.Parallel()

	r := cli.NewCLI(t)
	r.WriteProfile("S1", `{"x": {"y": 1}, "z": [1, 2]}`)

	stdout := r.MustRun("--quiet", "--paths", "S1")

	cli.AssertContains(t, stdout, "paths for S1 (5 total):")
	cli.AssertContains(t, stdout, "x.y")
	cli.AssertContains(t, stdout, "z[1]")
	cli.AssertNotContains(t, stdout, "more")
}

func TestPathsTruncatedAtFifty(t *testing.T) {
	t.Parallel()

	var b strings.Builder

	b.WriteString("{")

	for i := range 60 {
		if i > 0 {
			b.WriteString(",")
		}

		fmt.Fprintf(&b, `"k%02d": %d`, i, i)
	}

	b.WriteString("}")

	r := cli.NewCLI(t)
	r.WriteProfile("S1", b.String())

	stdout := r.MustRun("--quiet", "--paths", "S1")

	cli.AssertContains(t, stdout, "paths for S1 (60 total):")
	cli.AssertContains(t, stdout, "k49")
	cli.AssertNotContains(t, stdout, "k50")
	cli.AssertContains(t, stdout, "... and 10 more")
}

func TestPathsUnknownSubject(t *testing.T) {
	t.Parallel()

	r := cli.NewCLI(t)
	r.WriteProfile("S1", `{}`)

	stderr := r.MustFail("--quiet", "--paths", "ghost")

	cli.AssertContains(t, stderr, "subject not found: ghost")
}

func TestPathsDepthCappedAtSix(t *testing.T) {
	t.Parallel()

	r := cli.NewCLI(t)
	r.WriteProfile("S1", `{"a": {"b": {"c": {"d": {"e": {"f": {"g": 1}}}}}}}`)

	stdout := r.MustRun("--quiet", "--paths", "S1")

	cli.AssertContains(t, stdout, "a.b.c.d.e.f")
	cli.AssertNotContains(t, stdout, "a.b.c.d.e.f.g")
}
