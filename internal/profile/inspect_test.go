package profile_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prevoccupai/ohp/internal/profile"
)

func mustParse(t *testing.T, src string) *profile.Document {
	t.Helper()

	doc, err := profile.ParseDocument([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	return doc
}

func TestInspectOutline(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `{
		"name": "Ana",
		"scores": [1, 2],
		"nested": {"deep": {"x": 1}}
	}`)

	var buf bytes.Buffer

	if err := profile.Inspect(&buf, doc, 1); err != nil {
		t.Fatalf("inspect: %v", err)
	}

	want := strings.Join([]string{
		`name: string = "Ana"`,
		`scores: [sequence, 2 items]`,
		`  [0]: number = 1`,
		`  [1]: number = 2`,
		`nested: {mapping, 1 key}`,
		`  deep: {mapping, 1 key} ...`,
		``,
	}, "\n")

	if got := buf.String(); got != want {
		t.Errorf("outline mismatch\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestInspectDepthZeroDoesNotRecurse(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `{"nested": {"inner": 1}}`)

	var buf bytes.Buffer

	if err := profile.Inspect(&buf, doc, 0); err != nil {
		t.Fatalf("inspect: %v", err)
	}

	got := buf.String()

	if !strings.Contains(got, "nested: {mapping, 1 key} ...") {
		t.Errorf("depth 0 should show a truncation marker, got:\n%s", got)
	}

	if strings.Contains(got, "inner") {
		t.Errorf("depth 0 should not descend, got:\n%s", got)
	}
}

func TestInspectSequenceSampling(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `{"vals": [1, 2, 3, 4, 5, 6, 7]}`)

	var buf bytes.Buffer

	if err := profile.Inspect(&buf, doc, 2); err != nil {
		t.Fatalf("inspect: %v", err)
	}

	got := buf.String()

	if !strings.Contains(got, "[4]: number = 5") {
		t.Errorf("first five elements should be shown, got:\n%s", got)
	}

	if strings.Contains(got, "[5]:") {
		t.Errorf("sixth element should be collapsed, got:\n%s", got)
	}

	if !strings.Contains(got, "... (+2 more)") {
		t.Errorf("remainder marker missing, got:\n%s", got)
	}
}

func TestInspectStringPreviewTruncated(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 60)
	doc := mustParse(t, `{"note": "`+long+`"}`)

	var buf bytes.Buffer

	if err := profile.Inspect(&buf, doc, 1); err != nil {
		t.Fatalf("inspect: %v", err)
	}

	got := buf.String()

	if strings.Contains(got, long) {
		t.Errorf("long string should be truncated, got:\n%s", got)
	}

	if !strings.Contains(got, `..."`) {
		t.Errorf("truncated preview should end with ellipsis, got:\n%s", got)
	}
}

func TestInspectScalarRoot(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `42`)

	var buf bytes.Buffer

	if err := profile.Inspect(&buf, doc, 3); err != nil {
		t.Fatalf("inspect: %v", err)
	}

	if got := buf.String(); got != "number = 42\n" {
		t.Errorf("scalar root mismatch, got: %q", got)
	}
}

func TestInspectNegativeDepth(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `{}`)

	err := profile.Inspect(&bytes.Buffer{}, doc, -1)
	if err == nil {
		t.Fatal("negative depth should fail")
	}
}
