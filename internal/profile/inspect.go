package profile

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	// seqSampleLimit is how many sequence elements the outline shows
	// before collapsing the remainder into a marker.
	seqSampleLimit = 5

	// previewRunes bounds scalar string previews in the outline.
	previewRunes = 40

	indentStep = "  "
)

// Inspect writes an indented, depth-bounded outline of doc to w. Depth
// counts container nesting only; the document root is depth 0, so maxDepth 0
// shows top-level keys and types without descending. Containers beyond the
// budget render a truncation marker instead of their contents.
func Inspect(w io.Writer, doc *Document, maxDepth int) error {
	if maxDepth < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDepth, maxDepth)
	}

	if doc.Kind == KindScalar {
		_, _ = fmt.Fprintln(w, scalarLabel(doc))

		return nil
	}

	renderChildren(w, doc, 0, 0, maxDepth)

	return nil
}

// renderChildren prints one line per child of a container node, recursing
// into child containers while depth < maxDepth.
func renderChildren(w io.Writer, doc *Document, indent, depth, maxDepth int) {
	prefix := strings.Repeat(indentStep, indent)

	switch doc.Kind {
	case KindMapping:
		for _, key := range doc.Keys {
			renderNode(w, prefix, key, doc.Fields[key], indent, depth, maxDepth)
		}

	case KindSequence:
		shown := len(doc.Items)
		if shown > seqSampleLimit {
			shown = seqSampleLimit
		}

		for i := range shown {
			label := "[" + strconv.Itoa(i) + "]"
			renderNode(w, prefix, label, doc.Items[i], indent, depth, maxDepth)
		}

		if rest := len(doc.Items) - shown; rest > 0 {
			_, _ = fmt.Fprintf(w, "%s... (+%d more)\n", prefix, rest)
		}
	}
}

func renderNode(w io.Writer, prefix, label string, child *Document, indent, depth, maxDepth int) {
	if child.Kind == KindScalar {
		_, _ = fmt.Fprintf(w, "%s%s: %s\n", prefix, label, scalarLabel(child))

		return
	}

	if depth >= maxDepth {
		_, _ = fmt.Fprintf(w, "%s%s: %s ...\n", prefix, label, containerLabel(child))

		return
	}

	_, _ = fmt.Fprintf(w, "%s%s: %s\n", prefix, label, containerLabel(child))
	renderChildren(w, child, indent+1, depth+1, maxDepth)
}

func containerLabel(doc *Document) string {
	if doc.Kind == KindMapping {
		return fmt.Sprintf("{mapping, %s}", plural(len(doc.Keys), "key"))
	}

	return fmt.Sprintf("[sequence, %s]", plural(len(doc.Items), "item"))
}

func scalarLabel(doc *Document) string {
	switch doc.Scalar {
	case ScalarString:
		return "string = " + strconv.Quote(previewString(doc.Str))
	case ScalarNumber:
		return "number = " + strconv.FormatFloat(doc.Num, 'g', -1, 64)
	case ScalarBool:
		return "bool = " + strconv.FormatBool(doc.Bool)
	default:
		return "null"
	}
}

func previewString(s string) string {
	runes := []rune(s)
	if len(runes) <= previewRunes {
		return s
	}

	return string(runes[:previewRunes]) + "..."
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	return fmt.Sprintf("%d %ss", n, noun)
}
