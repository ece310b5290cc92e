package profile

import (
	"fmt"
	"strconv"
	"strings"
)

// EnumeratePaths collects every addressable path into doc, in document
// traversal order (mapping insertion order, sequence index order). Children
// of the root are nesting level 1; no returned path is deeper than maxDepth,
// so maxDepth 0 yields an empty result.
func EnumeratePaths(doc *Document, maxDepth int) ([]string, error) {
	if maxDepth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepth, maxDepth)
	}

	var out []string

	walkPaths(doc, "", 0, maxDepth, &out)

	return out, nil
}

func walkPaths(doc *Document, prefix string, depth, maxDepth int, out *[]string) {
	if depth >= maxDepth {
		return
	}

	switch doc.Kind {
	case KindMapping:
		for _, key := range doc.Keys {
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}

			*out = append(*out, path)
			walkPaths(doc.Fields[key], path, depth+1, maxDepth, out)
		}

	case KindSequence:
		for i, elem := range doc.Items {
			path := prefix + "[" + strconv.Itoa(i) + "]"

			*out = append(*out, path)
			walkPaths(elem, path, depth+1, maxDepth, out)
		}
	}
}

// segment is one step of a parsed path: a mapping key, or a sequence index
// when index >= 0.
type segment struct {
	key   string
	index int
}

// Resolve follows a dotted/bracketed path (as produced by EnumeratePaths,
// e.g. "assessments.audiometry[0].left") from doc. The second return is
// false when the path is absent or malformed; Resolve never fails otherwise.
func Resolve(doc *Document, path string) (*Document, bool) {
	segs, ok := splitPath(path)
	if !ok {
		return nil, false
	}

	cur := doc

	for _, seg := range segs {
		if seg.index >= 0 {
			if cur.Kind != KindSequence || seg.index >= len(cur.Items) {
				return nil, false
			}

			cur = cur.Items[seg.index]

			continue
		}

		if cur.Kind != KindMapping {
			return nil, false
		}

		next, found := cur.Fields[seg.key]
		if !found {
			return nil, false
		}

		cur = next
	}

	return cur, true
}

// splitPath tokenizes "a.b[2].c" into segments. Keys containing '.', '[' or
// ']' are not addressable.
func splitPath(path string) ([]segment, bool) {
	if path == "" {
		return nil, false
	}

	var segs []segment

	i := 0
	for i < len(path) {
		switch path[i] {
		case '[':
			end := strings.IndexByte(path[i:], ']')
			if end < 0 {
				return nil, false
			}

			idx, err := strconv.Atoi(path[i+1 : i+end])
			if err != nil || idx < 0 {
				return nil, false
			}

			segs = append(segs, segment{index: idx})
			i += end + 1

		case '.':
			// A dot must join two segments and precede a key.
			if len(segs) == 0 || i+1 >= len(path) || path[i+1] == '.' || path[i+1] == '[' {
				return nil, false
			}

			i++

		case ']':
			return nil, false

		default:
			end := i
			for end < len(path) && path[end] != '.' && path[end] != '[' && path[end] != ']' {
				end++
			}

			segs = append(segs, segment{key: path[i:end], index: -1})
			i = end
		}
	}

	return segs, true
}
