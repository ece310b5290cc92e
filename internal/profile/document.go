// Package profile loads Occupational Health profile documents from a
// directory of JSON files and provides structure inspection, path
// enumeration, and cross-subject availability summaries.
package profile

import (
	"fmt"

	"github.com/tailscale/hujson"
)

// Kind discriminates the three document node variants.
type Kind int

// Document node kinds.
const (
	KindMapping Kind = iota
	KindSequence
	KindScalar
)

// ScalarKind discriminates scalar leaf values.
type ScalarKind int

// Scalar kinds.
const (
	ScalarString ScalarKind = iota
	ScalarNumber
	ScalarBool
	ScalarNull
)

// Document is one node of a parsed profile tree: a mapping with
// insertion-ordered keys, a sequence, or a scalar leaf. Documents are
// immutable once loaded.
type Document struct {
	Kind Kind

	// Mapping fields. Keys preserves source order; Fields indexes by key.
	Keys   []string
	Fields map[string]*Document

	// Sequence elements.
	Items []*Document

	// Scalar value. Exactly one of Str/Num/Bool is meaningful per kind.
	Scalar ScalarKind
	Str    string
	Num    float64
	Bool   bool
}

// IsContainer reports whether the node is a mapping or a sequence.
func (d *Document) IsContainer() bool {
	return d.Kind == KindMapping || d.Kind == KindSequence
}

// Len returns the number of keys or elements for containers, 0 for scalars.
func (d *Document) Len() int {
	switch d.Kind {
	case KindMapping:
		return len(d.Keys)
	case KindSequence:
		return len(d.Items)
	default:
		return 0
	}
}

// ParseDocument parses raw profile bytes into a Document tree. Mapping key
// order follows the source. Input is JSONC-tolerant (comments and trailing
// commas survive hand-edited exports), courtesy of hujson.
func ParseDocument(data []byte) (*Document, error) {
	val, err := hujson.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return fromValue(val.Value)
}

func fromValue(v hujson.ValueTrimmed) (*Document, error) {
	switch val := v.(type) {
	case hujson.Literal:
		return fromLiteral(val), nil

	case *hujson.Object:
		doc := &Document{
			Kind:   KindMapping,
			Fields: make(map[string]*Document, len(val.Members)),
		}

		for _, member := range val.Members {
			name, ok := member.Name.Value.(hujson.Literal)
			if !ok {
				return nil, fmt.Errorf("%w: non-string object key", ErrInvalidDocument)
			}

			key := name.String()

			child, err := fromValue(member.Value.Value)
			if err != nil {
				return nil, err
			}

			// Duplicate keys within one object: last wins, key position kept.
			if _, exists := doc.Fields[key]; !exists {
				doc.Keys = append(doc.Keys, key)
			}

			doc.Fields[key] = child
		}

		return doc, nil

	case *hujson.Array:
		doc := &Document{Kind: KindSequence}

		for _, elem := range val.Elements {
			child, err := fromValue(elem.Value)
			if err != nil {
				return nil, err
			}

			doc.Items = append(doc.Items, child)
		}

		return doc, nil

	default:
		return nil, fmt.Errorf("%w: unsupported value", ErrInvalidDocument)
	}
}

// Literal kind bytes as reported by hujson.
const (
	litNull   = 'n'
	litFalse  = 'f'
	litTrue   = 't'
	litString = '"'
	litNumber = '0'
)

func fromLiteral(lit hujson.Literal) *Document {
	switch lit.Kind() {
	case litString:
		return &Document{Kind: KindScalar, Scalar: ScalarString, Str: lit.String()}
	case litNumber:
		return &Document{Kind: KindScalar, Scalar: ScalarNumber, Num: lit.Float()}
	case litTrue:
		return &Document{Kind: KindScalar, Scalar: ScalarBool, Bool: true}
	case litFalse:
		return &Document{Kind: KindScalar, Scalar: ScalarBool, Bool: false}
	default:
		return &Document{Kind: KindScalar, Scalar: ScalarNull}
	}
}
