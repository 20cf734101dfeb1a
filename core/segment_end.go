package core

import (
	"fmt"

	"github.com/katalvlaran/asmgraph/field"
)

// SegmentRef is an oriented endpoint's reference to a segment: either a
// live *Segment handle or a bare SegmentName. Equality of endpoints is
// defined over the resolved name only, so the two forms are
// interchangeable when denoting graph positions.
type SegmentRef interface {
	SegmentName() string
}

// SegmentName is a bare segment name acting as a SegmentRef.
type SegmentName string

// SegmentName returns the name itself.
func (n SegmentName) SegmentName() string { return string(n) }

// SegmentEnd is an oriented reference to a segment terminus: a segment
// reference plus an end side. The zero value is invalid.
type SegmentEnd struct {
	ref  SegmentRef
	side Side
}

// EndOf builds a SegmentEnd from a bare name and a side.
func EndOf(name string, side Side) SegmentEnd {
	return SegmentEnd{ref: SegmentName(name), side: side}
}

// EndOfSegment builds a SegmentEnd holding a live segment handle.
func EndOfSegment(s *Segment, side Side) SegmentEnd {
	return SegmentEnd{ref: s, side: side}
}

// ParseSegmentEnd decodes the string form "<name><L|R>": all characters
// but the last are the name, the last character is the side.
// Returns ErrValue when the side character is invalid or the string is
// too short to carry a name.
func ParseSegmentEnd(s string) (SegmentEnd, error) {
	if len(s) < 2 {
		return SegmentEnd{}, fmt.Errorf("%w: %q is too short for a segment end", ErrValue, s)
	}
	side, err := ParseSide(s[len(s)-1])
	if err != nil {
		return SegmentEnd{}, err
	}

	return EndOf(s[:len(s)-1], side), nil
}

// Ref returns the underlying segment reference (handle or bare name),
// the explicit accessor for callers that need more than the name.
func (e SegmentEnd) Ref() SegmentRef { return e.ref }

// Name resolves the underlying reference to the segment name.
func (e SegmentEnd) Name() string {
	if e.ref == nil {
		return ""
	}

	return e.ref.SegmentName()
}

// Side returns the end side.
func (e SegmentEnd) Side() Side { return e.side }

// Invert returns the same segment with the opposite end side; pure, and
// an involution: e.Invert().Invert() == e.
func (e SegmentEnd) Invert() SegmentEnd {
	return SegmentEnd{ref: e.ref, side: e.side.Invert()}
}

// String renders the endpoint as "<name><L|R>".
func (e SegmentEnd) String() string { return e.Name() + e.side.String() }

// Validate checks that the resolved name obeys the identifier grammar
// (wrapping field.ErrFormat on violation) and that the side is exactly
// Left or Right (ErrValue otherwise).
func (e SegmentEnd) Validate() error {
	if err := field.ValidateIdentifier(e.Name()); err != nil {
		return fmt.Errorf("invalid segment reference: %w", err)
	}
	if !e.side.Valid() {
		return fmt.Errorf("%w: invalid end side (%q)", ErrValue, string(byte(e.side)))
	}

	return nil
}

// Equal compares two endpoints structurally, by resolved name and side.
// Whether either side references a handle or a bare name does not affect
// the result.
func (e SegmentEnd) Equal(o SegmentEnd) bool {
	return e.Name() == o.Name() && e.side == o.side
}

// Matches compares the endpoint against loosely-typed representations:
// another SegmentEnd, its string form, or a 2-element name/side pair
// ([2]string or []string). Incomparable kinds and undecodable values
// yield false; Matches never panics.
func (e SegmentEnd) Matches(v any) bool {
	switch o := v.(type) {
	case SegmentEnd:
		return e.Equal(o)
	case string:
		dec, err := ParseSegmentEnd(o)
		if err != nil {
			return false
		}

		return e.Equal(dec)
	case [2]string:
		return e.matchPair(o[0], o[1])
	case []string:
		if len(o) != 2 {
			return false
		}

		return e.matchPair(o[0], o[1])
	default:
		return false
	}
}

// matchPair decodes a (name, side) pair, coercing the side to canonical
// form, and compares structurally.
func (e SegmentEnd) matchPair(name, side string) bool {
	if len(side) != 1 {
		return false
	}
	s, err := ParseSide(side[0])
	if err != nil {
		return false
	}

	return e.Equal(EndOf(name, s))
}

// Resolve returns the live segment this endpoint denotes: the held
// handle when the reference is one, otherwise a lookup in g.
// Returns ErrSegmentNotFound when the name is absent from g.
func (e SegmentEnd) Resolve(g *Graph) (*Segment, error) {
	if s, ok := e.ref.(*Segment); ok {
		return s, nil
	}

	return g.Segment(e.Name())
}
