package core

import "fmt"

// TagOverlapNote is the tag key marking provisional edges; the
// simplification pass sets it to TemporaryNote on the fake edges it
// emits between junctions and merged segments.
const (
	TagOverlapNote = "co"
	TemporaryNote  = "temporary"
)

// Coords carries the begin/end coordinates a GFA2 edge places on both
// of its segments. End positions equal to the segment length are marked
// final (the "$" notation of the format).
type Coords struct {
	Beg1, End1 int
	Beg2, End2 int

	// Final1 and Final2 mark End1/End2 as final positions.
	Final1, Final2 bool
}

// Dovetail is an overlap-based edge joining one end of a segment to one
// end of another. From and To are oriented endpoints; Overlap is the
// length of the overlapping region. Coords is populated for GFA2 graphs
// only. Tags stores opaque attributes, among them the temporary marker.
type Dovetail struct {
	From SegmentEnd
	To   SegmentEnd

	// Overlap is the match length of the overlap.
	Overlap int

	// Coords holds GFA2 edge coordinates; nil under GFA1.
	Coords *Coords

	// Tags stores opaque caller-defined attributes.
	Tags map[string]string
}

// NewDovetail builds a dovetail between two oriented endpoints.
func NewDovetail(from, to SegmentEnd, overlap int) *Dovetail {
	return &Dovetail{From: from, To: to, Overlap: overlap}
}

// NewLink builds a dovetail from oriented-link notation: the source
// segment contributes its Right end when forward (Plus) and its Left end
// when reversed; the target contributes its Left end when forward and
// its Right end when reversed. Invalid orientations panic: link notation
// is produced by code, not parsed from input.
func NewLink(fromName string, fromOrient Orient, toName string, toOrient Orient, overlap int) *Dovetail {
	if !fromOrient.Valid() || !toOrient.Valid() {
		panic(fmt.Sprintf("core: invalid link orientation (%q, %q)", fromOrient, toOrient))
	}
	fromSide, toSide := Right, Left
	if fromOrient == Minus {
		fromSide = Left
	}
	if toOrient == Minus {
		toSide = Right
	}

	return NewDovetail(EndOf(fromName, fromSide), EndOf(toName, toSide), overlap)
}

// IncidentOn reports whether e is one of the dovetail's endpoints.
func (d *Dovetail) IncidentOn(e SegmentEnd) bool {
	return d.From.Equal(e) || d.To.Equal(e)
}

// OtherEnd returns the endpoint opposite to e.
// The second result is false when e is not an endpoint of d.
func (d *Dovetail) OtherEnd(e SegmentEnd) (SegmentEnd, bool) {
	switch {
	case d.From.Equal(e):
		return d.To, true
	case d.To.Equal(e):
		return d.From, true
	default:
		return SegmentEnd{}, false
	}
}

// Tag returns the opaque tag value stored under key.
func (d *Dovetail) Tag(key string) (string, bool) {
	v, ok := d.Tags[key]

	return v, ok
}

// SetTag stores an opaque tag value under key.
func (d *Dovetail) SetTag(key, value string) {
	if d.Tags == nil {
		d.Tags = make(map[string]string)
	}
	d.Tags[key] = value
}

// MarkTemporary tags the dovetail as a provisional edge, safe to ignore
// or remove by consumers that do not understand an in-progress
// simplification.
func (d *Dovetail) MarkTemporary() { d.SetTag(TagOverlapNote, TemporaryNote) }

// Temporary reports whether the dovetail carries the temporary marker.
func (d *Dovetail) Temporary() bool {
	v, ok := d.Tag(TagOverlapNote)

	return ok && v == TemporaryNote
}

// String renders the dovetail as "<from>--<to>(<overlap>M)".
func (d *Dovetail) String() string {
	return fmt.Sprintf("%s--%s(%dM)", d.From, d.To, d.Overlap)
}
