package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrSegmentNotFound indicates an operation referenced a non-existent segment.
	ErrSegmentNotFound = errors.New("core: segment not found")

	// ErrDuplicateSegment indicates an attempt to add a segment under a taken name.
	ErrDuplicateSegment = errors.New("core: duplicate segment name")

	// ErrNilDovetail indicates a nil dovetail pointer was passed.
	ErrNilDovetail = errors.New("core: dovetail is nil")

	// ErrDovetailNotFound indicates an operation referenced a non-existent dovetail.
	ErrDovetailNotFound = errors.New("core: dovetail not found")

	// ErrValue indicates a semantically invalid payload in a structurally
	// valid value (an end side or orientation outside its domain).
	ErrValue = errors.New("core: invalid value")
)

// Side is the terminus of a segment: Left or Right.
type Side byte

const (
	// Left is the left (begin-facing) terminus of a segment.
	Left Side = 'L'
	// Right is the right (end-facing) terminus of a segment.
	Right Side = 'R'
)

// Valid reports whether s is exactly Left or Right.
func (s Side) Valid() bool { return s == Left || s == Right }

// Invert swaps Left and Right. Inverting twice restores the original.
func (s Side) Invert() Side {
	if s == Left {
		return Right
	}

	return Left
}

// String returns "L" or "R".
func (s Side) String() string { return string(byte(s)) }

// ParseSide converts a side character into a Side.
// Returns ErrValue for anything but 'L' or 'R'.
func ParseSide(b byte) (Side, error) {
	s := Side(b)
	if !s.Valid() {
		return 0, fmt.Errorf("%w: invalid end side (%q)", ErrValue, string(b))
	}

	return s, nil
}

// Orient is the orientation of a segment within an oriented link: Plus
// (forward) or Minus (reverse complement).
type Orient byte

const (
	// Plus marks a segment traversed forward.
	Plus Orient = '+'
	// Minus marks a segment traversed reverse-complemented.
	Minus Orient = '-'
)

// Valid reports whether o is exactly Plus or Minus.
func (o Orient) Valid() bool { return o == Plus || o == Minus }

// Invert swaps Plus and Minus.
func (o Orient) Invert() Orient {
	if o == Plus {
		return Minus
	}

	return Plus
}

// String returns "+" or "-".
func (o Orient) String() string { return string(byte(o)) }

// Version selects the exchange-format variant of a Graph. Exactly two
// variants exist; code switching on a Version treats any other value as
// an internal-consistency failure and panics rather than returning an
// error, since it signals a caller bug, not bad input.
type Version uint8

const (
	// GFA1 is the first format variant: links carry an overlap only.
	GFA1 Version = iota + 1
	// GFA2 is the second format variant: edges additionally carry
	// begin/end coordinates on both segments.
	GFA2
)

// String names the version, or reports the raw value for unknown ones.
func (v Version) String() string {
	switch v {
	case GFA1:
		return "gfa1"
	case GFA2:
		return "gfa2"
	default:
		return fmt.Sprintf("Version(%d)", uint8(v))
	}
}

// Segment is a node in the assembly graph carrying a sequence.
//
// Name uniquely identifies the Segment within its Graph and obeys the
// identifier grammar. Tags stores opaque caller-defined attributes and
// is passed through untouched by every algorithm in this module; the
// junction provenance used by simplification is typed and kept apart
// from Tags.
type Segment struct {
	// Name is the unique identifier of this Segment.
	Name string

	// Sequence is the segment's nucleotide sequence.
	Sequence string

	// Tags stores opaque caller-defined attributes.
	Tags map[string]string

	// jn is the typed junction provenance, created lazily on first
	// annotation and consumed by junction resolution.
	jn *Junction
}

// SegmentName returns the segment's name; it satisfies field.Namer so
// segments can appear directly in identifier lists.
func (s *Segment) SegmentName() string { return s.Name }

// Len returns the sequence length.
func (s *Segment) Len() int { return len(s.Sequence) }

// Tag returns the opaque tag value stored under key.
func (s *Segment) Tag(key string) (string, bool) {
	v, ok := s.Tags[key]

	return v, ok
}

// SetTag stores an opaque tag value under key, allocating the tag map on
// first use.
func (s *Segment) SetTag(key, value string) {
	if s.Tags == nil {
		s.Tags = make(map[string]string)
	}
	s.Tags[key] = value
}

// DeleteTag removes the opaque tag stored under key.
func (s *Segment) DeleteTag(key string) { delete(s.Tags, key) }

// Junction returns the junction provenance, or nil when the segment has
// never been annotated.
func (s *Segment) Junction() *Junction { return s.jn }

// EnsureJunction returns the junction provenance, creating an empty one
// on first call.
func (s *Segment) EnsureJunction() *Junction {
	if s.jn == nil {
		s.jn = &Junction{}
	}

	return s.jn
}

// ClearJunction drops the junction provenance.
func (s *Segment) ClearJunction() { s.jn = nil }

// Junction records, per side of an annotated segment, which merged
// chains used to terminate there before simplification. Left and Right
// are ordered by annotation time; the resolution pass forms their full
// cross product.
type Junction struct {
	// Left lists merged chains that ended at the segment's left side.
	Left []JunctionRef

	// Right lists merged chains that started at the segment's right side.
	Right []JunctionRef
}

// JunctionRef is one provenance entry: a merged segment name and the
// orientation under which it attached.
type JunctionRef struct {
	Merged string
	Orient Orient
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithVersion selects the format variant of the Graph (default GFA1).
func WithVersion(v Version) GraphOption {
	return func(g *Graph) { g.version = v }
}

// Graph is the in-memory assembly-graph store.
//
// It owns segments and dovetail edges for their whole lifetime; removed
// segments are detached from the maps, not mutated in place, so handles
// held by callers stay readable. Iteration helpers return snapshots in
// insertion order.
type Graph struct {
	version Version

	segments map[string]*Segment
	order    []string // segment insertion order; stale names are skipped

	dovetails []*Dovetail
	incidence map[endKey][]*Dovetail
}

// endKey addresses one physical segment end inside the incidence index.
type endKey struct {
	name string
	side Side
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph uses the GFA1 variant.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		version:   GFA1,
		segments:  make(map[string]*Segment),
		incidence: make(map[endKey][]*Dovetail),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
