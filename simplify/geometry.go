package simplify

import (
	"fmt"

	"github.com/katalvlaran/asmgraph/core"
)

// Edge-geometry arithmetic per format variant. Exactly two variants
// exist; every switch below treats any other Version as an
// internal-consistency failure and panics: it indicates a caller bug,
// never bad input, and must not be caught.

// unsupportedVersion aborts on an unknown format variant.
func unsupportedVersion(v core.Version) string {
	return fmt.Sprintf("simplify: unsupported format version %s", v)
}

// tempStartEdge builds the temporary edge from a start junction to the
// merged segment. jnLen is the junction's sequence length: the merged
// segment opens with a full copy of the junction, so the overlap spans
// it entirely. GFA2 coordinates on the junction side are deliberately
// fake for reversed attachments, mirroring the edge's provisional role.
func tempStartEdge(v core.Version, jnName, mergedName string, jnLen int, reversed bool) *core.Dovetail {
	orient := core.Plus
	if reversed {
		orient = core.Minus
	}
	d := core.NewLink(jnName, orient, mergedName, core.Plus, jnLen)
	switch v {
	case core.GFA1:
		// overlap only
	case core.GFA2:
		if reversed {
			d.Coords = &core.Coords{Beg1: 0, End1: 1, Beg2: 0, End2: jnLen}
		} else {
			d.Coords = &core.Coords{Beg1: jnLen - 1, End1: jnLen, Final1: true, Beg2: 0, End2: jnLen}
		}
	default:
		panic(unsupportedVersion(v))
	}
	d.MarkTemporary()

	return d
}

// tempEndEdge builds the temporary edge from the merged segment to an
// end junction. mergedLen is the merged segment's full length; its last
// jnLen positions are the junction's copy.
func tempEndEdge(v core.Version, mergedName, jnName string, mergedLen, jnLen int, reversed bool) *core.Dovetail {
	orient := core.Plus
	if reversed {
		orient = core.Minus
	}
	d := core.NewLink(mergedName, core.Plus, jnName, orient, jnLen)
	switch v {
	case core.GFA1:
		// overlap only
	case core.GFA2:
		coords := &core.Coords{Beg1: mergedLen - jnLen, End1: mergedLen, Final1: true}
		if reversed {
			coords.Beg2, coords.End2, coords.Final2 = jnLen-1, jnLen, true
		} else {
			coords.Beg2, coords.End2 = 0, 1
		}
		d.Coords = coords
	default:
		panic(unsupportedVersion(v))
	}
	d.MarkTemporary()

	return d
}

// crossEdge builds one permanent edge of the resolution cross product:
// the junction's copy inside each merged neighbor overlaps entirely, so
// the junction's own length becomes the new overlap. Under GFA2 the
// coordinates are derived from the merged segments' lengths and
// attachment orientations.
func crossEdge(v core.Version, g *core.Graph, left, right core.JunctionRef, jnLen int) (*core.Dovetail, error) {
	d := core.NewLink(left.Merged, left.Orient, right.Merged, right.Orient, jnLen)
	switch v {
	case core.GFA1:
		// overlap only
	case core.GFA2:
		m1, err := g.Segment(left.Merged)
		if err != nil {
			return nil, err
		}
		m2, err := g.Segment(right.Merged)
		if err != nil {
			return nil, err
		}
		coords := &core.Coords{}
		if left.Orient == core.Minus {
			coords.Beg1, coords.End1 = 0, jnLen
		} else {
			coords.Beg1, coords.End1, coords.Final1 = m1.Len()-jnLen, m1.Len(), true
		}
		if right.Orient == core.Minus {
			coords.Beg2, coords.End2 = 0, jnLen
		} else {
			coords.Beg2, coords.End2, coords.Final2 = m2.Len()-jnLen, m2.Len(), true
		}
		d.Coords = coords
	default:
		panic(unsupportedVersion(v))
	}

	return d, nil
}
