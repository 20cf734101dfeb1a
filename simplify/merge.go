package simplify

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/asmgraph/core"
)

// mergeChain materializes one extended linear run: it composes the
// merged sequence, creates the merged segment under a fresh name,
// annotates and temp-links redundant boundary junctions, and detaches
// the run's interior from the graph. Returns the merged segment's name.
func mergeChain(g *core.Graph, c *chain, o *options) (string, error) {
	sequence, parts, err := composeSequence(g, c.ends)
	if err != nil {
		return "", err
	}

	name := o.nameFn(parts)
	if g.HasSegment(name) {
		// collision-proof fallback for repeated or clashing part names
		name = name + "_" + uuid.New().String()[:8]
	}
	merged, err := g.AddSegment(name, sequence)
	if err != nil {
		return "", err
	}

	if c.redundantFirst {
		if err = annotateStart(g, merged, c.ends[0]); err != nil {
			return "", err
		}
	}
	if c.redundantLast {
		if err = annotateEnd(g, merged, c.ends[len(c.ends)-1]); err != nil {
			return "", err
		}
	}

	// the interior transfers its data to the merged segment; redundant
	// boundaries stay behind for the resolution pass
	lo, hi := 0, len(c.ends)-1
	if c.redundantFirst {
		lo++
	}
	if c.redundantLast {
		hi--
	}
	for i := lo; i <= hi; i++ {
		if err = g.Disconnect(c.ends[i].Name()); err != nil {
			return "", err
		}
	}

	return merged.Name, nil
}

// composeSequence walks the path end to end, orienting each constituent
// (Right-facing = forward, Left-facing = reverse complement) and
// trimming each subsequent element by its connecting overlap. The
// merged length equals the sum of constituent lengths minus overlaps.
func composeSequence(g *core.Graph, ends []core.SegmentEnd) (string, []string, error) {
	var sb strings.Builder
	parts := make([]string, 0, len(ends))
	for i, e := range ends {
		s, err := e.Resolve(g)
		if err != nil {
			return "", nil, err
		}
		oriented := s.Sequence
		if e.Side() == core.Left {
			oriented = core.RevComp(oriented)
		}
		if i > 0 {
			d := connecting(g, ends[i-1], e)
			if d == nil {
				return "", nil, fmt.Errorf("%w: %s and %s", ErrBrokenChain, ends[i-1], e)
			}
			trim := d.Overlap
			if trim > len(oriented) {
				trim = len(oriented)
			}
			oriented = oriented[trim:]
		}
		sb.WriteString(oriented)
		parts = append(parts, s.Name)
	}

	return sb.String(), parts, nil
}

// connecting finds the dovetail joining two consecutive path elements:
// it leaves a through its facing end and enters b through the opposite
// of b's facing end.
func connecting(g *core.Graph, a, b core.SegmentEnd) *core.Dovetail {
	from := core.EndOf(a.Name(), a.Side())
	want := core.EndOf(b.Name(), b.Side().Invert())
	for _, d := range g.Dovetails(a.Name(), a.Side()) {
		if o, ok := d.OtherEnd(from); ok && o.Equal(want) {
			return d
		}
	}

	return nil
}

// annotateStart records the merged chain on its start junction and
// emits the temporary boundary edge. A Left-facing junction endpoint
// means the attachment is orientation-reversed: the chain leaves
// through the junction's left side.
func annotateStart(g *core.Graph, merged *core.Segment, first core.SegmentEnd) error {
	jn, err := first.Resolve(g)
	if err != nil {
		return err
	}
	reversed := first.Side() == core.Left
	prov := jn.EnsureJunction()
	if reversed {
		prov.Left = append(prov.Left, core.JunctionRef{Merged: merged.Name, Orient: core.Minus})
	} else {
		prov.Right = append(prov.Right, core.JunctionRef{Merged: merged.Name, Orient: core.Plus})
	}

	return g.AddDovetail(tempStartEdge(g.Version(), jn.Name, merged.Name, jn.Len(), reversed))
}

// annotateEnd records the merged chain on its end junction and emits
// the temporary boundary edge. A Left-facing junction endpoint here
// means the chain enters the junction reversed, through its right side.
func annotateEnd(g *core.Graph, merged *core.Segment, last core.SegmentEnd) error {
	jn, err := last.Resolve(g)
	if err != nil {
		return err
	}
	reversed := last.Side() == core.Left
	prov := jn.EnsureJunction()
	if reversed {
		prov.Right = append(prov.Right, core.JunctionRef{Merged: merged.Name, Orient: core.Minus})
	} else {
		prov.Left = append(prov.Left, core.JunctionRef{Merged: merged.Name, Orient: core.Plus})
	}

	return g.AddDovetail(tempEndEdge(g.Version(), merged.Name, jn.Name, merged.Len(), jn.Len(), reversed))
}
