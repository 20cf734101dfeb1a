package simplify

import "github.com/katalvlaran/asmgraph/core"

// discovery is the read-only first phase: it classifies every segment
// and produces the chains to merge. The segment-name snapshot is taken
// once, so later mutation cannot disturb it.
type discovery struct {
	graph *core.Graph

	// exclude holds names already consumed by an in-progress walk.
	exclude map[string]bool

	// junctions holds branching segments, in snapshot order.
	junctions []string
	isJn      map[string]bool

	chains []*chain
}

// discoverChains walks the graph and returns every mergeable run:
// maximal degree-2 interior chains (including single redundant segments
// between junctions) followed by junction-junction adjacency pairs.
func discoverChains(g *core.Graph) []*chain {
	d := &discovery{
		graph:   g,
		exclude: make(map[string]bool),
		isJn:    make(map[string]bool),
	}
	names := g.SegmentNames()
	for _, name := range names {
		if d.exclude[name] {
			continue
		}
		if g.Degree(name, core.Left) > 1 || g.Degree(name, core.Right) > 1 {
			// branching on at least one side: a junction, never chain interior
			d.junctions = append(d.junctions, name)
			d.isJn[name] = true
			continue
		}
		d.linearChain(name)
	}
	d.junctionPairs()

	return d.chains
}

// linearChain grows the maximal linear run through name and records it.
// Isolated segments (no dovetails on either end) are left untouched.
func (d *discovery) linearChain(name string) {
	d.exclude[name] = true
	if d.graph.Degree(name, core.Left) == 0 && d.graph.Degree(name, core.Right) == 0 {
		return
	}
	left := d.traverse(core.EndOf(name, core.Left))
	right := d.traverse(core.EndOf(name, core.Right))

	c := &chain{
		ends:    make([]core.SegmentEnd, 0, len(left)+len(right)+1),
		members: make(map[string]bool, len(left)+len(right)+1),
	}
	// leftward steps come back far-to-near; flip them into walk order
	for i := len(left) - 1; i >= 0; i-- {
		c.ends = append(c.ends, left[i])
	}
	c.ends = append(c.ends, core.EndOf(name, core.Right))
	// rightward steps store the touching end; invert to face the walk
	for _, e := range right {
		c.ends = append(c.ends, e.Invert())
	}
	for _, e := range c.ends {
		c.members[e.Name()] = true
	}
	d.chains = append(d.chains, c)
}

// traverse walks outward from one end while the run stays linear: the
// current end must carry exactly one dovetail, and the neighbor must
// neither branch at its touching end nor at its far end, nor be already
// consumed. Each step returns the neighbor endpoint at its touching end.
func (d *discovery) traverse(from core.SegmentEnd) []core.SegmentEnd {
	var out []core.SegmentEnd
	cur := from
	for {
		ds := d.graph.Dovetails(cur.Name(), cur.Side())
		if len(ds) != 1 {
			// dead end (0) or branch point (>1): the run stops here
			break
		}
		nxt, ok := ds[0].OtherEnd(cur)
		if !ok {
			break
		}
		if d.exclude[nxt.Name()] {
			// already consumed: another walk owns it, or the run closed
			break
		}
		if d.graph.Degree(nxt.Name(), nxt.Side()) != 1 {
			// the neighbor branches where we touch it: junction boundary
			break
		}
		if d.graph.Degree(nxt.Name(), nxt.Side().Invert()) > 1 {
			// the neighbor branches on its far side: boundary, not interior
			break
		}
		d.exclude[nxt.Name()] = true
		out = append(out, nxt)
		cur = nxt.Invert()
	}

	return out
}

// junctionPairs emits a two-element redundant chain for every dovetail
// joining two junction segments directly. Each such edge fires exactly
// once. The emitted shapes match the per-side boundary scan: a left-side
// neighbor leads, a right-side neighbor trails inverted.
func (d *discovery) junctionPairs() {
	seen := make(map[*core.Dovetail]bool)
	for _, name := range d.junctions {
		for _, dt := range d.graph.Dovetails(name, core.Left) {
			other, ok := dt.OtherEnd(core.EndOf(name, core.Left))
			if !ok || !d.isJn[other.Name()] || seen[dt] {
				continue
			}
			seen[dt] = true
			d.chains = append(d.chains, pairChain(other, core.EndOf(name, core.Right)))
		}
		for _, dt := range d.graph.Dovetails(name, core.Right) {
			other, ok := dt.OtherEnd(core.EndOf(name, core.Right))
			if !ok || !d.isJn[other.Name()] || seen[dt] {
				continue
			}
			seen[dt] = true
			d.chains = append(d.chains, pairChain(core.EndOf(name, core.Right), other.Invert()))
		}
	}
}

// pairChain builds a junction-junction chain: both boundaries are
// redundant and no extension is needed.
func pairChain(first, last core.SegmentEnd) *chain {
	return &chain{
		ends:           []core.SegmentEnd{first, last},
		redundantFirst: true,
		redundantLast:  true,
		members:        map[string]bool{},
		extended:       true,
	}
}
