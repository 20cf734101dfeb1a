package simplify

import "github.com/katalvlaran/asmgraph/core"

// extendToJunctions finalizes a chain's boundaries: on each side, the
// outward dovetail count decides between a dead end (zero: boundary not
// redundant), a unique junction neighbor (one: splice its endpoint into
// the path as a redundant boundary), and a branch on the chain's own
// terminus (several: the terminus itself plays the junction, redundant
// without splicing). A splice that would re-enter the run marks it
// circular instead.
func extendToJunctions(g *core.Graph, c *chain) {
	if c.extended {
		return
	}
	c.extended = true

	first := c.ends[0]
	fd := g.Dovetails(first.Name(), first.Side().Invert())
	c.redundantFirst = len(fd) > 0
	if len(fd) == 1 {
		j, ok := fd[0].OtherEnd(core.EndOf(first.Name(), first.Side().Invert()))
		if ok {
			if c.members[j.Name()] {
				c.circular = true
				return
			}
			c.ends = append([]core.SegmentEnd{j}, c.ends...)
		}
	}

	last := c.ends[len(c.ends)-1]
	ld := g.Dovetails(last.Name(), last.Side())
	c.redundantLast = len(ld) > 0
	if len(ld) == 1 {
		j, ok := ld[0].OtherEnd(core.EndOf(last.Name(), last.Side()))
		if ok {
			if c.members[j.Name()] {
				c.circular = true
				return
			}
			c.ends = append(c.ends, j.Invert())
		}
	}
}
