package simplify

import "github.com/katalvlaran/asmgraph/core"

// resolveJunctions is the final pass: every provenance-annotated
// segment is replaced by the full cross product of permanent edges
// between its left and right merged neighbors, then detached together
// with all its remaining edges, the temporary ones included. A junction
// annotated on one side only contributes no edges, just cleanup.
func resolveJunctions(g *core.Graph) (removed, created int, err error) {
	for _, s := range g.Segments() { // snapshot: detaching while iterating is safe
		prov := s.Junction()
		if prov == nil {
			continue
		}
		jnLen := s.Len()
		for _, left := range prov.Left {
			for _, right := range prov.Right {
				var d *core.Dovetail
				if d, err = crossEdge(g.Version(), g, left, right, jnLen); err != nil {
					return removed, created, err
				}
				if err = g.AddDovetail(d); err != nil {
					return removed, created, err
				}
				created++
			}
		}
		if err = g.Disconnect(s.Name); err != nil {
			return removed, created, err
		}
		removed++
	}

	return removed, created, nil
}
