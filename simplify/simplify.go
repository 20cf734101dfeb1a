package simplify

import "github.com/katalvlaran/asmgraph/core"

// MergeLinearPaths collapses every redundant linear path of g into a
// merged segment and resolves the bounding junctions, applying any
// number of functional Options.
//
// The run is all-or-nothing per invocation in intent but performs no
// rollback: mutations committed before a failure stay in place, and
// callers needing atomicity must snapshot the graph beforehand.
// Returns ErrNilGraph for a nil graph, ErrOptionViolation for bad
// options, and ErrBrokenChain or core store errors for inconsistent
// graphs.
func MergeLinearPaths(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Phase 1+2: read-only discovery and boundary extension. Both finish
	// before any mutation, so degree counts reflect the input graph.
	chains := discoverChains(g)
	for _, c := range chains {
		extendToJunctions(g, c)
	}

	// Phase 3: merge every run. Junction annotations accumulate across
	// merges; interiors leave the graph as they are consumed.
	res := &Result{}
	for _, c := range chains {
		if c.circular || len(c.ends) < 2 {
			continue
		}
		name, err := mergeChain(g, c, &o)
		if err != nil {
			return res, err
		}
		res.MergedPaths++
		res.Merged = append(res.Merged, name)
		o.onMerge(name, c.ends)
	}

	// Phase 4: single junction-resolution pass, after all merges.
	removed, created, err := resolveJunctions(g)
	res.JunctionsRemoved, res.EdgesCreated = removed, created

	return res, err
}
