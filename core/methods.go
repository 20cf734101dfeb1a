// Package core: graph store method implementations.
//
// This file provides the mutation and query operations on the Graph
// type defined in types.go. Dovetail lookup by (segment, side) is
// indexed, so incidence queries cost O(1) plus the size of the answer.
// Removal helpers tolerate mid-iteration mutation because all iteration
// entry points return snapshots.

package core

import (
	"fmt"

	"github.com/katalvlaran/asmgraph/field"
)

// Version returns the format variant the graph was created with.
func (g *Graph) Version() Version { return g.version }

// AddSegment inserts a new segment with the given name and sequence.
// The name must obey the identifier grammar (violations wrap
// field.ErrFormat); a taken name yields ErrDuplicateSegment.
// Complexity: O(1) amortized.
func (g *Graph) AddSegment(name, sequence string) (*Segment, error) {
	if err := field.ValidateIdentifier(name); err != nil {
		return nil, fmt.Errorf("invalid segment name: %w", err)
	}
	if _, exists := g.segments[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateSegment, name)
	}
	s := &Segment{Name: name, Sequence: sequence}
	g.segments[name] = s
	g.order = append(g.order, name)

	return s, nil
}

// HasSegment reports whether a segment with the given name exists.
// Complexity: O(1).
func (g *Graph) HasSegment(name string) bool {
	_, exists := g.segments[name]

	return exists
}

// Segment returns the live segment stored under name.
// Returns ErrSegmentNotFound when absent.
// Complexity: O(1).
func (g *Graph) Segment(name string) (*Segment, error) {
	s, exists := g.segments[name]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrSegmentNotFound, name)
	}

	return s, nil
}

// Segments returns a snapshot of all live segments in insertion order.
// The snapshot stays valid across graph mutation.
// Complexity: O(n).
func (g *Graph) Segments() []*Segment {
	out := make([]*Segment, 0, len(g.segments))
	for _, name := range g.order {
		if s, ok := g.segments[name]; ok {
			out = append(out, s)
		}
	}

	return out
}

// SegmentNames returns a snapshot of all live segment names in
// insertion order.
// Complexity: O(n).
func (g *Graph) SegmentNames() []string {
	out := make([]string, 0, len(g.segments))
	for _, name := range g.order {
		if _, ok := g.segments[name]; ok {
			out = append(out, name)
		}
	}

	return out
}

// AddDovetail inserts a dovetail edge. Both endpoints must resolve to
// live segments (ErrSegmentNotFound otherwise); a nil dovetail yields
// ErrNilDovetail. Edges are kept in insertion order per endpoint.
// Complexity: O(1) amortized.
func (g *Graph) AddDovetail(d *Dovetail) error {
	if d == nil {
		return ErrNilDovetail
	}
	for _, e := range []SegmentEnd{d.From, d.To} {
		if !g.HasSegment(e.Name()) {
			return fmt.Errorf("%w: dovetail endpoint %q", ErrSegmentNotFound, e.String())
		}
	}
	g.dovetails = append(g.dovetails, d)
	fromKey := endKey{name: d.From.Name(), side: d.From.Side()}
	toKey := endKey{name: d.To.Name(), side: d.To.Side()}
	g.incidence[fromKey] = append(g.incidence[fromKey], d)
	if toKey != fromKey {
		g.incidence[toKey] = append(g.incidence[toKey], d)
	}

	return nil
}

// Dovetails returns the dovetail edges incident on (name, side), in
// insertion order. The returned slice is a snapshot.
// Complexity: O(k) for k incident edges.
func (g *Graph) Dovetails(name string, side Side) []*Dovetail {
	incident := g.incidence[endKey{name: name, side: side}]
	if len(incident) == 0 {
		return nil
	}
	out := make([]*Dovetail, len(incident))
	copy(out, incident)

	return out
}

// Degree returns the number of dovetail edges incident on (name, side).
// Complexity: O(1).
func (g *Graph) Degree(name string, side Side) int {
	return len(g.incidence[endKey{name: name, side: side}])
}

// RemoveDovetail deletes a dovetail edge from the graph.
// Returns ErrNilDovetail or ErrDovetailNotFound.
// Complexity: O(E) worst case.
func (g *Graph) RemoveDovetail(d *Dovetail) error {
	if d == nil {
		return ErrNilDovetail
	}
	idx := -1
	for i, cand := range g.dovetails {
		if cand == d {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrDovetailNotFound, d)
	}
	g.dovetails = append(g.dovetails[:idx], g.dovetails[idx+1:]...)
	g.dropIncidence(endKey{name: d.From.Name(), side: d.From.Side()}, d)
	g.dropIncidence(endKey{name: d.To.Name(), side: d.To.Side()}, d)

	return nil
}

// Disconnect removes the segment and every dovetail incident on either
// of its ends. The segment handle itself stays readable by holders.
// Returns ErrSegmentNotFound when the name is absent.
// Complexity: O(deg(s) * E) worst case.
func (g *Graph) Disconnect(name string) error {
	if _, exists := g.segments[name]; !exists {
		return fmt.Errorf("%w: %q", ErrSegmentNotFound, name)
	}
	for _, side := range []Side{Left, Right} {
		for _, d := range g.Dovetails(name, side) {
			// snapshot above makes removal during iteration safe
			if err := g.RemoveDovetail(d); err != nil {
				return err
			}
		}
	}
	delete(g.segments, name)

	return nil
}

// DovetailCount returns the number of dovetail edges in the graph.
// Complexity: O(1).
func (g *Graph) DovetailCount() int { return len(g.dovetails) }

// SegmentCount returns the number of live segments in the graph.
// Complexity: O(1).
func (g *Graph) SegmentCount() int { return len(g.segments) }

// dropIncidence removes d from one incidence bucket, deleting the
// bucket when it empties.
func (g *Graph) dropIncidence(key endKey, d *Dovetail) {
	bucket := g.incidence[key]
	for i, cand := range bucket {
		if cand == d {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(g.incidence, key)
		return
	}
	g.incidence[key] = bucket
}
