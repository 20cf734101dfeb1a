// Package core defines the central Graph, Segment, SegmentEnd, and
// Dovetail types, and provides primitives for building, querying, and
// mutating assembly graphs.
//
// The store is purely sequential: a Graph is exclusively owned by a
// single caller for the whole run of any algorithm over it, so no
// locking is performed. Segments() and SegmentNames() return snapshots,
// making removal during iteration safe.
//
// This file set declares Side, Orient, Version, Segment, Dovetail,
// SegmentEnd, junction provenance, sentinel errors, and the NewGraph
// constructor.
//
// Errors:
//
//	ErrSegmentNotFound  - requested segment does not exist.
//	ErrDuplicateSegment - a segment with the same name already exists.
//	ErrNilDovetail      - dovetail pointer is nil.
//	ErrDovetailNotFound - requested dovetail does not exist.
//	ErrValue            - a structurally valid value holds an invalid
//	                      payload (end side or orientation).
//
// Segment name grammar violations wrap field.ErrFormat.
package core
