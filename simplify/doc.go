// Package simplify collapses redundant linear paths of an assembly
// graph into merged segments.
//
// A linear path is a maximal run of segments whose interior connects
// through unique, non-branching dovetail overlaps. MergeLinearPaths
// discovers every such run, extends it to the junctions (segments with
// branching connectivity) or dead ends bounding it, and replaces the run
// with a single merged segment whose sequence is the overlap-trimmed
// composition of its constituents, including a copy of each bounding
// junction.
//
// Junctions are not removed immediately: each merge annotates its
// bounding junctions with provenance (which merged segment now attaches
// on which side, under which orientation) and links them to the merged
// segment through temporary edges. After all merges, a single resolution
// pass turns each junction's left/right provenance lists into their full
// cross product of permanent edges between the merged neighbors, then
// detaches the junction.
//
// Phases are strictly ordered: discovery and extension read the graph
// before any mutation, merging runs per discovered path, and resolution
// runs exactly once at the end.
package simplify
