// Package asmgraph is an in-memory toolkit for sequence assembly graphs:
// segments carrying DNA/RNA sequences, dovetail overlaps joining segment
// ends, and the simplification pass that collapses redundant linear paths
// into merged segments.
//
// 🚀 What is asmgraph?
//
//	A small, focused library that brings together:
//		• Core primitives: segments, oriented segment ends, dovetail edges
//		• Identifier codecs: the printable-ASCII grammar of segment names
//		  and space-delimited identifier lists
//		• Simplification: discovery of non-branching runs, chain merging,
//		  and junction resolution via provenance cross products
//
// ✨ Why choose asmgraph?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – snapshot iteration, insertion-ordered edge lookup
//   - Pure Go – no cgo, no hidden machinery
//   - Extensible – functional options and merge hooks for custom logic
//
// Under the hood, everything is organized under three subpackages:
//
//	field/    — identifier grammar and identifier-list encoding/decoding
//	core/     — Segment, SegmentEnd, Dovetail, Graph store and mutation API
//	simplify/ — linear-path discovery, chain merging, junction resolution
//
// Quick ASCII example:
//
//	    ──A──B──C──
//	   J1          J2
//	    ──────D────
//
//	two runs between the junctions J1 and J2 collapse into two merged
//	segments, and a final pass reconnects them directly, bypassing the
//	junctions.
//
// Dive into the per-package docs for the full API and worked examples.
//
//	go get github.com/katalvlaran/asmgraph
package asmgraph
