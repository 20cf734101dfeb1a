// Package simplify: tunable options, result reporting, and error
// definitions for linear-path merging.
package simplify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/asmgraph/core"
)

// Sentinel errors for simplification.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("simplify: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("simplify: invalid option supplied")

	// ErrBrokenChain is returned when consecutive path elements are not
	// joined by a dovetail; it indicates store corruption, not bad input.
	ErrBrokenChain = errors.New("simplify: path elements not joined by a dovetail")
)

// Option configures merging behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when MergeLinearPaths is invoked.
type Option func(*options)

// options holds parameters and callbacks customizing a merge run.
type options struct {
	// nameFn derives the merged segment's name from its constituent
	// names, in path order.
	nameFn func(parts []string) string

	// onMerge is called after each chain merge with the merged name and
	// the extended path that produced it.
	onMerge func(merged string, path []core.SegmentEnd)

	// internal error recorded during option parsing
	err error
}

// defaultOptions returns options with sane defaults:
//   - merged names join constituent names with "_"
//   - no-op merge hook.
func defaultOptions() options {
	return options{
		nameFn:  func(parts []string) string { return strings.Join(parts, "_") },
		onMerge: func(string, []core.SegmentEnd) {},
	}
}

// WithNameFn overrides how merged segment names are derived from the
// constituent names. A nil fn is an option violation. Names that collide
// with a live segment are still made unique by the merger.
func WithNameFn(fn func(parts []string) string) Option {
	return func(o *options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil name function", ErrOptionViolation)
			return
		}
		o.nameFn = fn
	}
}

// WithOnMerge registers a callback observing each completed chain
// merge. Nil callbacks are ignored.
func WithOnMerge(fn func(merged string, path []core.SegmentEnd)) Option {
	return func(o *options) {
		if fn != nil {
			o.onMerge = fn
		}
	}
}

// Result reports the outcome of a merge run:
//   - MergedPaths: number of linear runs collapsed.
//   - Merged: names of the created merged segments, in merge order.
//   - JunctionsRemoved: junction segments detached by resolution.
//   - EdgesCreated: permanent cross-product edges emitted by resolution.
type Result struct {
	MergedPaths      int
	Merged           []string
	JunctionsRemoved int
	EdgesCreated     int
}

// chain is one discovered linear run: its oriented walk plus boundary
// state. Each element stores a segment with the end side facing the walk
// direction, so consecutive elements join their facing ends.
type chain struct {
	ends []core.SegmentEnd

	// redundantFirst and redundantLast report whether each boundary
	// abuts a kept junction (true) or a true dead end (false).
	redundantFirst bool
	redundantLast  bool

	// members holds the names discovered into the run before extension;
	// spliced junction copies are not members.
	members map[string]bool

	// extended is set once boundary flags are final.
	extended bool

	// circular marks runs that close on themselves; they are skipped.
	circular bool
}
