// Package field implements the identifier grammar of the sequence-graph
// exchange format and the codec for space-delimited identifier lists.
//
// Segment and list identifiers are printable ASCII without spaces
// (^[!-~]+$). An encoded identifier list additionally permits the space
// separator (^[ !-~]+$); each decoded element is validated against the
// single-identifier grammar.
//
// Errors:
//
//	ErrFormat - a value violates the identifier character-class grammar.
//	ErrType   - a value of an unsupported kind was supplied.
package field
