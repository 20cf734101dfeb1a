package field

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Sentinel errors for identifier validation and list coding.
var (
	// ErrFormat indicates a value violating the identifier grammar
	// (non-printable characters or disallowed whitespace).
	ErrFormat = errors.New("field: invalid format")

	// ErrType indicates a value of an unsupported kind where a specific
	// kind (string or Namer) is required.
	ErrType = errors.New("field: incompatible type")
)

// Namer is implemented by values that resolve to a segment name,
// so graph records can appear directly in identifier lists.
type Namer interface {
	SegmentName() string
}

var (
	identifierRe     = regexp.MustCompile(`^[!-~]+$`)
	identifierListRe = regexp.MustCompile(`^[ !-~]+$`)
)

// ValidateIdentifier checks s against the single-identifier grammar
// ^[!-~]+$ (printable ASCII, no spaces). Returns ErrFormat on violation.
func ValidateIdentifier(s string) error {
	if !identifierRe.MatchString(s) {
		return fmt.Errorf("%w: %q is not a valid identifier (it contains spaces or non-printable characters)", ErrFormat, s)
	}

	return nil
}

// ValidateIdentifierList checks the still-encoded list s against
// ^[ !-~]+$ (printable ASCII including the space separator).
// Returns ErrFormat on violation.
func ValidateIdentifierList(s string) error {
	if !identifierListRe.MatchString(s) {
		return fmt.Errorf("%w: %q is not a valid identifier list (it contains non-printable characters)", ErrFormat, s)
	}

	return nil
}

// DecodeIdentifierList validates the encoded list grammar, splits s on
// single spaces, and validates every element individually.
// Returns ErrFormat when either the encoded form or any element violates
// its grammar.
func DecodeIdentifierList(s string) ([]string, error) {
	if err := ValidateIdentifierList(s); err != nil {
		return nil, err
	}
	elems := strings.Split(s, " ")
	for _, elem := range elems {
		if err := ValidateIdentifier(elem); err != nil {
			return nil, err
		}
	}

	return elems, nil
}

// UnsafeDecodeIdentifierList splits s on single spaces without any
// validation; the raw elements pass through unchanged.
func UnsafeDecodeIdentifierList(s string) []string {
	return strings.Split(s, " ")
}

// EncodeIdentifierList joins items into a space-delimited list.
// Accepted element kinds: string, or any value implementing Namer
// (coerced to its segment name); anything else yields ErrType.
// Every coerced element is validated against the identifier grammar
// (ErrFormat on violation).
func EncodeIdentifierList(items []any) (string, error) {
	elems, err := coerceElements(items)
	if err != nil {
		return "", err
	}
	for _, elem := range elems {
		if err = ValidateIdentifier(elem); err != nil {
			return "", err
		}
	}

	return strings.Join(elems, " "), nil
}

// UnsafeEncodeIdentifierList joins items without grammar validation.
// Element kinds are still enforced: ErrType on an unsupported kind.
func UnsafeEncodeIdentifierList(items []any) (string, error) {
	elems, err := coerceElements(items)
	if err != nil {
		return "", err
	}

	return strings.Join(elems, " "), nil
}

// coerceElements maps each item to its string form, rejecting
// unsupported kinds with ErrType.
func coerceElements(items []any) ([]string, error) {
	elems := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			elems = append(elems, v)
		case Namer:
			elems = append(elems, v.SegmentName())
		default:
			return nil, fmt.Errorf("%w: list element of kind %T (accepted kinds: string, field.Namer)", ErrType, item)
		}
	}

	return elems, nil
}
