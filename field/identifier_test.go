package field_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/asmgraph/field"
)

// named is a minimal Namer implementation for encoding tests.
type named string

func (n named) SegmentName() string { return string(n) }

// TestValidateIdentifier verifies the single-identifier grammar.
func TestValidateIdentifier(t *testing.T) {
	for _, ok := range []string{"a", "seg1", "s+", "~!", "A_b-c.1"} {
		if err := field.ValidateIdentifier(ok); err != nil {
			t.Errorf("ValidateIdentifier(%q) = %v; want nil", ok, err)
		}
	}
	for _, bad := range []string{"", "a b", "a\tb", "a\nb", "é"} {
		if err := field.ValidateIdentifier(bad); !errors.Is(err, field.ErrFormat) {
			t.Errorf("ValidateIdentifier(%q) = %v; want ErrFormat", bad, err)
		}
	}
}

// TestDecodeIdentifierList covers valid lists and grammar violations.
func TestDecodeIdentifierList(t *testing.T) {
	got, err := field.DecodeIdentifierList("a b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeIdentifierList(\"a b\") = %v; want %v", got, want)
	}

	// a control character violates the encoded-list grammar
	if _, err = field.DecodeIdentifierList("a\tb"); !errors.Is(err, field.ErrFormat) {
		t.Errorf("control character: got %v; want ErrFormat", err)
	}
	// a double space yields an empty element, invalid on its own
	if _, err = field.DecodeIdentifierList("a  b"); !errors.Is(err, field.ErrFormat) {
		t.Errorf("empty element: got %v; want ErrFormat", err)
	}
	if _, err = field.DecodeIdentifierList(""); !errors.Is(err, field.ErrFormat) {
		t.Errorf("empty list: got %v; want ErrFormat", err)
	}
}

// TestUnsafeDecodeIdentifierList verifies the raw split applies no validation.
func TestUnsafeDecodeIdentifierList(t *testing.T) {
	got := field.UnsafeDecodeIdentifierList("a\tb c")
	if want := []string{"a\tb", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("UnsafeDecodeIdentifierList = %v; want %v", got, want)
	}
}

// TestEncodeIdentifierList covers kind coercion and element validation.
func TestEncodeIdentifierList(t *testing.T) {
	got, err := field.EncodeIdentifierList([]any{"a", named("b"), "c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "a b c"; got != want {
		t.Errorf("EncodeIdentifierList = %q; want %q", got, want)
	}

	// an element of an unsupported kind is a type error
	if _, err = field.EncodeIdentifierList([]any{"a", 42}); !errors.Is(err, field.ErrType) {
		t.Errorf("number element: got %v; want ErrType", err)
	}
	// a coerced element violating the grammar is a format error
	if _, err = field.EncodeIdentifierList([]any{"a", "b c"}); !errors.Is(err, field.ErrFormat) {
		t.Errorf("spaced element: got %v; want ErrFormat", err)
	}
}

// TestUnsafeEncodeIdentifierList verifies kinds are enforced without grammar checks.
func TestUnsafeEncodeIdentifierList(t *testing.T) {
	got, err := field.UnsafeEncodeIdentifierList([]any{"a b", named("c")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "a b c"; got != want {
		t.Errorf("UnsafeEncodeIdentifierList = %q; want %q", got, want)
	}
	if _, err = field.UnsafeEncodeIdentifierList([]any{3.14}); !errors.Is(err, field.ErrType) {
		t.Errorf("float element: got %v; want ErrType", err)
	}
}
