package errors

import (
	"strings"
	"testing"
)

const source = `int x;
void main(void) {
    x = y;
}`

func TestFormatWithSource(t *testing.T) {
	err := NewListingError(3, "Symbol error at line 3: undeclared symbol", source)

	got := err.Format(false)
	if !strings.Contains(got, "   3 |     x = y;") {
		t.Errorf("formatted output missing source line:\n%s", got)
	}
	if !strings.Contains(got, "^") {
		t.Errorf("formatted output missing indicator:\n%s", got)
	}
	if !strings.Contains(got, "undeclared symbol") {
		t.Errorf("formatted output missing message:\n%s", got)
	}
}

func TestFormatWithoutSource(t *testing.T) {
	err := NewListingError(3, "Type error at line 3: invalid operands", "")

	got := err.Format(false)
	if got != "Type error at line 3: invalid operands" {
		t.Errorf("Format() = %q", got)
	}
	if err.Error() != got {
		t.Errorf("Error() and Format() disagree")
	}
}

func TestFormatLineOutOfRange(t *testing.T) {
	err := NewListingError(99, "whatever", source)
	if got := err.Format(false); got != "whatever" {
		t.Errorf("out-of-range line should fall back to the message, got %q", got)
	}
}

func TestFormatColor(t *testing.T) {
	err := NewListingError(1, "msg", source)
	got := err.Format(true)
	if !strings.Contains(got, "\033[1;31m") || !strings.Contains(got, "\033[0m") {
		t.Errorf("color output missing ANSI codes:\n%q", got)
	}
}

func TestFormatAll(t *testing.T) {
	if got := FormatAll(nil, false); got != "" {
		t.Errorf("FormatAll(nil) = %q, want empty", got)
	}

	single := []*ListingError{NewListingError(1, "only", "")}
	if got := FormatAll(single, false); got != "only" {
		t.Errorf("FormatAll with one error = %q", got)
	}

	multi := []*ListingError{
		NewListingError(1, "first", ""),
		NewListingError(2, "second", ""),
	}
	got := FormatAll(multi, false)
	if !strings.HasPrefix(got, "Analysis failed with 2 error(s):") {
		t.Errorf("FormatAll header wrong:\n%s", got)
	}
	if !strings.Contains(got, "first") || !strings.Contains(got, "second") {
		t.Errorf("FormatAll missing messages:\n%s", got)
	}
}
