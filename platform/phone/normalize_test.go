package phone

import "testing"

func TestNormalizeE164NationalNumber(t *testing.T) {
	got := NormalizeE164("(415) 555-2671", "US")
	if got != "+14155552671" {
		t.Fatalf("expected +14155552671, got %q", got)
	}
}

func TestNormalizeE164KeepsInternationalPrefix(t *testing.T) {
	got := NormalizeE164("+31 6 12345678", "US")
	if got != "+31612345678" {
		t.Fatalf("expected +31612345678, got %q", got)
	}
}

func TestNormalizeE164InvalidInputPassesThrough(t *testing.T) {
	got := NormalizeE164("not a number", "US")
	if got != "not a number" {
		t.Fatalf("expected unparseable input unchanged, got %q", got)
	}
}

func TestNormalizeE164TrimsWhitespace(t *testing.T) {
	got := NormalizeE164("   ", "US")
	if got != "" {
		t.Fatalf("expected empty result for blank input, got %q", got)
	}
}
