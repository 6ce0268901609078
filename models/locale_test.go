package models

import "testing"

func TestResolveExactMatch(t *testing.T) {
	field := LocalizedText{"fr": "Bonjour", "en": "Hello", "ar": "مرحبا"}
	if got := field.Resolve("ar"); got != "مرحبا" {
		t.Fatalf("expected arabic value, got %q", got)
	}
	if got := field.Resolve("en"); got != "Hello" {
		t.Fatalf("expected english value, got %q", got)
	}
}

func TestResolveFallsBackToFrench(t *testing.T) {
	field := LocalizedText{"fr": "Bonjour"}
	if got := field.Resolve("en"); got != "Bonjour" {
		t.Fatalf("expected french fallback, got %q", got)
	}
	if got := field.Resolve("ar"); got != "Bonjour" {
		t.Fatalf("expected french fallback, got %q", got)
	}
}

func TestResolveFallsBackToAnyValue(t *testing.T) {
	field := LocalizedText{"en": "Hi", "ar": "مرحبا"}
	// fr missing: requesting ar must still prefer the exact match
	if got := field.Resolve("ar"); got != "مرحبا" {
		t.Fatalf("expected arabic value, got %q", got)
	}
	// fr missing and no exact match: first non-empty wins (en before ar)
	if got := field.Resolve("fr"); got != "Hi" {
		t.Fatalf("expected english as first non-empty, got %q", got)
	}
}

func TestResolveEmptyAndNil(t *testing.T) {
	if got := (LocalizedText{}).Resolve("ar"); got != "" {
		t.Fatalf("empty map should resolve to empty string, got %q", got)
	}
	var nilField LocalizedText
	if got := nilField.Resolve("fr"); got != "" {
		t.Fatalf("nil map should resolve to empty string, got %q", got)
	}
}

func TestResolveSkipsEmptyValues(t *testing.T) {
	field := LocalizedText{"fr": "", "en": "Hello"}
	if got := field.Resolve("fr"); got != "Hello" {
		t.Fatalf("empty french value should not win, got %q", got)
	}
}

func TestLocalizedTextScanValueRoundTrip(t *testing.T) {
	original := LocalizedText{"fr": "Épices", "en": "Spices"}
	raw, err := original.Value()
	if err != nil {
		t.Fatalf("Value returned error: %v", err)
	}

	var decoded LocalizedText
	if err := decoded.Scan(raw); err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if decoded.Resolve("en") != "Spices" || decoded.Resolve("fr") != "Épices" {
		t.Fatalf("round trip mismatch: %v", decoded)
	}
}

func TestLocalizedTextScanNil(t *testing.T) {
	var field LocalizedText
	if err := field.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) returned error: %v", err)
	}
	if field == nil {
		t.Fatal("Scan(nil) should yield an empty, non-nil map")
	}
}
