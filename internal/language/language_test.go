package language

import (
	"slices"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"EN":      "en",
		"en-us":   "en-US",
		"  fr  ":  "fr",
		"":        "",
		"zz-wild": "zz-wild",
	}
	for input, want := range cases {
		if got := Normalize(input); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestBase(t *testing.T) {
	cases := map[string]string{
		"en-US": "en",
		"en":    "en",
		"pt-BR": "pt",
		"":      "",
	}
	for input, want := range cases {
		if got := Base(input); got != want {
			t.Errorf("Base(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestMatches(t *testing.T) {
	cases := []struct {
		requested string
		candidate string
		want      bool
	}{
		{"en", "en", true},
		{"en", "en-US", true},
		{"en", "en-GB", true},
		{"en-US", "en-US", true},
		{"en-US", "en-GB", false},
		{"en", "fr", false},
		{"fr", "en", false},
		{"", "en", false},
	}
	for _, tc := range cases {
		if got := Matches(tc.requested, tc.candidate); got != tc.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tc.requested, tc.candidate, got, tc.want)
		}
	}
}

func TestVariants(t *testing.T) {
	got := Variants("en")
	if got[0] != "en" {
		t.Fatalf("expected requested code first, got %v", got)
	}
	if !slices.Contains(got, "en-US") {
		t.Fatalf("expected en-US regional fallback, got %v", got)
	}

	regional := Variants("en-US")
	if len(regional) != 1 || regional[0] != "en-US" {
		t.Fatalf("regional code should not expand, got %v", regional)
	}

	if Variants("") != nil {
		t.Fatal("empty code should expand to nothing")
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("fr"); got != "French" {
		t.Fatalf("DisplayName(fr) = %q", got)
	}
	if got := DisplayName(""); got != "Unknown" {
		t.Fatalf("DisplayName(\"\") = %q", got)
	}
}
