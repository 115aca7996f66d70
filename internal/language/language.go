package language

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Normalize lowercases the base subtag and canonicalizes region casing
// ("EN-us" becomes "en-US"). Unparseable codes pass through trimmed and
// lowercased so provider-invented codes still compare consistently.
func Normalize(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return strings.ToLower(code)
	}
	return tag.String()
}

// Base returns the base language subtag ("en" for "en-US").
func Base(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		if i := strings.IndexAny(strings.ToLower(code), "-_"); i > 0 {
			return strings.ToLower(code)[:i]
		}
		return strings.ToLower(code)
	}
	base, _ := tag.Base()
	return base.String()
}

// Matches reports whether a caption track's code satisfies the requested
// code. An exact normalized match always satisfies; a bare requested base
// also accepts any regional variant of the same base.
func Matches(requested, candidate string) bool {
	requested = Normalize(requested)
	candidate = Normalize(candidate)
	if requested == "" || candidate == "" {
		return false
	}
	if requested == candidate {
		return true
	}
	if !strings.ContainsAny(requested, "-_") {
		return requested == Base(candidate)
	}
	return false
}

// Default regions tried by the direct retrieval strategy when the caller
// requests a bare base code.
var regionFallbacks = map[string][]string{
	"en": {"en-US", "en-GB"},
	"es": {"es-ES", "es-419"},
	"pt": {"pt-BR", "pt-PT"},
	"fr": {"fr-FR", "fr-CA"},
	"de": {"de-DE"},
	"zh": {"zh-Hans", "zh-Hant", "zh-CN", "zh-TW"},
}

// Variants expands a requested code into the ordered list of codes the
// direct strategy should try: the code itself, then same-language regional
// fallbacks. A code already carrying a region expands to itself only.
func Variants(code string) []string {
	normalized := Normalize(code)
	if normalized == "" {
		return nil
	}
	variants := []string{normalized}
	if strings.ContainsAny(normalized, "-_") {
		return variants
	}
	return append(variants, regionFallbacks[normalized]...)
}

// DisplayName returns a human-readable English name for a language code, or
// the uppercased code when unrecognized.
func DisplayName(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return "Unknown"
	}
	tag, err := language.Parse(code)
	if err != nil {
		return strings.ToUpper(code)
	}
	return display.English.Tags().Name(tag)
}
