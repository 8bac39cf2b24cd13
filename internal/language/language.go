package language

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Normalize lowercases and trims a parsed language code. Codes are kept even
// when not registered in BCP 47; filenames are the source of truth here.
func Normalize(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// Folder returns the language folder name for a code, e.g. "en" -> "EN".
func Folder(code string) string {
	return strings.ToUpper(Normalize(code))
}

// DisplayName returns a human-readable name for summaries, e.g. "fr" ->
// "French". Unrecognized codes fall back to their upper-cased form.
func DisplayName(code string) string {
	normalized := Normalize(code)
	if normalized == "" {
		return "Unknown"
	}
	tag, err := language.Parse(normalized)
	if err != nil {
		return strings.ToUpper(normalized)
	}
	name := display.English.Languages().Name(tag)
	if name == "" {
		return strings.ToUpper(normalized)
	}
	return name
}
