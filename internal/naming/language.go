package naming

import (
	"path/filepath"
	"regexp"
	"strings"
)

// FallbackLanguage is used when no strategy recognizes the filename.
const FallbackLanguage = "en"

// languageStrategy is one named extraction attempt. Strategies are evaluated
// in slice order; the first match wins.
type languageStrategy struct {
	name    string
	pattern *regexp.Regexp
	group   int
}

var languageStrategies = []languageStrategy{
	// Canonical already-renamed form: name_<Ns>_<lang>_<WxH>. Must be tried
	// first or the prefix heuristic would mis-read renamed files.
	{
		name:    "structured",
		pattern: regexp.MustCompile(`_(\d+s)_([a-zA-Z]{2,})_(\d+x\d+)`),
		group:   2,
	},
	// Exactly two leading letters followed by an underscore.
	{
		name:    "prefix",
		pattern: regexp.MustCompile(`^([a-zA-Z]{2})_`),
		group:   1,
	},
}

// ParseLanguage extracts the language code from a filename. It never fails:
// when no strategy matches, fallback is returned (FallbackLanguage when
// fallback is empty).
func ParseLanguage(filename, fallback string) string {
	stem := Stem(filename)
	for _, strategy := range languageStrategies {
		if m := strategy.pattern.FindStringSubmatch(stem); m != nil {
			return strings.ToLower(m[strategy.group])
		}
	}
	if fallback = strings.ToLower(strings.TrimSpace(fallback)); fallback != "" {
		return fallback
	}
	return FallbackLanguage
}

// Stem returns the filename without directory or extension.
func Stem(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
