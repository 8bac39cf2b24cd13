package naming

import (
	"fmt"
	"strings"
)

// NewName builds the canonical renamed form
// <custom>_<Ns>_<lang>_<WxH>.mp4.
func NewName(customName string, durationSeconds int, languageCode, resolution string) string {
	return fmt.Sprintf("%s_%ds_%s_%s.mp4", customName, durationSeconds, strings.ToLower(languageCode), resolution)
}

// fileNameReplacer replaces filesystem-unsafe characters with safe
// alternatives.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeCustomName makes a user-entered custom name safe to embed in a
// filename. Slashes, backslashes, colons, and asterisks become dashes; other
// unsafe characters are removed.
func SanitizeCustomName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return strings.TrimSpace(fileNameReplacer.Replace(name))
}
