package naming

import "regexp"

// Marker is a normalized duration token such as "30s". It is a grouping and
// matching key only, not a precise timestamp.
type Marker string

// NoMarker is the grouping key for files without a parsable duration. It is
// distinct from every concrete marker: no filename ever yields an empty
// token.
const NoMarker Marker = ""

// IsNone reports whether the marker is the no-duration sentinel.
func (m Marker) IsNone() bool { return m == NoMarker }

// String renders the marker for logs and summaries.
func (m Marker) String() string {
	if m == NoMarker {
		return "(no marker)"
	}
	return string(m)
}

var (
	// Audio names accept both "45s" and "45sec", any case.
	audioDurationPattern = regexp.MustCompile(`(?i)(\d+)(?:sec|s)`)
	// Video names only ever carry the short lowercase form.
	videoDurationPattern = regexp.MustCompile(`(\d+)s`)
)

// ParseAudioDuration extracts the duration marker from an audio filename,
// normalizing the "sec" suffix to "s" so "45sec" and "45s" compare equal.
func ParseAudioDuration(filename string) Marker {
	if m := audioDurationPattern.FindStringSubmatch(Stem(filename)); m != nil {
		return Marker(m[1] + "s")
	}
	return NoMarker
}

// ParseVideoDuration extracts the duration marker from a video filename.
func ParseVideoDuration(filename string) Marker {
	if m := videoDurationPattern.FindStringSubmatch(Stem(filename)); m != nil {
		return Marker(m[1] + "s")
	}
	return NoMarker
}
