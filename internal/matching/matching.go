package matching

import (
	"clipbatch/internal/naming"
	"clipbatch/internal/scan"
)

// MergePair is one resolved (video, audio) combination. Each pair is
// consumed exactly once by the replace engine.
type MergePair struct {
	Video scan.MediaFile
	Audio scan.MediaFile
}

// Match resolves the concrete pairs for a merge run. The returned sequence
// is deterministic: concrete markers ascend numerically and bucket contents
// keep discovery order.
func Match(audio, video scan.Group) []MergePair {
	audioMarkers := audio.Markers()

	switch {
	case len(audioMarkers) == 0:
		// Every audio is unmarked: full cross product over all videos.
		return cross(audio[naming.NoMarker], allVideos(video))

	case len(audioMarkers) == 1 && !audio.HasSentinel():
		// Single narration length: same-marker videos plus unmarked ones.
		marker := audioMarkers[0]
		targets := make([]scan.MediaFile, 0, len(video[marker])+len(video[naming.NoMarker]))
		targets = append(targets, video[marker]...)
		targets = append(targets, video[naming.NoMarker]...)
		return cross(audio[marker], targets)

	default:
		// Strict equality per marker. Unmatched markers drop silently, as do
		// unmarked audios mixed in with marked ones.
		var pairs []MergePair
		for _, marker := range audioMarkers {
			pairs = append(pairs, cross(audio[marker], video[marker])...)
		}
		return pairs
	}
}

func cross(audios, videos []scan.MediaFile) []MergePair {
	if len(audios) == 0 || len(videos) == 0 {
		return nil
	}
	pairs := make([]MergePair, 0, len(audios)*len(videos))
	for _, audioFile := range audios {
		for _, videoFile := range videos {
			pairs = append(pairs, MergePair{Video: videoFile, Audio: audioFile})
		}
	}
	return pairs
}

func allVideos(video scan.Group) []scan.MediaFile {
	out := make([]scan.MediaFile, 0, video.Total())
	for _, marker := range video.Markers() {
		out = append(out, video[marker]...)
	}
	out = append(out, video[naming.NoMarker]...)
	return out
}
