// Package scan discovers the audio and video files a batch run operates on
// and buckets them by inferred duration marker.
//
// Audio files live directly in the working directory; video files live one
// level deep, inside the language folders the rename mode populates.
// Discovery order follows os.ReadDir's lexical ordering, so buckets are
// stable and pairings deterministic.
package scan
