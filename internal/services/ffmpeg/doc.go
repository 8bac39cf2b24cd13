// Package ffmpeg wraps the external encoder invocation that swaps a
// video's audio track. The image stream is copied unchanged; only the audio
// is re-encoded. Command execution sits behind an Executor so tests can run
// without the binary.
package ffmpeg
