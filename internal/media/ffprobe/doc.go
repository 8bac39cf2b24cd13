// Package ffprobe reads video resolution and duration through the external
// ffprobe binary. A probe failure only ever skips the affected file; the
// batch keeps going.
package ffprobe
