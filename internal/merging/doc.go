// Package merging performs the audio swap for resolved pairs with a
// crash-safe backup protocol.
//
// Per pair: the encoder writes into a temporary file created in the video's
// own directory (same filesystem, so the final seat is an atomic rename).
// On the first successful swap the pre-replacement original moves to
// backup/<LANG>/<filename>; that file is never overwritten afterwards, so
// repeated merge runs cannot lose the generation-zero original. Any failure
// cleans the temporary file, leaves the video and its backup untouched, and
// the batch continues with the next pair.
package merging
