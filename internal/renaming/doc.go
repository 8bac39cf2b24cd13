// Package renaming implements the rename mode: videos in the working
// directory are renamed into the canonical
// <custom>_<Ns>_<lang>_<WxH>.mp4 form and filed into per-language folders.
//
// Failures are swallowed per file and surfaced as aggregate counts; a file
// the metadata collaborator cannot read is skipped and counted, never
// retried.
package renaming
