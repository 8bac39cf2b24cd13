// Package services defines the shared error taxonomy used by the batch
// modes.
//
// Errors are tagged with sentinel markers so callers can decide whether a
// failure aborts the whole mode (preconditions) or is swallowed at per-file
// granularity and surfaced only as an aggregate count. Wrap attaches
// mode/operation context so log lines and summaries read uniformly.
package services
