// Package naming implements the filename heuristics the batch modes share:
// language extraction, duration-marker parsing, canonical-name generation,
// and collision-free destination paths.
//
// Language extraction runs an ordered list of named strategies. The
// structured post-rename pattern is tried before the looser two-letter
// prefix so files that already carry the canonical form are never
// mis-parsed; new formats slot in as additional strategies.
package naming
