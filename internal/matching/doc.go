// Package matching decides which audio files pair with which videos.
//
// The policy has three tiers, evaluated in strict priority order:
//
//  1. Only unmarked audio exists: every audio pairs with every video.
//  2. Exactly one marked audio group and no unmarked audio: that group
//     pairs with videos carrying the same marker plus unmarked videos.
//  3. Anything else: strict marker equality; non-intersecting markers
//     produce no pairs, silently.
//
// Tiers 1 and 2 cover the common workflows of a single generic voice-over
// and one narration track for a batch of same-length variants; tier 3 keeps
// genuinely mixed durations from cross-contaminating.
package matching
