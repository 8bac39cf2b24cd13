// Package main hosts the clipbatch CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into the batch
// modes: renaming raw exports into the canonical duration-keyed form, merging
// replacement audio into matching videos, and drag-and-drop muxing of one
// audio track across ad-hoc video sets. It centralizes configuration
// resolution and structured logging setup so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
