// Package editor owns the live timeline value and applies every mutation the
// editing session can perform: clip placement and trimming, splits, track and
// marker upkeep, text overlays, transitions, clip locking, and grouping.
//
// The engine never rejects ordinary invalid input. Out-of-range numbers are
// clamped or cleared, operations naming a missing id do nothing, and every
// operation is a no-op while no timeline is loaded. An interactive editor
// must survive any keystroke or drag, so normalization beats errors here.
//
// Clips are deduplicated by id after every structural write, keeping the last
// occurrence, so the clip sequence never carries two entries with one id.
//
// All operations are atomic with respect to each other; a single mutex
// serializes writers, preserving the one-event-at-a-time model the UI layer
// assumes.
package editor
