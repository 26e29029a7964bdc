// Package history keeps a bounded undo/redo log of timeline snapshots.
//
// Every stored entry is a deep copy taken at save time, so later mutation of
// the caller's timeline, or of a value returned by Undo/Redo, never reaches
// the log. Saving while the cursor sits behind the newest entry discards the
// redo branch first. When the log would exceed its limit the oldest entries
// are evicted.
//
// Rapid successive edits (a drag-resize, typing in a text overlay) coalesce
// into one entry by saving under a debounce key: re-saving under the same key
// before the delay elapses replaces the pending snapshot, and only the last
// value wins. Keys debounce independently. The timer itself lives behind the
// Scheduler interface so tests can drive it deterministically.
package history
