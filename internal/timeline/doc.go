// Package timeline defines the editable document model: clips placed on
// tracks, markers, text overlays, clip groups, and the render output settings.
//
// The types here are pure data. Field invariants (trim bounds, minimum clip
// duration, non-negative placement) are enforced by the editor package on
// every mutation; this package only supplies the shapes, the deep-clone
// support the history engine relies on, and the shared constants.
//
// All structs carry JSON tags because the persistence layer stores whole
// timelines as JSON documents and the HTTP API speaks the same shape.
package timeline
