// Package projectstore persists editing projects in SQLite.
//
// Each project row carries its identity, bookkeeping timestamps, and the
// whole timeline serialized as one JSON document. The store never inspects
// timeline internals; the editor owns those semantics, and the store only
// round-trips the document.
//
// One store owns one library directory. A file lock taken at open time keeps
// a second cutline process from editing the same library concurrently.
// Schema changes bump the version in schema.go.
package projectstore
