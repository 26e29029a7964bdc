// Package api exposes the editing engine over a local HTTP surface.
//
// The server maps each project onto one editing session: mutations apply to
// the in-memory session (which records undo history), and the resulting
// timeline is written back to the project store so the document on disk
// always matches the last applied edit. Undo and redo are endpoints like any
// other mutation.
//
// This is a loopback API for local front ends and scripting, not a public
// service; there is no authentication and the default bind is 127.0.0.1.
package api
