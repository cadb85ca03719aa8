// Package report turns a playlist tree and a collection into the text the
// user reads: the numbered playlist listing, the selection of one entry and
// the per-track report with comments and cue points.
//
// Rendering is lazy. Render returns an iter.Seq that resolves each playlist
// entry as it is consumed; a missing track produces a warning line and the
// sequence carries on with the next entry.
package report
