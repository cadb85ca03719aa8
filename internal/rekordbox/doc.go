// Package rekordbox maps a loaded rekordbox.xml document onto the rbnotes
// data model.
//
// The export has two sections the package cares about:
//
//   - COLLECTION: a flat list of TRACK elements keyed by TrackID. Each TRACK
//     carries its comment in the Comments attribute and its cue points as
//     POSITION_MARK children.
//   - PLAYLISTS: a nested tree of NODE elements. Type="0" nodes are folders,
//     Type="1" nodes are playlists whose TRACK children reference collection
//     entries through their Key attribute.
//
// Tag and attribute names are the external contract defined by Rekordbox and
// are not configurable. Problems that make the whole export meaningless are
// returned as *model.DocumentError; problems confined to one record (a bad
// cue, a duplicate TrackID, a playlist entry without a Key) are logged at
// warn level and skipped.
package rekordbox
