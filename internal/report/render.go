package report

import (
	"iter"

	"rbnotes/internal/model"
)

// LineKind classifies a rendered report line.
type LineKind int

const (
	LineTrack     LineKind = iota // Display name, starts a track block
	LineComment                   // Free-text comment
	LineHotcue                    // One pad hotcue
	LineMemoryCue                 // One memory cue
	LineMissing                   // Entry that is not in the collection
)

// Line is one line of the report.
type Line struct {
	Kind     LineKind
	Position int          // 1-based position of the entry in the playlist
	Key      string       // Playlist key of the entry
	Track    *model.Track // nil for LineMissing
	Cue      model.Hotcue // Set for cue lines
	Text     string
	Err      error // *model.MissingTrackError for LineMissing
}

// Resolver finds the track for a playlist entry.
type Resolver interface {
	Resolve(keyType model.KeyType, key string) (*model.Track, bool)
}

// Render yields the report for a playlist, one entry at a time and in
// playlist order. Duplicated entries are rendered every time they appear.
// Each range over the sequence starts again from the first entry.
func Render(node *model.PlaylistNode, tracks Resolver) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i, key := range node.Keys {
			pos := i + 1
			track, ok := tracks.Resolve(node.KeyType, key)
			if !ok {
				err := &model.MissingTrackError{Key: key, Position: pos}
				if !yield(Line{Kind: LineMissing, Position: pos, Key: key, Text: err.Error(), Err: err}) {
					return
				}
				continue
			}
			for _, line := range trackLines(pos, key, track) {
				if !yield(line) {
					return
				}
			}
		}
	}
}

func trackLines(pos int, key string, t *model.Track) []Line {
	lines := []Line{{Kind: LineTrack, Position: pos, Key: key, Track: t, Text: t.DisplayName()}}
	if t.Comment != "" {
		lines = append(lines, Line{Kind: LineComment, Position: pos, Key: key, Track: t, Text: t.Comment})
	}
	for _, c := range t.Hotcues {
		lines = append(lines, Line{Kind: LineHotcue, Position: pos, Key: key, Track: t, Cue: c, Text: c.String()})
	}
	for _, c := range t.MemoryCues {
		lines = append(lines, Line{Kind: LineMemoryCue, Position: pos, Key: key, Track: t, Cue: c, Text: c.String()})
	}
	return lines
}

// Tracklist yields "Artist - Title" for each resolvable entry, in order.
func Tracklist(node *model.PlaylistNode, tracks Resolver) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, key := range node.Keys {
			track, ok := tracks.Resolve(node.KeyType, key)
			if !ok {
				continue
			}
			if !yield(track.DisplayName()) {
				return
			}
		}
	}
}
