package model

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// CueKind mirrors the Type attribute of a Rekordbox POSITION_MARK.
type CueKind int

const (
	CueKindCue     CueKind = 0
	CueKindFadeIn  CueKind = 1
	CueKindFadeOut CueKind = 2
	CueKindLoad    CueKind = 3
	CueKindLoop    CueKind = 4
)

// MemoryCueSlot is the Num value Rekordbox uses for memory cues.
const MemoryCueSlot = -1

// Hotcue is a single cue point stored on a track.
type Hotcue struct {
	Slot      int     // Pad number (0 = A); MemoryCueSlot for memory cues
	Name      string  // Optional label entered in Rekordbox
	Kind      CueKind // Cue, fade, load or loop
	Start     float64 // Seconds from the start of the track
	StartText string  // Start attribute as exported
	End       float64 // Loop end in seconds (loops only)
	EndText   string  // End attribute as exported (loops only)
	Color     string  // "#RRGGBB", empty when the export carries no color
}

// IsLoop reports whether the cue marks a loop.
func (h Hotcue) IsLoop() bool {
	return h.Kind == CueKindLoop
}

// IsMemory reports whether the cue is a memory cue rather than a pad hotcue.
func (h Hotcue) IsMemory() bool {
	return h.Slot == MemoryCueSlot
}

// Label returns the pad letter shown by Rekordbox (A, B, C...).
func (h Hotcue) Label() string {
	if h.IsMemory() {
		return "memory"
	}
	if h.Slot >= 0 && h.Slot < 26 {
		return string(rune('A' + h.Slot))
	}
	return fmt.Sprintf("%d", h.Slot)
}

// Offset formats the cue position as mm:ss.fff, or a start-end range for loops.
func (h Hotcue) Offset() string {
	start := FormatTime(h.Start, h.StartText)
	if h.IsLoop() {
		return start + "-" + FormatTime(h.End, h.EndText)
	}
	return start
}

// String renders "slot: name @ offset (color)", leaving out name and color
// when they are empty.
func (h Hotcue) String() string {
	var b strings.Builder
	b.WriteString(h.Label())
	b.WriteString(": ")
	if h.Name != "" {
		b.WriteString(h.Name)
		b.WriteString(" ")
	}
	b.WriteString("@ ")
	b.WriteString(h.Offset())
	if h.Color != "" {
		b.WriteString(" (")
		b.WriteString(h.Color)
		b.WriteString(")")
	}
	return b.String()
}

// FormatTime converts seconds to mm:ss.fff. The fractional digits are taken
// from the exported text when it has them so the value reads exactly as
// Rekordbox wrote it.
func FormatTime(seconds float64, text string) string {
	mins := int(seconds / 60)
	secs := int(seconds) % 60

	frac := ""
	if _, f, ok := strings.Cut(text, "."); ok {
		frac = f
	} else if text == "" {
		frac = fmt.Sprintf("%03d", int((seconds-float64(int(seconds)))*1000+0.5)%1000)
	}
	for len(frac) < 3 {
		frac += "0"
	}
	return fmt.Sprintf("%02d:%02d.%s", mins, secs, frac)
}

// Track is one entry of the library collection.
type Track struct {
	Key        string   // TrackID
	Title      string   // Name attribute
	Artist     string
	Album      string
	Genre      string
	Comment    string   // Comments attribute, verbatim
	Location   string   // file://localhost/... URL
	BPM        string   // AverageBpm as exported
	Tonality   string   // Musical key, e.g. "8A"
	Duration   int      // TotalTime in seconds
	Hotcues    []Hotcue // Sorted by slot
	MemoryCues []Hotcue // Sorted by start
	Line       int      // Line of the TRACK element in the export
}

// DisplayName returns "Artist - Title", falling back to whatever is known.
func (t *Track) DisplayName() string {
	switch {
	case t.Artist != "" && t.Title != "":
		return t.Artist + " - " + t.Title
	case t.Title != "":
		return t.Title
	case t.Artist != "":
		return t.Artist
	}
	if t.Location != "" {
		name := path.Base(t.Location)
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}
		return name
	}
	return "Track " + t.Key
}

// NodeKind separates playlist folders from playlists that hold tracks.
type NodeKind int

const (
	NodeFolder NodeKind = iota
	NodePlaylist
)

func (k NodeKind) String() string {
	if k == NodeFolder {
		return "folder"
	}
	return "playlist"
}

// KeyType says what the Key attribute of a playlist entry refers to.
type KeyType int

const (
	KeyTrackID  KeyType = 0
	KeyLocation KeyType = 1
)

// PlaylistNode is a folder or a playlist in the playlist tree.
type PlaylistNode struct {
	Name     string
	Kind     NodeKind
	Children []*PlaylistNode // Folders only
	Keys     []string        // Playlists only, in set order, duplicates kept
	KeyType  KeyType
	Line     int
}

// IsFolder reports whether the node is a folder.
func (n *PlaylistNode) IsFolder() bool {
	return n.Kind == NodeFolder
}
