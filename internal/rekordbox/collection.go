package rekordbox

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"rbnotes/internal/model"
	"rbnotes/internal/xmltree"
)

const (
	tagCollection = "COLLECTION"
	tagTrack      = "TRACK"

	attrTrackID   = "TrackID"
	attrEntries   = "Entries"
	attrArtist    = "Artist"
	attrAlbum     = "Album"
	attrGenre     = "Genre"
	attrComments  = "Comments"
	attrLocation  = "Location"
	attrBPM       = "AverageBpm"
	attrTonality  = "Tonality"
	attrTotalTime = "TotalTime"
)

// Collection indexes the tracks of the export by TrackID and by Location.
type Collection struct {
	byKey      map[string]*model.Track
	byLocation map[string]*model.Track
	keys       []string
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{
		byKey:      make(map[string]*model.Track),
		byLocation: make(map[string]*model.Track),
	}
}

// BuildCollection indexes the single COLLECTION section of doc.
func BuildCollection(doc *xmltree.Document, log *zap.Logger) (*Collection, error) {
	sections := doc.Find(tagCollection)
	if len(sections) != 1 {
		return nil, &model.DocumentError{
			Reason: fmt.Sprintf("expected one %s element, found %d", tagCollection, len(sections)),
		}
	}
	section := sections[0]

	c := NewCollection()
	trackNodes := section.ChildrenNamed(tagTrack)
	for _, n := range trackNodes {
		track, err := trackFromNode(n, log)
		if err != nil {
			return nil, err
		}
		if prev, ok := c.byKey[track.Key]; ok {
			log.Warn("Duplicate TrackID, keeping the later entry",
				zap.String("track_id", track.Key),
				zap.Int("first_line", prev.Line),
				zap.Int("line", track.Line))
		}
		c.add(track)
	}

	if entries, ok := section.LookupAttr(attrEntries); ok {
		if n, err := strconv.Atoi(entries); err != nil || n != len(trackNodes) {
			log.Debug("COLLECTION Entries does not match track count",
				zap.String("entries", entries),
				zap.Int("tracks", len(trackNodes)))
		}
	}

	log.Debug("Indexed collection", zap.Int("tracks", c.Len()))
	return c, nil
}

func trackFromNode(n *xmltree.Node, log *zap.Logger) (*model.Track, error) {
	key := n.Attr(attrTrackID)
	if key == "" {
		return nil, &model.DocumentError{
			Line:   n.Line,
			Column: n.Column,
			Reason: fmt.Sprintf("%s without %s", tagTrack, attrTrackID),
		}
	}

	duration, _ := strconv.Atoi(n.Attr(attrTotalTime))
	hotcues, memory := ExtractCues(n, log)

	return &model.Track{
		Key:        key,
		Title:      n.Attr(attrName),
		Artist:     n.Attr(attrArtist),
		Album:      n.Attr(attrAlbum),
		Genre:      n.Attr(attrGenre),
		Comment:    n.Attr(attrComments),
		Location:   n.Attr(attrLocation),
		BPM:        n.Attr(attrBPM),
		Tonality:   n.Attr(attrTonality),
		Duration:   duration,
		Hotcues:    hotcues,
		MemoryCues: memory,
		Line:       n.Line,
	}, nil
}

// add inserts or replaces a track.
func (c *Collection) add(t *model.Track) {
	if prev, ok := c.byKey[t.Key]; ok {
		if prev.Location != "" && c.byLocation[prev.Location] == prev {
			delete(c.byLocation, prev.Location)
		}
	} else {
		c.keys = append(c.keys, t.Key)
	}
	c.byKey[t.Key] = t
	if t.Location != "" {
		c.byLocation[t.Location] = t
	}
}

// Lookup finds a track by TrackID.
func (c *Collection) Lookup(key string) (*model.Track, bool) {
	t, ok := c.byKey[key]
	return t, ok
}

// LookupLocation finds a track by its Location URL.
func (c *Collection) LookupLocation(location string) (*model.Track, bool) {
	t, ok := c.byLocation[location]
	return t, ok
}

// Resolve looks a playlist entry up according to the playlist's KeyType.
func (c *Collection) Resolve(keyType model.KeyType, key string) (*model.Track, bool) {
	if keyType == model.KeyLocation {
		return c.LookupLocation(key)
	}
	return c.Lookup(key)
}

// Len returns the number of distinct tracks.
func (c *Collection) Len() int {
	return len(c.byKey)
}

// Keys returns the TrackIDs in export order, each once.
func (c *Collection) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}
