package report

// Document is the JSON form of a playlist report.
type Document struct {
	Index  int           `json:"index"`
	Path   string        `json:"path"`
	Name   string        `json:"name"`
	Tracks []TrackReport `json:"tracks"`
}

// TrackReport is one playlist entry.
type TrackReport struct {
	Position   int         `json:"position"`
	Key        string      `json:"key"`
	Missing    bool        `json:"missing,omitempty"`
	Title      string      `json:"title,omitempty"`
	Artist     string      `json:"artist,omitempty"`
	Comment    string      `json:"comment,omitempty"`
	BPM        string      `json:"bpm,omitempty"`
	Tonality   string      `json:"tonality,omitempty"`
	Hotcues    []CueReport `json:"hotcues,omitempty"`
	MemoryCues []CueReport `json:"memoryCues,omitempty"`
}

// CueReport is one cue point.
type CueReport struct {
	Slot   string  `json:"slot"`
	Name   string  `json:"name,omitempty"`
	Start  float64 `json:"start"`
	End    float64 `json:"end,omitempty"`
	Offset string  `json:"offset"`
	Color  string  `json:"color,omitempty"`
	Loop   bool    `json:"loop,omitempty"`
}

// Export builds the JSON document for entry from the same line sequence the
// text report uses.
func Export(entry Entry, tracks Resolver) Document {
	doc := Document{
		Index:  entry.Index,
		Path:   entry.Path,
		Name:   entry.Node.Name,
		Tracks: []TrackReport{},
	}

	for line := range Render(entry.Node, tracks) {
		switch line.Kind {
		case LineMissing:
			doc.Tracks = append(doc.Tracks, TrackReport{Position: line.Position, Key: line.Key, Missing: true})
		case LineTrack:
			t := line.Track
			doc.Tracks = append(doc.Tracks, TrackReport{
				Position: line.Position,
				Key:      line.Key,
				Title:    t.Title,
				Artist:   t.Artist,
				Comment:  t.Comment,
				BPM:      t.BPM,
				Tonality: t.Tonality,
			})
		case LineHotcue:
			cur := &doc.Tracks[len(doc.Tracks)-1]
			cur.Hotcues = append(cur.Hotcues, cueReport(line))
		case LineMemoryCue:
			cur := &doc.Tracks[len(doc.Tracks)-1]
			cur.MemoryCues = append(cur.MemoryCues, cueReport(line))
		}
	}
	return doc
}

func cueReport(line Line) CueReport {
	c := line.Cue
	return CueReport{
		Slot:   c.Label(),
		Name:   c.Name,
		Start:  c.Start,
		End:    c.End,
		Offset: c.Offset(),
		Color:  c.Color,
		Loop:   c.IsLoop(),
	}
}
