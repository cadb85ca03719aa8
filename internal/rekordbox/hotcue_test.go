package rekordbox

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"rbnotes/internal/model"
	"rbnotes/internal/xmltree"
)

func TestParseMark(t *testing.T) {
	tests := []struct {
		name    string
		attrs   map[string]string
		want    model.Hotcue
		wantErr bool
	}{
		{
			name:  "Full hotcue",
			attrs: map[string]string{"Name": "Drop", "Type": "0", "Start": "62.500", "Num": "1", "Red": "40", "Green": "226", "Blue": "20"},
			want:  model.Hotcue{Slot: 1, Name: "Drop", Start: 62.5, StartText: "62.500", Color: "#28E214"},
		},
		{
			name:  "No Type defaults to cue",
			attrs: map[string]string{"Start": "1.0", "Num": "0"},
			want:  model.Hotcue{Slot: 0, Start: 1, StartText: "1.0"},
		},
		{
			name:  "Memory cue",
			attrs: map[string]string{"Start": "5.000", "Num": "-1", "Type": "0"},
			want:  model.Hotcue{Slot: -1, Start: 5, StartText: "5.000"},
		},
		{
			name:  "Loop",
			attrs: map[string]string{"Start": "10.000", "End": "18.000", "Num": "2", "Type": "4"},
			want:  model.Hotcue{Slot: 2, Kind: model.CueKindLoop, Start: 10, StartText: "10.000", End: 18, EndText: "18.000"},
		},
		{
			name:  "Partial color ignored",
			attrs: map[string]string{"Start": "1.000", "Num": "0", "Red": "255"},
			want:  model.Hotcue{Start: 1, StartText: "1.000"},
		},
		{
			name:  "Color out of range ignored",
			attrs: map[string]string{"Start": "1.000", "Num": "0", "Red": "256", "Green": "0", "Blue": "0"},
			want:  model.Hotcue{Start: 1, StartText: "1.000"},
		},
		{
			name:  "Non-contiguous slot",
			attrs: map[string]string{"Start": "1.000", "Num": "7"},
			want:  model.Hotcue{Slot: 7, Start: 1, StartText: "1.000"},
		},
		{name: "Missing Num", attrs: map[string]string{"Start": "1.000"}, wantErr: true},
		{name: "Non-numeric Num", attrs: map[string]string{"Start": "1.000", "Num": "A"}, wantErr: true},
		{name: "Num below -1", attrs: map[string]string{"Start": "1.000", "Num": "-2"}, wantErr: true},
		{name: "Missing Start", attrs: map[string]string{"Num": "0"}, wantErr: true},
		{name: "Non-numeric Start", attrs: map[string]string{"Start": "1:02", "Num": "0"}, wantErr: true},
		{name: "Negative Start", attrs: map[string]string{"Start": "-1.0", "Num": "0"}, wantErr: true},
		{name: "NaN Start", attrs: map[string]string{"Start": "NaN", "Num": "0"}, wantErr: true},
		{name: "Unknown Type", attrs: map[string]string{"Start": "1.0", "Num": "0", "Type": "9"}, wantErr: true},
		{name: "Loop without End", attrs: map[string]string{"Start": "1.0", "Num": "0", "Type": "4"}, wantErr: true},
		{name: "Loop End before Start", attrs: map[string]string{"Start": "8.0", "End": "2.0", "Num": "0", "Type": "4"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMark(tt.attrs)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error, got %+v", got)
				}
				if !errors.Is(err, model.ErrMalformedCue) {
					t.Errorf("Expected ErrMalformedCue, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseMark() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func trackNode(t *testing.T, xml string) *xmltree.Node {
	t.Helper()
	doc, err := xmltree.Load(strings.NewReader(xml))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return doc.Roots[0]
}

func TestExtractCuesSortsBySlot(t *testing.T) {
	n := trackNode(t, `<TRACK TrackID="1">
  <POSITION_MARK Name="third" Start="30.0" Num="5"/>
  <POSITION_MARK Name="first" Start="10.0" Num="0"/>
  <POSITION_MARK Name="memory late" Start="90.0" Num="-1"/>
  <POSITION_MARK Name="second-a" Start="20.0" Num="2"/>
  <POSITION_MARK Name="memory early" Start="3.0" Num="-1"/>
  <POSITION_MARK Name="second-b" Start="25.0" Num="2"/>
</TRACK>`)

	hotcues, memory := ExtractCues(n, zap.NewNop())

	var names []string
	for _, c := range hotcues {
		names = append(names, c.Name)
	}
	if got := strings.Join(names, ","); got != "first,second-a,second-b,third" {
		t.Errorf("Unexpected hotcue order: %s", got)
	}

	if len(memory) != 2 || memory[0].Name != "memory early" || memory[1].Name != "memory late" {
		t.Errorf("Memory cues not sorted by start: %+v", memory)
	}
}

func TestExtractCuesDropsBadRecords(t *testing.T) {
	n := trackNode(t, `<TRACK TrackID="42">
  <POSITION_MARK Name="ok" Start="10.0" Num="1"/>
  <POSITION_MARK Name="bad start" Start="soon" Num="0"/>
  <POSITION_MARK Name="no slot" Start="1.0"/>
  <POSITION_MARK Name="also ok" Start="1.0" Num="0"/>
</TRACK>`)

	core, logs := observer.New(zapcore.WarnLevel)
	hotcues, memory := ExtractCues(n, zap.New(core))

	if len(hotcues) != 2 {
		t.Fatalf("Expected 2 surviving hotcues, got %d", len(hotcues))
	}
	if hotcues[0].Name != "also ok" || hotcues[1].Name != "ok" {
		t.Errorf("Unexpected hotcues: %+v", hotcues)
	}
	if len(memory) != 0 {
		t.Errorf("Expected no memory cues, got %d", len(memory))
	}

	dropped := logs.FilterMessage("Dropping cue record").All()
	if len(dropped) != 2 {
		t.Fatalf("Expected 2 warnings, got %d", len(dropped))
	}
	if dropped[0].ContextMap()["track_id"] != "42" {
		t.Errorf("Warning should name the track: %v", dropped[0].ContextMap())
	}
}
