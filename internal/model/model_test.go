package model

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds  float64
		text     string
		expected string
	}{
		{62.5, "62.500", "01:02.500"},
		{62.5, "62.5", "01:02.500"},
		{0, "0.000", "00:00.000"},
		{3599.25, "3599.250", "59:59.250"},
		{7200, "7200", "120:00.000"},
		{10.125, "", "00:10.125"},
		{1.2345, "1.2345", "00:01.2345"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got := FormatTime(tt.seconds, tt.text)
			if got != tt.expected {
				t.Errorf("FormatTime(%v, %q) = %s, want %s", tt.seconds, tt.text, got, tt.expected)
			}
		})
	}
}

func TestHotcueString(t *testing.T) {
	tests := []struct {
		name     string
		cue      Hotcue
		expected string
	}{
		{
			name:     "Name and color",
			cue:      Hotcue{Slot: 0, Name: "Drop", Start: 62.5, StartText: "62.500", Color: "#28E214"},
			expected: "A: Drop @ 01:02.500 (#28E214)",
		},
		{
			name:     "No name",
			cue:      Hotcue{Slot: 2, Start: 1, StartText: "1.000", Color: "#FF0000"},
			expected: "C: @ 00:01.000 (#FF0000)",
		},
		{
			name:     "No color",
			cue:      Hotcue{Slot: 1, Name: "Vocal", Start: 30, StartText: "30.000"},
			expected: "B: Vocal @ 00:30.000",
		},
		{
			name:     "Loop",
			cue:      Hotcue{Slot: 3, Name: "Loop", Kind: CueKindLoop, Start: 10, StartText: "10.000", End: 18, EndText: "18.000"},
			expected: "D: Loop @ 00:10.000-00:18.000",
		},
		{
			name:     "Memory cue",
			cue:      Hotcue{Slot: MemoryCueSlot, Start: 5, StartText: "5.000"},
			expected: "memory: @ 00:05.000",
		},
		{
			name:     "Slot beyond letters",
			cue:      Hotcue{Slot: 30, Start: 5, StartText: "5.000"},
			expected: "30: @ 00:05.000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cue.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTrackDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		track    Track
		expected string
	}{
		{"Artist and title", Track{Key: "1", Artist: "Moby", Title: "Porcelain"}, "Moby - Porcelain"},
		{"Title only", Track{Key: "1", Title: "Porcelain"}, "Porcelain"},
		{"Artist only", Track{Key: "1", Artist: "Moby"}, "Moby"},
		{"Location", Track{Key: "1", Location: "file://localhost/Music/My%20Song.mp3"}, "My Song.mp3"},
		{"Nothing", Track{Key: "7"}, "Track 7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.track.DisplayName(); got != tt.expected {
				t.Errorf("DisplayName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorsUnwrapToSentinels(t *testing.T) {
	docErr := &DocumentError{Line: 4, Column: 2, Reason: "TRACK without TrackID"}
	if !errors.Is(docErr, ErrMalformedDocument) {
		t.Error("DocumentError should unwrap to ErrMalformedDocument")
	}
	if !strings.Contains(docErr.Error(), "line 4, column 2") {
		t.Errorf("DocumentError message lacks position: %s", docErr.Error())
	}

	inner := errors.New("unexpected EOF")
	wrapped := &DocumentError{Line: 1, Err: inner}
	if !errors.Is(wrapped, inner) {
		t.Error("DocumentError should unwrap to the parser error")
	}

	if !errors.Is(&MissingTrackError{Key: "9", Position: 2}, ErrMissingTrack) {
		t.Error("MissingTrackError should unwrap to ErrMissingTrack")
	}
	if !errors.Is(&CueError{Reason: "bad Start"}, ErrMalformedCue) {
		t.Error("CueError should unwrap to ErrMalformedCue")
	}
}

func TestLineContextFromBytes(t *testing.T) {
	data := []byte("one\ntwo\nthree\nfour\nfive\nsix\n")

	ctx := LineContextFromBytes(data, 4, 3)
	if ctx.ErrorMsg != "" {
		t.Fatalf("Unexpected error: %s", ctx.ErrorMsg)
	}
	if ctx.First != 2 {
		t.Errorf("Expected First=2, got %d", ctx.First)
	}
	want := []string{"two", "three", "four", "five", "six"}
	if strings.Join(ctx.Lines, ",") != strings.Join(want, ",") {
		t.Errorf("Expected lines %v, got %v", want, ctx.Lines)
	}

	out := ctx.String()
	if !strings.Contains(out, ">     4 | four") {
		t.Errorf("Target line not marked:\n%s", out)
	}
	if !strings.Contains(out, "  ^") {
		t.Errorf("Column caret missing:\n%s", out)
	}

	start := LineContextFromBytes(data, 1, 0)
	if start.First != 1 || len(start.Lines) != 3 {
		t.Errorf("Expected window 1..3, got First=%d len=%d", start.First, len(start.Lines))
	}

	outOfRange := LineContextFromBytes(data, 40, 0)
	if outOfRange.ErrorMsg == "" {
		t.Error("Expected error for out of range line")
	}
}
