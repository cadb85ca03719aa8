package model

import (
	"errors"
	"fmt"
	"strings"
)

// Library errors
var (
	// ErrMalformedDocument indicates the export cannot be parsed into the
	// expected tree shape. Fatal to the run.
	ErrMalformedDocument = errors.New("malformed library document")

	// ErrNoPlaylists indicates the export parsed but holds no playlists.
	ErrNoPlaylists = errors.New("library contains no playlists")
)

// Per-record errors
var (
	// ErrMissingTrack indicates a playlist references a track that is not in
	// the collection.
	ErrMissingTrack = errors.New("track not found in collection")

	// ErrMalformedCue indicates a POSITION_MARK that could not be parsed.
	ErrMalformedCue = errors.New("malformed cue record")
)

// Selection errors
var (
	// ErrInvalidSelection indicates user input that does not name a listed
	// playlist. The caller may ask again.
	ErrInvalidSelection = errors.New("invalid playlist selection")

	// ErrQuit indicates the user asked to leave the prompt.
	ErrQuit = errors.New("quit requested")
)

// DocumentError carries the position of a structural problem in the export.
type DocumentError struct {
	Line   int    // 1-based, 0 when unknown
	Column int    // 1-based, 0 when unknown
	Reason string // What was wrong
	Err    error  // Underlying parser error, if any
}

func (e *DocumentError) Error() string {
	var b strings.Builder
	b.WriteString(ErrMalformedDocument.Error())
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
		if e.Column > 0 {
			fmt.Fprintf(&b, ", column %d", e.Column)
		}
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *DocumentError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedDocument}
	}
	return []error{ErrMalformedDocument, e.Err}
}

// MissingTrackError names the playlist entry that could not be resolved.
type MissingTrackError struct {
	Key      string
	Position int // 1-based position in the playlist
}

func (e *MissingTrackError) Error() string {
	return fmt.Sprintf("entry %d: track %q not found in collection", e.Position, e.Key)
}

func (e *MissingTrackError) Unwrap() error {
	return ErrMissingTrack
}

// CueError describes a cue record that was dropped.
type CueError struct {
	Line   int
	Reason string
}

func (e *CueError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d: %s", ErrMalformedCue, e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: %s", ErrMalformedCue, e.Reason)
}

func (e *CueError) Unwrap() error {
	return ErrMalformedCue
}
