package model

// Markers used in report and TUI output.
// Plain single-width characters keep the columns aligned in any terminal.
const (
	IconFolder   = "▸" // Folder segment in the picker
	IconPlaylist = "♪" // Selectable playlist
	IconMissing  = "✗" // Track missing from the collection
	IconComment  = "✎" // Comment line
	IconLoop     = "↻" // Loop cue
)
