package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"rbnotes/internal/logger"
	"rbnotes/internal/rekordbox"
	"rbnotes/internal/report"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	LibraryPath string
	Library     *rekordbox.Library
	Entries     []report.Entry
	Loading     bool
	Err         error
	Log         *zap.Logger

	// UI State
	SelectedIdx int // Index into FilteredIndices
	WindowSize  tea.WindowSizeMsg
	ReportFocus bool // Arrow keys scroll the report instead of the list
	ShowHelp    bool

	// Search State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int // Indices of Entries to show
	SearchActive    bool

	// Result
	Chosen *report.Entry // Set when the user pressed enter on a playlist

	// Components
	DetailsViewport viewport.Model
	previewIdx      int // Entry currently rendered in the viewport, -1 for none
}

// InitialModel returns the initial state for the library at path.
func InitialModel(path string, log *zap.Logger) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Playlist name..."
	ti.CharLimit = 80
	ti.Width = 30

	return AppModel{
		LibraryPath:     path,
		Loading:         true,
		Log:             logger.OrNop(log),
		InputBuffer:     ti,
		DetailsViewport: viewport.New(0, 0),
		previewIdx:      -1,
	}
}
