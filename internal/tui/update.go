package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"rbnotes/internal/model"
	"rbnotes/internal/rekordbox"
	"rbnotes/internal/report"
)

// MsgLibraryReady indicates that the library has been loaded.
type MsgLibraryReady struct {
	Library *rekordbox.Library
}

// MsgError indicates an error occurred.
type MsgError error

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.DetailsViewport.Width = msg.Width/2 - 4
		m.DetailsViewport.Height = msg.Height - 10 // title, borders, footer
		if m.DetailsViewport.Height < 3 {
			m.DetailsViewport.Height = 3
		}
		return m, nil

	case MsgLibraryReady:
		m.Loading = false
		m.Library = msg.Library
		m.Entries = report.ListPlaylists(msg.Library.Playlists)
		if len(m.Entries) == 0 {
			m.Err = model.ErrNoPlaylists
			return m, nil
		}
		m.performSearch()
		m.refreshPreview()
		return m, nil

	case MsgError:
		m.Err = msg
		m.Loading = false
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.performSearch()
				m.refreshPreview()
				return m, nil
			case tea.KeyEsc:
				m.clearSearch()
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			m.performSearch()
			m.refreshPreview()
			return m, cmd
		}

		if m.ShowHelp {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "?", "esc", "q":
				m.ShowHelp = false
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "?":
			m.ShowHelp = true
		case "esc":
			if m.ReportFocus {
				m.ReportFocus = false
				return m, nil
			}
			if m.SearchActive {
				m.clearSearch()
			}
		case "tab":
			if len(m.FilteredIndices) > 0 {
				m.ReportFocus = !m.ReportFocus
			}
		case "/":
			m.InputMode = true
			m.ReportFocus = false
			m.InputBuffer.SetValue("")
			m.InputBuffer.Focus()
			return m, textinput.Blink
		case "enter":
			if entry, ok := m.current(); ok {
				m.Chosen = &entry
				return m, tea.Quit
			}
		default:
			if m.ReportFocus {
				m.DetailsViewport, cmd = m.DetailsViewport.Update(msg)
				return m, cmd
			}
			m.moveCursor(msg.String())
		}
	}

	return m, cmd
}

func (m *AppModel) moveCursor(key string) {
	page := m.visibleItems()
	switch key {
	case "up", "k":
		m.SelectedIdx--
	case "down", "j":
		m.SelectedIdx++
	case "pgup":
		m.SelectedIdx -= page
	case "pgdown":
		m.SelectedIdx += page
	case "home", "g":
		m.SelectedIdx = 0
	case "end", "G":
		m.SelectedIdx = len(m.FilteredIndices) - 1
	default:
		return
	}
	m.clampSelection()
	m.refreshPreview()
}

func (m *AppModel) clampSelection() {
	if m.SelectedIdx >= len(m.FilteredIndices) {
		m.SelectedIdx = len(m.FilteredIndices) - 1
	}
	if m.SelectedIdx < 0 {
		m.SelectedIdx = 0
	}
}

// current returns the highlighted entry.
func (m AppModel) current() (report.Entry, bool) {
	if m.SelectedIdx < 0 || m.SelectedIdx >= len(m.FilteredIndices) {
		return report.Entry{}, false
	}
	return m.Entries[m.FilteredIndices[m.SelectedIdx]], true
}

func (m *AppModel) clearSearch() {
	m.InputMode = false
	m.InputBuffer.Blur()
	m.InputBuffer.SetValue("")
	m.performSearch()
	m.refreshPreview()
}

// performSearch filters the listing by a case-insensitive substring of the
// playlist path.
func (m *AppModel) performSearch() {
	term := strings.ToLower(strings.TrimSpace(m.InputBuffer.Value()))
	m.SearchActive = term != ""

	filtered := make([]int, 0, len(m.Entries))
	for i, e := range m.Entries {
		if term == "" || strings.Contains(strings.ToLower(e.Path), term) {
			filtered = append(filtered, i)
		}
	}
	m.FilteredIndices = filtered
	if len(m.FilteredIndices) == 0 {
		m.ReportFocus = false
	}
	m.clampSelection()
}

// refreshPreview renders the highlighted playlist into the report pane.
func (m *AppModel) refreshPreview() {
	entry, ok := m.current()
	if !ok {
		m.previewIdx = -1
		m.DetailsViewport.SetContent("No playlist matches the filter.")
		return
	}
	if entry.Index == m.previewIdx {
		return
	}
	m.previewIdx = entry.Index

	var b strings.Builder
	if _, err := report.WriteReport(&b, entry, m.Library.Collection, m.Log); err != nil {
		m.Log.Error("Rendering preview failed", zap.Error(err))
	}
	m.DetailsViewport.SetContent(b.String())
	m.DetailsViewport.GotoTop()
}

// LoadLibraryCmd loads the library in the background.
func LoadLibraryCmd(path string, log *zap.Logger) tea.Cmd {
	return func() tea.Msg {
		lib, err := rekordbox.Open(path, log)
		if err != nil {
			return MsgError(err)
		}
		return MsgLibraryReady{Library: lib}
	}
}
