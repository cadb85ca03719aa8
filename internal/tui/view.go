package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rbnotes/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	paneTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	normalStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	folderStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("208")) // Orange

	activeColor = lipgloss.Color("205")
	borderColor = lipgloss.Color("63")
)

func (m AppModel) View() string {
	if m.Loading {
		return fmt.Sprintf("\n  Loading %s... please wait.\n", m.LibraryPath)
	}
	if m.Err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v\n", m.Err)) + footerStyle.Render("\n  Press q to quit.\n")
	}
	if m.ShowHelp {
		return m.renderHelpDialog()
	}

	width := m.WindowSize.Width
	netWidth := width - 6
	if netWidth < 20 {
		netWidth = 20
	}
	leftWidth := netWidth / 2
	rightWidth := netWidth - leftWidth
	interiorHeight := m.interiorHeight()

	// LEFT PANEL: playlists
	var leftView strings.Builder
	leftView.WriteString(paneTitleStyle.Render(fmt.Sprintf("Playlists (%d)", len(m.FilteredIndices))))
	leftView.WriteString("\n\n")

	visible := m.visibleItems()
	startIdx := 0
	endIdx := len(m.FilteredIndices)
	if len(m.FilteredIndices) > visible {
		if m.SelectedIdx >= visible/2 {
			startIdx = m.SelectedIdx - visible/2
		}
		if startIdx+visible > len(m.FilteredIndices) {
			startIdx = len(m.FilteredIndices) - visible
		}
		endIdx = startIdx + visible
	}

	for i := startIdx; i < endIdx; i++ {
		entry := m.Entries[m.FilteredIndices[i]]

		folders, name := "", entry.Path
		if cut := strings.LastIndex(entry.Path, "/"); cut >= 0 {
			folders, name = entry.Path[:cut+1], entry.Path[cut+1:]
		}

		prefix := fmt.Sprintf("%3d. %s ", entry.Index, model.IconPlaylist)
		count := fmt.Sprintf(" (%d)", len(entry.Node.Keys))
		line := truncate(prefix+folders+name+count, leftWidth-2)

		if i == m.SelectedIdx {
			leftView.WriteString(selectedStyle.Render(line))
		} else if folders != "" && len(line) > len(prefix)+len(folders) {
			rest := line[len(prefix)+len(folders):]
			leftView.WriteString(normalStyle.Render(prefix) + folderStyle.Render(folders) + normalStyle.Render(rest))
		} else {
			leftView.WriteString(normalStyle.Render(line))
		}
		leftView.WriteString("\n")
	}

	leftBorder, rightBorder := activeColor, borderColor
	if m.ReportFocus {
		leftBorder, rightBorder = borderColor, activeColor
	}

	left := lipgloss.NewStyle().
		Width(leftWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(leftBorder).
		Render(strings.TrimSuffix(leftView.String(), "\n"))

	// RIGHT PANEL: report preview
	var rightView strings.Builder
	rightView.WriteString(paneTitleStyle.Render("Report"))
	rightView.WriteString("\n\n")
	rightView.WriteString(m.DetailsViewport.View())

	right := lipgloss.NewStyle().
		Width(rightWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(rightBorder).
		Render(rightView.String())

	header := titleStyle.Render("rbnotes") + " " + footerStyle.Render(m.libraryLabel())

	var footer string
	switch {
	case m.InputMode:
		footer = "\n Filter: " + m.InputBuffer.View()
	case m.ReportFocus:
		footer = footerStyle.Render("\n ↑/↓ scroll • tab/esc back to list • enter print report • q quit")
	default:
		keys := "\n ↑/↓ move • enter print report • tab scroll report • / filter • ? help • q quit"
		if m.SearchActive {
			keys = fmt.Sprintf("\n filter %q • esc clear", m.InputBuffer.Value()) + keys
		}
		footer = footerStyle.Render(keys)
	}

	return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, left, right) + footer
}

func (m AppModel) libraryLabel() string {
	label := m.LibraryPath
	if m.Library != nil {
		if m.Library.Product != "" {
			label += " • " + m.Library.Product
		}
		label += fmt.Sprintf(" • %d tracks", m.Library.Collection.Len())
	}
	return label
}

func (m AppModel) interiorHeight() int {
	// Header, footer and the two border lines
	h := m.WindowSize.Height - 6
	if h < 4 {
		h = 4
	}
	return h
}

// visibleItems is the number of list rows that fit in the left panel.
func (m AppModel) visibleItems() int {
	// Title plus blank line
	v := m.interiorHeight() - 2
	if v < 1 {
		v = 1
	}
	return v
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if limit < 4 || len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}

func (m AppModel) renderHelpDialog() string {
	w, h := m.WindowSize.Width, m.WindowSize.Height
	if w < 20 || h < 10 {
		return "Window too small"
	}

	helpWidth := w * 70 / 100
	if helpWidth < 40 {
		helpWidth = 40
	}
	if helpWidth > w-4 {
		helpWidth = w - 4
	}

	content := strings.Join([]string{
		paneTitleStyle.Render("Keys"),
		"",
		"  ↑/k ↓/j      move through the playlists",
		"  pgup/pgdown  move a page",
		"  g/G          first / last playlist",
		"  /            filter playlists by folder or name",
		"  tab          scroll the report preview",
		"  enter        print the report for the playlist and exit",
		"  q            quit without printing",
		"",
		paneTitleStyle.Render("Report"),
		"",
		"  " + model.IconComment + "  comment stored on the track",
		"  A: name @ mm:ss.fff (#color)  hotcue on pad A",
		"  " + model.IconLoop + "  loop (start-end)",
		"  " + model.IconMissing + "  track missing from the collection",
		"",
		footerStyle.Render("Press ? or esc to close"),
	}, "\n")

	dialog := lipgloss.NewStyle().
		Width(helpWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Render(content)

	return lipgloss.Place(w, h,
		lipgloss.Center, lipgloss.Center,
		dialog,
	)
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, LoadLibraryCmd(m.LibraryPath, m.Log))
}
