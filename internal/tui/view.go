package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"searchpath/internal/model"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dimmedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	matchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true) // Sky Blue/Cyan
	winnerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true) // Green
	adviceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))           // Orange

	borderColor = lipgloss.Color("63")
	activeColor = lipgloss.Color("205")
)

const helpText = `Keys

  w, /     find a name in the search path
  t        cycle lookup kind (any, file, dir)
  n        jump to the next matching entry
  D        remove duplicate entries
  j/k      move down/up
  esc      clear the lookup or close this help
  ?        toggle this help
  q        quit

Icons

  ✗  missing or not a directory
  ≈  duplicate of an earlier entry
  →  symlink
  ~  relative path`

func (m AppModel) View() string {
	if m.ShowHelp {
		return m.renderHelpDialog()
	}

	width := m.WindowSize.Width
	height := m.WindowSize.Height

	// Subtracting 6 for horizontal margin (borders x2 + buffer)
	netWidth := width - 6
	if netWidth < 20 {
		netWidth = 20
	}
	leftWidth := netWidth / 2
	rightWidth := netWidth - leftWidth

	// Total box height (including borders)
	boxHeight := height - 6
	if boxHeight < 6 {
		boxHeight = 6
	}
	interiorHeight := boxHeight - 2

	// LEFT PANEL: entries
	var leftView strings.Builder
	leftView.WriteString(titleStyle.Render("Search Path"))
	leftView.WriteString("\n\n")

	// Header is 2 lines (Title + 1 blank line)
	visibleItems := interiorHeight - 2
	if visibleItems < 1 {
		visibleItems = 1
	}
	startIdx := 0
	endIdx := len(m.Entries)
	if len(m.Entries) > visibleItems {
		if m.SelectedIdx >= visibleItems/2 {
			startIdx = m.SelectedIdx - (visibleItems / 2)
		}
		if startIdx+visibleItems > len(m.Entries) {
			startIdx = len(m.Entries) - visibleItems
		}
		endIdx = startIdx + visibleItems
	}

	if len(m.Entries) == 0 {
		leftView.WriteString(dimmedStyle.Render("(empty)"))
	}

	for i := startIdx; i < endIdx; i++ {
		entry := m.Entries[i]
		line := fmt.Sprintf("%2d. %s %s", i+1, model.Icon(entry), entry.Value)
		if i == 0 && len(m.Entries) > 1 {
			line += " " + model.IconFirst
		} else if i == len(m.Entries)-1 && len(m.Entries) > 1 {
			line += " " + model.IconLast
		}

		// Truncate
		if len(line) > leftWidth-2 && leftWidth > 8 {
			line = line[:leftWidth-5] + "..."
		}

		var style lipgloss.Style
		_, matched := m.Matches[i]
		switch {
		case i == m.SelectedIdx:
			style = selectedStyle
		case i == m.FirstMatch:
			style = winnerStyle
		case matched:
			style = matchStyle
		case m.SearchActive:
			style = dimmedStyle
		default:
			style = normalStyle
		}

		leftView.WriteString(style.Render(line))
		leftView.WriteString("\n")
	}

	left := lipgloss.NewStyle().
		Width(leftWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(activeColor).
		Render(strings.TrimSuffix(leftView.String(), "\n"))

	// RIGHT PANEL: details
	vp := m.DetailsViewport
	vp.Width = rightWidth
	vp.Height = interiorHeight
	vp.SetContent(m.renderDetails())

	right := lipgloss.NewStyle().
		Width(rightWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Render(vp.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter())
}

func (m AppModel) renderDetails() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Details"))
	b.WriteString("\n\n")

	if m.SelectedIdx < 0 || m.SelectedIdx >= len(m.Entries) {
		return b.String()
	}
	e := m.Entries[m.SelectedIdx]

	fmt.Fprintf(&b, "Entry:    %d of %d\n", e.Index+1, len(m.Entries))
	fmt.Fprintf(&b, "Path:     %s\n", e.Value)
	fmt.Fprintf(&b, "Exists:   %t\n", e.Exists)
	if e.IsSymlink {
		fmt.Fprintf(&b, "Target:   %s\n", e.SymlinkTarget)
	}
	if match, ok := m.Matches[m.SelectedIdx]; ok {
		label := "Match:    "
		if m.SelectedIdx == m.FirstMatch {
			label = "Wins:     "
		}
		b.WriteString(label + matchStyle.Render(match) + "\n")
	}

	if len(e.Diagnostics) > 0 {
		b.WriteString("\n")
		for _, d := range e.Diagnostics {
			b.WriteString(adviceStyle.Render("• " + d))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m AppModel) renderFooter() string {
	if m.InputMode {
		return fmt.Sprintf(" Find (%s): %s", m.Kind, m.InputBuffer.View())
	}
	status := m.Status
	if status == "" {
		status = "w: find  t: kind  D: dedup  ?: help  q: quit"
	}
	return dimmedStyle.Render(fmt.Sprintf(" [%s] %s", m.Kind, status))
}

func (m AppModel) renderHelpDialog() string {
	w, h := m.WindowSize.Width, m.WindowSize.Height
	if w < 20 || h < 10 {
		return helpText
	}

	dialog := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Render(titleStyle.Render("Help") + "\n\n" + helpText)

	return lipgloss.Place(w, h,
		lipgloss.Center, lipgloss.Center,
		dialog,
	)
}

func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}
