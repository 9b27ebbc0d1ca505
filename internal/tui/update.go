package tui

import (
	"fmt"
	"path/filepath"

	"searchpath/internal/logging"
	"searchpath/internal/model"
	"searchpath/internal/searchpath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.DetailsViewport.Width = msg.Width / 2
		m.DetailsViewport.Height = msg.Height - 4 // minus footer/header
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.performLookup()
				return m, nil
			case tea.KeyEsc:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.InputBuffer.SetValue("")
				m.performLookup() // Clears the highlight
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.ShowHelp {
				m.ShowHelp = false
				return m, nil
			}
			if m.SearchActive {
				m.InputBuffer.SetValue("")
				m.performLookup()
			}
		case "?":
			m.ShowHelp = !m.ShowHelp
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
		case "down", "j":
			if m.SelectedIdx < len(m.Entries)-1 {
				m.SelectedIdx++
			}
		case "n":
			// Jump to the next matching entry
			for i := m.SelectedIdx + 1; i < len(m.Entries); i++ {
				if _, ok := m.Matches[i]; ok {
					m.SelectedIdx = i
					break
				}
			}
		case "t":
			m.Kind = nextKind(m.Kind)
			m.performLookup()
		case "D":
			before := m.Path.Len()
			m.Path.Dedup()
			m.Entries = model.Inspect(m.Path)
			if m.SelectedIdx >= len(m.Entries) {
				m.SelectedIdx = max(len(m.Entries)-1, 0)
			}
			m.performLookup()
			m.Status = fmt.Sprintf("Removed %d duplicate entries", before-m.Path.Len())
		case "w", "/":
			m.InputMode = true
			m.InputBuffer.Focus()
			m.InputBuffer.SetValue("")
			return m, textinput.Blink
		}
	}

	return m, cmd
}

// performLookup resolves the input against every entry. The per-entry
// matches come from FindAllKind so the order and filtering are the same
// rules the first-match lookup uses.
func (m *AppModel) performLookup() {
	name := m.InputBuffer.Value()
	m.Matches = map[int]string{}
	m.FirstMatch = -1

	if name == "" {
		m.SearchActive = false
		m.Status = ""
		return
	}
	m.SearchActive = true

	logger := logging.GetLogger("tui")
	matches := m.Path.FindAllKind(name, m.Kind)
	logger.Debug().Str("name", name).Str("kind", m.Kind.String()).Int("matches", len(matches)).Msg("Lookup")

	// Matches are in entry order; pair them back up with their entries.
	next := 0
	for i, e := range m.Entries {
		if next >= len(matches) {
			break
		}
		if matches[next] == filepath.Join(e.Value, name) {
			m.Matches[i] = matches[next]
			if m.FirstMatch < 0 {
				m.FirstMatch = i
			}
			next++
		}
	}

	if len(matches) > 0 {
		m.Status = fmt.Sprintf("%s → %s", name, matches[0])
		if m.FirstMatch >= 0 {
			m.SelectedIdx = m.FirstMatch
		}
	} else {
		m.Status = fmt.Sprintf("%s: not found (%s)", name, m.Kind)
	}
}

func nextKind(k searchpath.Kind) searchpath.Kind {
	switch k {
	case searchpath.Any:
		return searchpath.File
	case searchpath.File:
		return searchpath.Directory
	}
	return searchpath.Any
}
