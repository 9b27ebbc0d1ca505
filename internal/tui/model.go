package tui

import (
	"searchpath/internal/model"
	"searchpath/internal/searchpath"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Path    *searchpath.SearchPath
	Entries []model.DirEntry

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg
	ShowHelp    bool

	// Lookup State
	InputMode    bool
	InputBuffer  textinput.Model
	Kind         searchpath.Kind
	Matches      map[int]string // Entry index -> matched path
	FirstMatch   int            // Entry index that wins the lookup, -1 if none
	SearchActive bool
	Status       string

	// Components
	DetailsViewport viewport.Model
}

// InitialModel returns the initial state for browsing sp.
func InitialModel(sp *searchpath.SearchPath) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Name to find..."
	ti.CharLimit = 128
	ti.Width = 30

	return AppModel{
		Path:        sp,
		Entries:     model.Inspect(sp),
		InputBuffer: ti,
		FirstMatch:  -1,
		Matches:     map[int]string{},
	}
}
