package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term-snake/internal/core"
)

// frameMsg carries a fully rendered frame into the program.
type frameMsg string

// model is the Bubble Tea side of the terminal. It holds no game state:
// it shows the last frame it was sent and forwards key presses.
type model struct {
	keys   KeyMap
	events chan<- core.Key
	frame  string
}

func newModel(keys KeyMap, events chan<- core.Key) model {
	return model{
		keys:   keys,
		events: events,
	}
}

// Init initializes the model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Drop the key if the game is not keeping up
		select {
		case m.events <- m.keys.Translate(msg):
		default:
		}
	case frameMsg:
		m.frame = string(msg)
	}
	return m, nil
}

// View renders the last frame.
func (m model) View() string {
	return m.frame
}
