// Package input handles keyboard input processing.
package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/boompa-hearts/internal/overlay"
	"github.com/palemoky/boompa-hearts/internal/ui/handler"
	"github.com/palemoky/boompa-hearts/internal/ui/model"
)

// KeyMap lists every binding of the table screen.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Submit    key.Binding
	Rename    key.Binding
	Refresh   key.Binding
	Help      key.Binding
	Dismiss   key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// Keys is the default key map.
var Keys = KeyMap{
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous card")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next card")),
	Up:        key.NewBinding(key.WithKeys("up", "k")),
	Down:      key.NewBinding(key.WithKeys("down", "j")),
	Select:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
	Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "trade/play")),
	Rename:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "rename")),
	Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Dismiss:   key.NewBinding(key.WithKeys("esc", "enter", " "), key.WithHelp("esc", "dismiss")),
	Quit:      key.NewBinding(key.WithKeys("q", "esc")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// ShortHelp is the one-line key summary under the table.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Select, k.Submit, k.Rename, k.Refresh, k.Help, k.ForceQuit}
}

// HandleKeyPress handles keyboard input and returns whether it was handled.
func HandleKeyPress(m model.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if key.Matches(msg, Keys.ForceQuit) {
		return true, tea.Quit
	}

	e := m.Engine()
	if entry, ok := e.Overlays().Visible(); ok {
		switch entry.Category {
		case overlay.Fatal:
			if key.Matches(msg, Keys.Quit) {
				return true, tea.Quit
			}
			return true, nil
		case overlay.TextPrompt:
			return handleTextPrompt(m, entry, msg)
		case overlay.ChoicePrompt:
			return handleChoicePrompt(m, entry, msg)
		case overlay.Alert, overlay.Help:
			if key.Matches(msg, Keys.Dismiss) {
				e.Overlays().DismissNearest(entry.Category)
				return true, nil
			}
		}
		// Other overlays cover the table but leave the global keys working
		return handleGlobalKey(m, msg)
	}

	switch {
	case key.Matches(msg, Keys.Left):
		moveCursor(m, -1)
	case key.Matches(msg, Keys.Right):
		moveCursor(m, 1)
	case key.Matches(msg, Keys.Select):
		m.Controller().Toggle(m.Cursor())
	case key.Matches(msg, Keys.Submit):
		handler.Submit(m)
	default:
		return handleGlobalKey(m, msg)
	}
	return true, nil
}

func handleGlobalKey(m model.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Help):
		m.Engine().ShowHelp()
		return true, nil
	case key.Matches(msg, Keys.Rename):
		return true, handler.PromptRename(m)
	case key.Matches(msg, Keys.Refresh):
		return true, handler.Refresh(m)
	}
	return false, nil
}

func handleTextPrompt(m model.Model, entry overlay.Entry, msg tea.KeyMsg) (bool, tea.Cmd) {
	p, ok := entry.Content.(*model.TextPrompt)
	if !ok {
		return true, nil
	}
	switch msg.Type {
	case tea.KeyEnter:
		done, cmd := p.Submit()
		if done {
			m.Engine().Overlays().DismissNearest(overlay.TextPrompt)
		}
		return true, cmd
	case tea.KeyEsc:
		if p.Cancelable {
			m.Engine().Overlays().DismissNearest(overlay.TextPrompt)
		}
		return true, nil
	default:
		return true, p.Update(msg)
	}
}

func handleChoicePrompt(m model.Model, entry overlay.Entry, msg tea.KeyMsg) (bool, tea.Cmd) {
	p, ok := entry.Content.(*model.ChoicePrompt)
	if !ok {
		return true, nil
	}
	switch {
	case key.Matches(msg, Keys.Up), key.Matches(msg, Keys.Left):
		p.Move(-1)
	case key.Matches(msg, Keys.Down), key.Matches(msg, Keys.Right):
		p.Move(1)
	case msg.Type == tea.KeyEnter:
		return selectChoice(m, p, -1)
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] <= '9':
		return selectChoice(m, p, int(msg.Runes[0]-'1'))
	}
	return true, nil
}

func selectChoice(m model.Model, p *model.ChoicePrompt, i int) (bool, tea.Cmd) {
	done, cmd := p.Select(i)
	if done {
		m.Engine().Overlays().DismissNearest(overlay.ChoicePrompt)
	}
	return true, cmd
}

// moveCursor steps over cards hidden in a pending trade.
func moveCursor(m model.Model, delta int) {
	hand := m.Engine().Table().Hand
	for i := m.Cursor() + delta; i >= 0 && i < len(hand); i += delta {
		if !hand[i].Hidden {
			m.SetCursor(i)
			return
		}
	}
}
