package model

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SubmitFunc handles a prompt answer. Returning false keeps the prompt open.
type SubmitFunc func(value string) (done bool, cmd tea.Cmd)

// TextPrompt asks for one line of text inside a text_prompt overlay.
type TextPrompt struct {
	Title      string
	Cancelable bool
	input      textinput.Model
	onSubmit   SubmitFunc
}

// NewTextPrompt returns a focused prompt accepting up to limit characters.
func NewTextPrompt(title, value string, limit int, onSubmit SubmitFunc) *TextPrompt {
	ti := textinput.New()
	ti.CharLimit = limit
	ti.Width = 32
	ti.SetValue(value)
	ti.Focus()
	return &TextPrompt{Title: title, input: ti, onSubmit: onSubmit}
}

func (p *TextPrompt) Render(int) string {
	return p.Title + "\n\n" + p.input.View()
}

// Value returns the current input.
func (p *TextPrompt) Value() string { return p.input.Value() }

// Update forwards keys and blink ticks to the input.
func (p *TextPrompt) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// Submit hands the value to the callback. A rejected value is cleared.
func (p *TextPrompt) Submit() (bool, tea.Cmd) {
	if p.onSubmit == nil {
		return true, nil
	}
	done, cmd := p.onSubmit(strings.TrimSpace(p.input.Value()))
	if !done {
		p.input.Reset()
	}
	return done, cmd
}

// ChoicePrompt offers a fixed list inside an mc_prompt overlay.
type ChoicePrompt struct {
	Title    string
	Options  []string
	cursor   int
	onSelect func(index int) tea.Cmd
}

// NewChoicePrompt returns a prompt with the cursor on the first option.
func NewChoicePrompt(title string, options []string, onSelect func(index int) tea.Cmd) *ChoicePrompt {
	return &ChoicePrompt{Title: title, Options: options, onSelect: onSelect}
}

func (p *ChoicePrompt) Render(int) string {
	var sb strings.Builder
	sb.WriteString(p.Title)
	sb.WriteString("\n")
	for i, opt := range p.Options {
		marker := "  "
		if i == p.cursor {
			marker = "> "
		}
		fmt.Fprintf(&sb, "\n%s%d. %s", marker, i+1, opt)
	}
	return sb.String()
}

// Cursor returns the highlighted option.
func (p *ChoicePrompt) Cursor() int { return p.cursor }

// Move shifts the highlight, wrapping at both ends.
func (p *ChoicePrompt) Move(delta int) {
	if n := len(p.Options); n > 0 {
		p.cursor = ((p.cursor+delta)%n + n) % n
	}
}

// Select picks option i, or the highlighted one when i is negative.
func (p *ChoicePrompt) Select(i int) (bool, tea.Cmd) {
	if i < 0 {
		i = p.cursor
	}
	if i >= len(p.Options) {
		return false, nil
	}
	p.cursor = i
	if p.onSelect == nil {
		return true, nil
	}
	return true, p.onSelect(i)
}
