// Package view provides UI rendering functions.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/boompa-hearts/internal/engine"
	"github.com/palemoky/boompa-hearts/internal/overlay"
	"github.com/palemoky/boompa-hearts/internal/ui/common"
	"github.com/palemoky/boompa-hearts/internal/ui/input"
	"github.com/palemoky/boompa-hearts/internal/ui/model"
)

// overlayWidth is the wrap width handed to overlay content.
const overlayWidth = 60

// CreateViewRenderer creates a view renderer function that can be injected into OnlineModel.
func CreateViewRenderer() func(model.Model) string {
	keys := help.New()
	return func(m model.Model) string {
		if entry, ok := m.Engine().Overlays().Visible(); ok {
			return OverlayView(m, entry)
		}
		if !m.Joined() {
			return ConnectingView(m)
		}
		return TableView(m, keys.ShortHelpView(input.Keys.ShortHelp()))
	}
}

// ConnectingView is shown until the server accepts the join.
func ConnectingView(m model.Model) string {
	text := engine.MsgConnecting
	if attempt, maxTries := m.Reconnect(); attempt > 0 {
		text = fmt.Sprintf(engine.MsgReconnecting, attempt, maxTries)
	}
	return lipgloss.Place(m.Width(), m.Height(), lipgloss.Center, lipgloss.Center,
		common.BoxStyle.Render(text))
}

// OverlayView draws the visible overlay in place of the table.
func OverlayView(m model.Model, entry overlay.Entry) string {
	style := common.OverlayStyle
	if entry.Category == overlay.Fatal {
		style = common.FatalStyle
	}
	width := min(overlayWidth, max(m.Width()-8, 20))
	var sb strings.Builder
	sb.WriteString(entry.Content.Render(width))
	if hint := overlayHint(entry.Category); hint != "" {
		sb.WriteString("\n\n")
		sb.WriteString(common.MutedStyle.Render(hint))
	}
	if status := statusLine(m); status != "" {
		sb.WriteString("\n\n")
		sb.WriteString(status)
	}
	return lipgloss.Place(m.Width(), m.Height(), lipgloss.Center, lipgloss.Center,
		style.Render(sb.String()), lipgloss.WithWhitespaceChars(" "))
}

func overlayHint(c overlay.Category) string {
	switch c {
	case overlay.Alert, overlay.Help:
		return "esc to dismiss"
	case overlay.TextPrompt:
		return "enter to confirm"
	case overlay.ChoicePrompt:
		return "↑/↓ or 1-9 to choose, enter to confirm"
	case overlay.Fatal:
		return "q to quit"
	}
	return ""
}

// statusLine reports a dropped connection or a redial in progress.
func statusLine(m model.Model) string {
	if m.Connected() {
		return ""
	}
	if attempt, maxTries := m.Reconnect(); attempt > 0 {
		return common.ErrorStyle.Render(fmt.Sprintf(engine.MsgReconnecting, attempt, maxTries))
	}
	if m.Joined() {
		return common.ErrorStyle.Render("Offline")
	}
	return ""
}
