package handler

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/boompa-hearts/internal/engine"
	"github.com/palemoky/boompa-hearts/internal/identity"
	"github.com/palemoky/boompa-hearts/internal/logger"
	"github.com/palemoky/boompa-hearts/internal/overlay"
	"github.com/palemoky/boompa-hearts/internal/protocol"
	"github.com/palemoky/boompa-hearts/internal/protocol/convert"
	"github.com/palemoky/boompa-hearts/internal/ui/model"
)

func handleMsgSelectPartner(m model.Model, msg *protocol.Message) tea.Cmd {
	var payload protocol.SelectPartnerPayload
	if err := msg.DecodePayload(&payload); err != nil {
		logger.LogError("Bad select_partner: %v", err)
		return nil
	}
	prompt := model.NewChoicePrompt(engine.MsgPromptPartner, payload.Names, func(i int) tea.Cmd {
		// Choices are 1-based on the wire
		if err := m.Transport().SelectPartner(i + 1); err != nil {
			logger.LogError("Partner selection failed: %v", err)
		}
		return nil
	})
	m.Engine().Overlays().Show(overlay.ChoicePrompt, prompt)
	return nil
}

func handleMsgRefresh(m model.Model, msg *protocol.Message) tea.Cmd {
	var payload protocol.SnapshotPayload
	if err := msg.DecodePayload(&payload); err != nil {
		logger.LogError("Bad refresh: %v", err)
		return nil
	}
	applySnapshot(m, &payload)
	return nil
}

// applySnapshot replaces the table. Any outstanding submission is forgotten.
func applySnapshot(m model.Model, p *protocol.SnapshotPayload) {
	m.Engine().ApplySnapshot(convert.Snapshot(p))
	m.Controller().Reset()
	afterChange(m)
}

// Refresh asks the server for a snapshot of the table.
func Refresh(m model.Model) tea.Cmd {
	err := m.Transport().Refresh(func(ack protocol.AckPayload) {
		m.Dispatch(func() {
			if ack.Snapshot == nil {
				logger.LogInfo("Refresh answered %q without a snapshot", ack.Status)
				return
			}
			applySnapshot(m, ack.Snapshot)
		})
	})
	if err != nil {
		logger.LogError("Refresh failed: %v", err)
	}
	return nil
}

// PromptRename shows the name prompt. An invalid name is ignored.
func PromptRename(m model.Model) tea.Cmd {
	prompt := model.NewTextPrompt(engine.MsgPromptName, m.Profile().Name(), identity.MaxNameLength,
		func(name string) (bool, tea.Cmd) {
			if !identity.ValidName(name) || name == m.Profile().Name() {
				return true, nil
			}
			if err := m.Profile().SetName(context.Background(), name); err != nil {
				logger.LogError("Saving name: %v", err)
				return true, nil
			}
			if err := m.Transport().Rename(name); err != nil {
				logger.LogError("Rename failed: %v", err)
			}
			return true, nil
		})
	prompt.Cancelable = true
	m.Engine().Overlays().Show(overlay.TextPrompt, prompt)
	return textinput.Blink
}

// Submit sends the selection as a trade or a play.
func Submit(m model.Model) {
	if err := m.Controller().Submit(); err != nil {
		logger.LogInfo("Submit: %v", err)
	}
}
