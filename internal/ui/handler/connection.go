package handler

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/boompa-hearts/internal/engine"
	"github.com/palemoky/boompa-hearts/internal/identity"
	"github.com/palemoky/boompa-hearts/internal/logger"
	"github.com/palemoky/boompa-hearts/internal/overlay"
	"github.com/palemoky/boompa-hearts/internal/protocol"
	"github.com/palemoky/boompa-hearts/internal/table"
	"github.com/palemoky/boompa-hearts/internal/ui/model"
)

// Start asks for a name when none is stored, then connects.
func Start(m model.Model) tea.Cmd {
	if m.Profile().HasName() {
		return m.Connect()
	}
	prompt := model.NewTextPrompt(engine.MsgWelcomeHeader+"\n\n"+engine.MsgPromptName, "", identity.MaxNameLength,
		func(name string) (bool, tea.Cmd) {
			if !identity.ValidName(name) {
				return false, nil
			}
			if err := m.Profile().SetName(context.Background(), name); err != nil {
				logger.LogError("Saving name: %v", err)
				return false, nil
			}
			return true, m.Connect()
		})
	m.Engine().Overlays().Show(overlay.TextPrompt, prompt)
	return textinput.Blink
}

// HandleConnection reacts to transport lifecycle messages.
func HandleConnection(m model.Model, msg tea.Msg) tea.Cmd {
	e := m.Engine()

	switch msg := msg.(type) {
	case model.ConnectedMsg:
		m.SetConnected(true)
		m.SetReconnect(0, 0)
		_ = e.Apply(engine.Connected{})
		Join(m)
		return m.StartListening()

	case model.DisconnectedMsg:
		m.SetConnected(false)
		_ = e.Apply(engine.ConnectionLost{Reason: msg.Reason})
		m.Controller().Reset()
		e.Cue(engine.CueInvalid)

	case model.ReconnectingMsg:
		m.SetReconnect(msg.Attempt, msg.MaxTries)

	case model.ConnectionClosedMsg:
		m.SetConnected(false)
		if !e.Fatal() {
			e.ShowFatal(fmt.Sprintf(engine.MsgUnreachable, "connection closed"))
		}

	case model.ConnectionErrorMsg:
		m.SetConnected(false)
		e.ShowFatal(fmt.Sprintf(engine.MsgUnreachable, msg.Err))
	}
	return nil
}

// Join sends the join request for the stored identity. Every dial joins
// again; the ack decides between the lobby and a restored table.
func Join(m model.Model) {
	p := m.Profile()
	err := m.Transport().Join(p.DeviceID(), m.Engine().Game(), p.Name(), func(ack protocol.AckPayload) {
		m.Dispatch(func() { applyJoinAck(m, ack) })
	})
	if err != nil {
		logger.LogError("Join failed: %v", err)
	}
}

func applyJoinAck(m model.Model, ack protocol.AckPayload) {
	e := m.Engine()
	switch ack.Status {
	case protocol.AckFull:
		e.RefuseJoin()
		m.Controller().Reset()
	case protocol.AckRejoined:
		if ack.Snapshot == nil {
			logger.LogError("Rejoin ack without a snapshot")
			return
		}
		applySnapshot(m, ack.Snapshot)
	case protocol.AckInvalid:
		logger.LogError("Join refused by the server")
		return
	default:
		applySnapshot(m, &protocol.SnapshotPayload{State: string(table.StageWaiting), Names: ack.Names})
	}
	m.SetJoined(true)
}
