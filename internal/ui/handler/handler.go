// Package handler processes server messages and connection changes.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/boompa-hearts/internal/logger"
	"github.com/palemoky/boompa-hearts/internal/protocol"
	"github.com/palemoky/boompa-hearts/internal/protocol/codec"
	"github.com/palemoky/boompa-hearts/internal/protocol/convert"
	"github.com/palemoky/boompa-hearts/internal/ui/model"
)

// messageHandler 消息处理函数类型
type messageHandler func(m model.Model, msg *protocol.Message) tea.Cmd

// messageHandlers covers the messages that are not engine events.
var messageHandlers = map[protocol.MessageType]messageHandler{
	protocol.MsgSelectPartner: handleMsgSelectPartner,
	protocol.MsgRefresh:       handleMsgRefresh,
}

// HandleServerMessage dispatches server messages to appropriate handlers.
// Everything else the engine understands is applied as an event.
func HandleServerMessage(m model.Model, msg *protocol.Message) tea.Cmd {
	defer codec.PutMessage(msg)

	if handler, ok := messageHandlers[msg.Type]; ok {
		return handler(m, msg)
	}
	if convert.IsEvent(msg.Type) {
		return handleEvent(m, msg)
	}
	logger.LogInfo("Ignoring unknown message %q", msg.Type)
	return nil
}

func handleEvent(m model.Model, msg *protocol.Message) tea.Cmd {
	ev, err := convert.Event(msg)
	if err != nil {
		logger.LogError("Bad %s message: %v", msg.Type, err)
		return nil
	}
	if err := m.Engine().Apply(ev); err != nil {
		logger.LogError("Ignoring %s: %v", ev.Name(), err)
		return nil
	}
	if msg.Type == protocol.MsgStartHand {
		m.SetCursor(0)
	}
	afterChange(m)
	return nil
}

// afterChange keeps the cursor on a visible card and the action control in step.
func afterChange(m model.Model) {
	ClampCursor(m)
	m.Controller().Refresh()
}

// ClampCursor moves the cursor onto the nearest visible card.
func ClampCursor(m model.Model) {
	hand := m.Engine().Table().Hand
	if len(hand) == 0 {
		m.SetCursor(0)
		return
	}
	i := min(max(m.Cursor(), 0), len(hand)-1)
	for j := i; j < len(hand); j++ {
		if !hand[j].Hidden {
			m.SetCursor(j)
			return
		}
	}
	for j := i - 1; j >= 0; j-- {
		if !hand[j].Hidden {
			m.SetCursor(j)
			return
		}
	}
	m.SetCursor(i)
}
