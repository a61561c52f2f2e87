// Package ui provides the main entry point for the UI.
package ui

import (
	"github.com/palemoky/boompa-hearts/internal/transport"
	"github.com/palemoky/boompa-hearts/internal/ui/handler"
	"github.com/palemoky/boompa-hearts/internal/ui/input"
	"github.com/palemoky/boompa-hearts/internal/ui/model"
	"github.com/palemoky/boompa-hearts/internal/ui/view"
)

// NewOnlineModel creates an OnlineModel with every handler injected.
func NewOnlineModel(opts model.Options) *model.OnlineModel {
	m := model.NewOnlineModel(opts)
	m.SetViewRenderer(view.CreateViewRenderer())
	m.SetKeyHandler(input.HandleKeyPress)
	m.SetServerMessageHandler(handler.HandleServerMessage)
	m.SetConnectionHandler(handler.HandleConnection)
	m.SetStartHandler(handler.Start)
	return m
}

// Bind routes the client's connection callbacks into the model.
func Bind(c *transport.Client, m *model.OnlineModel) {
	c.OnConnect = func() {
		m.Post(model.ConnectedMsg{})
	}
	c.OnDisconnect = func(reason string) {
		m.Post(model.DisconnectedMsg{Reason: reason})
	}
	c.OnReconnecting = func(attempt, maxTries int) {
		m.Post(model.ReconnectingMsg{Attempt: attempt, MaxTries: maxTries})
	}
	c.OnClose = func() {
		m.Post(model.ConnectionClosedMsg{})
	}
}
