// Package model defines the core types and interfaces for the UI.
package model

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/boompa-hearts/internal/controller"
	"github.com/palemoky/boompa-hearts/internal/engine"
	"github.com/palemoky/boompa-hearts/internal/protocol"
)

// Transport is the server connection as the UI uses it.
type Transport interface {
	Connect() error
	Receive() (*protocol.Message, error)
	IsConnected() bool
	Close()

	Join(uid, game, name string, ack func(protocol.AckPayload)) error
	Rename(name string) error
	SelectPartner(choice int) error
	Trade(cards []string, ack func(protocol.AckPayload)) error
	PlayCard(card string, ack func(protocol.AckPayload)) error
	Refresh(ack func(protocol.AckPayload)) error
}

// Profile is the persisted local player.
type Profile interface {
	Name() string
	HasName() bool
	DeviceID() string
	SetName(ctx context.Context, name string) error
}

// SoundPlayer loads and plays cues. Init may block.
type SoundPlayer interface {
	Init() error
	Play(name string)
	Close()
}

// Model is what handlers, key bindings and views see of the UI state.
type Model interface {
	Engine() *engine.Engine
	Controller() *controller.Controller
	Transport() Transport
	Profile() Profile

	Width() int
	Height() int

	// Cursor indexes the local hand.
	Cursor() int
	SetCursor(i int)

	Connected() bool
	SetConnected(c bool)
	Joined() bool
	SetJoined(j bool)
	Reconnect() (attempt, maxTries int)
	SetReconnect(attempt, maxTries int)

	// Dispatch runs f inside Update. Safe from any goroutine.
	Dispatch(f func())
	Connect() tea.Cmd
	StartListening() tea.Cmd
}

// --- Tea Messages ---

// ServerMessage wraps a protocol message for tea.Msg.
type ServerMessage struct {
	Msg *protocol.Message
}

// ConnectedMsg indicates a successful dial, first or repeated.
type ConnectedMsg struct{}

// ConnectionErrorMsg indicates the first dial failed.
type ConnectionErrorMsg struct {
	Err error
}

// DisconnectedMsg indicates the connection dropped; a redial follows.
type DisconnectedMsg struct {
	Reason string
}

// ReconnectingMsg indicates reconnection in progress.
type ReconnectingMsg struct {
	Attempt  int
	MaxTries int
}

// ConnectionClosedMsg indicates the transport gave up or was closed.
type ConnectionClosedMsg struct{}

// DispatchMsg carries work posted from another goroutine.
type DispatchMsg struct {
	Fn func()
}
