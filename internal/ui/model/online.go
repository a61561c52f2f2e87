package model

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/boompa-hearts/internal/controller"
	"github.com/palemoky/boompa-hearts/internal/engine"
	"github.com/palemoky/boompa-hearts/internal/logger"
	"github.com/palemoky/boompa-hearts/internal/overlay"
	"github.com/palemoky/boompa-hearts/internal/protocol"
	"github.com/palemoky/boompa-hearts/internal/ui/common"
)

// Options wires an OnlineModel.
type Options struct {
	Engine    *engine.Engine
	Transport Transport
	Profile   Profile
	Sound     SoundPlayer // optional

	// Dispatcher overrides how work from other goroutines reaches Update.
	// Tests use controller.Immediate.
	Dispatcher controller.Dispatcher
}

// OnlineModel is the bubbletea model for one game table.
type OnlineModel struct {
	engine     *engine.Engine
	controller *controller.Controller
	transport  Transport
	profile    Profile
	sounds     SoundPlayer
	dispatch   controller.Dispatcher

	// Transport callbacks and ack work, drained by listenForEvents
	events chan tea.Msg

	connected        bool
	joined           bool
	listening        bool
	reconnectAttempt int
	reconnectMax     int

	cursor int
	width  int
	height int

	// View renderer (injected to break circular import)
	viewRenderer func(Model) string

	// Key handler (injected to break circular import)
	keyHandler func(Model, tea.KeyMsg) (bool, tea.Cmd)

	// Server message handler (injected to break circular import)
	serverMessageHandler func(Model, *protocol.Message) tea.Cmd

	// Connection lifecycle handler (injected to break circular import)
	connectionHandler func(Model, tea.Msg) tea.Cmd

	// Startup hook, e.g. the name prompt (injected to break circular import)
	startHandler func(Model) tea.Cmd
}

// NewOnlineModel creates a new OnlineModel.
func NewOnlineModel(opts Options) *OnlineModel {
	m := &OnlineModel{
		engine:    opts.Engine,
		transport: opts.Transport,
		profile:   opts.Profile,
		sounds:    opts.Sound,
		events:    make(chan tea.Msg, 64),
	}
	if m.engine == nil {
		m.engine = engine.New()
	}
	m.dispatch = opts.Dispatcher
	if m.dispatch == nil {
		m.dispatch = func(f func()) { m.events <- DispatchMsg{Fn: f} }
	}
	m.controller = controller.New(m.engine, m.transport, m.dispatch)
	return m
}

// Post delivers msg to Update. Safe from any goroutine.
func (m *OnlineModel) Post(msg tea.Msg) {
	m.events <- msg
}

func (m *OnlineModel) Init() tea.Cmd {
	if m.sounds != nil {
		go func() {
			if err := m.sounds.Init(); err != nil {
				logger.LogError("Sound disabled: %v", err)
			}
		}()
	}

	cmds := []tea.Cmd{m.listenForEvents()}
	if m.startHandler != nil {
		cmds = append(cmds, m.startHandler(m))
	} else {
		cmds = append(cmds, m.Connect())
	}
	return tea.Batch(cmds...)
}

func (m *OnlineModel) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		return <-m.events
	}
}

// Connect dials the server. Success is reported through the OnConnect
// callback, so only failures come back from this command.
func (m *OnlineModel) Connect() tea.Cmd {
	return func() tea.Msg {
		if err := m.transport.Connect(); err != nil {
			return ConnectionErrorMsg{Err: err}
		}
		return nil
	}
}

type listenStoppedMsg struct{}

// StartListening starts the receive loop once; it survives reconnects.
func (m *OnlineModel) StartListening() tea.Cmd {
	if m.listening {
		return nil
	}
	m.listening = true
	return m.listenForMessages()
}

func (m *OnlineModel) listenForMessages() tea.Cmd {
	return func() tea.Msg {
		msg, err := m.transport.Receive()
		if err != nil {
			// Closing is reported by the OnClose callback
			return listenStoppedMsg{}
		}
		return ServerMessage{Msg: msg}
	}
}

// --- Model interface implementation ---

func (m *OnlineModel) Engine() *engine.Engine             { return m.engine }
func (m *OnlineModel) Controller() *controller.Controller { return m.controller }
func (m *OnlineModel) Transport() Transport               { return m.transport }
func (m *OnlineModel) Profile() Profile                   { return m.profile }
func (m *OnlineModel) Width() int                         { return m.width }
func (m *OnlineModel) Height() int                        { return m.height }
func (m *OnlineModel) Cursor() int                        { return m.cursor }
func (m *OnlineModel) SetCursor(i int)                    { m.cursor = i }
func (m *OnlineModel) Connected() bool                    { return m.connected }
func (m *OnlineModel) SetConnected(c bool)                { m.connected = c }
func (m *OnlineModel) Joined() bool                       { return m.joined }
func (m *OnlineModel) SetJoined(j bool)                   { m.joined = j }
func (m *OnlineModel) Dispatch(f func())                  { m.dispatch(f) }

func (m *OnlineModel) Reconnect() (attempt, maxTries int) {
	return m.reconnectAttempt, m.reconnectMax
}

func (m *OnlineModel) SetReconnect(attempt, maxTries int) {
	m.reconnectAttempt = attempt
	m.reconnectMax = maxTries
}

// Update handles tea messages.
func (m *OnlineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case DispatchMsg:
		msg.Fn()
		cmds = append(cmds, m.listenForEvents())

	case ConnectedMsg, DisconnectedMsg, ReconnectingMsg:
		if m.connectionHandler != nil {
			cmds = append(cmds, m.connectionHandler(m, msg))
		}
		cmds = append(cmds, m.listenForEvents())

	case ConnectionClosedMsg:
		if m.connectionHandler != nil {
			cmds = append(cmds, m.connectionHandler(m, msg))
		}
		cmds = append(cmds, m.listenForEvents())

	case listenStoppedMsg:
		m.listening = false

	case ConnectionErrorMsg:
		if m.connectionHandler != nil {
			cmds = append(cmds, m.connectionHandler(m, msg))
		}

	case ServerMessage:
		if m.serverMessageHandler != nil {
			cmds = append(cmds, m.serverMessageHandler(m, msg.Msg))
		}
		cmds = append(cmds, m.listenForMessages())

	case tea.KeyMsg:
		if m.keyHandler != nil {
			handled, keyCmd := m.keyHandler(m, msg)
			cmds = append(cmds, keyCmd)
			if handled {
				return m, tea.Batch(cmds...)
			}
		}
		cmds = append(cmds, m.updatePrompt(msg))

	default:
		// Cursor blink and other widget ticks
		cmds = append(cmds, m.updatePrompt(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *OnlineModel) updatePrompt(msg tea.Msg) tea.Cmd {
	entry, ok := m.engine.Overlays().Visible()
	if !ok || entry.Category != overlay.TextPrompt {
		return nil
	}
	if p, ok := entry.Content.(*TextPrompt); ok {
		return p.Update(msg)
	}
	return nil
}

// View renders the model.
func (m *OnlineModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.viewRenderer == nil {
		return "View renderer not initialized"
	}
	return common.DocStyle.Render(m.viewRenderer(m))
}

// Close releases the transport and audio.
func (m *OnlineModel) Close() {
	m.transport.Close()
	if m.sounds != nil {
		m.sounds.Close()
	}
}

// SetViewRenderer sets the view rendering function.
func (m *OnlineModel) SetViewRenderer(fn func(Model) string) {
	m.viewRenderer = fn
}

// SetKeyHandler sets the keyboard event handler function.
func (m *OnlineModel) SetKeyHandler(fn func(Model, tea.KeyMsg) (bool, tea.Cmd)) {
	m.keyHandler = fn
}

// SetServerMessageHandler sets the server message handler function.
func (m *OnlineModel) SetServerMessageHandler(fn func(Model, *protocol.Message) tea.Cmd) {
	m.serverMessageHandler = fn
}

// SetConnectionHandler sets the connection lifecycle handler function.
func (m *OnlineModel) SetConnectionHandler(fn func(Model, tea.Msg) tea.Cmd) {
	m.connectionHandler = fn
}

// SetStartHandler sets the function run by Init instead of a plain Connect.
func (m *OnlineModel) SetStartHandler(fn func(Model) tea.Cmd) {
	m.startHandler = fn
}
