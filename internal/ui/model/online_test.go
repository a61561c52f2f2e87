package model

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/boompa-hearts/internal/engine"
	"github.com/palemoky/boompa-hearts/internal/overlay"
	"github.com/palemoky/boompa-hearts/internal/protocol"
	"github.com/palemoky/boompa-hearts/internal/testutil"
)

func TestOnlineModel_WindowSizeAndView(t *testing.T) {
	t.Parallel()
	m := NewOnlineModel(Options{Transport: &testutil.SimpleTransport{}})

	assert.Equal(t, "Loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.Width())
	assert.Equal(t, 40, m.Height())
	assert.Equal(t, "View renderer not initialized", m.View())

	m.SetViewRenderer(func(Model) string { return "table" })
	assert.Contains(t, m.View(), "table")
}

func TestOnlineModel_ConnectFailure(t *testing.T) {
	t.Parallel()
	tr := &testutil.MockTransport{}
	tr.On("Connect").Return(errors.New("refused")).Once()
	m := NewOnlineModel(Options{Transport: tr})

	msg := m.Connect()()
	require.IsType(t, ConnectionErrorMsg{}, msg)
	assert.EqualError(t, msg.(ConnectionErrorMsg).Err, "refused")

	var seen tea.Msg
	m.SetConnectionHandler(func(_ Model, msg tea.Msg) tea.Cmd {
		seen = msg
		return nil
	})
	m.Update(msg)
	assert.Equal(t, msg, seen)
	tr.AssertExpectations(t)
}

func TestOnlineModel_ConnectSuccessReportsNothing(t *testing.T) {
	t.Parallel()
	tr := &testutil.MockTransport{}
	tr.On("Connect").Return(nil).Once()
	m := NewOnlineModel(Options{Transport: tr})

	assert.Nil(t, m.Connect()())
	tr.AssertExpectations(t)
}

func TestOnlineModel_DispatchRunsInsideUpdate(t *testing.T) {
	t.Parallel()
	m := NewOnlineModel(Options{Transport: &testutil.SimpleTransport{}})

	ran := false
	m.Dispatch(func() { ran = true })
	assert.False(t, ran, "queued until Update")

	msg := m.listenForEvents()()
	require.IsType(t, DispatchMsg{}, msg)
	_, cmd := m.Update(msg)
	assert.True(t, ran)
	assert.NotNil(t, cmd, "keeps listening")
}

func TestOnlineModel_PostDeliversConnectionEvents(t *testing.T) {
	t.Parallel()
	m := NewOnlineModel(Options{Transport: &testutil.SimpleTransport{}})

	var seen []tea.Msg
	m.SetConnectionHandler(func(_ Model, msg tea.Msg) tea.Cmd {
		seen = append(seen, msg)
		return nil
	})

	posted := []tea.Msg{
		DisconnectedMsg{Reason: "eof"},
		ReconnectingMsg{Attempt: 1, MaxTries: 5},
		ConnectedMsg{},
		ConnectionClosedMsg{},
	}
	for _, msg := range posted {
		m.Post(msg)
		m.Update(m.listenForEvents()())
	}
	assert.Equal(t, posted, seen)
}

func TestOnlineModel_ListeningRestartsAfterReceiveError(t *testing.T) {
	t.Parallel()
	tr := &testutil.MockTransport{}
	tr.On("Receive").Return(nil, errors.New("closed"))
	m := NewOnlineModel(Options{Transport: tr})

	cmd := m.StartListening()
	require.NotNil(t, cmd)
	assert.Nil(t, m.StartListening(), "only one receive loop")

	m.Update(cmd())
	assert.NotNil(t, m.StartListening())
}

func TestOnlineModel_ServerMessageRoutedAndRelistens(t *testing.T) {
	t.Parallel()
	tr := &testutil.MockTransport{}
	m := NewOnlineModel(Options{Transport: tr})

	var got *protocol.Message
	m.SetServerMessageHandler(func(_ Model, msg *protocol.Message) tea.Cmd {
		got = msg
		return nil
	})
	msg := &protocol.Message{Type: protocol.MsgPause}
	_, cmd := m.Update(ServerMessage{Msg: msg})
	assert.Same(t, msg, got)
	assert.NotNil(t, cmd)
}

func TestOnlineModel_KeysReachTextPrompt(t *testing.T) {
	t.Parallel()
	m := NewOnlineModel(Options{Engine: engine.New(), Transport: &testutil.SimpleTransport{}})
	m.SetKeyHandler(func(Model, tea.KeyMsg) (bool, tea.Cmd) { return false, nil })

	prompt := NewTextPrompt("Name?", "", 8, nil)
	m.Engine().Overlays().Show(overlay.TextPrompt, prompt)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Bo")})
	assert.Equal(t, "Bo", prompt.Value())

	m.SetKeyHandler(func(Model, tea.KeyMsg) (bool, tea.Cmd) { return true, nil })
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	assert.Equal(t, "Bo", prompt.Value(), "handled keys stop at the handler")
}

func TestOnlineModel_InitRunsStartHandler(t *testing.T) {
	t.Parallel()
	m := NewOnlineModel(Options{Transport: &testutil.SimpleTransport{}})

	started := false
	m.SetStartHandler(func(Model) tea.Cmd {
		started = true
		return nil
	})
	assert.NotNil(t, m.Init())
	assert.True(t, started)
}
