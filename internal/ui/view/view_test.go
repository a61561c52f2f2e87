package view

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/boompa-hearts/internal/card"
	"github.com/palemoky/boompa-hearts/internal/controller"
	"github.com/palemoky/boompa-hearts/internal/engine"
	"github.com/palemoky/boompa-hearts/internal/table"
	"github.com/palemoky/boompa-hearts/internal/testutil"
	"github.com/palemoky/boompa-hearts/internal/ui/model"
)

var names = []string{"Ann", "Bob", "Cat", "Dan"}

func newTestModel(t *testing.T) *model.OnlineModel {
	t.Helper()
	m := model.NewOnlineModel(model.Options{
		Engine:     engine.New(engine.WithGame("tidy-blue-heron")),
		Transport:  &testutil.SimpleTransport{},
		Profile:    testutil.NewProfile("Ann"),
		Dispatcher: controller.Immediate,
	})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func cards(ids ...string) []card.Card {
	out := make([]card.Card, len(ids))
	for i, id := range ids {
		out[i] = card.MustParse(id)
	}
	return out
}

func render(m model.Model) string {
	return ansi.Strip(CreateViewRenderer()(m))
}

func TestRenderer_ConnectingUntilJoined(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	assert.Contains(t, render(m), engine.MsgConnecting)

	m.SetReconnect(2, 5)
	assert.Contains(t, render(m), "Reconnecting (2/5)")
}

func TestRenderer_OverlayReplacesTable(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	m.SetJoined(true)
	m.SetConnected(true)
	m.Engine().EnterLobby([]string{"Ann", "Bob"})

	out := render(m)
	assert.Contains(t, out, "tidy-blue-heron")
	assert.Contains(t, out, "• Bob")

	m.Engine().ShowFatal(engine.MsgFullGame)
	out = render(m)
	assert.Contains(t, out, "Game is full.")
	assert.Contains(t, out, "q to quit")
	assert.NotContains(t, out, "• Bob")
}

func TestRenderer_Table(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	m.SetJoined(true)
	m.SetConnected(true)
	e := m.Engine()
	require.NoError(t, e.Apply(engine.StartGame{Seat: 1, Names: names}))
	require.NoError(t, e.Apply(engine.StartHand{
		Cards:   cards("c2", "c5", "c9", "cK", "d3", "d8", "dQ", "s4", "sJ", "sA", "h2", "h7", "hQ"),
		HandNum: 4,
	}))
	require.NoError(t, e.Apply(engine.StartTurn{Seat: 0}))
	require.NoError(t, e.Apply(engine.CardPlayed{Seat: 0, Card: card.MustParse("c3")}))
	require.NoError(t, e.Apply(engine.StartTurn{Seat: 1}))

	out := render(m)
	assert.Contains(t, out, "Hand 4")
	assert.Contains(t, out, "Bob & Dan")
	assert.Contains(t, out, "Ann & Cat")
	assert.Contains(t, out, "▶ Bob", "local seat holds the turn")
	assert.Contains(t, out, "▒▒ ×12", "seat 0 played one card")
	assert.Contains(t, out, " 3♣")
	assert.Contains(t, out, "Your hand (13)")
	assert.Contains(t, out, "Play")
	assert.NotContains(t, out, "Offline")
}

func TestRenderer_LastTrickAndMarks(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	m.SetJoined(true)
	tb := m.Engine().Table()
	tb.Stage = table.StagePlaying
	tb.SetNames(names)
	tb.TookPoint = [2]bool{false, true}
	tb.Seats[2].Disconnected = true
	tb.LastTrick = &table.LastTrick{
		Plays: []card.Play{
			{Seat: 1, Card: card.MustParse("s4")},
			{Seat: 2, Card: card.MustParse("sK")},
			{Seat: 3, Card: card.MustParse("h2")},
			{Seat: 0, Card: card.MustParse("s9")},
		},
		Winner:       2,
		WinningIndex: 1,
	}

	out := render(m)
	assert.Contains(t, out, "Last trick:  4♠ [ K♠]  2♥  9♠ → Cat")
	assert.Contains(t, out, "away")
	assert.Contains(t, out, "♥ Bob & Dan")
	assert.Contains(t, out, "Offline")
}

func TestRenderHand(t *testing.T) {
	t.Parallel()

	hand := []table.HandCard{
		{Card: card.MustParse("c2"), Selected: true},
		{Card: card.MustParse("d3"), Hidden: true, Selected: true},
		{Card: card.MustParse("hA"), Fresh: true},
	}
	out := ansi.Strip(RenderHand(hand, 2))
	assert.Contains(t, out, "Your hand (3)")
	assert.Contains(t, out, " 2♣")
	assert.Contains(t, out, " A♥")
	assert.Equal(t, 1, countRune(out, '▼'), "hidden cards are not raised")
	assert.Equal(t, 1, countRune(out, '^'))

	assert.Contains(t, ansi.Strip(RenderHand(nil, 0)), "(no cards)")
}

func TestRenderAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		action table.Action
		want   string
	}{
		{"hidden", table.Action{Label: "Play"}, ""},
		{"disabled", table.Action{Label: "Play", Visible: true}, "Play"},
		{"enabled", table.Action{Label: "Trade ↖", Visible: true, Enabled: true}, "Trade ↖"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := ansi.Strip(RenderAction(tt.action))
			if tt.want == "" {
				assert.Empty(t, out)
				return
			}
			assert.Contains(t, out, tt.want)
		})
	}
}

func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}
