package convert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/boompa-hearts/internal/apperrors"
	"github.com/palemoky/boompa-hearts/internal/card"
	"github.com/palemoky/boompa-hearts/internal/engine"
	"github.com/palemoky/boompa-hearts/internal/protocol"
	"github.com/palemoky/boompa-hearts/internal/table"
)

func TestEvent(t *testing.T) {
	t.Parallel()

	seat := 3
	tests := []struct {
		name    string
		msgType protocol.MessageType
		payload any
		want    engine.Event
	}{
		{"joined", protocol.MsgJoined, protocol.NamePayload{Name: "ann"}, engine.Joined{Player: "ann"}},
		{"renamed", protocol.MsgRenamed, protocol.RenamedPayload{Name: "bo", Seat: 1}, engine.Renamed{Player: "bo", Seat: 1}},
		{"rejoined", protocol.MsgRejoined, protocol.SeatPayload{Seat: 2}, engine.Rejoined{Seat: 2}},
		{"disconnected seat", protocol.MsgDisconnected, protocol.DisconnectedPayload{Seat: &seat}, engine.Disconnected{Seat: 3}},
		{"disconnected lobby", protocol.MsgDisconnected, protocol.DisconnectedPayload{Name: "cy"}, engine.Disconnected{Seat: -1, Player: "cy"}},
		{"pause", protocol.MsgPause, nil, engine.Paused{}},
		{"start game", protocol.MsgStartGame, protocol.StartGamePayload{Seat: 1, Names: []string{"a", "b", "c", "d"}},
			engine.StartGame{Seat: 1, Names: []string{"a", "b", "c", "d"}}},
		{"start hand", protocol.MsgStartHand, protocol.StartHandPayload{Cards: []string{"c2", "hA"}, HandNum: 2},
			engine.StartHand{Cards: []card.Card{card.MustParse("c2"), card.MustParse("hA")}, HandNum: 2}},
		{"traded", protocol.MsgTraded, protocol.SeatPayload{Seat: 0}, engine.Traded{Seat: 0}},
		{"finish trade", protocol.MsgFinishTrade, protocol.FinishTradePayload{Given: []string{"sQ"}, Received: []string{"d4"}},
			engine.FinishTrade{Given: []card.Card{card.QueenOfSpades}, Received: []card.Card{card.MustParse("d4")}}},
		{"start turn", protocol.MsgStartTurn, protocol.SeatPayload{Seat: 2}, engine.StartTurn{Seat: 2}},
		{"card played", protocol.MsgCardPlayed, protocol.CardPlayedPayload{Card: "h4", Seat: 0},
			engine.CardPlayed{Card: card.MustParse("h4"), Seat: 0}},
		{"end trick", protocol.MsgEndTrick, protocol.EndTrickPayload{Winner: 2}, engine.EndTrick{Winner: 2}},
		{"end hand", protocol.MsgEndHand, protocol.ScoresPayload{Score02: 5, Score13: 21}, engine.EndHand{Scores: [2]int{5, 21}}},
		{"end game", protocol.MsgEndGame, protocol.ScoresPayload{Score02: 101, Score13: 60}, engine.EndGame{Scores: [2]int{101, 60}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.True(t, IsEvent(tt.msgType))
			ev, err := Event(protocol.MustNewMessage(tt.msgType, tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.want, ev)
		})
	}
}

func TestEvent_NotAnEvent(t *testing.T) {
	t.Parallel()

	for _, mt := range []protocol.MessageType{protocol.MsgAck, protocol.MsgSelectPartner, protocol.MsgRefresh} {
		assert.False(t, IsEvent(mt))
		_, err := Event(protocol.MustNewMessage(mt, nil))
		assert.True(t, errors.Is(err, apperrors.ErrInvalidMessage), mt)
	}
}

func TestEvent_BadPayload(t *testing.T) {
	t.Parallel()

	_, err := Event(&protocol.Message{Type: protocol.MsgStartTurn, Payload: []byte(`{"seat":"two"}`)})
	assert.Error(t, err)

	_, err = Event(protocol.MustNewMessage(protocol.MsgCardPlayed, protocol.CardPlayedPayload{Card: "x9", Seat: 1}))
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCard))
}

func TestCards_SkipsUnknown(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Cards(nil))
	assert.Equal(t, []card.Card{card.MustParse("c2"), card.MustParse("sK")}, Cards([]string{"c2", "zz", "sK", ""}))
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	p := &protocol.SnapshotPayload{
		State:        "trading",
		Names:        []string{"a", "b", "c", "d"},
		Seat:         2,
		Disconnected: []bool{false, true, false, false},
		HandNum:      1,
		Score02:      3,
		Score13:      10,
		Hand:         []string{"c2", "d3", "s4", "bad"},
		PendingTrade: []string{"c2", "d3", "s4"},
		HaveTraded:   []bool{true, false, true, false},
	}

	s := Snapshot(p)
	assert.Equal(t, table.StageTrading, s.Stage)
	assert.Equal(t, 2, s.Seat)
	assert.Equal(t, [2]int{3, 10}, s.Scores)
	assert.Len(t, s.Hand, 3)
	assert.Len(t, s.PendingTrade, 3)
	assert.Equal(t, []bool{true, false, true, false}, s.Traded)
	assert.Nil(t, s.Trick)

	p.PendingTrade = []string{}
	assert.Nil(t, Snapshot(p).PendingTrade, "empty pending trade means not traded")
}

func TestSnapshot_Playing(t *testing.T) {
	t.Parallel()

	s := Snapshot(&protocol.SnapshotPayload{
		State:        "playing",
		Seat:         0,
		Tricks02:     4,
		Tricks13:     2,
		TrickLeader:  3,
		TrickCards:   []string{"h2", "hK"},
		LastTrick:    []string{"c2", "c9", "cA", "c3"},
		HeartsBroken: true,
		TookPoints:   []bool{true, false},
	})
	assert.Equal(t, table.StagePlaying, s.Stage)
	assert.Equal(t, [2]int{4, 2}, s.Tricks)
	assert.Equal(t, 3, s.TrickLeader)
	assert.Len(t, s.Trick, 2)
	assert.Len(t, s.LastTrick, 4)
	assert.True(t, s.HeartsBroken)
	assert.Equal(t, []bool{true, false}, s.TookPoint)
}
