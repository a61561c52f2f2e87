// Package convert maps wire payloads onto engine events and snapshots.
package convert

import (
	"fmt"

	"github.com/palemoky/boompa-hearts/internal/apperrors"
	"github.com/palemoky/boompa-hearts/internal/card"
	"github.com/palemoky/boompa-hearts/internal/engine"
	"github.com/palemoky/boompa-hearts/internal/logger"
	"github.com/palemoky/boompa-hearts/internal/protocol"
	"github.com/palemoky/boompa-hearts/internal/table"
)

type decoder func(msg *protocol.Message) (engine.Event, error)

var decoders = map[protocol.MessageType]decoder{
	protocol.MsgJoined:       joined,
	protocol.MsgRenamed:      renamed,
	protocol.MsgRejoined:     rejoined,
	protocol.MsgDisconnected: disconnected,
	protocol.MsgPause:        func(*protocol.Message) (engine.Event, error) { return engine.Paused{}, nil },
	protocol.MsgStartGame:    startGame,
	protocol.MsgStartHand:    startHand,
	protocol.MsgTraded:       traded,
	protocol.MsgFinishTrade:  finishTrade,
	protocol.MsgStartTurn:    startTurn,
	protocol.MsgCardPlayed:   cardPlayed,
	protocol.MsgEndTrick:     endTrick,
	protocol.MsgEndHand: func(msg *protocol.Message) (engine.Event, error) {
		scores, err := scoresOf(msg)
		return engine.EndHand{Scores: scores}, err
	},
	protocol.MsgEndGame: func(msg *protocol.Message) (engine.Event, error) {
		scores, err := scoresOf(msg)
		return engine.EndGame{Scores: scores}, err
	},
}

// IsEvent reports whether msg maps onto an engine event.
func IsEvent(t protocol.MessageType) bool {
	_, ok := decoders[t]
	return ok
}

// Event decodes a server notification. Acks, select_partner and refresh are
// not events and yield apperrors.ErrInvalidMessage.
func Event(msg *protocol.Message) (engine.Event, error) {
	dec, ok := decoders[msg.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an event", apperrors.ErrInvalidMessage, msg.Type)
	}
	ev, err := dec(msg)
	if err != nil {
		return nil, err
	}
	return ev, nil
}

func joined(msg *protocol.Message) (engine.Event, error) {
	var p protocol.NamePayload
	if err := msg.DecodePayload(&p); err != nil {
		return nil, err
	}
	return engine.Joined{Player: p.Name}, nil
}

func renamed(msg *protocol.Message) (engine.Event, error) {
	var p protocol.RenamedPayload
	if err := msg.DecodePayload(&p); err != nil {
		return nil, err
	}
	return engine.Renamed{Player: p.Name, Seat: p.Seat}, nil
}

func rejoined(msg *protocol.Message) (engine.Event, error) {
	var p protocol.SeatPayload
	if err := msg.DecodePayload(&p); err != nil {
		return nil, err
	}
	return engine.Rejoined{Seat: p.Seat}, nil
}

func disconnected(msg *protocol.Message) (engine.Event, error) {
	var p protocol.DisconnectedPayload
	if err := msg.DecodePayload(&p); err != nil {
		return nil, err
	}
	if p.Seat == nil {
		return engine.Disconnected{Seat: -1, Player: p.Name}, nil
	}
	return engine.Disconnected{Seat: *p.Seat, Player: p.Name}, nil
}

func startGame(msg *protocol.Message) (engine.Event, error) {
	var p protocol.StartGamePayload
	if err := msg.DecodePayload(&p); err != nil {
		return nil, err
	}
	return engine.StartGame{Seat: p.Seat, Names: p.Names}, nil
}

func startHand(msg *protocol.Message) (engine.Event, error) {
	var p protocol.StartHandPayload
	if err := msg.DecodePayload(&p); err != nil {
		return nil, err
	}
	return engine.StartHand{Cards: Cards(p.Cards), HandNum: p.HandNum}, nil
}

func traded(msg *protocol.Message) (engine.Event, error) {
	var p protocol.SeatPayload
	if err := msg.DecodePayload(&p); err != nil {
		return nil, err
	}
	return engine.Traded{Seat: p.Seat}, nil
}

func finishTrade(msg *protocol.Message) (engine.Event, error) {
	var p protocol.FinishTradePayload
	if err := msg.DecodePayload(&p); err != nil {
		return nil, err
	}
	return engine.FinishTrade{Given: Cards(p.Given), Received: Cards(p.Received)}, nil
}

func startTurn(msg *protocol.Message) (engine.Event, error) {
	var p protocol.SeatPayload
	if err := msg.DecodePayload(&p); err != nil {
		return nil, err
	}
	return engine.StartTurn{Seat: p.Seat}, nil
}

// A played card cannot be skipped like a hand card: the trick would be short.
func cardPlayed(msg *protocol.Message) (engine.Event, error) {
	var p protocol.CardPlayedPayload
	if err := msg.DecodePayload(&p); err != nil {
		return nil, err
	}
	c, err := card.Parse(p.Card)
	if err != nil {
		return nil, err
	}
	return engine.CardPlayed{Card: c, Seat: p.Seat}, nil
}

func endTrick(msg *protocol.Message) (engine.Event, error) {
	var p protocol.EndTrickPayload
	if err := msg.DecodePayload(&p); err != nil {
		return nil, err
	}
	return engine.EndTrick{Winner: p.Winner}, nil
}

func scoresOf(msg *protocol.Message) ([2]int, error) {
	var p protocol.ScoresPayload
	if err := msg.DecodePayload(&p); err != nil {
		return [2]int{}, err
	}
	return [2]int{p.Score02, p.Score13}, nil
}

// Cards parses card ids, logging and skipping any the client does not know.
func Cards(ids []string) []card.Card {
	if ids == nil {
		return nil
	}
	cards := make([]card.Card, 0, len(ids))
	for _, id := range ids {
		c, err := card.Parse(id)
		if err != nil {
			logger.LogError("Skipping card: %v", err)
			continue
		}
		cards = append(cards, c)
	}
	return cards
}

// Snapshot converts a wire snapshot. Unknown cards are skipped.
func Snapshot(p *protocol.SnapshotPayload) engine.Snapshot {
	s := engine.Snapshot{
		Stage:        table.Stage(p.State),
		Names:        p.Names,
		Seat:         p.Seat,
		Disconnected: p.Disconnected,
		HandNum:      p.HandNum,
		Scores:       [2]int{p.Score02, p.Score13},
		Hand:         Cards(p.Hand),
		Traded:       p.HaveTraded,
		HeartsBroken: p.HeartsBroken,
		Tricks:       [2]int{p.Tricks02, p.Tricks13},
		TookPoint:    p.TookPoints,
		TrickLeader:  p.TrickLeader,
		Trick:        Cards(p.TrickCards),
		LastTrick:    Cards(p.LastTrick),
	}
	if len(p.PendingTrade) > 0 {
		s.PendingTrade = Cards(p.PendingTrade)
	}
	return s
}
