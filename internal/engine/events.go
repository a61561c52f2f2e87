package engine

import "github.com/palemoky/boompa-hearts/internal/card"

// Event is a server notification or connection change applied through Engine.Apply.
type Event interface {
	Name() string
}

// Joined: a player entered the lobby.
type Joined struct{ Player string }

// Renamed: seat changed its display name.
type Renamed struct {
	Player string
	Seat   int
}

// Rejoined: seat reconnected.
type Rejoined struct{ Seat int }

// Disconnected names a lobby member while waiting (Seat < 0) or a seat otherwise.
type Disconnected struct {
	Seat   int
	Player string
}

// Paused: the table waits on partner selection.
type Paused struct{}

// StartGame assigns the local seat and every seat name.
type StartGame struct {
	Seat  int
	Names []string
}

// StartHand deals cards for hand HandNum.
type StartHand struct {
	Cards   []card.Card
	HandNum int
}

// Traded: seat submitted its trade.
type Traded struct{ Seat int }

// FinishTrade resolves the local trade.
type FinishTrade struct {
	Given    []card.Card
	Received []card.Card
}

// StartTurn: seat is due to play.
type StartTurn struct{ Seat int }

// CardPlayed: seat played Card.
type CardPlayed struct {
	Card card.Card
	Seat int
}

// EndTrick: Winner took the trick.
type EndTrick struct{ Winner int }

// EndHand carries cumulative scores, indexed by partnership.
type EndHand struct{ Scores [2]int }

// EndGame carries final scores, indexed by partnership.
type EndGame struct{ Scores [2]int }

// Connected: the transport (re)established its connection.
type Connected struct{}

// ConnectionLost: the transport dropped.
type ConnectionLost struct{ Reason string }

func (Joined) Name() string         { return "joined" }
func (Renamed) Name() string        { return "renamed" }
func (Rejoined) Name() string       { return "rejoined" }
func (Disconnected) Name() string   { return "disconnected" }
func (Paused) Name() string         { return "pause" }
func (StartGame) Name() string      { return "start_game" }
func (StartHand) Name() string      { return "start_hand" }
func (Traded) Name() string         { return "traded" }
func (FinishTrade) Name() string    { return "finish_trade" }
func (StartTurn) Name() string      { return "start_turn" }
func (CardPlayed) Name() string     { return "card_played" }
func (EndTrick) Name() string       { return "end_trick" }
func (EndHand) Name() string        { return "end_hand" }
func (EndGame) Name() string        { return "end_game" }
func (Connected) Name() string      { return "connect" }
func (ConnectionLost) Name() string { return "disconnect" }

// gameFlow reports whether ev advances the game and is meaningless once it ended.
func gameFlow(ev Event) bool {
	switch ev.(type) {
	case Paused, StartGame, StartHand, Traded, FinishTrade, StartTurn, CardPlayed, EndTrick, EndHand:
		return true
	}
	return false
}
