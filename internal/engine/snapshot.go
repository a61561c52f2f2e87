package engine

import (
	"slices"

	"github.com/palemoky/boompa-hearts/internal/card"
	"github.com/palemoky/boompa-hearts/internal/table"
)

// Snapshot is the full table state sent on rejoin and refresh.
// Scores, Tricks and TookPoint are indexed by partnership.
type Snapshot struct {
	Stage        table.Stage
	Names        []string // lobby list while waiting, seat names otherwise
	Seat         int
	Disconnected []bool
	HandNum      int
	Scores       [2]int
	Hand         []card.Card

	// trading
	PendingTrade []card.Card // nil when the local seat has not traded
	Traded       []bool

	// playing
	HeartsBroken bool
	Tricks       [2]int
	TookPoint    []bool // optional
	TrickLeader  int
	Trick        []card.Card
	LastTrick    []card.Card
}

// ApplySnapshot replaces the whole view with s. Applying the same snapshot
// twice yields the same view.
func (e *Engine) ApplySnapshot(s Snapshot) {
	e.overlays.DismissAll()
	t := e.table
	t.Reset()
	e.phase = PhaseWaiting

	switch s.Stage {
	case table.StageTrading, table.StagePlaying, table.StageEnded:
	default:
		e.EnterLobby(s.Names)
		return
	}

	t.Stage = s.Stage
	if checkSeat(s.Seat) == nil {
		t.LocalSeat = s.Seat
	}
	t.SetNames(s.Names)
	for i, d := range s.Disconnected {
		if i < table.Seats {
			t.Seats[i].Disconnected = d
		}
	}
	t.HandNum = s.HandNum
	t.Scores = s.Scores
	t.SetHand(s.Hand)
	t.SetCardBacks(len(s.Hand))

	switch s.Stage {
	case table.StageTrading:
		e.restoreTrading(s)
	case table.StagePlaying:
		e.restorePlaying(s)
	case table.StageEnded:
		e.phase = PhaseEnded
		e.showOutcome()
	}
}

func (e *Engine) restoreTrading(s Snapshot) {
	t := e.table
	for i, traded := range s.Traded {
		if i < table.Seats {
			t.Seats[i].Traded = traded
		}
	}
	if s.PendingTrade == nil {
		t.ShowAction(TradeLabel(s.HandNum))
		e.phase = PhaseTrading
		return
	}
	t.HideCards(s.PendingTrade)
	e.localSeat().Traded = true
}

func (e *Engine) restorePlaying(s Snapshot) {
	t := e.table
	t.HeartsBroken = s.HeartsBroken
	t.Tricks = s.Tricks
	for i := 0; i < len(t.TookPoint) && i < len(s.TookPoint); i++ {
		t.TookPoint[i] = s.TookPoint[i]
	}

	leader := s.TrickLeader
	if checkSeat(leader) != nil {
		leader = 0
	}
	trick := s.Trick
	if len(trick) > table.Seats {
		trick = trick[:table.Seats]
	}
	local := t.LocalSeat
	played := HasPlayed(local, leader, len(trick))

	// Backs were dealt to match the local hand; seats ahead of the local
	// player in this trick hold one fewer, seats behind it one more.
	for i, c := range trick {
		seat := TurnSeat(leader, i)
		if !played {
			t.RemoveFromSeat(seat, c)
		}
		t.AppendToTrick(card.Play{Seat: seat, Card: c})
	}
	if played {
		for i := len(trick); i < table.Seats; i++ {
			t.Seats[TurnSeat(leader, i)].CardCount++
		}
	}

	if len(s.LastTrick) > 0 {
		t.LastTrick = lastTrick(s.LastTrick, leader)
	}

	cur := TurnSeat(leader, len(trick))
	if len(trick) < table.Seats {
		t.SetCurrent(cur)
	}
	if !played && cur == local {
		t.ShowAction(PlayLabel)
		e.phase = PhasePlaying
	}
}

// lastTrick rebuilds the previous trick: its winner leads the current one,
// which fixes the seat of every card.
func lastTrick(cards []card.Card, winner int) *table.LastTrick {
	cards = slices.Clone(cards)
	if len(cards) > table.Seats {
		cards = cards[:table.Seats]
	}
	win := card.WinningIndex(cards)
	first := ((winner-win)%table.Seats + table.Seats) % table.Seats
	plays := make([]card.Play, len(cards))
	for i, c := range cards {
		plays[i] = card.Play{Seat: TurnSeat(first, i), Card: c}
	}
	return &table.LastTrick{Plays: plays, Winner: winner, WinningIndex: win}
}
