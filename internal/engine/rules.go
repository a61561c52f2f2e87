package engine

import "github.com/palemoky/boompa-hearts/internal/table"

// TradeDirection is where the three traded cards go in a hand.
type TradeDirection int

const (
	Hold TradeDirection = iota
	PassLeft
	PassRight
	PassAcross
)

var tradeArrows = [...]string{"·", "↖", "↗", "↑"}

var tradeNames = [...]string{"hold", "left", "right", "across"}

// TradeDirectionFor cycles left, right, across, hold starting at hand 1.
func TradeDirectionFor(handNum int) TradeDirection {
	return TradeDirection(((handNum % 4) + 4) % 4)
}

// Arrow returns the glyph shown on the trade button.
func (d TradeDirection) Arrow() string { return tradeArrows[d] }

func (d TradeDirection) String() string { return tradeNames[d] }

// TradeLabel is the action label for a trading hand.
func TradeLabel(handNum int) string {
	return "Trade " + TradeDirectionFor(handNum).Arrow()
}

// PlayLabel is the action label on the local turn.
const PlayLabel = "Play"

// TurnSeat returns the seat due to play after played cards of a trick led by leader.
func TurnSeat(leader, played int) int {
	return (leader + played) % table.Seats
}

// HasPlayed reports whether local already played into a trick led by leader
// holding played cards.
func HasPlayed(local, leader, played int) bool {
	offset := ((local-leader)%table.Seats + table.Seats) % table.Seats
	return offset < played
}

// IsLocalTurn reports whether the local seat is due to play and has not yet.
func IsLocalTurn(local, leader, played int) bool {
	return played < table.Seats && TurnSeat(leader, played) == local
}
