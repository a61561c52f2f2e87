package card

// Play is a card played by an absolute seat.
type Play struct {
	Seat int
	Card Card
}

// Cards returns the cards of plays in order.
func Cards(plays []Play) []Card {
	cards := make([]Card, len(plays))
	for i, p := range plays {
		cards[i] = p.Card
	}
	return cards
}

// WinningIndex returns the index of the highest card of the led suit, or -1
// for an empty trick. Off-suit cards never win.
func WinningIndex(cards []Card) int {
	if len(cards) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(cards); i++ {
		if cards[i].Suit == cards[0].Suit && cards[i].Rank > cards[best].Rank {
			best = i
		}
	}
	return best
}

// WinningCard returns the card taking the trick. ok is false for an empty trick.
func WinningCard(trick []Play) (c Card, ok bool) {
	i := WinningIndex(Cards(trick))
	if i < 0 {
		return Card{}, false
	}
	return trick[i].Card, true
}

// Winner returns the seat taking the trick, or -1 for an empty trick.
func Winner(trick []Play) int {
	i := WinningIndex(Cards(trick))
	if i < 0 {
		return -1
	}
	return trick[i].Seat
}
