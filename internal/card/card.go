// Package card holds the playing card value type and the ordering rules
// used to sort a hand and to find the winner of a trick.
package card

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/palemoky/boompa-hearts/internal/apperrors"
)

// Suit is ordered clubs < diamonds < spades < hearts.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Spades
	Hearts
)

// suitLetters maps a suit to its wire letter, indexed by Suit.
const suitLetters = "cdsh"

var suitSymbols = map[Suit]string{
	Clubs:    "♣",
	Diamonds: "♦",
	Spades:   "♠",
	Hearts:   "♥",
}

var suitNames = map[Suit]string{
	Clubs:    "clubs",
	Diamonds: "diamonds",
	Spades:   "spades",
	Hearts:   "hearts",
}

// Symbol returns the suit glyph.
func (s Suit) Symbol() string {
	return suitSymbols[s]
}

// Letter returns the wire letter of the suit.
func (s Suit) Letter() string {
	if s < Clubs || s > Hearts {
		return "?"
	}
	return suitLetters[s : s+1]
}

func (s Suit) String() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsRed reports whether the suit is drawn in red.
func (s Suit) IsRed() bool {
	return s == Diamonds || s == Hearts
}

// Rank runs from 2 (lowest) to ace (highest).
type Rank int

const (
	Rank2 Rank = iota + 2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ // Jack
	RankQ // Queen
	RankK // King
	RankA // Ace
)

var rankNames = map[Rank]string{
	RankJ: "J",
	RankQ: "Q",
	RankK: "K",
	RankA: "A",
}

var nameToRank = map[string]Rank{
	"J": RankJ,
	"Q": RankQ,
	"K": RankK,
	"A": RankA,
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// Card is an immutable playing card.
type Card struct {
	Suit Suit
	Rank Rank
}

// QueenOfSpades is the penalty spade.
var QueenOfSpades = Card{Suit: Spades, Rank: RankQ}

// New returns the card of suit s and rank r.
func New(s Suit, r Rank) Card {
	return Card{Suit: s, Rank: r}
}

// Parse reads a wire identifier: the suit letter followed by the rank,
// e.g. "c2", "h10", "sQ".
func Parse(id string) (Card, error) {
	if len(id) < 2 {
		return Card{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidCard, id)
	}
	suit := Suit(-1)
	for i := 0; i < len(suitLetters); i++ {
		if suitLetters[i] == id[0] {
			suit = Suit(i)
			break
		}
	}
	if suit < 0 {
		return Card{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidCard, id)
	}

	rankPart := id[1:]
	rank, ok := nameToRank[rankPart]
	if !ok {
		n, err := strconv.Atoi(rankPart)
		if err != nil || n < int(Rank2) || n > int(Rank10) {
			return Card{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidCard, id)
		}
		rank = Rank(n)
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// MustParse is Parse for identifiers known to be valid.
func MustParse(id string) Card {
	c, err := Parse(id)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseAll parses every identifier, failing on the first bad one.
func ParseAll(ids []string) ([]Card, error) {
	cards := make([]Card, 0, len(ids))
	for _, id := range ids {
		c, err := Parse(id)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// ID returns the wire identifier.
func (c Card) ID() string {
	return c.Suit.Letter() + c.Rank.String()
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// IsPoint reports whether the card scores: every heart and the queen of spades.
func (c Card) IsPoint() bool {
	return c.Suit == Hearts || c == QueenOfSpades
}

// Valid reports whether the card is part of a standard deck.
func (c Card) Valid() bool {
	return c.Suit >= Clubs && c.Suit <= Hearts && c.Rank >= Rank2 && c.Rank <= RankA
}

// Compare orders cards by suit, then by rank.
func Compare(a, b Card) int {
	if a.Suit != b.Suit {
		return int(a.Suit) - int(b.Suit)
	}
	return int(a.Rank) - int(b.Rank)
}

// Sort sorts cards in place in display order.
func Sort(cards []Card) {
	slices.SortFunc(cards, Compare)
}

// IDs returns the wire identifiers of cards.
func IDs(cards []Card) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID()
	}
	return ids
}

// ContainsPoint reports whether any card scores.
func ContainsPoint(cards []Card) bool {
	return slices.ContainsFunc(cards, Card.IsPoint)
}
