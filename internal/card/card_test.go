package card

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/boompa-hearts/internal/apperrors"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id   string
		want Card
	}{
		{"c2", Card{Clubs, Rank2}},
		{"d9", Card{Diamonds, Rank9}},
		{"h10", Card{Hearts, Rank10}},
		{"sQ", Card{Spades, RankQ}},
		{"hA", Card{Hearts, RankA}},
		{"cJ", Card{Clubs, RankJ}},
		{"dK", Card{Diamonds, RankK}},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.id, got.ID(), "ID should round-trip")
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"", "h", "x2", "h1", "h11", "hZ", "H2", "s0"} {
		_, err := Parse(id)
		assert.Error(t, err, id)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCard), id)
	}
}

func TestParseAll(t *testing.T) {
	t.Parallel()

	cards, err := ParseAll([]string{"c2", "sQ"})
	require.NoError(t, err)
	assert.Equal(t, []Card{MustParse("c2"), QueenOfSpades}, cards)

	_, err = ParseAll([]string{"c2", "zz"})
	assert.Error(t, err)

	assert.Panics(t, func() { MustParse("bogus") })
}

func TestCard_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "10♥", MustParse("h10").String())
	assert.Equal(t, "Q♠", QueenOfSpades.String())
	assert.Equal(t, "2♣", MustParse("c2").String())
}

func TestCard_IsPoint(t *testing.T) {
	t.Parallel()

	assert.True(t, MustParse("h2").IsPoint())
	assert.True(t, MustParse("hA").IsPoint())
	assert.True(t, MustParse("sQ").IsPoint())
	assert.False(t, MustParse("sK").IsPoint())
	assert.False(t, MustParse("dQ").IsPoint())
	assert.False(t, MustParse("c2").IsPoint())

	assert.True(t, ContainsPoint([]Card{MustParse("c2"), MustParse("sQ")}))
	assert.False(t, ContainsPoint([]Card{MustParse("c2"), MustParse("sA")}))
	assert.False(t, ContainsPoint(nil))
}

func TestCompare_TotalOrder(t *testing.T) {
	t.Parallel()

	deck := make([]Card, 0, 52)
	for s := Clubs; s <= Hearts; s++ {
		for r := Rank2; r <= RankA; r++ {
			deck = append(deck, New(s, r))
		}
	}

	for i, a := range deck {
		for j, b := range deck {
			got := Compare(a, b)
			switch {
			case i < j:
				assert.Negative(t, got, "%s < %s", a, b)
			case i > j:
				assert.Positive(t, got, "%s > %s", a, b)
			default:
				assert.Zero(t, got)
			}
		}
	}
}

func TestSort(t *testing.T) {
	t.Parallel()

	cards := []Card{MustParse("hA"), MustParse("c10"), MustParse("sQ"), MustParse("c2"), MustParse("dJ"), MustParse("h3")}
	Sort(cards)
	assert.Equal(t, []string{"c2", "c10", "dJ", "sQ", "h3", "hA"}, IDs(cards))
}

func TestSuit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "h", Hearts.Letter())
	assert.Equal(t, "?", Suit(9).Letter())
	assert.Equal(t, "spades", Spades.String())
	assert.True(t, Diamonds.IsRed())
	assert.False(t, Clubs.IsRed())
	assert.True(t, MustParse("hK").Valid())
	assert.False(t, Card{Suit: Hearts, Rank: 1}.Valid())
}
