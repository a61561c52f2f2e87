// Package table is the client-side view model of a Hearts table: seats,
// the local hand, the trick in progress, scores and the action control.
// It holds state only; the engine decides when it changes.
package table

import (
	"slices"

	"github.com/thoas/go-funk"

	"github.com/palemoky/boompa-hearts/internal/card"
)

// HandSize is the number of cards dealt to each seat.
const HandSize = 13

// Stage is the table-wide state reported by the server.
type Stage string

const (
	StageWaiting Stage = "waiting"
	StageTrading Stage = "trading"
	StagePlaying Stage = "playing"
	StageEnded   Stage = "ended"
)

// HandCard is a card in the local hand with its display flags.
type HandCard struct {
	card.Card
	Selected bool
	Disabled bool
	Hidden   bool // submitted in a pending trade
	Fresh    bool // just received in a trade
}

// Seat is the public state of one player.
type Seat struct {
	Name         string
	CardCount    int // card backs shown; unused for the local seat
	Current      bool
	Disconnected bool
	Traded       bool
}

// Action is the single action control (Trade or Play).
type Action struct {
	Label   string
	Visible bool
	Enabled bool
}

// LastTrick is the most recently completed trick.
type LastTrick struct {
	Plays        []card.Play
	Winner       int
	WinningIndex int
}

// Table is the whole view model. Seat-indexed arrays use absolute seats.
type Table struct {
	Stage     Stage
	LocalSeat int
	Seats     [Seats]Seat
	Lobby     []string
	Hand      []HandCard
	HandNum   int

	Scores    [2]int
	Tricks    [2]int
	TookPoint [2]bool

	Trick        []card.Play
	LastTrick    *LastTrick
	HeartsBroken bool

	Action Action
}

// New returns an empty table in the waiting stage.
func New() *Table {
	return &Table{Stage: StageWaiting}
}

// Reset clears everything back to a fresh waiting table.
func (t *Table) Reset() {
	*t = Table{Stage: StageWaiting}
}

// Position returns where seat sits relative to the local player.
func (t *Table) Position(seat int) Position {
	return RelativePosition(seat, t.LocalSeat)
}

// SeatAt returns the absolute seat drawn at pos.
func (t *Table) SeatAt(pos Position) int {
	return SeatAt(pos, t.LocalSeat)
}

// LocalPartnership returns the partnership index of the local seat.
func (t *Table) LocalPartnership() int {
	return Partnership(t.LocalSeat)
}

// SetNames assigns names by absolute seat. Extra names are ignored.
func (t *Table) SetNames(names []string) {
	for i := 0; i < Seats && i < len(names); i++ {
		t.Seats[i].Name = names[i]
	}
}

// PartnershipNames returns "a & b" for the given partnership.
func (t *Table) PartnershipNames(partnership int) string {
	return t.Seats[partnership].Name + " & " + t.Seats[partnership+2].Name
}

// ClearFlags resets per-seat markers, hand flags and the action control.
func (t *Table) ClearFlags() {
	for i := range t.Seats {
		t.Seats[i].Current = false
		t.Seats[i].Disconnected = false
		t.Seats[i].Traded = false
	}
	for i := range t.Hand {
		t.Hand[i].Selected = false
		t.Hand[i].Disabled = false
		t.Hand[i].Hidden = false
		t.Hand[i].Fresh = false
	}
	t.Action = Action{}
}

// CardCount returns the number of cards held by seat.
func (t *Table) CardCount(seat int) int {
	if seat == t.LocalSeat {
		return len(t.Hand)
	}
	return t.Seats[seat].CardCount
}

// SetCardBacks sets the card count of every other seat.
func (t *Table) SetCardBacks(n int) {
	for i := range t.Seats {
		if i != t.LocalSeat {
			t.Seats[i].CardCount = max(n, 0)
		}
	}
}

// SetHand replaces the local hand with cards in sorted order.
func (t *Table) SetHand(cards []card.Card) {
	sorted := slices.Clone(cards)
	card.Sort(sorted)
	t.Hand = make([]HandCard, len(sorted))
	for i, c := range sorted {
		t.Hand[i] = HandCard{Card: c}
	}
}

// AddCards inserts cards into the hand at their sorted positions,
// marked fresh and selected.
func (t *Table) AddCards(cards []card.Card) {
	for _, c := range cards {
		hc := HandCard{Card: c, Fresh: true, Selected: true}
		i, _ := slices.BinarySearchFunc(t.Hand, c, func(h HandCard, c card.Card) int {
			return card.Compare(h.Card, c)
		})
		t.Hand = slices.Insert(t.Hand, i, hc)
	}
}

// RemoveCard removes c from the hand. It reports whether c was held.
func (t *Table) RemoveCard(c card.Card) bool {
	i := t.IndexOf(c)
	if i < 0 {
		return false
	}
	t.Hand = slices.Delete(t.Hand, i, i+1)
	return true
}

// RemoveFromSeat takes a played card out of seat's holding: the exact card
// for the local seat, one card back otherwise.
func (t *Table) RemoveFromSeat(seat int, c card.Card) {
	if seat == t.LocalSeat {
		t.RemoveCard(c)
		return
	}
	if t.Seats[seat].CardCount > 0 {
		t.Seats[seat].CardCount--
	}
}

// IndexOf returns the hand index of c, or -1.
func (t *Table) IndexOf(c card.Card) int {
	return slices.IndexFunc(t.Hand, func(h HandCard) bool { return h.Card == c })
}

// HandCards returns the bare cards of the hand.
func (t *Table) HandCards() []card.Card {
	cards := make([]card.Card, len(t.Hand))
	for i, h := range t.Hand {
		cards[i] = h.Card
	}
	return cards
}

// SelectedCards returns the selected cards in hand order.
func (t *Table) SelectedCards() []card.Card {
	selected := funk.Filter(t.Hand, func(h HandCard) bool { return h.Selected }).([]HandCard)
	cards := make([]card.Card, len(selected))
	for i, h := range selected {
		cards[i] = h.Card
	}
	return cards
}

// SelectedCount counts selected cards.
func (t *Table) SelectedCount() int {
	n := 0
	for _, h := range t.Hand {
		if h.Selected {
			n++
		}
	}
	return n
}

// ClearSelection deselects every card.
func (t *Table) ClearSelection() {
	for i := range t.Hand {
		t.Hand[i].Selected = false
	}
}

// HideCards marks the given cards as submitted and deselects them.
func (t *Table) HideCards(cards []card.Card) {
	for _, c := range cards {
		if i := t.IndexOf(c); i >= 0 {
			t.Hand[i].Hidden = true
			t.Hand[i].Selected = false
		}
	}
}

// SetCurrent moves the current-turn marker to seat; -1 clears it.
func (t *Table) SetCurrent(seat int) {
	for i := range t.Seats {
		t.Seats[i].Current = i == seat
	}
}

// CurrentSeat returns the seat holding the turn marker, or -1.
func (t *Table) CurrentSeat() int {
	for i, s := range t.Seats {
		if s.Current {
			return i
		}
	}
	return -1
}

// TrickLeader returns the seat that led the trick in progress, or -1.
func (t *Table) TrickLeader() int {
	if len(t.Trick) == 0 {
		return -1
	}
	return t.Trick[0].Seat
}

// AppendToTrick records a play. A seat already in the trick is ignored,
// as is a fifth card.
func (t *Table) AppendToTrick(p card.Play) bool {
	if len(t.Trick) >= Seats {
		return false
	}
	if funk.ContainsInt(t.TrickSeats(), p.Seat) {
		return false
	}
	t.Trick = append(t.Trick, p)
	return true
}

// TrickSeats returns the seats that played into the trick, in order.
func (t *Table) TrickSeats() []int {
	seats := make([]int, len(t.Trick))
	for i, p := range t.Trick {
		seats[i] = p.Seat
	}
	return seats
}

// CompleteTrick moves the trick in progress into LastTrick with winner and
// returns whether it held a point card. The winning index is re-derived
// from the led suit.
func (t *Table) CompleteTrick(winner int) bool {
	plays := t.Trick
	t.Trick = nil
	t.LastTrick = &LastTrick{
		Plays:        plays,
		Winner:       winner,
		WinningIndex: card.WinningIndex(card.Cards(plays)),
	}
	return card.ContainsPoint(card.Cards(plays))
}

// ResetHandCounters clears per-hand counters and markers at a new deal.
func (t *Table) ResetHandCounters() {
	t.Tricks = [2]int{}
	t.TookPoint = [2]bool{}
	t.Trick = nil
	t.LastTrick = nil
	t.HeartsBroken = false
	t.SetCurrent(-1)
}

// ShowAction makes the action control visible with label, disabled.
func (t *Table) ShowAction(label string) {
	t.Action = Action{Label: label, Visible: true}
}

// HideAction hides and disables the action control.
func (t *Table) HideAction() {
	t.Action = Action{}
}

// RemoveLobbyName removes one occurrence of name from the lobby list.
func (t *Table) RemoveLobbyName(name string) {
	if i := slices.Index(t.Lobby, name); i >= 0 {
		t.Lobby = slices.Delete(t.Lobby, i, i+1)
	}
}
