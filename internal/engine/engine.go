// Package engine reconciles the local table view with the server's event
// stream. It is the only code that mutates the table view model and the
// overlay stack; callers must use it from a single goroutine.
package engine

import (
	"fmt"
	"slices"
	"strings"

	"github.com/palemoky/boompa-hearts/internal/apperrors"
	"github.com/palemoky/boompa-hearts/internal/card"
	"github.com/palemoky/boompa-hearts/internal/overlay"
	"github.com/palemoky/boompa-hearts/internal/table"
)

// DefaultMoonPoints is the point pool of one hand.
const DefaultMoonPoints = 26

// Sound cues
const (
	CueDeal    = "deal"
	CueTurn    = "turn"
	CuePlay    = "play"
	CueTrick   = "trick"
	CueMoon    = "moon"
	CueWin     = "win"
	CueLose    = "lose"
	CueInvalid = "invalid"
)

// Sounder plays a named cue.
type Sounder interface {
	Play(name string)
}

type silent struct{}

func (silent) Play(string) {}

// Option configures an Engine.
type Option func(*Engine)

// WithMoonPoints sets the score jump that marks shooting the moon.
func WithMoonPoints(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.moonPoints = n
		}
	}
}

// WithSounder plays cues on s.
func WithSounder(s Sounder) Option {
	return func(e *Engine) {
		if s != nil {
			e.sounds = s
		}
	}
}

// WithGame sets the game name shown in the waiting overlay.
func WithGame(name string) Option {
	return func(e *Engine) { e.game = name }
}

// Engine owns the table view model, the overlay stack and the local phase.
type Engine struct {
	table      *table.Table
	overlays   *overlay.Stack
	phase      Phase
	moonPoints int
	sounds     Sounder
	game       string
}

// New returns an engine for an empty waiting table.
func New(opts ...Option) *Engine {
	e := &Engine{
		table:      table.New(),
		overlays:   overlay.NewStack(),
		phase:      PhaseWaiting,
		moonPoints: DefaultMoonPoints,
		sounds:     silent{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Table() *table.Table      { return e.table }
func (e *Engine) Overlays() *overlay.Stack { return e.overlays }
func (e *Engine) Phase() Phase             { return e.phase }
func (e *Engine) Game() string             { return e.game }
func (e *Engine) Cue(name string)          { e.sounds.Play(name) }

func (e *Engine) localSeat() *table.Seat {
	return &e.table.Seats[e.table.LocalSeat]
}

func (e *Engine) isLocal(seat int) bool {
	return seat == e.table.LocalSeat
}

func (e *Engine) canEnter(to Phase) bool {
	return CanTransition(e.phase, to)
}

func (e *Engine) unexpected(ev Event) error {
	return unexpected(ev.Name(), e.phase)
}

func unexpected(what string, p Phase) error {
	return fmt.Errorf("%w: %s in phase %s", apperrors.ErrUnexpected, what, p)
}

func (e *Engine) setPhase(to Phase) error {
	if !e.canEnter(to) {
		return fmt.Errorf("%w: phase %s to %s", apperrors.ErrUnexpected, e.phase, to)
	}
	e.phase = to
	return nil
}

func checkSeat(seat int) error {
	if seat < 0 || seat >= table.Seats {
		return fmt.Errorf("%w: seat %d", apperrors.ErrInvalidMessage, seat)
	}
	return nil
}

// Apply applies one event. Events that do not fit the current phase are
// rejected with apperrors.ErrUnexpected and leave the state untouched.
func (e *Engine) Apply(ev Event) error {
	if e.phase == PhaseEnded && gameFlow(ev) {
		return e.unexpected(ev)
	}

	switch ev := ev.(type) {
	case Joined:
		e.table.Lobby = append(e.table.Lobby, ev.Player)
	case Renamed:
		return e.renamed(ev)
	case Rejoined:
		if err := checkSeat(ev.Seat); err != nil {
			return err
		}
		e.table.Seats[ev.Seat].Disconnected = false
	case Disconnected:
		return e.disconnected(ev)
	case Paused:
		e.overlays.Show(overlay.Paused, overlay.Text(MsgWelcomeHeader+"\n\n"+MsgPaused))
	case StartGame:
		return e.startGame(ev)
	case StartHand:
		return e.startHand(ev)
	case Traded:
		if err := checkSeat(ev.Seat); err != nil {
			return err
		}
		e.table.Seats[ev.Seat].Traded = true
		e.table.Seats[ev.Seat].Disconnected = false
	case FinishTrade:
		return e.finishTrade(ev)
	case StartTurn:
		return e.startTurn(ev)
	case CardPlayed:
		return e.cardPlayed(ev)
	case EndTrick:
		return e.endTrick(ev)
	case EndHand:
		e.endHand(ev)
	case EndGame:
		e.endGame(ev.Scores)
	case Connected:
		e.overlays.DismissEvery(overlay.Error)
	case ConnectionLost:
		e.overlays.Show(overlay.Error, overlay.Text(fmt.Sprintf(MsgDisconnected, ev.Reason)))
	default:
		return fmt.Errorf("%w: unknown event %T", apperrors.ErrUnexpected, ev)
	}
	return nil
}

func (e *Engine) renamed(ev Renamed) error {
	t := e.table
	if t.Lobby != nil {
		if ev.Seat >= 0 && ev.Seat < len(t.Lobby) {
			t.Lobby[ev.Seat] = ev.Player
		} else {
			t.Lobby = append(t.Lobby, ev.Player)
		}
		return nil
	}
	if err := checkSeat(ev.Seat); err != nil {
		return err
	}
	t.Seats[ev.Seat].Name = ev.Player
	return nil
}

func (e *Engine) disconnected(ev Disconnected) error {
	if ev.Seat < 0 {
		e.table.RemoveLobbyName(ev.Player)
		return nil
	}
	if err := checkSeat(ev.Seat); err != nil {
		return err
	}
	e.table.Seats[ev.Seat].Disconnected = true
	return nil
}

func (e *Engine) startGame(ev StartGame) error {
	if err := checkSeat(ev.Seat); err != nil {
		return err
	}
	e.overlays.DismissEvery(overlay.Paused)
	e.overlays.DismissEvery(overlay.Waiting)
	e.table.LocalSeat = ev.Seat
	e.table.Lobby = nil
	e.table.SetNames(ev.Names)
	return nil
}

func (e *Engine) startHand(ev StartHand) error {
	if !e.canEnter(PhaseWaiting) {
		return e.unexpected(ev)
	}
	t := e.table
	e.phase = PhaseWaiting

	t.SetHand(ev.Cards)
	t.SetCardBacks(table.HandSize)
	t.HandNum = ev.HandNum
	t.ResetHandCounters()
	for i := range t.Seats {
		t.Seats[i].Traded = false
	}
	t.HideAction()
	e.sounds.Play(CueDeal)

	if TradeDirectionFor(ev.HandNum) == Hold {
		t.Stage = table.StagePlaying
		return nil
	}
	t.Stage = table.StageTrading
	t.ShowAction(TradeLabel(ev.HandNum))
	return e.setPhase(PhaseTrading)
}

func (e *Engine) finishTrade(ev FinishTrade) error {
	if !e.canEnter(PhaseWaiting) {
		return e.unexpected(ev)
	}
	t := e.table
	t.HideAction()
	t.Stage = table.StagePlaying
	for i := range t.Seats {
		t.Seats[i].Traded = false
	}
	for i := range t.Hand {
		t.Hand[i].Selected = false
		t.Hand[i].Hidden = false
		t.Hand[i].Fresh = false
	}
	for _, c := range ev.Given {
		t.RemoveCard(c)
	}
	t.AddCards(ev.Received)
	e.phase = PhaseWaiting
	return nil
}

func (e *Engine) startTurn(ev StartTurn) error {
	if err := checkSeat(ev.Seat); err != nil {
		return err
	}
	if e.isLocal(ev.Seat) && !e.canEnter(PhasePlaying) {
		return e.unexpected(ev)
	}
	e.table.SetCurrent(ev.Seat)
	if !e.isLocal(ev.Seat) {
		return nil
	}
	e.table.ShowAction(PlayLabel)
	e.phase = PhasePlaying
	e.sounds.Play(CueTurn)
	return nil
}

func (e *Engine) cardPlayed(ev CardPlayed) error {
	if err := checkSeat(ev.Seat); err != nil {
		return err
	}
	t := e.table
	if len(t.Trick) >= table.Seats || slices.Contains(t.TrickSeats(), ev.Seat) {
		return e.unexpected(ev)
	}
	t.RemoveFromSeat(ev.Seat, ev.Card)
	t.Seats[ev.Seat].Disconnected = false
	t.AppendToTrick(card.Play{Seat: ev.Seat, Card: ev.Card})
	if ev.Card.IsPoint() {
		t.HeartsBroken = true
	}
	e.sounds.Play(CuePlay)
	return nil
}

func (e *Engine) endTrick(ev EndTrick) error {
	if err := checkSeat(ev.Winner); err != nil {
		return err
	}
	t := e.table
	if len(t.Trick) == 0 {
		return e.unexpected(ev)
	}
	points := t.CompleteTrick(ev.Winner)
	p := table.Partnership(ev.Winner)
	t.Tricks[p]++
	if points {
		t.TookPoint[p] = true
	}
	e.sounds.Play(CueTrick)
	return nil
}

func (e *Engine) endHand(ev EndHand) {
	t := e.table
	old := t.Scores
	t.Scores = ev.Scores
	t.HeartsBroken = false

	us, them := t.LocalPartnership(), 1-t.LocalPartnership()
	ourGain, theirGain := t.Scores[us]-old[us], t.Scores[them]-old[them]
	switch {
	case ourGain == 0 && theirGain >= e.moonPoints:
		e.Alert(MsgWeShotMoon)
		e.sounds.Play(CueMoon)
	case theirGain == 0 && ourGain >= e.moonPoints:
		e.Alert(MsgTheyShotMoon)
	}
}

func (e *Engine) endGame(scores [2]int) {
	t := e.table
	t.Scores = scores
	t.Stage = table.StageEnded
	t.HideAction()
	t.SetCurrent(-1)
	e.phase = PhaseEnded
	e.showOutcome()
}

// Won reports whether the local partnership has the strictly lower score.
func (e *Engine) Won() bool {
	us := e.table.LocalPartnership()
	return e.table.Scores[us] < e.table.Scores[1-us]
}

func (e *Engine) showOutcome() {
	us := e.table.LocalPartnership()
	msg, cue := MsgLost, CueLose
	if e.Won() {
		msg, cue = MsgWon, CueWin
	}
	msg += "\n\n" + fmt.Sprintf(MsgFinalScore, e.table.Scores[us], e.table.Scores[1-us])
	e.overlays.DismissEvery(overlay.Ended)
	e.overlays.Show(overlay.Ended, overlay.Text(msg))
	e.sounds.Play(cue)
}

// --- Join and action outcomes ---

// EnterLobby applies an accepted first join: the lobby list and the waiting overlay.
func (e *Engine) EnterLobby(names []string) {
	e.table.Stage = table.StageWaiting
	e.table.Lobby = slices.Clone(names)
	if e.table.Lobby == nil {
		e.table.Lobby = []string{}
	}
	if !e.overlays.Contains(overlay.Waiting) {
		e.overlays.Show(overlay.Waiting, lobbyContent{engine: e})
	}
}

// RefuseJoin shows the terminal game-full overlay.
func (e *Engine) RefuseJoin() {
	e.ShowFatal(MsgFullGame)
}

// ShowFatal replaces every overlay with a terminal message.
func (e *Engine) ShowFatal(text string) {
	e.overlays.DismissAll()
	e.overlays.Show(overlay.Fatal, overlay.Text(text))
}

// Fatal reports whether a terminal overlay is up.
func (e *Engine) Fatal() bool {
	return e.overlays.Contains(overlay.Fatal)
}

// Alert shows a dismissible alert.
func (e *Engine) Alert(text string) {
	e.overlays.Show(overlay.Alert, overlay.Text(text))
}

// ShowHelp shows the rules unless they are already visible.
func (e *Engine) ShowHelp() bool {
	if e.overlays.IsVisible(overlay.Help) {
		return false
	}
	e.overlays.Show(overlay.Help, overlay.Text(MsgHelp))
	return true
}

// RejectSubmission reports a refused trade or play. Phase and selection stay
// as they were so the player can try again.
func (e *Engine) RejectSubmission() {
	e.Alert(MsgInvalidMove)
	e.sounds.Play(CueInvalid)
}

// CompleteSubmission applies an accepted trade or play: the action control
// goes away, the local markers are cleared and the phase returns to waiting.
// Traded cards stay in hand, hidden, until the trade finishes.
func (e *Engine) CompleteSubmission() error {
	t := e.table
	switch e.phase {
	case PhaseTrading:
		t.HideCards(t.SelectedCards())
		e.localSeat().Traded = true
	case PhasePlaying:
		for i := range t.Hand {
			t.Hand[i].Selected = false
			t.Hand[i].Fresh = false
		}
	default:
		return unexpected("action ack", e.phase)
	}
	t.HideAction()
	e.localSeat().Current = false
	return e.setPhase(PhaseWaiting)
}

// lobbyContent renders the waiting overlay from the live lobby list.
type lobbyContent struct {
	engine *Engine
}

func (c lobbyContent) Render(int) string {
	var b strings.Builder
	b.WriteString(MsgWelcomeHeader)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, MsgWaiting, c.engine.game)
	for _, name := range c.engine.table.Lobby {
		b.WriteString("\n  • ")
		b.WriteString(name)
	}
	return b.String()
}
