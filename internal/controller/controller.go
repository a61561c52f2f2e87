// Package controller turns local input into selections and submitted actions.
package controller

import (
	"github.com/palemoky/boompa-hearts/internal/apperrors"
	"github.com/palemoky/boompa-hearts/internal/card"
	"github.com/palemoky/boompa-hearts/internal/engine"
	"github.com/palemoky/boompa-hearts/internal/logger"
	"github.com/palemoky/boompa-hearts/internal/protocol"
)

// TradeSize is the number of cards passed in a trade.
const TradeSize = 3

// Sender submits actions to the server. ack may run on any goroutine.
type Sender interface {
	Trade(cards []string, ack func(protocol.AckPayload)) error
	PlayCard(card string, ack func(protocol.AckPayload)) error
}

// Dispatcher runs f on the goroutine that owns the engine.
type Dispatcher func(f func())

// Immediate runs f in place, for callers already on the owning goroutine.
func Immediate(f func()) { f() }

// Controller handles card clicks and the action control.
type Controller struct {
	engine   *engine.Engine
	sender   Sender
	dispatch Dispatcher
	pending  bool
}

// New returns a controller for e submitting through s.
func New(e *engine.Engine, s Sender, dispatch Dispatcher) *Controller {
	if dispatch == nil {
		dispatch = Immediate
	}
	return &Controller{engine: e, sender: s, dispatch: dispatch}
}

// Pending reports whether a submission awaits its ack.
func (c *Controller) Pending() bool { return c.pending }

// Reset forgets an outstanding submission. Acks pending on a dropped
// connection never arrive, and a snapshot supersedes them anyway.
func (c *Controller) Reset() {
	c.pending = false
	c.Refresh()
}

// Toggle flips the selection of the card at index. While playing only one
// card can be selected. It reports whether the click had any effect.
func (c *Controller) Toggle(index int) bool {
	phase := c.engine.Phase()
	if c.engine.Fatal() || !phase.AcceptsInput() {
		return false
	}
	t := c.engine.Table()
	if index < 0 || index >= len(t.Hand) {
		return false
	}
	h := &t.Hand[index]
	if h.Disabled || h.Hidden {
		return false
	}

	if phase == engine.PhasePlaying {
		was := h.Selected
		t.ClearSelection()
		h.Selected = !was
	} else {
		h.Selected = !h.Selected
	}
	c.Refresh()
	return true
}

// CanSubmit reports whether the selection fits the phase.
func (c *Controller) CanSubmit() bool {
	n := c.engine.Table().SelectedCount()
	switch c.engine.Phase() {
	case engine.PhaseTrading:
		return n == TradeSize
	case engine.PhasePlaying:
		return n == 1
	}
	return false
}

// Refresh recomputes whether the action control is enabled.
func (c *Controller) Refresh() {
	a := &c.engine.Table().Action
	a.Enabled = a.Visible && !c.pending && c.CanSubmit()
}

// Submit sends the selected cards as a trade or a play. The action control
// stays disabled until the ack arrives; cards remain clickable.
func (c *Controller) Submit() error {
	if c.pending {
		return apperrors.ErrActionPending
	}
	t := c.engine.Table()
	if !t.Action.Visible || !c.CanSubmit() {
		return apperrors.ErrNoSelection
	}
	ids := card.IDs(t.SelectedCards())

	c.pending = true
	c.Refresh()

	var err error
	switch c.engine.Phase() {
	case engine.PhaseTrading:
		err = c.sender.Trade(ids, c.onAck)
	case engine.PhasePlaying:
		err = c.sender.PlayCard(ids[0], c.onAck)
	}
	if err != nil {
		c.pending = false
		c.Refresh()
		return err
	}
	return nil
}

func (c *Controller) onAck(ack protocol.AckPayload) {
	c.dispatch(func() { c.HandleAck(ack) })
}

// HandleAck applies the server's answer to the outstanding submission.
func (c *Controller) HandleAck(ack protocol.AckPayload) {
	if !c.pending {
		logger.LogInfo("Dropping stale action ack %q", ack.Status)
		return
	}
	c.pending = false
	if ack.Rejected() {
		c.engine.RejectSubmission()
		c.Refresh()
		return
	}
	if err := c.engine.CompleteSubmission(); err != nil {
		logger.LogError("Action ack %q: %v", ack.Status, err)
	}
	c.Refresh()
}
