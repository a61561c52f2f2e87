package engine

// Phase is the local input phase. It only says what the local player may do;
// the whole-table state lives in table.Stage.
type Phase int

const (
	PhaseWaiting Phase = iota // nothing to submit
	PhaseTrading              // choosing three cards to pass
	PhasePlaying              // choosing a card to play
	PhaseEnded                // game over
)

var phaseNames = map[Phase]string{
	PhaseWaiting: "waiting",
	PhaseTrading: "trading",
	PhasePlaying: "playing",
	PhaseEnded:   "ended",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// transitions lists the phases reachable from each phase. Snapshots bypass it.
var transitions = map[Phase][]Phase{
	PhaseWaiting: {PhaseWaiting, PhaseTrading, PhasePlaying, PhaseEnded},
	PhaseTrading: {PhaseWaiting, PhaseTrading, PhaseEnded},
	PhasePlaying: {PhaseWaiting, PhasePlaying, PhaseEnded},
	PhaseEnded:   {PhaseEnded},
}

// CanTransition reports whether from → to is allowed.
func CanTransition(from, to Phase) bool {
	for _, p := range transitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// AcceptsInput reports whether card clicks mean anything in p.
func (p Phase) AcceptsInput() bool {
	return p == PhaseTrading || p == PhasePlaying
}
