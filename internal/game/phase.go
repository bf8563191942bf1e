package game

// Phase represents a stage of a hand. Phases advance through a single
// fixed total order; each phase is reachable only from its predecessor.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseDealer
	PhasePreFlop
	PhaseFlop
	PhaseTurn
	PhaseRiver
	PhaseEndRound
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseDealer:
		return "dealer"
	case PhasePreFlop:
		return "preFlop"
	case PhaseFlop:
		return "flop"
	case PhaseTurn:
		return "turn"
	case PhaseRiver:
		return "river"
	case PhaseEndRound:
		return "endround"
	default:
		return "unknown"
	}
}

// IsBettingPhase reports whether the phase has its own contribution
// bucket and accepts player actions.
func (p Phase) IsBettingPhase() bool {
	return p >= PhasePreFlop && p <= PhaseRiver
}
