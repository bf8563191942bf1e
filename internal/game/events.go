package game

// ActionType is the resolved type of an accepted action. A submitted
// "bet" can resolve to a check (nothing outstanding, no amount) or to a
// forced call (a bet is outstanding); the event always carries the
// resolved type.
type ActionType int

const (
	ActionBet ActionType = iota
	ActionRaise
	ActionFold
	ActionCheck
)

// String returns the string representation of an action type
func (a ActionType) String() string {
	switch a {
	case ActionBet:
		return "bet"
	case ActionRaise:
		return "raise"
	case ActionFold:
		return "fold"
	case ActionCheck:
		return "check"
	default:
		return "unknown"
	}
}

// ActionEvent describes an accepted action. Phase is the table's phase
// after the action was applied, so callers detect phase boundaries by
// comparing it with the previously observed phase.
type ActionEvent struct {
	Seat   string
	Action ActionType
	Amount int
	Phase  Phase
}

// ActionHandler receives an event synchronously after each accepted
// action, before the action call returns.
type ActionHandler func(ActionEvent)
