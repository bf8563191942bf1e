package game

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdemtable/internal/deck"
)

// MaxSeats is the seat limit for a single table.
const MaxSeats = 10

// noSeat is the sentinel for "no active turn".
const noSeat = -1

// Table orchestrates a multi-seat hold'em hand: it owns the deck and the
// ordered seat list, runs the phase state machine, validates and applies
// betting actions and emits an event after each accepted one.
//
// All exported methods take the table's lock, so independent tables may
// run on separate goroutines. Within one table everything is synchronous
// request/response; handlers fire before the triggering call returns.
type Table struct {
	mu sync.Mutex

	buyIn      int
	smallBlind int
	bigBlind   int

	players []*Player
	deck    *deck.Deck

	started     bool
	settled     bool
	button      int
	phase       Phase
	currentSeat int
	currentBet  int
	actedCount  int

	community []deck.Card
	burned    []deck.Card

	history []ActionEvent
	handler ActionHandler
	logger  *log.Logger

	clock       quartz.Clock
	turnTimeout time.Duration
	turnEpoch   uint64
}

// NewTable creates a table. The RNG drives deck shuffling and must not
// be shared with another table.
func NewTable(rng *rand.Rand, buyIn, smallBlind, bigBlind int, opts ...TableOption) *Table {
	t := &Table{
		buyIn:       buyIn,
		smallBlind:  smallBlind,
		bigBlind:    bigBlind,
		deck:        deck.New(rng),
		phase:       PhaseStart,
		currentSeat: noSeat,
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SeatPlayer adds a seat with a stack of the table buy-in. Seats keep
// their insertion order for the life of the table.
func (t *Table) SeatPlayer(name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return newError(ErrGameStarted, "can't seat %s: game already started", name)
	}
	if len(t.players) == MaxSeats {
		return newError(ErrFullTable, "can't seat %s: %d players already present", name, MaxSeats)
	}
	if t.position(name) != -1 {
		return newError(ErrSameName, "can't seat %s: name already used", name)
	}

	t.players = append(t.players, newPlayer(name, t.buyIn))
	t.logger.Debug("player seated", "seat", name, "stack", t.buyIn)
	return nil
}

// StartGame begins a hand: shuffles, deals hole and community cards,
// posts the blinds and hands the turn to the seat after the big blind.
func (t *Table) StartGame() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.players) < 2 {
		return newError(ErrNotEnoughPlayers, "not enough players to start game (minimum 2)")
	}
	if t.started {
		return newError(ErrGameAlreadyStarted, "a game is already started")
	}

	t.currentSeat = t.button
	t.phase = PhaseStart
	t.started = true

	// Dealer round then pre-flop round, chained.
	if err := t.advancePhase(); err != nil {
		return err
	}
	if err := t.advancePhase(); err != nil {
		return err
	}

	t.logger.Info("hand started",
		"players", len(t.players),
		"button", t.players[t.button].Name,
		"turn", t.players[t.currentSeat].Name)
	t.armTurnTimer()
	return nil
}

// Bet submits a bet for the named seat. With nothing outstanding, a zero
// amount resolves to a check and a positive amount opens the betting.
// With a bet outstanding the amount is ignored and the seat is forced to
// call; only Raise may increase the bet.
func (t *Table) Bet(name string, handler ActionHandler, amount int) error {
	return t.act(name, ActionBet, handler, amount)
}

// Raise increases the outstanding bet. The amount must be at least the
// current bet plus one big blind.
func (t *Table) Raise(name string, handler ActionHandler, amount int) error {
	return t.act(name, ActionRaise, handler, amount)
}

// Fold removes the seat from the turn rotation for the rest of the hand.
func (t *Table) Fold(name string, handler ActionHandler) error {
	return t.act(name, ActionFold, handler, 0)
}

func (t *Table) act(name string, kind ActionType, handler ActionHandler, amount int) error {
	t.mu.Lock()
	ev, err := t.applyAction(name, kind, amount)
	t.mu.Unlock()
	if err != nil {
		return err
	}

	t.dispatch(ev, handler)
	return nil
}

// applyAction validates and applies one action under the table lock.
// Validation is fully evaluated before any mutation: a rejected action
// leaves turn, pot and phase state untouched.
func (t *Table) applyAction(name string, kind ActionType, amount int) (ActionEvent, error) {
	pos := t.position(name)

	if t.currentSeat == noSeat {
		return ActionEvent{}, newError(ErrGameNotStarted, "the game is not started")
	}
	if pos == -1 || !t.players[pos].InRound {
		return ActionEvent{}, newError(ErrOutOfRound, "you are out of this round, %s", name)
	}
	if pos != t.currentSeat {
		return ActionEvent{}, newError(ErrNotYourTurn, "it is not your turn, %s", name)
	}

	p := t.players[pos]
	resolved := kind
	move := 0

	switch kind {
	case ActionRaise:
		if amount < t.currentBet+t.bigBlind {
			return ActionEvent{}, newError(ErrTooLowBet, "the minimum raise is %d", t.currentBet+t.bigBlind)
		}
		t.currentBet = p.ContributionFor(t.phase) + amount
		move = amount

	case ActionBet:
		switch {
		case t.currentBet == 0 && amount <= 0:
			resolved = ActionCheck
		case t.currentBet == 0:
			move = amount
		default:
			// Outstanding bet: the requested amount is ignored and the
			// seat calls exactly the outstanding delta.
			move = t.currentBet - p.ContributionFor(t.phase)
		}

	case ActionFold:
		p.InRound = false
		p.folded = true
	}

	t.actedCount++
	if move != 0 {
		p.Commit(move, t.phase)
		if p.Stack < 0 {
			t.logger.Warn("stack overdrawn", "seat", p.Name, "stack", p.Stack)
		}
	}

	if err := t.nextStep(); err != nil {
		return ActionEvent{}, err
	}

	ev := ActionEvent{Seat: name, Action: resolved, Amount: move, Phase: t.phase}
	t.history = append(t.history, ev)
	t.logger.Debug("action accepted",
		"seat", name, "action", resolved, "amount", move, "phase", t.phase)
	t.armTurnTimer()
	return ev, nil
}

func (t *Table) dispatch(ev ActionEvent, handler ActionHandler) {
	if handler != nil {
		handler(ev)
	}
	if t.handler != nil {
		t.handler(ev)
	}
}

// nextStep decides between advancing the phase and advancing the turn.
// The phase closes only when every in-round seat's contribution for the
// phase is equal AND at least that many actions were taken in it, so a
// seat that calls after a re-raise acts again before the phase can end.
func (t *Table) nextStep() error {
	if t.allBetsEqual() && t.actedCount >= t.inRoundCount() {
		return t.advancePhase()
	}
	t.nextSeat()
	return nil
}

func (t *Table) advancePhase() error {
	switch t.phase {
	case PhaseStart:
		t.startDealer()
	case PhaseDealer:
		t.startPreFlop()
	case PhasePreFlop:
		t.startStreet(PhaseFlop)
	case PhaseFlop:
		t.startStreet(PhaseTurn)
	case PhaseTurn:
		t.startStreet(PhaseRiver)
	case PhaseRiver:
		t.startEndRound()
	default:
		return newError(ErrInexistentPhase, "there is no phase after %s", t.phase)
	}
	return nil
}

func (t *Table) changePhase(phase Phase) {
	t.currentBet = 0
	t.actedCount = 0
	t.phase = phase
	t.logger.Debug("phase change", "phase", phase)
}

func (t *Table) startDealer() {
	t.changePhase(PhaseDealer)
	t.deck.Shuffle()
	t.distributeCards()
}

// distributeCards deals the entire hand eagerly: hole cards first (one
// card to every seat, then the second), then the full community with its
// burns. Later phases only reveal a longer prefix of the community.
func (t *Table) distributeCards() {
	t.burn()

	for _, p := range t.players {
		p.HoleCards = append(p.HoleCards, t.deck.DrawTop())
	}
	for _, p := range t.players {
		p.HoleCards = append(p.HoleCards, t.deck.DrawTop())
	}
	for _, p := range t.players {
		p.InRound = true
	}

	// Flop
	t.community = append(t.community, t.deck.DrawTop(), t.deck.DrawTop(), t.deck.DrawTop())
	// Turn
	t.burn()
	t.community = append(t.community, t.deck.DrawTop())
	// River
	t.burn()
	t.community = append(t.community, t.deck.DrawTop())
}

func (t *Table) burn() {
	t.burned = append(t.burned, t.deck.DrawTop())
}

// startPreFlop posts the blinds. The postings are unconditional: there
// is no stack-sufficiency check (side pots are not modelled).
func (t *Table) startPreFlop() {
	t.changePhase(PhasePreFlop)

	t.nextSeat()
	t.commitBlind(t.smallBlind)

	t.nextSeat()
	t.commitBlind(t.bigBlind)

	t.currentBet = t.bigBlind
	t.nextSeat()
}

func (t *Table) commitBlind(amount int) {
	p := t.players[t.currentSeat]
	p.Commit(amount, t.phase)
	if p.Stack < 0 {
		t.logger.Warn("stack overdrawn posting blind", "seat", p.Name, "stack", p.Stack)
	}
	t.logger.Debug("blind posted", "seat", p.Name, "amount", amount)
}

func (t *Table) startStreet(phase Phase) {
	t.changePhase(phase)
	t.goToFirstSeat()
}

func (t *Table) startEndRound() {
	t.changePhase(PhaseEndRound)
	t.currentSeat = noSeat

	// Seats regain their in-round flag here in preparation for the next
	// hand; who folded during this hand is kept separately for showdown.
	for _, p := range t.players {
		p.InRound = true
	}
}

// nextSeat advances the turn to the next in-round seat. At least one
// in-round seat must exist.
func (t *Table) nextSeat() {
	t.currentSeat = (t.currentSeat + 1) % len(t.players)
	for !t.players[t.currentSeat].InRound {
		t.currentSeat = (t.currentSeat + 1) % len(t.players)
	}
}

// goToFirstSeat hands the turn to the first in-round seat after the
// button.
func (t *Table) goToFirstSeat() {
	t.currentSeat = t.button
	t.nextSeat()
}

func (t *Table) position(name string) int {
	for i, p := range t.players {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func (t *Table) allBetsEqual() bool {
	var want int
	first := true
	for _, p := range t.players {
		if !p.InRound {
			continue
		}
		if first {
			want = p.ContributionFor(t.phase)
			first = false
			continue
		}
		if p.ContributionFor(t.phase) != want {
			return false
		}
	}
	return true
}

func (t *Table) inRoundCount() int {
	count := 0
	for _, p := range t.players {
		if p.InRound {
			count++
		}
	}
	return count
}

// NextHand resets the table for the following hand: hole, community and
// burn cards are cleared, contribution buckets zeroed, in-round flags
// restored, the button advanced one seat and the deck rebuilt. The hand
// must have been settled first, so the pot has already been paid out
// when the buckets are zeroed. The table returns to its pre-start state
// so StartGame can run the next hand.
func (t *Table) NextHand() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started {
		return newError(ErrGameNotStarted, "the game is not started")
	}
	if t.phase != PhaseEndRound {
		return newError(ErrGameAlreadyStarted, "a hand is still in progress (%s)", t.phase)
	}
	if !t.settled {
		// Resetting before settlement would wipe the contribution
		// buckets and destroy the pot.
		return fmt.Errorf("hand not settled")
	}

	for _, p := range t.players {
		p.resetForNewHand()
	}
	t.community = nil
	t.burned = nil
	t.currentBet = 0
	t.actedCount = 0
	t.currentSeat = noSeat
	t.button = (t.button + 1) % len(t.players)
	t.deck.Reset()
	t.history = nil
	t.started = false
	t.settled = false
	t.phase = PhaseStart

	t.logger.Debug("table reset for next hand", "button", t.players[t.button].Name)
	return nil
}

// CurrentSeat returns the name of the seat holding the turn.
func (t *Table) CurrentSeat() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.currentSeat == noSeat {
		return "", newError(ErrGameNotStarted, "the game is not started")
	}
	return t.players[t.currentSeat].Name, nil
}

// ButtonSeat returns the name of the seat holding the dealer button.
func (t *Table) ButtonSeat() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.players[t.button].Name
}

// CurrentPhase returns the table's phase.
func (t *Table) CurrentPhase() Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.phase
}

// CurrentBet returns the amount to call in the active phase.
func (t *Table) CurrentBet() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.currentBet
}

// BuyIn returns the per-seat buy-in.
func (t *Table) BuyIn() int { return t.buyIn }

// SmallBlind returns the small blind amount.
func (t *Table) SmallBlind() int { return t.smallBlind }

// BigBlind returns the big blind amount, which is also the minimum raise
// increment.
func (t *Table) BigBlind() int { return t.bigBlind }

// Community returns the visible community cards: none before the flop,
// three at the flop, four at the turn and five from the river on.
func (t *Table) Community() []deck.Card {
	t.mu.Lock()
	defer t.mu.Unlock()

	size := 0
	switch t.phase {
	case PhaseFlop:
		size = 3
	case PhaseTurn:
		size = 4
	case PhaseRiver, PhaseEndRound:
		size = 5
	}

	out := make([]deck.Card, size)
	copy(out, t.community[:size])
	return out
}

// TableSum returns total funds in play: every stack plus every
// contribution bucket. It equals seats × buy-in at every observable
// point.
func (t *Table) TableSum() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	sum := 0
	for _, p := range t.players {
		sum += p.Stack + p.TotalContribution()
	}
	return sum
}

// Players returns the ordered seat list. Callers must not mutate the
// players while other goroutines use the table.
func (t *Table) Players() []*Player {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]*Player, len(t.players))
	copy(out, t.players)
	return out
}

// NumPlayers returns the number of seated players.
func (t *Table) NumPlayers() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.players)
}

// History returns the accepted actions of the current hand in order.
func (t *Table) History() []ActionEvent {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]ActionEvent, len(t.history))
	copy(out, t.history)
	return out
}
