package game

// armTurnTimer schedules an auto-fold for the seat now holding the turn.
// Called with the table lock held whenever the turn may have moved. Each
// arm bumps the epoch, so a timer whose turn already passed expires as a
// no-op.
func (t *Table) armTurnTimer() {
	if t.clock == nil || t.turnTimeout <= 0 {
		return
	}

	t.turnEpoch++
	if t.currentSeat == noSeat {
		return
	}

	epoch := t.turnEpoch
	seat := t.players[t.currentSeat].Name
	t.clock.AfterFunc(t.turnTimeout, func() {
		t.expireTurn(epoch, seat)
	})
}

func (t *Table) expireTurn(epoch uint64, seat string) {
	t.mu.Lock()
	if epoch != t.turnEpoch || t.currentSeat == noSeat || t.players[t.currentSeat].Name != seat {
		t.mu.Unlock()
		return
	}

	t.logger.Warn("turn timeout, folding seat", "seat", seat, "timeout", t.turnTimeout)
	ev, err := t.applyAction(seat, ActionFold, 0)
	t.mu.Unlock()

	if err != nil {
		t.logger.Error("timeout fold rejected", "seat", seat, "error", err)
		return
	}
	t.dispatch(ev, nil)
}
