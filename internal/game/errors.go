package game

import (
	"errors"
	"fmt"
)

// ErrorID is a stable machine-readable identifier for a table error.
// Callers branch on the identifier, never on message text.
type ErrorID string

const (
	// Setup errors
	ErrGameStarted        ErrorID = "GameStartedException"
	ErrFullTable          ErrorID = "FullTableException"
	ErrSameName           ErrorID = "SameNameException"
	ErrNotEnoughPlayers   ErrorID = "NotEnoughPlayers"
	ErrGameAlreadyStarted ErrorID = "GameAlreadyStarted"

	// Turn/action errors
	ErrGameNotStarted ErrorID = "GameNotStarted"
	ErrOutOfRound     ErrorID = "OutOfRound"
	ErrNotYourTurn    ErrorID = "NotYourTurn"
	ErrTooLowBet      ErrorID = "TooLowBet"

	// Phase errors
	ErrInexistentPhase ErrorID = "InexistentPhase"
)

// TableError is an error value carrying a stable identifier alongside a
// human-readable message. All table errors are synchronous and never
// auto-retried; a rejected operation leaves table state untouched.
type TableError struct {
	ID      ErrorID
	Message string
}

func (e *TableError) Error() string {
	return e.Message
}

func newError(id ErrorID, format string, args ...any) *TableError {
	return &TableError{ID: id, Message: fmt.Sprintf(format, args...)}
}

// IsErrorID reports whether err is (or wraps) a TableError with the
// given identifier.
func IsErrorID(err error, id ErrorID) bool {
	var te *TableError
	return errors.As(err, &te) && te.ID == id
}
