package game

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// TableOption configures a Table during creation.
type TableOption func(*Table)

// WithLogger sets the logger the table reports through. The default
// logger discards everything.
func WithLogger(logger *log.Logger) TableOption {
	return func(t *Table) {
		t.logger = logger
	}
}

// WithActionHandler registers a table-level handler that receives every
// accepted action, in addition to any handler passed on the action call
// itself. Auto-folds from turn timeouts are only reported here.
func WithActionHandler(handler ActionHandler) TableOption {
	return func(t *Table) {
		t.handler = handler
	}
}

// WithTurnTimeout arms a per-turn timer on the given clock. When a seat
// holds the turn longer than timeout, it is folded automatically. Pass
// quartz.NewReal() in production and quartz.NewMock(t) in tests.
func WithTurnTimeout(clock quartz.Clock, timeout time.Duration) TableOption {
	return func(t *Table) {
		t.clock = clock
		t.turnTimeout = timeout
	}
}
