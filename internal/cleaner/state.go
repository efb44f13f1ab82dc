// Package cleaner drives one domain's normalization pipeline: it
// reconciles source schemas, removes duplicates, extracts structured
// values, scores and categorizes rows, and hands the final table to a
// sink. The pipeline is a strictly linear state machine; there are no
// retries and no backward transitions.
package cleaner

import (
	"errors"
	"fmt"
)

// State is a pipeline stage marker. States advance strictly in
// declaration order; a run either reaches StatePersisted or aborts.
type State int

// Pipeline states in execution order.
const (
	StateLoaded State = iota
	StateReconciled
	StateDeduped
	StateExtracted
	StateFiltered
	StateScored
	StateCategorized
	StateReported
	StatePersisted
)

var stateNames = [...]string{
	"LOADED", "RECONCILED", "DEDUPED", "EXTRACTED", "FILTERED",
	"SCORED", "CATEGORIZED", "REPORTED", "PERSISTED",
}

// String returns the state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}

	return stateNames[s]
}

// ErrBackwardTransition is returned when a transition would skip or
// revisit a state.
var ErrBackwardTransition = errors.New("pipeline states advance strictly forward")

// machine tracks linear progression through the pipeline states.
type machine struct {
	state   State
	started bool
}

// to advances the machine to next, which must be the immediate
// successor of the current state (or StateLoaded on the first call).
func (m *machine) to(next State) error {
	if !m.started {
		if next != StateLoaded {
			return fmt.Errorf("%w: first state must be %s, got %s", ErrBackwardTransition, StateLoaded, next)
		}

		m.started = true
		m.state = next

		return nil
	}

	if next != m.state+1 {
		return fmt.Errorf("%w: %s -> %s", ErrBackwardTransition, m.state, next)
	}

	m.state = next

	return nil
}
