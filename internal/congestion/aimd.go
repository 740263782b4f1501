package congestion

import (
	"github.com/srarq/srarq/internal/protocol"
	"github.com/srarq/srarq/logging"
)

// AIMD is the window controller of a sender.
// It grows exponentially until the first loss (slow start). After that, the
// window grows by one segment for every round without loss and is halved
// for every round with loss.
type AIMD struct {
	window    protocol.WindowSize
	maxWindow protocol.WindowSize

	// triggered is set by the first loss and never reset
	triggered     bool
	lossThisRound bool
}

// NewAIMD creates a new controller.
func NewAIMD(initialWindow, maxWindow protocol.WindowSize) *AIMD {
	if maxWindow <= 0 || maxWindow > protocol.MaxWindowSize {
		maxWindow = protocol.MaxWindowSize
	}
	if initialWindow < protocol.MinWindowSize {
		initialWindow = protocol.MinWindowSize
	}
	if initialWindow > maxWindow {
		initialWindow = maxWindow
	}
	return &AIMD{
		window:    initialWindow,
		maxWindow: maxWindow,
	}
}

// WindowSize is the current congestion window.
func (a *AIMD) WindowSize() protocol.WindowSize { return a.window }

// InSlowStart says if no loss was ever observed.
func (a *AIMD) InSlowStart() bool { return !a.triggered }

// LossThisRound says if a loss was observed since the last call to OnRoundComplete.
func (a *AIMD) LossThisRound() bool { return a.lossThisRound }

// OnLoss is called when a segment is declared lost.
func (a *AIMD) OnLoss() {
	a.triggered = true
	a.lossThisRound = true
}

// OnRoundComplete adjusts the window at the end of a round.
// It must be called exactly once per round.
func (a *AIMD) OnRoundComplete() logging.CongestionState {
	defer func() { a.lossThisRound = false }()

	if a.window > a.maxWindow {
		a.window = a.maxWindow
		return logging.CongestionStateClamped
	}
	var state logging.CongestionState
	switch {
	case !a.triggered:
		state = logging.CongestionStateSlowStart
		a.window *= 2
	case !a.lossThisRound:
		state = logging.CongestionStateAdditiveIncrease
		a.window++
	default:
		state = logging.CongestionStateMultiplicativeDecrease
		a.window = (a.window + 1) / 2
	}
	a.window = max(protocol.MinWindowSize, min(a.window, a.maxWindow))
	return state
}

// LimitTo lowers the window to the number of segments left to transfer.
// It never raises the window, and never lowers it below the minimum.
func (a *AIMD) LimitTo(remaining protocol.WindowSize) {
	if remaining < protocol.MinWindowSize {
		return
	}
	if a.window > remaining {
		a.window = remaining
	}
}
