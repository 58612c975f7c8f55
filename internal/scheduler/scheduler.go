// Package scheduler drives the dispatcher: it polls the microphone-armed
// slot, captures utterances while armed, and runs cycles one at a time.
package scheduler

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ariahq/aria/internal/dispatcher"
	"github.com/ariahq/aria/internal/status"
)

// Listener captures one utterance. Implementations block until input is
// available; the terminal listener stands in for real speech capture.
type Listener interface {
	Listen(ctx context.Context) (string, error)
}

// Loop is the cycle scheduler. Cycles are strictly serialized: the loop never
// captures the next utterance while a cycle is running.
type Loop struct {
	board      *status.Board
	listener   Listener
	dispatcher *dispatcher.Dispatcher
	interval   time.Duration
	logger     *zap.Logger
}

// New creates a scheduler loop. interval is the mic poll cadence; values at
// or below zero fall back to 100ms.
func New(board *status.Board, listener Listener, d *dispatcher.Dispatcher,
	interval time.Duration, logger *zap.Logger) *Loop {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop{
		board:      board,
		listener:   listener,
		dispatcher: d,
		interval:   interval,
		logger:     logger,
	}
}

// Run polls until the context is cancelled, the listener hits EOF, or a cycle
// signals exit. While the mic is disarmed the loop self-heals the board back
// to idle so a crashed cycle cannot leave a stale busy state on screen.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.board.Wake():
		case <-ticker.C:
		}

		if !l.board.MicArmed() {
			if l.board.State() != status.StateIdle {
				l.board.SetState(status.StateIdle)
			}
			continue
		}

		utterance, err := l.listener.Listen(ctx)
		if errors.Is(err, io.EOF) {
			l.logger.Info("listener closed, stopping")
			return nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		if err != nil {
			l.logger.Warn("listen failed", zap.Error(err))
			continue
		}
		if strings.TrimSpace(utterance) == "" {
			continue
		}

		if sig := l.dispatcher.RunCycle(ctx, utterance); sig == dispatcher.SignalExit {
			l.logger.Info("exit requested, stopping")
			return nil
		}
	}
}
