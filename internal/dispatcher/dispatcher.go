// Package dispatcher runs one decision cycle: utterance in, decision list
// from the model, capability invocations out. At most one terminal capability
// answers per cycle; automation hands off without terminating the cycle.
package dispatcher

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ariahq/aria/internal/capability"
	"github.com/ariahq/aria/internal/channel"
	"github.com/ariahq/aria/internal/decision"
	"github.com/ariahq/aria/internal/status"
)

// Signal is the outcome of one cycle.
type Signal int

const (
	// SignalNone means no terminal capability answered.
	SignalNone Signal = iota
	// SignalHandled means exactly one terminal capability answered.
	SignalHandled
	// SignalExit means the user said goodbye; the caller should shut down.
	SignalExit
)

// Dispatcher routes one utterance through the decision model to the
// capabilities and publishes the outcome on the board and render surface.
type Dispatcher struct {
	model     decision.Model
	caps      capability.Set
	board     *status.Board
	renderer  channel.Renderer
	speaker   channel.Speaker
	username  string
	assistant string
	logger    *zap.Logger
}

// New creates a dispatcher.
func New(model decision.Model, caps capability.Set, board *status.Board,
	renderer channel.Renderer, speaker channel.Speaker,
	username, assistant string, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		model:     model,
		caps:      caps,
		board:     board,
		renderer:  renderer,
		speaker:   speaker,
		username:  username,
		assistant: assistant,
		logger:    logger,
	}
}

// RunCycle routes one utterance end to end. It never panics the loop: any
// capability or model failure is trapped, rendered as an assistant error
// line, and the board returns to idle.
func (d *Dispatcher) RunCycle(ctx context.Context, utterance string) Signal {
	cycle := uuid.NewString()[:8]
	log := d.logger.With(zap.String("cycle", cycle))
	log.Info("cycle start", zap.String("utterance", utterance))

	sig, err := d.execute(ctx, utterance, log)
	if err != nil {
		log.Error("cycle failed", zap.Error(err))
		d.board.SetState(status.StateError)
		d.render(ctx, fmt.Sprintf("%s: I encountered an error: %v", d.assistant, err))
		d.board.SetState(status.StateIdle)
		sig = SignalNone
	}

	// Continuous conversation: the mic stays armed until the user toggles it.
	if sig != SignalExit {
		d.board.ArmMic(true)
	}

	log.Info("cycle done", zap.Int("signal", int(sig)))
	return sig
}

func (d *Dispatcher) execute(ctx context.Context, utterance string, log *zap.Logger) (Signal, error) {
	d.board.SetState(status.StateListening)
	d.render(ctx, fmt.Sprintf("%s: %s", d.username, utterance))

	d.board.SetState(status.StateThinking)
	entries, err := d.model.Decide(ctx, utterance)
	if err != nil {
		return SignalNone, fmt.Errorf("decision failed: %w", err)
	}
	dec := decision.Parse(entries)
	log.Debug("decision parsed", zap.Strings("entries", entries))

	// Automation hands off and falls through: a general or realtime entry in
	// the same list still produces a spoken answer afterwards.
	if len(dec.AutomationBatch) > 0 {
		if err := d.caps.Automation.Run(ctx, dec.AutomationBatch); err != nil {
			return SignalNone, err
		}
	}

	if dec.HasImage {
		d.board.SetState(status.StateGenerating)
		d.render(ctx, fmt.Sprintf("%s: Generating image...", d.assistant))
		if err := d.caps.Image.Generate(ctx, dec.ImageQuery); err != nil {
			return SignalNone, err
		}
		d.board.SetState(status.StateIdle)
		return SignalHandled, nil
	}

	if dec.HasVideo {
		d.board.SetState(status.StateGenerating)
		d.render(ctx, fmt.Sprintf("%s: Generating video for '%s'...", d.assistant, dec.VideoQuery))
		if err := d.caps.Video.Generate(ctx, dec.VideoQuery); err != nil {
			return SignalNone, err
		}
		d.board.SetState(status.StateIdle)
		return SignalHandled, nil
	}

	// Any realtime entry routes the merged query to search, folding general
	// entries in rather than answering them separately.
	if dec.Realtime {
		return d.answerSearch(ctx, capability.QueryModifier(dec.MergedQuery))
	}

	for _, entry := range dec.Entries {
		switch {
		case strings.HasPrefix(entry, "general"):
			return d.answerChat(ctx, capability.QueryModifier(stripLabel(entry, "general")))
		case strings.HasPrefix(entry, "realtime"):
			return d.answerSearch(ctx, capability.QueryModifier(stripLabel(entry, "realtime")))
		case strings.Contains(entry, "exit"):
			if _, err := d.answerChat(ctx, capability.QueryModifier("Okay, Bye!")); err != nil {
				return SignalNone, err
			}
			return SignalExit, nil
		}
	}

	d.board.SetState(status.StateIdle)
	return SignalNone, nil
}

func (d *Dispatcher) answerChat(ctx context.Context, query string) (Signal, error) {
	d.board.SetState(status.StateThinking)
	answer, err := d.caps.Chat.Chat(ctx, query)
	if err != nil {
		return SignalNone, err
	}
	return d.deliver(ctx, answer)
}

func (d *Dispatcher) answerSearch(ctx context.Context, query string) (Signal, error) {
	d.board.SetState(status.StateSearching)
	answer, err := d.caps.Search.Search(ctx, query)
	if err != nil {
		return SignalNone, err
	}
	return d.deliver(ctx, answer)
}

// deliver renders and speaks one finalized answer, then returns the board to
// idle.
func (d *Dispatcher) deliver(ctx context.Context, answer string) (Signal, error) {
	d.render(ctx, fmt.Sprintf("%s: %s", d.assistant, answer))

	d.board.SetState(status.StateAnswering)
	if err := d.speaker.Speak(ctx, answer); err != nil {
		return SignalNone, fmt.Errorf("speech failed: %w", err)
	}

	d.board.SetState(status.StateIdle)
	return SignalHandled, nil
}

// render publishes a finalized line to the board and the render surface.
// Render surface failures are logged, not fatal; the board copy is the source
// of truth for pollers.
func (d *Dispatcher) render(ctx context.Context, text string) {
	d.board.SetText(text)
	if err := d.renderer.Render(ctx, text); err != nil {
		d.logger.Warn("render failed", zap.Error(err))
	}
}

// stripLabel removes the first occurrence of the label from the entry.
func stripLabel(entry, label string) string {
	return strings.TrimSpace(strings.Replace(entry, label, "", 1))
}
