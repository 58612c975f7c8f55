package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariahq/aria/internal/capability"
	"github.com/ariahq/aria/internal/channel"
	"github.com/ariahq/aria/internal/decision"
	"github.com/ariahq/aria/internal/status"
)

type fakeChat struct {
	answer string
	err    error
	calls  []string
}

func (f *fakeChat) Chat(ctx context.Context, q string) (string, error) {
	f.calls = append(f.calls, q)
	return f.answer, f.err
}

type fakeSearch struct {
	answer string
	err    error
	calls  []string
}

func (f *fakeSearch) Search(ctx context.Context, q string) (string, error) {
	f.calls = append(f.calls, q)
	return f.answer, f.err
}

type fakeAutomation struct {
	err     error
	batches [][]string
}

func (f *fakeAutomation) Run(ctx context.Context, batch []string) error {
	f.batches = append(f.batches, batch)
	return f.err
}

type fakeImage struct {
	err   error
	calls []string
}

func (f *fakeImage) Generate(ctx context.Context, q string) error {
	f.calls = append(f.calls, q)
	return f.err
}

type fakeVideo struct {
	err   error
	calls []string
}

func (f *fakeVideo) Generate(ctx context.Context, q string) error {
	f.calls = append(f.calls, q)
	return f.err
}

type fakeRenderer struct {
	lines []string
}

func (f *fakeRenderer) Render(ctx context.Context, text string) error {
	f.lines = append(f.lines, text)
	return nil
}

type fixture struct {
	chat       *fakeChat
	search     *fakeSearch
	automation *fakeAutomation
	image      *fakeImage
	video      *fakeVideo
	renderer   *fakeRenderer
	board      *status.Board
	dispatcher *Dispatcher
}

func newFixture(entries []string) *fixture {
	f := &fixture{
		chat:       &fakeChat{answer: "chat answer"},
		search:     &fakeSearch{answer: "search answer"},
		automation: &fakeAutomation{},
		image:      &fakeImage{},
		video:      &fakeVideo{},
		renderer:   &fakeRenderer{},
		board:      status.NewBoard(),
	}
	f.dispatcher = New(
		decision.StaticModel(entries),
		capability.Set{
			Chat:       f.chat,
			Search:     f.search,
			Automation: f.automation,
			Image:      f.image,
			Video:      f.video,
		},
		f.board, f.renderer, channel.NullSpeaker{},
		"User", "Aria", nil,
	)
	return f
}

func TestRunCycleGeneral(t *testing.T) {
	f := newFixture([]string{"general tell me a joke"})

	sig := f.dispatcher.RunCycle(context.Background(), "tell me a joke")
	assert.Equal(t, SignalHandled, sig)

	require.Len(t, f.chat.calls, 1)
	assert.Equal(t, "Tell me a joke.", f.chat.calls[0])
	assert.Empty(t, f.search.calls)

	require.Len(t, f.renderer.lines, 2)
	assert.Equal(t, "User: tell me a joke", f.renderer.lines[0])
	assert.Equal(t, "Aria: chat answer", f.renderer.lines[1])

	assert.Equal(t, status.StateIdle, f.board.State())
	assert.True(t, f.board.MicArmed(), "mic re-armed on completion")
}

func TestRunCycleRealtimeMergesGeneral(t *testing.T) {
	f := newFixture([]string{"general how are you", "realtime news today"})

	sig := f.dispatcher.RunCycle(context.Background(), "how are you and any news")
	assert.Equal(t, SignalHandled, sig)

	// The general entry folds into the merged search query; chat never runs.
	require.Len(t, f.search.calls, 1)
	assert.Equal(t, "How are you and news today?", f.search.calls[0])
	assert.Empty(t, f.chat.calls)
}

func TestRunCycleImageIsTerminal(t *testing.T) {
	f := newFixture([]string{"generate image of a cat", "general hello"})

	sig := f.dispatcher.RunCycle(context.Background(), "generate image of a cat")
	assert.Equal(t, SignalHandled, sig)

	require.Len(t, f.image.calls, 1)
	assert.Equal(t, "generate image of a cat", f.image.calls[0])
	assert.Empty(t, f.chat.calls, "image terminates the cycle before chat")
	assert.Contains(t, f.renderer.lines, "Aria: Generating image...")
	assert.Equal(t, status.StateIdle, f.board.State())
}

func TestRunCycleAutomationFallsThrough(t *testing.T) {
	f := newFixture([]string{"open chrome", "general hello"})

	sig := f.dispatcher.RunCycle(context.Background(), "open chrome and say hello")
	assert.Equal(t, SignalHandled, sig)

	// Automation receives the full decision list, then the general entry
	// still answers.
	require.Len(t, f.automation.batches, 1)
	assert.Equal(t, []string{"open chrome", "general hello"}, f.automation.batches[0])
	require.Len(t, f.chat.calls, 1)
	assert.Equal(t, "Hello.", f.chat.calls[0])
}

func TestRunCycleAutomationOnly(t *testing.T) {
	f := newFixture([]string{"open chrome"})

	sig := f.dispatcher.RunCycle(context.Background(), "open chrome")
	assert.Equal(t, SignalNone, sig)

	require.Len(t, f.automation.batches, 1)
	assert.Empty(t, f.chat.calls)
	assert.Empty(t, f.search.calls)
	assert.Equal(t, status.StateIdle, f.board.State())
}

func TestRunCycleExit(t *testing.T) {
	f := newFixture([]string{"exit"})

	sig := f.dispatcher.RunCycle(context.Background(), "goodbye")
	assert.Equal(t, SignalExit, sig)

	// The farewell goes through chat so it lands in the transcript.
	require.Len(t, f.chat.calls, 1)
	assert.Equal(t, "Okay, bye.", f.chat.calls[0])
	assert.False(t, f.board.MicArmed(), "mic stays down after exit")
}

func TestRunCycleErrorTrap(t *testing.T) {
	f := newFixture([]string{"general hello"})
	f.chat.err = errors.New("provider exploded")

	sig := f.dispatcher.RunCycle(context.Background(), "hello")
	assert.Equal(t, SignalNone, sig)

	require.NotEmpty(t, f.renderer.lines)
	last := f.renderer.lines[len(f.renderer.lines)-1]
	assert.Contains(t, last, "Aria: I encountered an error:")
	assert.Contains(t, last, "provider exploded")
	assert.Equal(t, status.StateIdle, f.board.State(), "board self-heals after a trap")
}

// TestRunCycleMutualExclusivity fuzzes decision lists and checks that at most
// one answer-producing capability runs per cycle.
func TestRunCycleMutualExclusivity(t *testing.T) {
	pool := []string{
		"general foo", "realtime bar", "generate image a cat",
		"generate video a dog", "open chrome", "close spotify",
		"content essay", "exit",
	}
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		n := 1 + rng.Intn(4)
		entries := make([]string, n)
		for j := range entries {
			entries[j] = pool[rng.Intn(len(pool))]
		}

		f := newFixture(entries)
		f.dispatcher.RunCycle(context.Background(), "fuzzed utterance")

		answers := len(f.chat.calls) + len(f.search.calls) +
			len(f.image.calls) + len(f.video.calls)
		if answers > 1 {
			t.Fatalf("entries %v produced %d answers: %s", entries, answers,
				fmt.Sprintf("chat=%v search=%v image=%v video=%v",
					f.chat.calls, f.search.calls, f.image.calls, f.video.calls))
		}
	}
}
