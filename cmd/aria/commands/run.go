package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ariahq/aria/internal/channel"
	"github.com/ariahq/aria/internal/scheduler"
	"github.com/ariahq/aria/internal/tui"
)

var plain bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the assistant loop",
	Long: `Start the assistant: the scheduler polls the mic toggle and runs one
decision cycle per utterance until you say goodbye.

By default a TUI shows the assistant status; type utterances into its input
line. With --plain, utterances are read directly from stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if plain {
			return runPlain(ctx)
		}
		return runTUI(ctx)
	},
}

func init() {
	runCmd.Flags().BoolVar(&plain, "plain", false, "read utterances from stdin without the TUI")
}

func runPlain(ctx context.Context) error {
	rt, terminal, err := buildRuntime(renderStyled, nil, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	rt.board.ArmMic(true)

	loop := scheduler.New(rt.board, terminal, rt.dispatcher,
		rt.cfg.Scheduler.Interval(), rt.logger)

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runTUI(ctx context.Context) error {
	rt, _, err := buildRuntime(renderNull, nil, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	queue := channel.NewQueue()
	loop := scheduler.New(rt.board, queue, rt.dispatcher,
		rt.cfg.Scheduler.Interval(), rt.logger)

	p := tea.NewProgram(
		tui.New(rt.board, rt.cfg.Identity.Assistant, queue.Submit),
		tea.WithAltScreen(),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		defer p.Quit()
		loop.Run(ctx)
	}()

	_, err = p.Run()
	cancel()
	queue.Close()
	return err
}
