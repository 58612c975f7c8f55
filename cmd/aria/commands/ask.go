package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ariahq/aria/internal/decision"
)

var askLabels []string

var askCmd = &cobra.Command{
	Use:   "ask <utterance>",
	Short: "Run a single decision cycle and exit",
	Long: `Run one decision cycle for the given utterance and exit.

With --label the decision model is bypassed and the given labeled entries are
dispatched directly:

  aria ask --label "general tell me a joke" "tell me a joke"
  aria ask --label "open chrome" --label "general hello" "open chrome and say hello"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var model decision.Model
		if len(askLabels) > 0 {
			model = decision.StaticModel(askLabels)
		}

		rt, _, err := buildRuntime(renderStyled, model, os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		rt.dispatcher.RunCycle(context.Background(), strings.Join(args, " "))
		return nil
	},
}

func init() {
	askCmd.Flags().StringArrayVar(&askLabels, "label", nil,
		"dispatch these labeled entries instead of asking the decision model")
}
