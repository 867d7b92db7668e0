package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/skillctl/skillctl/pkg/config"
	"github.com/skillctl/skillctl/pkg/hooks"
	"github.com/skillctl/skillctl/pkg/logger"
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Host runtime lifecycle hooks",
	Long:  `Commands invoked by the host runtime at lifecycle points, constrained to its JSON output contract.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var sessionStartCmd = &cobra.Command{
	Use:   "session-start",
	Short: "Emit the session-start context payload",
	Long: `Assemble the skill catalog and the introductory skill document into one
JSON object on stdout for the host runtime to inject into the agent's
context. Always exits 0: failures degrade the injected content, they never
block session start.`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		cfg, err := config.Load()
		if err != nil {
			// Degrade rather than fail; the builder substitutes fallback
			// text for every path it cannot resolve.
			logger.G(ctx).WithError(err).Debug("failed to load configuration")
			cfg = &config.Config{}
		}

		builder := hooks.NewSessionStartBuilder(cfg)
		output := builder.Build(ctx)

		if err := output.Emit(os.Stdout); err != nil {
			logger.G(ctx).WithError(err).Debug("failed to emit session-start payload")
		}

		builder.AppendDebugLog(ctx)
	},
}

func init() {
	hookCmd.AddCommand(sessionStartCmd)
	rootCmd.AddCommand(hookCmd)
}
