package main

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/skillctl/skillctl/pkg/config"
	"github.com/skillctl/skillctl/pkg/presenter"
	"github.com/skillctl/skillctl/pkg/skills"
)

var runCmd = &cobra.Command{
	Use:   "run <skill-id>",
	Short: "Run a skill's companion artifact",
	Long: `Resolve a skill identifier and execute its backing artifact. A skill that
ships an executable run.sh (or run) has it executed with inherited stdio and
its exit code relayed unchanged; a skill without one has its document body
printed instead.

Examples:
  skillctl run analysis/code-archaeology
  skillctl run testing/tdd`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			presenter.Error(err, "Failed to load configuration")
			os.Exit(1)
		}

		runSkill(cmd.Context(), cfg, args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runSkill(ctx context.Context, cfg *config.Config, id string) {
	reg, err := skills.BuildRegistry(cfg.SkillsDir)
	if err != nil {
		presenter.Error(err, "Failed to build skill registry")
		os.Exit(1)
	}

	if err := skills.RunSkill(ctx, reg, id, os.Stdout, os.Stderr); err != nil {
		var notFound *skills.NotFoundError
		var execErr *skills.ExecutionError

		switch {
		case errors.As(err, &notFound):
			presenter.Error(err, "Skill not found")
			os.Exit(1)
		case errors.As(err, &execErr):
			presenter.Error(err, "Skill execution failed")
			if execErr.ExitCode > 0 {
				os.Exit(execErr.ExitCode)
			}
			os.Exit(1)
		default:
			presenter.Error(err, "Failed to run skill")
			os.Exit(1)
		}
	}
}
