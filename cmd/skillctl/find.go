package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/skillctl/skillctl/pkg/config"
	"github.com/skillctl/skillctl/pkg/presenter"
	"github.com/skillctl/skillctl/pkg/skills"
)

var findCmd = &cobra.Command{
	Use:   "find [pattern]",
	Short: "Find skills matching a pattern",
	Long: `Search the skill catalog. With no pattern, every skill is listed grouped
by category. The pattern is a case-insensitive regular expression matched
against each skill's name, description, trigger condition and category;
a pattern that is not valid regex syntax is treated as plain text.

An empty result set is a success. The command fails only when the skills
root itself does not exist.

Examples:
  skillctl find
  skillctl find legacy
  skillctl find 'refactor(ing)?'`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			presenter.Error(err, "Failed to load configuration")
			os.Exit(1)
		}

		pattern := ""
		if len(args) == 1 {
			pattern = args[0]
		}

		strict, _ := cmd.Flags().GetBool("strict")
		findSkills(cmd.Context(), cfg, pattern, strict)
	},
}

func init() {
	findCmd.Flags().Bool("strict", false, "Exit non-zero when any skill document fails to parse")
	rootCmd.AddCommand(findCmd)
}

func findSkills(_ context.Context, cfg *config.Config, pattern string, strict bool) {
	reg, err := skills.BuildRegistry(cfg.SkillsDir)
	if err != nil {
		presenter.Error(err, "Failed to build skill registry")
		os.Exit(1)
	}

	for _, parseErr := range reg.Errors {
		presenter.Warning(fmt.Sprintf("skipping %s: %s", parseErr.Path, parseErr.Reason))
	}

	groups := reg.Query(pattern)
	if len(groups) == 0 {
		presenter.Info("No skills found")
	} else {
		fmt.Print(skills.RenderGroups(groups))
	}

	if strict && len(reg.Errors) > 0 {
		var merr *multierror.Error
		for _, parseErr := range reg.Errors {
			merr = multierror.Append(merr, parseErr)
		}
		presenter.Error(merr.ErrorOrNil(), "Some skill documents failed to parse")
		os.Exit(1)
	}
}
