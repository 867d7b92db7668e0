package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillctl/skillctl/pkg/config"
	"github.com/skillctl/skillctl/pkg/presenter"
	"github.com/skillctl/skillctl/pkg/skills"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all installed skills",
	Long:  `List all installed skills with their identifiers, names, versions, and descriptions.`,
	Run: func(_ *cobra.Command, _ []string) {
		cfg, err := config.Load()
		if err != nil {
			presenter.Error(err, "Failed to load configuration")
			os.Exit(1)
		}

		listSkills(cfg)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listSkills(cfg *config.Config) {
	reg, err := skills.BuildRegistry(cfg.SkillsDir)
	if err != nil {
		presenter.Error(err, "Failed to build skill registry")
		os.Exit(1)
	}

	for _, parseErr := range reg.Errors {
		presenter.Warning(fmt.Sprintf("skipping %s: %s", parseErr.Path, parseErr.Reason))
	}

	if len(reg.Skills) == 0 {
		presenter.Info("No skills installed")
		return
	}

	ids := make([]string, 0, len(reg.Skills))
	for id := range reg.Skills {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tVERSION\tDESCRIPTION")
	fmt.Fprintln(tw, "--\t----\t-------\t-----------")

	for _, id := range ids {
		skill := reg.Skills[id]
		description := skill.Description
		if len(description) > 60 {
			description = description[:57] + "..."
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", skill.ID, skill.Name, skill.Version, description)
	}
	tw.Flush()
}
