package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "bakelog",
		Short: base.Wrap80("Track your bakes: journal, plans, ideas, and recipes on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addLog(topLevel)
	addPlan(topLevel)
	addGet(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addMove(topLevel)
	addCalendar(topLevel)
	addStats(topLevel)
	addIdea(topLevel)
	addRecipe(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}
