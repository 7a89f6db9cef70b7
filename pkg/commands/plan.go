package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/bakelog/pkg/commands/options"
	"tableflip.dev/bakelog/pkg/runner/plan"
	"tableflip.dev/bakelog/pkg/store"
)

func addPlan(topLevel *cobra.Command) {
	po := &options.PlanOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "plan <title>",
		Short: "Add an upcoming bake.",
		Example: `
bakelog plan croissants --on 2024-03-09
bakelog plan "birthday cake" --on tomorrow --link https://example.com/cake
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a bake title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := options.ParseDay(po.On)
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := plan.Plan{
				Persistence: p,
				ShowID:      io.ShowID,
				Title:       strings.Join(args, " "),
				On:          on,
				Link:        po.Link,
				Notes:       po.Notes,
				RecipeID:    po.Recipe,
			}
			return s.Do(context.Background())
		},
	}

	options.AddPlanArgs(cmd, po)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
