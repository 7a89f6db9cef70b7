package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/bakelog/pkg/commands/options"
	"tableflip.dev/bakelog/pkg/runner/cal"
	"tableflip.dev/bakelog/pkg/store"
)

func addCalendar(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show the month grid of completed and planned bakes.",
		Example: `
bakelog calendar
bakelog calendar --month 2024-03
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			anchor, err := mo.Anchor()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := cal.Cal{
				Persistence: p,
				Anchor:      anchor,
			}
			return s.Do(context.Background())
		},
	}

	options.AddMonthArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}
