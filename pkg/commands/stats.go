package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/bakelog/pkg/commands/options"
	runnerstats "tableflip.dev/bakelog/pkg/runner/stats"
	"tableflip.dev/bakelog/pkg/store"
	"tableflip.dev/bakelog/pkg/timeutil"
)

func addStats(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:       "stats [window]",
		Short:     "Show bake counts and oven hours for a time window.",
		ValidArgs: []string{"week", "last-week", "month", "all"},
		Example: `
bakelog stats
bakelog stats last-week
bakelog stats month --month 2024-02
bakelog stats all
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			window := ""
			if len(args) == 1 {
				window = args[0]
			}
			kind, err := timeutil.ParseKind(window)
			if err != nil {
				return err
			}
			anchor, err := mo.Anchor()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := runnerstats.Stats{
				Persistence: p,
				Kind:        kind,
				Anchor:      anchor,
			}
			return s.Do(context.Background())
		},
	}

	options.AddMonthArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}
