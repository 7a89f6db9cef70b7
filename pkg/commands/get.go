package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/bakelog/pkg/commands/options"
	"tableflip.dev/bakelog/pkg/record"
	"tableflip.dev/bakelog/pkg/runner/get"
	"tableflip.dev/bakelog/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var onFlag string

	cmd := &cobra.Command{
		Use:       "get [collection]",
		Short:     "List records from one collection, or all of them.",
		ValidArgs: []string{"journal", "upcoming", "ideas", "cookbook"},
		Example: `
bakelog get
bakelog get journal --on 2024-03-05
bakelog get upcoming
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind record.Kind
			if len(args) == 1 {
				var ok bool
				kind, ok = record.KindForAlias(args[0])
				if !ok {
					return fmt.Errorf("unknown collection %q", args[0])
				}
			}

			var on *record.DayKey
			if onFlag != "" {
				day, err := options.ParseDay(onFlag)
				if err != nil {
					return err
				}
				on = &day
				if kind == "" {
					kind = record.KindJournal
				}
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				Persistence: p,
				ShowID:      io.ShowID,
				Kind:        kind,
				On:          on,
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&onFlag, "on", "", "Filter the journal to one day (YYYY-MM-DD, today).")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
