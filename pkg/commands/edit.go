package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/bakelog/pkg/commands/options"
	"tableflip.dev/bakelog/pkg/record"
	"tableflip.dev/bakelog/pkg/runner/edit"
	"tableflip.dev/bakelog/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	bo := &options.BakeOptions{}
	io := &options.IDOptions{}
	var title string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a journal entry. Only the flags you set are changed.",
		Example: `
bakelog edit 171dff69f8b99dca --taste 4 --notes "underproofed"
bakelog edit 171dff69f8b99dca --title "seeded rye"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a record id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := edit.Edit{
				Persistence: p,
				ShowID:      io.ShowID,
				ID:          args[0],
			}

			// Changed-flag detection keeps unset flags from zeroing fields.
			if cmd.Flags().Changed("title") {
				s.Title = &title
			}
			if cmd.Flags().Changed("on") {
				day, err := options.ParseDay(bo.On)
				if err != nil {
					return err
				}
				s.On = &day
			}
			if cmd.Flags().Changed("taste") {
				s.Taste = &bo.Taste
			}
			if cmd.Flags().Changed("difficulty") {
				s.Difficulty = &bo.Difficulty
			}
			if cmd.Flags().Changed("hours") {
				s.Hours = &bo.Hours
			}
			if cmd.Flags().Changed("minutes") {
				s.Minutes = &bo.Minutes
			}
			if cmd.Flags().Changed("notes") {
				s.Notes = &bo.Notes
			}
			if cmd.Flags().Changed("tags") {
				s.Tags = &bo.Tags
			}
			if cmd.Flags().Changed("source") {
				s.Source = &bo.Source
			}

			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title.")
	options.AddBakeArgs(cmd, bo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func kindArg(args []string) (record.Kind, error) {
	kind, ok := record.KindForAlias(args[0])
	if !ok {
		return "", errors.New("unknown collection " + args[0])
	}
	return kind, nil
}
