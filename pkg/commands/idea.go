package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/bakelog/pkg/commands/options"
	"tableflip.dev/bakelog/pkg/record"
	"tableflip.dev/bakelog/pkg/runner/get"
	"tableflip.dev/bakelog/pkg/runner/pad"
	"tableflip.dev/bakelog/pkg/runner/suggest"
	"tableflip.dev/bakelog/pkg/store"
)

func addIdea(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "idea",
		Short: "Keep and draw from the idea pad.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addIdeaAdd(cmd)
	addIdeaList(cmd)
	addIdeaSuggest(cmd)

	topLevel.AddCommand(cmd)
}

func addIdeaAdd(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an idea to the pad.",
		Example: `
bakelog idea add "kouign-amann"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an idea name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := pad.Add{
				Persistence: p,
				ShowID:      io.ShowID,
				Name:        strings.Join(args, " "),
			}
			return s.Do(context.Background())
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addIdeaList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the idea pad.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				Persistence: p,
				ShowID:      io.ShowID,
				Kind:        record.KindIdeas,
			}
			return s.Do(context.Background())
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addIdeaSuggest(topLevel *cobra.Command) {
	var previous string
	var accept bool
	var logIt bool
	var on string

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Draw a random idea, avoiding the one shown last.",
		Example: `
bakelog idea suggest
bakelog idea suggest --previous "kouign-amann"
bakelog idea suggest --accept --log
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			day := record.DayKey{}
			if on != "" {
				var err error
				day, err = options.ParseDay(on)
				if err != nil {
					return err
				}
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := suggest.Suggest{
				Persistence: p,
				Previous:    previous,
				Accept:      accept,
				LogIt:       logIt,
				On:          day,
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&previous, "previous", "", "The suggestion shown last, to avoid repeating it.")
	cmd.Flags().BoolVar(&accept, "accept", false, "Accept the suggestion and cross it off the pad.")
	cmd.Flags().BoolVar(&logIt, "log", false, "Also log the accepted suggestion as a completed bake.")
	cmd.Flags().StringVar(&on, "on", "", "Day for the logged bake (defaults to today).")

	topLevel.AddCommand(cmd)
}
