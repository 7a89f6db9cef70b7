package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/bakelog/pkg/runner/remove"
	"tableflip.dev/bakelog/pkg/store"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "delete <collection> <id>",
		Short:     "Delete a record by id.",
		ValidArgs: []string{"journal", "upcoming", "ideas", "cookbook"},
		Example: `
bakelog delete journal 171dff69f8b99dca
bakelog delete ideas 4f3a2b1c0d9e8f7a
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a collection and a record id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kindArg(args)
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := remove.Remove{
				Persistence: p,
				Kind:        kind,
				ID:          args[1],
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
