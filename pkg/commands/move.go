package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/bakelog/pkg/commands/options"
	"tableflip.dev/bakelog/pkg/runner/move"
	"tableflip.dev/bakelog/pkg/store"
)

func addMove(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "move <upcoming-id>",
		Short: "Move a planned bake into the journal.",
		Example: `
bakelog move 4f3a2b1c0d9e8f7a
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an upcoming-bake id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := move.Move{
				Persistence: p,
				ShowID:      io.ShowID,
				ID:          args[0],
			}
			return s.Do(context.Background())
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
