package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/bakelog/pkg/app"
	"tableflip.dev/bakelog/pkg/store"
	"tableflip.dev/bakelog/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive dashboard.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			return tui.Run(&app.Service{Persistence: p})
		},
	}

	topLevel.AddCommand(cmd)
}
