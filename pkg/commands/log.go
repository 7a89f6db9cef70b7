package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/bakelog/pkg/commands/options"
	"tableflip.dev/bakelog/pkg/runner/log"
	"tableflip.dev/bakelog/pkg/store"
)

func addLog(topLevel *cobra.Command) {
	bo := &options.BakeOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "log <title>",
		Short: "Record a completed bake in the journal.",
		Example: `
bakelog log "sourdough boule" --on 2024-03-05 --hours 4 --taste 5
bakelog log bagels --minutes 45 --tags bread,breakfast
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a bake title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := options.ParseDay(bo.On)
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := log.Log{
				Persistence: p,
				ShowID:      io.ShowID,
				Title:       strings.Join(args, " "),
				On:          on,
				Taste:       bo.Taste,
				Difficulty:  bo.Difficulty,
				Hours:       bo.Hours,
				Minutes:     bo.Minutes,
				Notes:       bo.Notes,
				Tags:        bo.Tags,
				Source:      bo.Source,
			}
			return s.Do(context.Background())
		},
	}

	options.AddBakeArgs(cmd, bo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
