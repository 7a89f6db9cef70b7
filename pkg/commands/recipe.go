package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/bakelog/pkg/commands/options"
	"tableflip.dev/bakelog/pkg/record"
	"tableflip.dev/bakelog/pkg/runner/get"
	"tableflip.dev/bakelog/pkg/runner/recipe"
	"tableflip.dev/bakelog/pkg/store"
)

func addRecipe(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Manage the cookbook.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addRecipeAdd(cmd)
	addRecipeList(cmd)
	addRecipeImport(cmd)

	topLevel.AddCommand(cmd)
}

func addRecipeAdd(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var source, notes string
	var ingredients, steps []string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a recipe by hand.",
		Example: `
bakelog recipe add "overnight sourdough" --source "Tartine" --ingredients flour,water,salt
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a recipe title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := recipe.Add{
				Persistence: p,
				ShowID:      io.ShowID,
				Title:       strings.Join(args, " "),
				Source:      source,
				Ingredients: ingredients,
				Steps:       steps,
				Notes:       notes,
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Where the recipe came from.")
	cmd.Flags().StringSliceVar(&ingredients, "ingredients", nil, "Ingredient list.")
	cmd.Flags().StringSliceVar(&steps, "steps", nil, "Step list.")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text notes.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addRecipeList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the cookbook.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				Persistence: p,
				ShowID:      io.ShowID,
				Kind:        record.KindCookbook,
			}
			return s.Do(context.Background())
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addRecipeImport(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "import <url>",
		Short: "Fetch a recipe page and save its title and text.",
		Example: `
bakelog recipe import https://example.com/overnight-sourdough
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a url")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := recipe.Import{
				Persistence: p,
				ShowID:      io.ShowID,
				URL:         args[0],
			}
			return s.Do(context.Background())
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
