package recipe

import (
	"context"
	"errors"

	"tableflip.dev/bakelog/pkg/app"
	"tableflip.dev/bakelog/pkg/fetch"
	"tableflip.dev/bakelog/pkg/printers"
	"tableflip.dev/bakelog/pkg/record"
	"tableflip.dev/bakelog/pkg/store"
)

// Add stores a cookbook entry by hand.
type Add struct {
	Persistence store.Persistence
	ShowID      bool

	Title       string
	Source      string
	Ingredients []string
	Steps       []string
	Notes       string
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add recipe, no persistence")
	}
	svc := &app.Service{Persistence: n.Persistence}

	r := record.NewRecipe(n.Title)
	r.Source = n.Source
	r.Ingredients = n.Ingredients
	r.Steps = n.Steps
	r.Notes = n.Notes

	r, err := svc.AddRecipe(ctx, r)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Cookbook")
	pp.Recipes(r)
	return nil
}

// Import fetches a recipe page and stores its title and text as a cookbook
// entry pointing back at the source URL.
type Import struct {
	Persistence store.Persistence
	ShowID      bool
	URL         string
}

func (n *Import) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not import recipe, no persistence")
	}
	svc := &app.Service{Persistence: n.Persistence}

	clip, err := fetch.Page(ctx, n.URL)
	if err != nil {
		return err
	}
	title := clip.Title
	if title == "" {
		title = n.URL
	}

	r := record.NewRecipe(title)
	r.Source = n.URL
	r.Notes = clip.Text

	r, err = svc.AddRecipe(ctx, r)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Cookbook")
	pp.Recipes(r)
	return nil
}
