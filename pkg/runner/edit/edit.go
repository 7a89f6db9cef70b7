package edit

import (
	"context"
	"errors"

	"tableflip.dev/bakelog/pkg/app"
	"tableflip.dev/bakelog/pkg/printers"
	"tableflip.dev/bakelog/pkg/record"
	"tableflip.dev/bakelog/pkg/store"
)

// Edit updates a journal entry. Only the fields with non-nil pointers are
// touched, so unset flags leave the record alone.
type Edit struct {
	Persistence store.Persistence
	ShowID      bool
	ID          string

	Title      *string
	On         *record.DayKey
	Taste      *int
	Difficulty *int
	Hours      *int
	Minutes    *int
	Notes      *string
	Tags       *[]string
	Source     *string
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}
	svc := &app.Service{Persistence: n.Persistence}

	b, err := svc.EditBake(ctx, n.ID, func(b *record.Bake) {
		if n.Title != nil {
			b.Title = *n.Title
		}
		if n.On != nil {
			b.On = *n.On
		}
		if n.Taste != nil {
			b.Taste = *n.Taste
		}
		if n.Difficulty != nil {
			b.Difficulty = *n.Difficulty
		}
		if n.Hours != nil {
			b.Hours = *n.Hours
		}
		if n.Minutes != nil {
			b.Minutes = *n.Minutes
		}
		if n.Notes != nil {
			b.Notes = *n.Notes
		}
		if n.Tags != nil {
			b.Tags = *n.Tags
		}
		if n.Source != nil {
			b.Source = *n.Source
		}
	})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Journal")
	pp.Bakes(b)
	return nil
}
