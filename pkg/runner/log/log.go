package log

import (
	"context"
	"errors"

	"tableflip.dev/bakelog/pkg/app"
	"tableflip.dev/bakelog/pkg/printers"
	"tableflip.dev/bakelog/pkg/record"
	"tableflip.dev/bakelog/pkg/store"
)

// Log records a completed bake in the journal.
type Log struct {
	Persistence store.Persistence
	ShowID      bool

	Title      string
	On         record.DayKey
	Taste      int
	Difficulty int
	Hours      int
	Minutes    int
	Notes      string
	Tags       []string
	Source     string
}

func (n *Log) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not log, no persistence")
	}
	svc := &app.Service{Persistence: n.Persistence}

	b := record.NewBake(n.Title, n.On)
	b.Taste = n.Taste
	b.Difficulty = n.Difficulty
	b.Hours = n.Hours
	b.Minutes = n.Minutes
	b.Notes = n.Notes
	b.Tags = n.Tags
	b.Source = n.Source

	b, err := svc.LogBake(ctx, b)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Journal")
	pp.Bakes(b)
	return nil
}
