package move

import (
	"context"
	"errors"

	"tableflip.dev/bakelog/pkg/app"
	"tableflip.dev/bakelog/pkg/printers"
	"tableflip.dev/bakelog/pkg/store"
)

// Move transfers an upcoming bake into the journal.
type Move struct {
	Persistence store.Persistence
	ShowID      bool
	ID          string
}

func (n *Move) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not move, no persistence")
	}
	svc := &app.Service{Persistence: n.Persistence}

	b, err := svc.MoveToJournal(ctx, n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Moved to journal")
	pp.Bakes(b)
	return nil
}
