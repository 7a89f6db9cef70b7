package pad

import (
	"context"
	"errors"

	"tableflip.dev/bakelog/pkg/app"
	"tableflip.dev/bakelog/pkg/printers"
	"tableflip.dev/bakelog/pkg/store"
)

// Add puts a new idea on the pad.
type Add struct {
	Persistence store.Persistence
	ShowID      bool
	Name        string
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add idea, no persistence")
	}
	svc := &app.Service{Persistence: n.Persistence}

	i, err := svc.AddIdea(ctx, n.Name)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Ideas")
	pp.Ideas(i)
	return nil
}
