package plan

import (
	"context"
	"errors"

	"tableflip.dev/bakelog/pkg/app"
	"tableflip.dev/bakelog/pkg/printers"
	"tableflip.dev/bakelog/pkg/record"
	"tableflip.dev/bakelog/pkg/store"
)

// Plan adds an upcoming bake.
type Plan struct {
	Persistence store.Persistence
	ShowID      bool

	Title    string
	On       record.DayKey
	Link     string
	Notes    string
	RecipeID string
}

func (n *Plan) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not plan, no persistence")
	}
	svc := &app.Service{Persistence: n.Persistence}

	u := record.NewUpcoming(n.Title, n.On)
	u.Link = n.Link
	u.Notes = n.Notes
	u.RecipeID = n.RecipeID

	u, err := svc.Plan(ctx, u)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Upcoming")
	pp.UpcomingBakes(u)
	return nil
}
