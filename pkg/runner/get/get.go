package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/bakelog/pkg/app"
	"tableflip.dev/bakelog/pkg/printers"
	"tableflip.dev/bakelog/pkg/record"
	"tableflip.dev/bakelog/pkg/store"
)

// Get lists one collection, or all of them.
type Get struct {
	Persistence store.Persistence
	ShowID      bool
	Kind        record.Kind // empty means every collection
	On          *record.DayKey
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	svc := &app.Service{Persistence: n.Persistence}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	kinds := record.Kinds()
	if n.Kind != "" {
		kinds = []record.Kind{n.Kind}
	}

	for _, kind := range kinds {
		switch kind {
		case record.KindJournal:
			var bakes []*record.Bake
			var err error
			if n.On != nil {
				bakes, err = svc.JournalOn(ctx, *n.On)
			} else {
				bakes, err = svc.Bakes(ctx)
			}
			if err != nil {
				return err
			}
			title := "Journal"
			if n.On != nil {
				title = fmt.Sprintf("Journal - %s", n.On)
			}
			pp.TitleWithCount(title, len(bakes))
			pp.Bakes(bakes...)
		case record.KindUpcoming:
			upcoming, err := svc.Upcoming(ctx)
			if err != nil {
				return err
			}
			pp.TitleWithCount("Upcoming", len(upcoming))
			pp.UpcomingBakes(upcoming...)
		case record.KindIdeas:
			ideas, err := svc.Ideas(ctx)
			if err != nil {
				return err
			}
			pp.TitleWithCount("Ideas", len(ideas))
			pp.Ideas(ideas...)
		case record.KindCookbook:
			recipes, err := svc.Recipes(ctx)
			if err != nil {
				return err
			}
			pp.TitleWithCount("Cookbook", len(recipes))
			pp.Recipes(recipes...)
		}
	}

	return nil
}
