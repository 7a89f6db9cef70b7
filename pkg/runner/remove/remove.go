package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/bakelog/pkg/app"
	"tableflip.dev/bakelog/pkg/record"
	"tableflip.dev/bakelog/pkg/store"
)

// Remove deletes a record by id from the named collection.
type Remove struct {
	Persistence store.Persistence
	Kind        record.Kind
	ID          string
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not delete, no persistence")
	}
	svc := &app.Service{Persistence: n.Persistence}

	var err error
	switch n.Kind {
	case record.KindJournal:
		err = svc.DeleteBake(ctx, n.ID)
	case record.KindUpcoming:
		err = svc.DeleteUpcoming(ctx, n.ID)
	case record.KindIdeas:
		err = svc.DeleteIdea(ctx, n.ID)
	case record.KindCookbook:
		err = svc.DeleteRecipe(ctx, n.ID)
	default:
		err = fmt.Errorf("unknown collection %q", n.Kind)
	}
	if err != nil {
		return err
	}

	fmt.Printf("deleted %s from %s\n", n.ID, n.Kind)
	return nil
}
