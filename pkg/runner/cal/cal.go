package cal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/bakelog/pkg/app"
	"tableflip.dev/bakelog/pkg/printers"
	"tableflip.dev/bakelog/pkg/store"
)

// Cal prints the month grid for the anchor month.
type Cal struct {
	Persistence store.Persistence
	Anchor      time.Time // zero means the current month
}

func (n *Cal) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show calendar, no persistence")
	}
	svc := &app.Service{Persistence: n.Persistence}

	ix, err := svc.CalendarIndex(ctx)
	if err != nil {
		return err
	}

	anchor := n.Anchor
	if anchor.IsZero() {
		anchor = time.Now()
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Calendar(anchor, ix)
	return nil
}
