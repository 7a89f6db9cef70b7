package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/bakelog/pkg/app"
	"tableflip.dev/bakelog/pkg/printers"
	"tableflip.dev/bakelog/pkg/store"
	"tableflip.dev/bakelog/pkg/timeutil"
)

// Stats prints windowed journal metrics.
type Stats struct {
	Persistence store.Persistence
	Kind        timeutil.Kind
	Anchor      time.Time // month anchor; zero means the current month
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not report stats, no persistence")
	}
	svc := &app.Service{Persistence: n.Persistence}

	summary, w, err := svc.Stats(ctx, n.Kind, time.Now(), n.Anchor)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Stats(w, summary)
	return nil
}
