package suggest

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/bakelog/pkg/app"
	"tableflip.dev/bakelog/pkg/idea"
	"tableflip.dev/bakelog/pkg/record"
	"tableflip.dev/bakelog/pkg/store"
)

// Suggest draws a bake idea from the pad. Previous holds the name shown by
// the last invocation so the draw avoids an immediate repeat; the CLI is
// stateless between runs, so the caller passes it explicitly.
type Suggest struct {
	Persistence store.Persistence
	Previous    string
	Accept      bool
	LogIt       bool
	On          record.DayKey
	Rand        *rand.Rand
}

func (n *Suggest) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not suggest, no persistence")
	}
	svc := &app.Service{Persistence: n.Persistence}

	r := n.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var previous *idea.Candidate
	if n.Previous != "" {
		previous = &idea.Candidate{Name: n.Previous}
	}

	pick, outcome, err := svc.SuggestIdea(ctx, previous, r)
	if err != nil {
		return err
	}

	f := color.New(color.Faint, color.Italic)
	b := color.New(color.Bold)

	switch outcome {
	case idea.Empty:
		_, _ = f.Println("the idea pad is empty; add one with `bakelog idea add`")
		return nil
	case idea.Exhausted:
		_, _ = f.Println("nothing new to suggest, that was the last idea")
		return nil
	}

	_, _ = b.Printf("how about: %s\n", pick.Name)

	if n.Accept {
		logged, err := svc.AcceptIdea(ctx, pick, n.LogIt, n.On)
		if err != nil {
			return err
		}
		if pick.Saved() {
			_, _ = f.Println("crossed it off the idea pad")
		}
		if logged != nil {
			_, _ = f.Printf("logged %q on %s\n", logged.Title, logged.On)
		}
	}

	return nil
}
