package app

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"tableflip.dev/bakelog/pkg/calendar"
	"tableflip.dev/bakelog/pkg/idea"
	"tableflip.dev/bakelog/pkg/record"
	"tableflip.dev/bakelog/pkg/stats"
	"tableflip.dev/bakelog/pkg/store"
	"tableflip.dev/bakelog/pkg/timeutil"
)

// Service provides high-level operations over the four record collections.
// It wraps persistence so the CLI runners and the TUI can share logic.
type Service struct {
	Persistence store.Persistence
}

var (
	ErrNoPersistence = errors.New("app: no persistence configured")
	ErrNotFound      = errors.New("app: record not found")
)

// Bakes lists the journal.
func (s *Service) Bakes(ctx context.Context) ([]*record.Bake, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Bakes(ctx), nil
}

// Upcoming lists planned bakes.
func (s *Service) Upcoming(ctx context.Context) ([]*record.Upcoming, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Upcoming(ctx), nil
}

// Ideas lists the idea pad.
func (s *Service) Ideas(ctx context.Context) ([]*record.Idea, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Ideas(ctx), nil
}

// Recipes lists the cookbook.
func (s *Service) Recipes(ctx context.Context) ([]*record.Recipe, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Recipes(ctx), nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// LogBake validates and stores a completed bake.
func (s *Service) LogBake(ctx context.Context, b *record.Bake) (*record.Bake, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	if b == nil || strings.TrimSpace(b.Title) == "" {
		return nil, errors.New("app: bake title required")
	}
	if b.On.IsZero() {
		return nil, errors.New("app: bake date required")
	}
	if b.Minutes < 0 || b.Minutes > 59 {
		return nil, errors.New("app: minutes must be between 0 and 59")
	}
	if err := s.Persistence.StoreBake(b); err != nil {
		return nil, err
	}
	return b, nil
}

// FindBake returns the journal entry with the given id.
func (s *Service) FindBake(ctx context.Context, id string) (*record.Bake, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	for _, b := range s.Persistence.Bakes(ctx) {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, ErrNotFound
}

// EditBake applies a mutation to the journal entry with the given id and
// stores the result.
func (s *Service) EditBake(ctx context.Context, id string, apply func(*record.Bake)) (*record.Bake, error) {
	b, err := s.FindBake(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(b)
	if strings.TrimSpace(b.Title) == "" {
		return nil, errors.New("app: bake title required")
	}
	if err := s.Persistence.StoreBake(b); err != nil {
		return nil, err
	}
	return b, nil
}

// DeleteBake removes a journal entry permanently.
func (s *Service) DeleteBake(ctx context.Context, id string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	for _, b := range s.Persistence.Bakes(ctx) {
		if b.ID == id {
			return s.Persistence.DeleteBake(b)
		}
	}
	return ErrNotFound
}

// Plan stores an upcoming bake.
func (s *Service) Plan(ctx context.Context, u *record.Upcoming) (*record.Upcoming, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	if u == nil || strings.TrimSpace(u.Title) == "" {
		return nil, errors.New("app: upcoming title required")
	}
	if u.On.IsZero() {
		return nil, errors.New("app: planned date required")
	}
	if err := s.Persistence.StoreUpcoming(u); err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteUpcoming removes a planned bake.
func (s *Service) DeleteUpcoming(ctx context.Context, id string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	for _, u := range s.Persistence.Upcoming(ctx) {
		if u.ID == id {
			return s.Persistence.DeleteUpcoming(u)
		}
	}
	return ErrNotFound
}

// MoveToJournal turns a planned bake into a journal entry. The move is a
// create-then-delete pair, not a mutation; if the delete fails after the
// create, both records exist and the caller can retry the delete.
func (s *Service) MoveToJournal(ctx context.Context, upcomingID string) (*record.Bake, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	var found *record.Upcoming
	for _, u := range s.Persistence.Upcoming(ctx) {
		if u.ID == upcomingID {
			found = u
			break
		}
	}
	if found == nil {
		return nil, ErrNotFound
	}

	b := record.NewBake(found.Title, found.On)
	b.Notes = found.Notes
	b.Source = found.Link
	if err := s.Persistence.StoreBake(b); err != nil {
		return nil, err
	}
	if err := s.Persistence.DeleteUpcoming(found); err != nil {
		return nil, err
	}
	return b, nil
}

// AddIdea stores an idea-pad entry.
func (s *Service) AddIdea(ctx context.Context, name string) (*record.Idea, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("app: idea name required")
	}
	i := record.NewIdea(name)
	if err := s.Persistence.StoreIdea(i); err != nil {
		return nil, err
	}
	return i, nil
}

// DeleteIdea removes an idea-pad entry.
func (s *Service) DeleteIdea(ctx context.Context, id string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	for _, i := range s.Persistence.Ideas(ctx) {
		if i.ID == id {
			return s.Persistence.DeleteIdea(i)
		}
	}
	return ErrNotFound
}

// SuggestIdea draws a suggestion from the idea pad, avoiding an immediate
// repeat of previous. The previous suggestion is view-local state owned by
// the caller, never stored here.
func (s *Service) SuggestIdea(ctx context.Context, previous *idea.Candidate, r *rand.Rand) (idea.Candidate, idea.Outcome, error) {
	if s.Persistence == nil {
		return idea.Candidate{}, idea.Empty, ErrNoPersistence
	}
	candidates := idea.FromIdeas(s.Persistence.Ideas(ctx))
	pick, outcome := idea.Recommend(candidates, previous, r)
	return pick, outcome, nil
}

// AcceptIdea handles a user accepting a suggestion: a saved candidate is
// discarded from the idea pad, and independently the suggestion can be logged
// as a completed bake on the given day. The two outcomes compose.
func (s *Service) AcceptIdea(ctx context.Context, c idea.Candidate, logIt bool, on record.DayKey) (*record.Bake, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	if c.Saved() {
		if err := s.DeleteIdea(ctx, c.ID); err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}
	if !logIt {
		return nil, nil
	}
	if on.IsZero() {
		on = record.Today()
	}
	return s.LogBake(ctx, record.NewBake(c.Name, on))
}

// AddRecipe stores a cookbook entry.
func (s *Service) AddRecipe(ctx context.Context, r *record.Recipe) (*record.Recipe, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	if r == nil || strings.TrimSpace(r.Title) == "" {
		return nil, errors.New("app: recipe title required")
	}
	if err := s.Persistence.StoreRecipe(r); err != nil {
		return nil, err
	}
	return r, nil
}

// DeleteRecipe removes a cookbook entry.
func (s *Service) DeleteRecipe(ctx context.Context, id string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	for _, r := range s.Persistence.Recipes(ctx) {
		if r.ID == id {
			return s.Persistence.DeleteRecipe(r)
		}
	}
	return ErrNotFound
}

// CalendarIndex rebuilds the day-presence index from the current record sets.
func (s *Service) CalendarIndex(ctx context.Context) (calendar.Index, error) {
	if s.Persistence == nil {
		return calendar.Index{}, ErrNoPersistence
	}
	return calendar.BuildIndex(s.Persistence.Bakes(ctx), s.Persistence.Upcoming(ctx)), nil
}

// Stats aggregates the journal over a window kind resolved against now.
func (s *Service) Stats(ctx context.Context, kind timeutil.Kind, now, anchor time.Time) (stats.Summary, timeutil.Window, error) {
	if s.Persistence == nil {
		return stats.Summary{}, timeutil.Window{}, ErrNoPersistence
	}
	w := timeutil.Resolve(kind, now, anchor)
	return stats.Aggregate(s.Persistence.Bakes(ctx), w), w, nil
}

// JournalOn returns the journal entries for one clicked day, through the same
// inclusive window filter the wider statistics use.
func (s *Service) JournalOn(ctx context.Context, k record.DayKey) ([]*record.Bake, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return stats.Filter(s.Persistence.Bakes(ctx), timeutil.Day(k)), nil
}
