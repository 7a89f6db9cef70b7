package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/bakelog/pkg/record"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestStoreAndListBakes(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	b := record.NewBake("sourdough", record.DayKey{Year: 2024, Month: time.March, Day: 5})
	b.Hours = 4
	if err := p.StoreBake(b); err != nil {
		t.Fatalf("store bake: %v", err)
	}
	if b.ID == "" {
		t.Fatal("expected an id to be minted on store")
	}

	all := p.Bakes(context.Background())
	if len(all) != 1 {
		t.Fatalf("expected 1 bake, got %d", len(all))
	}
	got := all[0]
	if got.ID != b.ID || got.Title != "sourdough" || got.Hours != 4 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.On != b.On {
		t.Fatalf("expected day %v, got %v", b.On, got.On)
	}
}

func TestKindsDoNotBleed(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if err := p.StoreIdea(record.NewIdea("pretzels")); err != nil {
		t.Fatalf("store idea: %v", err)
	}
	if err := p.StoreUpcoming(record.NewUpcoming("babka", record.DayKey{Year: 2024, Month: time.April, Day: 1})); err != nil {
		t.Fatalf("store upcoming: %v", err)
	}

	ctx := context.Background()
	if got := len(p.Bakes(ctx)); got != 0 {
		t.Fatalf("journal should be empty, got %d", got)
	}
	if got := len(p.Ideas(ctx)); got != 1 {
		t.Fatalf("expected 1 idea, got %d", got)
	}
	if got := len(p.Upcoming(ctx)); got != 1 {
		t.Fatalf("expected 1 upcoming, got %d", got)
	}
}

func TestDeleteRemovesRecord(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	i := record.NewIdea("galette")
	if err := p.StoreIdea(i); err != nil {
		t.Fatalf("store idea: %v", err)
	}
	if err := p.DeleteIdea(i); err != nil {
		t.Fatalf("delete idea: %v", err)
	}
	if got := len(p.Ideas(context.Background())); got != 0 {
		t.Fatalf("expected empty idea pad, got %d", got)
	}
}

func TestPersistenceWatchEmitsKindChanges(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before storing.
	time.Sleep(50 * time.Millisecond)

	if err := p.StoreBake(record.NewBake("bagels", record.Today())); err != nil {
		t.Fatalf("store bake: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventStoreInvalidated {
				return
			}
			if evt.Type == EventKindChanged {
				if evt.Kind != record.KindJournal {
					t.Fatalf("expected journal kind, got %q", evt.Kind)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for change event")
		}
	}
}
