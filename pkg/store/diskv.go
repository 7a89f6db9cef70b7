package store

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/bakelog/pkg/record"
)

// Persistence is the keyed-record store behind the tracker: one logical
// collection per record kind, full-set reads, create/update/delete by key,
// and change notification via Watch.
type Persistence interface {
	Bakes(ctx context.Context) []*record.Bake
	Upcoming(ctx context.Context) []*record.Upcoming
	Ideas(ctx context.Context) []*record.Idea
	Recipes(ctx context.Context) []*record.Recipe
	StoreBake(b *record.Bake) error
	StoreUpcoming(u *record.Upcoming) error
	StoreIdea(i *record.Idea) error
	StoreRecipe(r *record.Recipe) error
	DeleteBake(b *record.Bake) error
	DeleteUpcoming(u *record.Upcoming) error
	DeleteIdea(i *record.Idea) error
	DeleteRecipe(r *record.Recipe) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

const layoutISO = "2006-01-02"

func (p *persistence) Bakes(ctx context.Context) []*record.Bake {
	all := make([]*record.Bake, 0)
	for key := range p.keys(ctx, record.KindJournal) {
		b := &record.Bake{}
		if err := p.read(key, b); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, b)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].On != all[j].On {
			return all[i].On.Before(all[j].On)
		}
		return all[i].ID < all[j].ID
	})
	return all
}

func (p *persistence) Upcoming(ctx context.Context) []*record.Upcoming {
	all := make([]*record.Upcoming, 0)
	for key := range p.keys(ctx, record.KindUpcoming) {
		u := &record.Upcoming{}
		if err := p.read(key, u); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, u)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].On != all[j].On {
			return all[i].On.Before(all[j].On)
		}
		return all[i].ID < all[j].ID
	})
	return all
}

func (p *persistence) Ideas(ctx context.Context) []*record.Idea {
	all := make([]*record.Idea, 0)
	for key := range p.keys(ctx, record.KindIdeas) {
		i := &record.Idea{}
		if err := p.read(key, i); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, i)
	}
	sortByCreated(all, func(i *record.Idea) (time.Time, string) { return i.Created.Time, i.ID })
	return all
}

func (p *persistence) Recipes(ctx context.Context) []*record.Recipe {
	all := make([]*record.Recipe, 0)
	for key := range p.keys(ctx, record.KindCookbook) {
		r := &record.Recipe{}
		if err := p.read(key, r); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, r)
	}
	sortByCreated(all, func(r *record.Recipe) (time.Time, string) { return r.Created.Time, r.ID })
	return all
}

func (p *persistence) StoreBake(b *record.Bake) error {
	ensureCreated(&b.Created)
	return p.write(toKey(record.KindJournal, b.Created.Time, &b.ID, b), b)
}

func (p *persistence) StoreUpcoming(u *record.Upcoming) error {
	ensureCreated(&u.Created)
	return p.write(toKey(record.KindUpcoming, u.Created.Time, &u.ID, u), u)
}

func (p *persistence) StoreIdea(i *record.Idea) error {
	ensureCreated(&i.Created)
	return p.write(toKey(record.KindIdeas, i.Created.Time, &i.ID, i), i)
}

func (p *persistence) StoreRecipe(r *record.Recipe) error {
	ensureCreated(&r.Created)
	return p.write(toKey(record.KindCookbook, r.Created.Time, &r.ID, r), r)
}

func (p *persistence) DeleteBake(b *record.Bake) error {
	return p.d.Erase(toKey(record.KindJournal, b.Created.Time, &b.ID, b))
}

func (p *persistence) DeleteUpcoming(u *record.Upcoming) error {
	return p.d.Erase(toKey(record.KindUpcoming, u.Created.Time, &u.ID, u))
}

func (p *persistence) DeleteIdea(i *record.Idea) error {
	return p.d.Erase(toKey(record.KindIdeas, i.Created.Time, &i.ID, i))
}

func (p *persistence) DeleteRecipe(r *record.Recipe) error {
	return p.d.Erase(toKey(record.KindCookbook, r.Created.Time, &r.ID, r))
}

// keys yields the diskv keys belonging to one kind.
func (p *persistence) keys(ctx context.Context, kind record.Kind) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		for key := range p.d.Keys(ctx.Done()) {
			if pk := keyToPathTransform(key); len(pk.Path) > 0 && pk.Path[0] == string(kind) {
				out <- key
			}
		}
	}()
	return out
}

// read unmarshals the value at key into target. The id is authoritative from
// the file name, not from the stored payload.
func (p *persistence) read(key string, target interface{}) error {
	val, err := p.d.Read(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(val, target); err != nil {
		return err
	}
	pk := keyToPathTransform(key)
	return setID(target, pk.FileName)
}

func (p *persistence) write(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return p.d.Write(key, data)
}

func setID(target interface{}, id string) error {
	switch t := target.(type) {
	case *record.Bake:
		t.ID = id
	case *record.Upcoming:
		t.ID = id
	case *record.Idea:
		t.ID = id
	case *record.Recipe:
		t.ID = id
	default:
		return fmt.Errorf("store: unknown record type %T", target)
	}
	return nil
}

func ensureCreated(t *record.Timestamp) {
	if t.IsZero() {
		t.Time = time.Now()
	}
}

func sortByCreated[T any](all []T, key func(T) (time.Time, string)) {
	sort.SliceStable(all, func(i, j int) bool {
		lt, lid := key(all[i])
		rt, rid := key(all[j])
		if lt.Equal(rt) {
			return lid < rid
		}
		return lt.Before(rt)
	})
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `kind-date-id`, minting an id from the record content when the
// record does not have one yet.
func toKey(kind record.Kind, created time.Time, id *string, v interface{}) string {
	then := created.Format(layoutISO)

	if *id == "" {
		b, _ := json.Marshal(v)
		sum := md5.Sum(b)
		*id = fmt.Sprintf("%x", sum[:8])
	}

	return fmt.Sprintf("%s-%s-%s", kind, then, *id)
}
