package record

import (
	"strings"
	"time"
)

// Kind names a storage collection.
type Kind string

const (
	KindJournal  Kind = "journal"
	KindUpcoming Kind = "upcoming"
	KindIdeas    Kind = "ideas"
	KindCookbook Kind = "cookbook"
)

// Kinds lists every collection in display order.
func Kinds() []Kind {
	return []Kind{KindJournal, KindUpcoming, KindIdeas, KindCookbook}
}

// KindForAlias resolves user input like "journal" or "ideas" to a Kind.
func KindForAlias(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "journal", "bakes", "log":
		return KindJournal, true
	case "upcoming", "planned", "plan":
		return KindUpcoming, true
	case "ideas", "idea":
		return KindIdeas, true
	case "cookbook", "recipes", "recipe":
		return KindCookbook, true
	}
	return "", false
}

// Bake is a completed bake in the journal.
type Bake struct {
	ID         string    `json:"id,omitempty"`
	Title      string    `json:"title"`
	On         DayKey    `json:"on"`
	Taste      int       `json:"taste,omitempty"`
	Difficulty int       `json:"difficulty,omitempty"`
	Hours      int       `json:"hours,omitempty"`
	Minutes    int       `json:"minutes,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	Source     string    `json:"source,omitempty"`
	Created    Timestamp `json:"created,omitempty"`
}

func NewBake(title string, on DayKey) *Bake {
	return &Bake{
		Title:   title,
		On:      on,
		Created: Timestamp{Time: time.Now()},
	}
}

// Duration is the logged bake time. Missing hour/minute fields count as zero.
func (b *Bake) Duration() time.Duration {
	return time.Duration(b.Hours)*time.Hour + time.Duration(b.Minutes)*time.Minute
}

// Upcoming is a planned bake. Moving it to the journal is a create-then-delete
// pair; the two records share nothing beyond that one-time transfer.
type Upcoming struct {
	ID       string    `json:"id,omitempty"`
	Title    string    `json:"title"`
	On       DayKey    `json:"on"`
	Link     string    `json:"link,omitempty"`
	Notes    string    `json:"notes,omitempty"`
	RecipeID string    `json:"recipe,omitempty"`
	Created  Timestamp `json:"created,omitempty"`
}

func NewUpcoming(title string, on DayKey) *Upcoming {
	return &Upcoming{
		Title:   title,
		On:      on,
		Created: Timestamp{Time: time.Now()},
	}
}

// Idea is an idea-pad entry.
type Idea struct {
	ID      string    `json:"id,omitempty"`
	Name    string    `json:"name"`
	Created Timestamp `json:"created,omitempty"`
}

func NewIdea(name string) *Idea {
	return &Idea{
		Name:    name,
		Created: Timestamp{Time: time.Now()},
	}
}

// Recipe is a cookbook entry.
type Recipe struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Source      string    `json:"source,omitempty"`
	Ingredients []string  `json:"ingredients,omitempty"`
	Steps       []string  `json:"steps,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Created     Timestamp `json:"created,omitempty"`
}

func NewRecipe(title string) *Recipe {
	return &Recipe{
		Title:   title,
		Created: Timestamp{Time: time.Now()},
	}
}
