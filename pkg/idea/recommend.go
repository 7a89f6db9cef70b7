// Package idea picks a bake suggestion from the idea pad without immediately
// repeating the previous suggestion.
package idea

import (
	"math/rand"

	"tableflip.dev/bakelog/pkg/record"
)

// Candidate is a suggested bake name. A non-empty ID marks a candidate backed
// by a saved idea record; accepting it discards that record. An empty ID is an
// ephemeral suggestion with nothing to discard.
type Candidate struct {
	Name string
	ID   string
}

// Saved reports whether accepting the candidate should remove a stored idea.
func (c Candidate) Saved() bool {
	return c.ID != ""
}

// Same compares candidates by id when both are saved, otherwise by name.
// Two saved ideas sharing a display name stay distinct; an ephemeral
// suggestion matches a saved one with the same name.
func (c Candidate) Same(o Candidate) bool {
	if c.ID != "" && o.ID != "" {
		return c.ID == o.ID
	}
	return c.Name == o.Name
}

// FromIdeas converts stored idea records to candidates.
func FromIdeas(ideas []*record.Idea) []Candidate {
	candidates := make([]Candidate, 0, len(ideas))
	for _, i := range ideas {
		if i == nil || i.Name == "" {
			continue
		}
		candidates = append(candidates, Candidate{Name: i.Name, ID: i.ID})
	}
	return candidates
}

// Outcome is the non-error result class of a recommendation.
type Outcome int

const (
	// Suggested carries a usable candidate.
	Suggested Outcome = iota
	// Empty means the idea pad has nothing in it; guidance, not a failure.
	Empty
	// Exhausted means the only remaining candidate is the one already shown.
	Exhausted
)

// maxDraws bounds the resample loop. With two or more distinct candidates the
// cap is statistically unreachable; it only bites when duplicates collapse the
// pool to the previous pick, in which case a repeat is accepted.
const maxDraws = 8

// Recommend draws a candidate uniformly at random, resampling while the draw
// matches previous. A single-element list returns its element directly, or
// Exhausted when that element is exactly the previous suggestion.
func Recommend(candidates []Candidate, previous *Candidate, r *rand.Rand) (Candidate, Outcome) {
	switch len(candidates) {
	case 0:
		return Candidate{}, Empty
	case 1:
		if previous != nil && candidates[0].Same(*previous) {
			return Candidate{}, Exhausted
		}
		return candidates[0], Suggested
	}

	pick := candidates[r.Intn(len(candidates))]
	for i := 0; i < maxDraws; i++ {
		if previous == nil || !pick.Same(*previous) {
			break
		}
		pick = candidates[r.Intn(len(candidates))]
	}
	return pick, Suggested
}
