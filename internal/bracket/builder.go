package bracket

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/AdamBeresnev/table-tennis-app/internal/utils"
	"github.com/google/uuid"
)

type Builder struct {
	rng   *rand.Rand
	newID func() string
	now   func() time.Time
}

// NewBuilder returns a builder that shuffles with rng. A nil rng uses the
// auto-seeded global source.
func NewBuilder(rng *rand.Rand) *Builder {
	return &Builder{
		rng:   rng,
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// Build creates a single elimination tournament with every match in place.
// Round 1 is fully populated, later rounds hold placeholders that fill up as
// results come in.
func Build(name string, entrants []Entrant, format int) (*Tournament, error) {
	return NewBuilder(nil).Build(name, entrants, format)
}

func (b *Builder) Build(name string, entrants []Entrant, format int) (*Tournament, error) {
	if len(entrants) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidEntrantCount, len(entrants))
	}
	if format < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFormat, format)
	}

	shuffled := slices.Clone(entrants)
	b.shuffle(shuffled)

	t := &Tournament{
		ID:        b.newID(),
		Name:      name,
		Format:    format,
		Entrants:  shuffled,
		CreatedAt: b.now().UTC(),
	}

	// Indices into t.Matches, the arena grows while rounds are linked
	var previous []int
	for i := 0; i < len(shuffled); i += 2 {
		m := Match{
			ID:    b.newID(),
			Round: 1,
			Order: len(previous) + 1,
			SlotA: Filled(shuffled[i]),
		}
		if i+1 < len(shuffled) {
			m.SlotB = Filled(shuffled[i+1])
		} else {
			m.SlotB = ByeSlot()
			m.autoComplete()
		}
		t.Matches = append(t.Matches, m)
		previous = append(previous, len(t.Matches)-1)
	}
	t.Rounds = append(t.Rounds, b.round(t, 1, previous))

	for round := 2; len(previous) > 1; round++ {
		var current []int
		for i := 0; i < len(previous); i += 2 {
			m := Match{
				ID:    b.newID(),
				Round: round,
				Order: len(current) + 1,
				SlotA: Unresolved(),
				SlotB: Unresolved(),
			}
			t.Matches[previous[i]].NextMatchID = utils.Ptr(m.ID)
			if i+1 < len(previous) {
				t.Matches[previous[i+1]].NextMatchID = utils.Ptr(m.ID)
			} else {
				// Only one match feeds this one
				m.SlotB = ByeSlot()
			}
			t.Matches = append(t.Matches, m)
			current = append(current, len(t.Matches)-1)
		}
		t.Rounds = append(t.Rounds, b.round(t, round, current))
		previous = current
	}

	for _, id := range t.Rounds[0].MatchIDs {
		m, err := t.Match(id)
		if err != nil {
			return nil, err
		}
		if !m.IsBye {
			continue
		}
		if err := t.advance(m); err != nil {
			return nil, fmt.Errorf("failed to advance bye: %w", err)
		}
	}

	return t, nil
}

func (b *Builder) shuffle(entrants []Entrant) {
	swap := func(i, j int) { entrants[i], entrants[j] = entrants[j], entrants[i] }
	if b.rng != nil {
		b.rng.Shuffle(len(entrants), swap)
		return
	}
	rand.Shuffle(len(entrants), swap)
}

func (b *Builder) round(t *Tournament, number int, indices []int) Round {
	ids := make([]string, 0, len(indices))
	for _, i := range indices {
		ids = append(ids, t.Matches[i].ID)
	}
	return Round{Number: number, MatchIDs: ids}
}
