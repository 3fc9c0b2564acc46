package bracket

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEntrants(n int) []Entrant {
	entrants := make([]Entrant, n)
	for i := range entrants {
		entrants[i] = Entrant{ID: fmt.Sprintf("p%d", i+1), Name: fmt.Sprintf("Player %d", i+1)}
	}
	return entrants
}

func testBuilder() *Builder {
	return NewBuilder(rand.New(rand.NewPCG(42, 7)))
}

func TestBuild_RoundStructure(t *testing.T) {
	for n := 2; n <= 33; n++ {
		t.Run(fmt.Sprintf("%d entrants", n), func(t *testing.T) {
			tournament, err := testBuilder().Build("Cup", makeEntrants(n), 3)
			require.NoError(t, err)

			expectedRounds := int(math.Ceil(math.Log2(float64(n))))
			require.Len(t, tournament.Rounds, expectedRounds)

			last := tournament.Rounds[len(tournament.Rounds)-1]
			require.Len(t, last.MatchIDs, 1)
			final := tournament.Final()
			require.NotNil(t, final)
			assert.Nil(t, final.NextMatchID)

			assert.Len(t, tournament.Rounds[0].MatchIDs, (n+1)/2)

			roundOf := make(map[string]int)
			for _, r := range tournament.Rounds {
				for _, id := range r.MatchIDs {
					_, seen := roundOf[id]
					assert.False(t, seen, "match %s appears in more than one round", id)
					roundOf[id] = r.Number
				}
			}
			assert.Len(t, roundOf, len(tournament.Matches))

			feeders := make(map[string]int)
			for _, m := range tournament.Matches {
				assert.Equal(t, roundOf[m.ID], m.Round)
				if m.ID == final.ID {
					continue
				}
				require.NotNil(t, m.NextMatchID, "match %s has no successor", m.ID)
				assert.Equal(t, m.Round+1, roundOf[*m.NextMatchID])
				feeders[*m.NextMatchID]++
			}
			for id, count := range feeders {
				assert.LessOrEqual(t, count, 2, "match %s has too many feeders", id)
			}
		})
	}
}

func TestBuild_TwoEntrants(t *testing.T) {
	tournament, err := testBuilder().Build("Duel", makeEntrants(2), 5)
	require.NoError(t, err)

	require.Len(t, tournament.Rounds, 1)
	require.Len(t, tournament.Matches, 1)

	m := tournament.Matches[0]
	assert.False(t, m.IsBye)
	assert.False(t, m.Completed)
	assert.True(t, m.Playable())
	assert.Nil(t, m.NextMatchID)
	assert.Equal(t, 3, tournament.FirstTo())
}

func TestBuild_ByesCompleteImmediately(t *testing.T) {
	for _, n := range []int{3, 5, 7, 9, 11} {
		t.Run(fmt.Sprintf("%d entrants", n), func(t *testing.T) {
			tournament, err := testBuilder().Build("Odd", makeEntrants(n), 3)
			require.NoError(t, err)

			round1 := tournament.RoundMatches(1)
			bye := round1[len(round1)-1]
			assert.True(t, bye.IsBye)
			assert.True(t, bye.Completed)
			assert.Equal(t, MatchAutoCompleted, bye.State())
			require.NotNil(t, bye.Winner)
			assert.True(t, bye.SlotB.IsBye())
			assert.Equal(t, *bye.SlotA.Entrant, *bye.Winner)

			// The bye winner already sits in the next round
			next, err := tournament.Match(*bye.NextMatchID)
			require.NoError(t, err)
			assert.True(t, next.HasEntrant(bye.Winner.ID) || next.Completed)
		})
	}
}

func TestBuild_CompletedMatchesHaveWinnerFromSlots(t *testing.T) {
	for n := 2; n <= 20; n++ {
		tournament, err := testBuilder().Build("Any", makeEntrants(n), 3)
		require.NoError(t, err)

		for _, m := range tournament.Matches {
			if !m.Completed {
				assert.Nil(t, m.Winner)
				continue
			}
			require.NotNil(t, m.Winner)
			assert.True(t, m.HasEntrant(m.Winner.ID), "winner of %s is not one of its entrants", m.ID)
		}
		assert.False(t, tournament.Completed)
	}
}

func TestBuild_EveryEntrantPlacedOnce(t *testing.T) {
	entrants := makeEntrants(9)
	tournament, err := testBuilder().Build("Shuffle", entrants, 3)
	require.NoError(t, err)

	assert.ElementsMatch(t, entrants, tournament.Entrants)

	seen := make(map[string]int)
	for _, m := range tournament.RoundMatches(1) {
		for _, s := range []Slot{m.SlotA, m.SlotB} {
			if s.IsFilled() {
				seen[s.Entrant.ID]++
			}
		}
	}
	assert.Len(t, seen, len(entrants))
	for id, count := range seen {
		assert.Equal(t, 1, count, "entrant %s placed more than once", id)
	}

	// Input order is left alone
	assert.Equal(t, makeEntrants(9), entrants)
}

func TestBuild_SingleFeederPlaceholderResolves(t *testing.T) {
	// 5 entrants: round 1 = 3 matches, round 2 = 2 matches where the second
	// one is only fed by the bye
	tournament, err := testBuilder().Build("Five", makeEntrants(5), 3)
	require.NoError(t, err)

	round2 := tournament.RoundMatches(2)
	require.Len(t, round2, 2)

	lone := round2[1]
	assert.True(t, lone.Completed)
	assert.True(t, lone.IsBye)

	final := tournament.Final()
	require.NotNil(t, final)
	assert.True(t, final.SlotA.IsFilled())
	assert.Equal(t, lone.Winner.ID, final.SlotA.Entrant.ID)
	assert.True(t, final.SlotB.IsUnresolved())
}

func TestBuild_InvalidInput(t *testing.T) {
	testCases := []struct {
		name     string
		entrants []Entrant
		format   int
		expected error
	}{
		{name: "no entrants", entrants: nil, format: 3, expected: ErrInvalidEntrantCount},
		{name: "one entrant", entrants: makeEntrants(1), format: 3, expected: ErrInvalidEntrantCount},
		{name: "zero format", entrants: makeEntrants(4), format: 0, expected: ErrInvalidFormat},
		{name: "negative format", entrants: makeEntrants(4), format: -3, expected: ErrInvalidFormat},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tournament, err := Build("Bad", tc.entrants, tc.format)
			assert.ErrorIs(t, err, tc.expected)
			assert.Nil(t, tournament)
		})
	}
}

func TestFirstTo(t *testing.T) {
	testCases := []struct {
		format   int
		expected int
	}{
		{1, 1}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {7, 4},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, FirstTo(tc.format), "best of %d", tc.format)
	}
}

func TestRoundName(t *testing.T) {
	tournament, err := testBuilder().Build("Names", makeEntrants(16), 3)
	require.NoError(t, err)
	require.Len(t, tournament.Rounds, 4)

	assert.Equal(t, "Round 1", tournament.RoundName(1))
	assert.Equal(t, "Round 2", tournament.RoundName(2))
	assert.Equal(t, "Semi-Finals", tournament.RoundName(3))
	assert.Equal(t, "Finals", tournament.RoundName(4))
}
