package roulette

import (
	"testing"

	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/KirkDiggler/sylk/internal/random"
	"github.com/KirkDiggler/sylk/internal/random/randomtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		slots []string
		want  models.ResultKind
	}{
		{name: "all the same", slots: []string{"A", "A", "A"}, want: models.ResultKindJackpot},
		{name: "two distinct", slots: []string{"A", "B", "A"}, want: models.ResultKindSemiJackpot},
		{name: "two distinct trailing pair", slots: []string{"A", "B", "B"}, want: models.ResultKindSemiJackpot},
		{name: "three distinct", slots: []string{"A", "B", "C"}, want: models.ResultKindChaos},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.slots))
		})
	}
}

func TestDistinctNamesKeepsFirstAppearance(t *testing.T) {
	assert.Equal(t, []string{"B", "A"}, DistinctNames([]string{"B", "A", "B"}))
}

func TestClampTeamCount(t *testing.T) {
	assert.Equal(t, 2, ClampTeamCount(0))
	assert.Equal(t, 2, ClampTeamCount(2))
	assert.Equal(t, 3, ClampTeamCount(3))
	assert.Equal(t, 4, ClampTeamCount(9))
}

func TestNextTeamRoundRobin(t *testing.T) {
	for teams := 2; teams <= 4; teams++ {
		for k := 0; k < 12; k++ {
			assert.Equal(t, k%teams+1, NextTeam(k, teams))
		}
	}
}

func TestResolveJackpot(t *testing.T) {
	src := randomtest.NewSequence(0.1)

	outcome, err := Resolve(src, []string{"A", "B", "C"}, 4, 0)
	require.NoError(t, err)

	assert.Equal(t, models.ResultKindJackpot, outcome.Kind)
	assert.Equal(t, []string{"A", "A", "A"}, outcome.Slots)
	assert.Equal(t, "A", outcome.Finalist)
	assert.Equal(t, 1, outcome.Team)
	assert.Equal(t, 3, src.Calls())
}

func TestResolveSemiJackpot(t *testing.T) {
	// slots A, B, A then the finalist draw picks the second distinct name
	src := randomtest.NewSequence(0.0, 0.5, 0.0, 0.9)

	outcome, err := Resolve(src, []string{"A", "B", "C"}, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, models.ResultKindSemiJackpot, outcome.Kind)
	assert.Equal(t, []string{"A", "B", "A"}, outcome.Slots)
	assert.Equal(t, "B", outcome.Finalist)
	assert.Equal(t, 2, outcome.Team)
	assert.Equal(t, 4, src.Calls())
}

func TestResolveSemiJackpotFinalistIsDrawn(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		outcome, err := Resolve(random.New(&random.Config{Seed: seed}), []string{"A", "B", "C", "D"}, 4, 0)
		require.NoError(t, err)
		assert.Contains(t, outcome.Slots, outcome.Finalist)
	}
}

func TestResolveChaos(t *testing.T) {
	// slots A, B, C then the finalist draw picks the middle slot
	src := randomtest.NewSequence(0.0, 0.4, 0.9, 0.5)

	outcome, err := Resolve(src, []string{"A", "B", "C"}, 3, 4)
	require.NoError(t, err)

	assert.Equal(t, models.ResultKindChaos, outcome.Kind)
	assert.Equal(t, []string{"A", "B", "C"}, outcome.Slots)
	assert.Equal(t, "B", outcome.Finalist)
	assert.Equal(t, 2, outcome.Team)
}

func TestResolveDirectPick(t *testing.T) {
	t.Run("single member takes no draw", func(t *testing.T) {
		src := randomtest.NewSequence(0.9)

		outcome, err := Resolve(src, []string{"Solo"}, 4, 5)
		require.NoError(t, err)

		assert.Equal(t, models.ResultKindDirectPick, outcome.Kind)
		assert.Equal(t, "Solo", outcome.Finalist)
		assert.Equal(t, 2, outcome.Team)
		assert.Empty(t, outcome.Slots)
		assert.Zero(t, src.Calls())
	})

	t.Run("two members draw once", func(t *testing.T) {
		src := randomtest.NewSequence(0.7)

		outcome, err := Resolve(src, []string{"A", "B"}, 4, 0)
		require.NoError(t, err)

		assert.Equal(t, models.ResultKindDirectPick, outcome.Kind)
		assert.Equal(t, "B", outcome.Finalist)
		assert.Equal(t, 1, src.Calls())
	})
}

func TestResolveNoMembers(t *testing.T) {
	_, err := Resolve(randomtest.NewSequence(0.1), nil, 4, 0)
	assert.ErrorIs(t, err, ErrInsufficientMembers)
}

func draftMembers(n int) []models.Member {
	members := make([]models.Member, 0, n)
	for i := 0; i < n; i++ {
		members = append(members, models.Member{ID: string(rune('a' + i)), Name: string(rune('A' + i))})
	}
	return members
}

func TestDraftAll(t *testing.T) {
	members := draftMembers(10)

	for seed := int64(1); seed <= 25; seed++ {
		assignments, err := DraftAll(random.New(&random.Config{Seed: seed}), members, 3)
		require.NoError(t, err)
		require.Len(t, assignments, len(members))

		seen := map[string]bool{}
		for k, a := range assignments {
			assert.Equal(t, k%3+1, a.Team)
			assert.False(t, seen[a.Member.ID], "assigned twice: %s", a.Member.ID)
			seen[a.Member.ID] = true
		}
		assert.Len(t, seen, len(members))
	}
}

func TestDraftAllClampsTeamCount(t *testing.T) {
	assignments, err := DraftAll(random.New(&random.Config{Seed: 7}), draftMembers(6), 10)
	require.NoError(t, err)

	teams := GroupTeams(assignments, 4)
	assert.Len(t, teams[0], 2)
	assert.Len(t, teams[1], 2)
	assert.Len(t, teams[2], 1)
	assert.Len(t, teams[3], 1)
}

func TestDraftAllEmpty(t *testing.T) {
	_, err := DraftAll(randomtest.NewSequence(0.1), nil, 2)
	assert.ErrorIs(t, err, ErrInsufficientMembers)
}

func TestDraftAllDoesNotMutateInput(t *testing.T) {
	members := draftMembers(5)
	before := models.CopyMembers(members)

	_, err := DraftAll(random.New(&random.Config{Seed: 3}), members, 2)
	require.NoError(t, err)

	assert.Equal(t, before, members)
}
