package domain_test

import (
	"testing"

	"github.com/everolfe/matchday/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFilterArenas(t *testing.T) {
	arenas := []domain.Arena{
		{ID: "a1", City: "Madrid", Capacity: 80000},
		{ID: "a2", City: "Barcelona", Capacity: 99000},
		{ID: "a3", City: "Sevilla", Capacity: 43000},
	}

	filtered := domain.FilterArenas(arenas, "mad")
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Madrid", filtered[0].City)

	assert.Equal(t, arenas, domain.FilterArenas(arenas, "  "))
	assert.Empty(t, domain.FilterArenas(arenas, "london"))
}

func TestFilterTeams(t *testing.T) {
	teams := []domain.Team{
		{ID: "t1", Name: "Real Madrid", Country: "Spain"},
		{ID: "t2", Name: "Bayern", Country: "Germany"},
	}

	assert.Len(t, domain.FilterTeams(teams, "SPAIN"), 1)
	assert.Len(t, domain.FilterTeams(teams, "bay"), 1)
	assert.Len(t, domain.FilterTeams(teams, "a"), 2)
}

func TestFilterMatches(t *testing.T) {
	arenaByID := map[string]domain.Arena{"a1": {ID: "a1", City: "Madrid"}}
	teamByID := map[string]domain.Team{
		"t1": {ID: "t1", Name: "Real Madrid"},
		"t2": {ID: "t2", Name: "Barcelona"},
	}
	matches := []domain.Match{
		{ID: "m1", Tournament: "El Clasico", ArenaID: "a1", HomeTeamID: "t1", AwayTeamID: "t2"},
		{ID: "m2", Tournament: "Friendly Match", ArenaID: "a9", HomeTeamID: "t9", AwayTeamID: "t8"},
	}

	t.Run("matches on tournament label", func(t *testing.T) {
		assert.Len(t, domain.FilterMatches(matches, "clasico", arenaByID, teamByID), 1)
	})

	t.Run("matches on associated arena city and team name", func(t *testing.T) {
		assert.Len(t, domain.FilterMatches(matches, "madrid", arenaByID, teamByID), 1)
		assert.Len(t, domain.FilterMatches(matches, "barcelona", arenaByID, teamByID), 1)
	})

	t.Run("blank term keeps everything", func(t *testing.T) {
		assert.Equal(t, matches, domain.FilterMatches(matches, "", arenaByID, teamByID))
	})

	t.Run("nil lookups fall back to label-only matching", func(t *testing.T) {
		assert.Empty(t, domain.FilterMatches(matches, "madrid", nil, nil))
	})
}
