package domain_test

import (
	"testing"
	"time"

	"github.com/everolfe/matchday/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMatchDraft(t *testing.T) {
	kickoff := time.Date(2024, 5, 1, 18, 30, 0, 0, time.Local)

	t.Run("accepts a complete draft and normalizes the tournament", func(t *testing.T) {
		match, err := domain.ValidateMatchDraft(domain.MatchDraft{
			Kickoff:    &kickoff,
			Tournament: "  el clasico ",
			ArenaID:    "a1",
			HomeTeamID: "t1",
			AwayTeamID: "t2",
		})
		require.NoError(t, err)
		assert.Equal(t, "El Clasico", match.Tournament)
		assert.Equal(t, kickoff, match.Kickoff)
	})

	t.Run("rejects identical team slots", func(t *testing.T) {
		_, err := domain.ValidateMatchDraft(domain.MatchDraft{
			Kickoff:    &kickoff,
			ArenaID:    "a1",
			HomeTeamID: "t1",
			AwayTeamID: "t1",
		})
		require.ErrorIs(t, err, domain.ErrDuplicateTeamSlot)
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		var missing *domain.MissingFieldError

		_, err := domain.ValidateMatchDraft(domain.MatchDraft{ArenaID: "a1", HomeTeamID: "t1", AwayTeamID: "t2"})
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "dateTime", missing.Field)

		_, err = domain.ValidateMatchDraft(domain.MatchDraft{Kickoff: &kickoff, HomeTeamID: "t1", AwayTeamID: "t2"})
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "arenaId", missing.Field)

		_, err = domain.ValidateMatchDraft(domain.MatchDraft{Kickoff: &kickoff, ArenaID: "a1", AwayTeamID: "t2"})
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "homeTeamId", missing.Field)
	})

	t.Run("blank tournament falls back to the sentinel label", func(t *testing.T) {
		match, err := domain.ValidateMatchDraft(domain.MatchDraft{
			Kickoff:    &kickoff,
			ArenaID:    "a1",
			HomeTeamID: "t1",
			AwayTeamID: "t2",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultTournament, match.Tournament)
	})
}

func TestValidateArenaDraft(t *testing.T) {
	capacity := 40000

	t.Run("accepts a complete draft", func(t *testing.T) {
		arena, err := domain.ValidateArenaDraft(domain.ArenaDraft{City: " Madrid ", Capacity: &capacity})
		require.NoError(t, err)
		assert.Equal(t, "Madrid", arena.City)
		assert.Equal(t, 40000, arena.Capacity)
	})

	t.Run("rejects missing city and capacity", func(t *testing.T) {
		var missing *domain.MissingFieldError

		_, err := domain.ValidateArenaDraft(domain.ArenaDraft{Capacity: &capacity})
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "city", missing.Field)

		_, err = domain.ValidateArenaDraft(domain.ArenaDraft{City: "Madrid"})
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "capacity", missing.Field)
	})

	t.Run("rejects negative capacity", func(t *testing.T) {
		negative := -1
		var invalid *domain.InvalidValueError
		_, err := domain.ValidateArenaDraft(domain.ArenaDraft{City: "Madrid", Capacity: &negative})
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "capacity", invalid.Field)
	})

	t.Run("accepts zero capacity", func(t *testing.T) {
		zero := 0
		_, err := domain.ValidateArenaDraft(domain.ArenaDraft{City: "Madrid", Capacity: &zero})
		require.NoError(t, err)
	})
}

func TestValidatePlayerDraft(t *testing.T) {
	age := 27

	t.Run("accepts a complete draft", func(t *testing.T) {
		player, err := domain.ValidatePlayerDraft(domain.PlayerDraft{Name: "Luka", Age: &age, TeamID: "t1"})
		require.NoError(t, err)
		assert.Equal(t, "Luka", player.Name)
		assert.Equal(t, "t1", player.TeamID)
	})

	t.Run("rejects missing name and age", func(t *testing.T) {
		var missing *domain.MissingFieldError

		_, err := domain.ValidatePlayerDraft(domain.PlayerDraft{Age: &age})
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "name", missing.Field)

		_, err = domain.ValidatePlayerDraft(domain.PlayerDraft{Name: "Luka"})
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "age", missing.Field)
	})

	t.Run("rejects non-positive age", func(t *testing.T) {
		zero := 0
		var invalid *domain.InvalidValueError
		_, err := domain.ValidatePlayerDraft(domain.PlayerDraft{Name: "Luka", Age: &zero})
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "age", invalid.Field)
	})
}

func TestValidateTeamDraft(t *testing.T) {
	t.Run("rejects blank name or country", func(t *testing.T) {
		var missing *domain.MissingFieldError

		_, err := domain.ValidateTeamDraft(domain.TeamDraft{Country: "Spain"})
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "teamName", missing.Field)

		_, err = domain.ValidateTeamDraft(domain.TeamDraft{Name: "Real Madrid", Country: "  "})
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "country", missing.Field)
	})
}
