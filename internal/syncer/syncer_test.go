package syncer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/everolfe/matchday/internal/domain"
	"github.com/everolfe/matchday/internal/matchapi"
	"github.com/everolfe/matchday/internal/syncer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseMatch() domain.Match {
	return domain.Match{
		ID:         "m1",
		Kickoff:    time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC),
		Tournament: "El Clasico",
		ArenaID:    "a1",
		HomeTeamID: "t1",
		AwayTeamID: "t2",
	}
}

func TestPlan(t *testing.T) {
	t.Run("identical states produce an empty plan", func(t *testing.T) {
		assert.Empty(t, syncer.Plan(baseMatch(), baseMatch()))
	})

	t.Run("time-only change produces exactly one step", func(t *testing.T) {
		desired := baseMatch()
		desired.Kickoff = desired.Kickoff.Add(2 * time.Hour)

		steps := syncer.Plan(baseMatch(), desired)
		require.Len(t, steps, 1)
		assert.Equal(t, syncer.StepSetTime, steps[0].Kind)
		assert.Equal(t, "2024-05-01T20:30:00", steps[0].LocalTime)
	})

	t.Run("home team swap removes the old team before adding the new one", func(t *testing.T) {
		desired := baseMatch()
		desired.HomeTeamID = "t3"

		steps := syncer.Plan(baseMatch(), desired)
		require.Len(t, steps, 2)
		assert.Equal(t, syncer.StepRemoveTeam, steps[0].Kind)
		assert.Equal(t, "t1", steps[0].TeamID)
		assert.Equal(t, syncer.StepAddTeam, steps[1].Kind)
		assert.Equal(t, "t3", steps[1].TeamID)
		assert.Equal(t, syncer.SlotHome, steps[0].Slot)
	})

	t.Run("empty slot skips the removal", func(t *testing.T) {
		current := baseMatch()
		current.AwayTeamID = ""
		desired := baseMatch()

		steps := syncer.Plan(current, desired)
		require.Len(t, steps, 1)
		assert.Equal(t, syncer.StepAddTeam, steps[0].Kind)
		assert.Equal(t, syncer.SlotAway, steps[0].Slot)
	})

	t.Run("full edit keeps the documented step order", func(t *testing.T) {
		desired := baseMatch()
		desired.Kickoff = desired.Kickoff.Add(time.Hour)
		desired.ArenaID = "a2"
		desired.HomeTeamID = "t3"
		desired.AwayTeamID = "t4"
		desired.Tournament = "copa del rey"

		steps := syncer.Plan(baseMatch(), desired)
		kinds := make([]syncer.StepKind, len(steps))
		for i, s := range steps {
			kinds[i] = s.Kind
		}
		assert.Equal(t, []syncer.StepKind{
			syncer.StepSetTime,
			syncer.StepSetArena,
			syncer.StepRemoveTeam,
			syncer.StepAddTeam,
			syncer.StepRemoveTeam,
			syncer.StepAddTeam,
			syncer.StepSetTournament,
		}, kinds)
		assert.Equal(t, "Copa Del Rey", steps[6].Tournament)
	})

	t.Run("label differing only in normalization produces no step", func(t *testing.T) {
		desired := baseMatch()
		desired.Tournament = "  el   CLASICO "
		assert.Empty(t, syncer.Plan(baseMatch(), desired))
	})
}

func TestApply(t *testing.T) {
	t.Run("executes steps in order against the client", func(t *testing.T) {
		client := matchapi.NewMockClient()
		desired := baseMatch()
		desired.Kickoff = desired.Kickoff.Add(time.Hour)
		desired.HomeTeamID = "t3"

		err := syncer.Apply(context.Background(), client, "m1", syncer.Plan(baseMatch(), desired))
		require.NoError(t, err)

		assert.Equal(t, []string{
			"SetMatchTime",
			"RemoveTeamFromMatch:t1",
			"AddTeamToMatch:t3",
		}, client.Journal)
		require.Len(t, client.SetMatchTimeCalls, 1)
		assert.Equal(t, "m1", client.SetMatchTimeCalls[0].MatchID)
	})

	t.Run("time-only edit issues exactly one remote call", func(t *testing.T) {
		client := matchapi.NewMockClient()
		desired := baseMatch()
		desired.Kickoff = desired.Kickoff.Add(time.Hour)

		err := syncer.Apply(context.Background(), client, "m1", syncer.Plan(baseMatch(), desired))
		require.NoError(t, err)

		assert.Len(t, client.Journal, 1)
		assert.Len(t, client.SetMatchTimeCalls, 1)
		assert.Empty(t, client.SetMatchArenaCalls)
		assert.Empty(t, client.AddTeamToMatchCalls)
		assert.Empty(t, client.RemoveTeamFromMatchCalls)
	})

	t.Run("arena failure stops team and tournament steps", func(t *testing.T) {
		client := matchapi.NewMockClient()
		client.SetMatchArenaFunc = func(ctx context.Context, matchID, arenaID string) (matchapi.Match, error) {
			return matchapi.Match{}, errors.New("arena not found")
		}

		desired := baseMatch()
		desired.Kickoff = desired.Kickoff.Add(time.Hour)
		desired.ArenaID = "a2"
		desired.HomeTeamID = "t3"
		desired.Tournament = "copa del rey"

		err := syncer.Apply(context.Background(), client, "m1", syncer.Plan(baseMatch(), desired))
		require.Error(t, err)

		var partial *syncer.PartialSyncFailure
		require.ErrorAs(t, err, &partial)
		assert.Equal(t, syncer.StepSetArena, partial.Failed.Kind)
		require.Len(t, partial.Applied, 1)
		assert.Equal(t, syncer.StepSetTime, partial.Applied[0].Kind)

		// Steps after the failure were never attempted.
		assert.Empty(t, client.RemoveTeamFromMatchCalls)
		assert.Empty(t, client.AddTeamToMatchCalls)
		assert.Empty(t, client.UpdateMatchCalls)
	})

	t.Run("add failure after a successful remove reports the add step", func(t *testing.T) {
		client := matchapi.NewMockClient()
		client.AddTeamToMatchFunc = func(ctx context.Context, matchID, teamID string) (matchapi.Match, error) {
			return matchapi.Match{}, errors.New("slot conflict")
		}

		desired := baseMatch()
		desired.HomeTeamID = "t3"

		err := syncer.Apply(context.Background(), client, "m1", syncer.Plan(baseMatch(), desired))
		var partial *syncer.PartialSyncFailure
		require.ErrorAs(t, err, &partial)
		assert.Equal(t, syncer.StepAddTeam, partial.Failed.Kind)
		require.Len(t, partial.Applied, 1)
		assert.Equal(t, syncer.StepRemoveTeam, partial.Applied[0].Kind)
		// The remove is committed server-side; no compensating re-add is issued.
		assert.Len(t, client.RemoveTeamFromMatchCalls, 1)
		assert.Len(t, client.AddTeamToMatchCalls, 1)
	})
}
