package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/everolfe/matchday/internal/cache"
	"github.com/everolfe/matchday/internal/domain"
	"github.com/everolfe/matchday/internal/matchapi"
	"github.com/everolfe/matchday/internal/metrics"
	"github.com/everolfe/matchday/internal/notifier"
	"github.com/everolfe/matchday/internal/pubsub"
	"github.com/everolfe/matchday/internal/scheduler"
	"github.com/everolfe/matchday/internal/snapshot"
	"github.com/everolfe/matchday/internal/syncer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	sched    *scheduler.Scheduler
	client   *matchapi.MockClient
	notifier *notifier.Mock
	metrics  *metrics.Mock
	events   *pubsub.MockPubSubClient
	snapshot *snapshot.Mock
}

func localTime(s string) time.Time {
	t, err := domain.ParseLocalTime(s)
	if err != nil {
		panic(err)
	}
	return t
}

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

// newFixture builds a scheduler over a mock backend pre-seeded with two
// arenas, three teams, three players and one match, refreshed once. The mock
// journal is reset after the seed refresh so tests observe only their own
// calls.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	client := matchapi.NewMockClient()
	client.ListArenasFunc = func(ctx context.Context) ([]matchapi.Arena, error) {
		return []matchapi.Arena{
			{ID: "a1", City: "Madrid", Capacity: 80000},
			{ID: "a2", City: "Barcelona", Capacity: 99000},
		}, nil
	}
	client.ListTeamsFunc = func(ctx context.Context) ([]matchapi.Team, error) {
		return []matchapi.Team{
			{ID: "t1", Name: "Barcelona", Country: "Spain", Players: []matchapi.Player{{ID: "p1"}}},
			{ID: "t2", Name: "Real Madrid", Country: "Spain", Players: []matchapi.Player{{ID: "p2"}}},
			{ID: "t3", Name: "Sevilla", Country: "Spain"},
		}, nil
	}
	client.ListPlayersFunc = func(ctx context.Context) ([]matchapi.Player, error) {
		return []matchapi.Player{
			{ID: "p1", Name: "Pedri", Age: 23, Country: "Spain", TeamID: "t1"},
			{ID: "p2", Name: "Vinicius", Age: 26, Country: "Brazil", TeamID: "t2"},
			{ID: "p3", Name: "Unsigned", Age: 30, Country: "Spain"},
		}, nil
	}
	client.ListMatchesFunc = func(ctx context.Context) ([]matchapi.Match, error) {
		return []matchapi.Match{
			{
				ID:         "m1",
				DateTime:   "2026-07-08T20:00:00",
				Tournament: "La Liga",
				Arena:      &matchapi.Arena{ID: "a1", City: "Madrid", Capacity: 80000},
				Teams: []matchapi.Team{
					{ID: "t1", Name: "Barcelona"},
					{ID: "t2", Name: "Real Madrid"},
				},
			},
		}, nil
	}

	notif := notifier.NewMock()
	mets := metrics.NewMock()
	events := pubsub.NewMock("test-project")
	snap := snapshot.NewMock()

	sched := scheduler.New(client, snap, notif, mets, events)
	require.NoError(t, sched.Refresh(context.Background()))
	client.Reset()

	return &fixture{sched: sched, client: client, notifier: notif, metrics: mets, events: events, snapshot: snap}
}

func TestRefresh(t *testing.T) {
	f := newFixture(t)

	assert.Len(t, f.sched.Arenas(), 2)
	assert.Len(t, f.sched.Teams(), 3)
	assert.Len(t, f.sched.Players(), 3)
	require.Len(t, f.sched.Matches(), 1)

	match := f.sched.Matches()[0]
	assert.Equal(t, "m1", match.ID)
	assert.Equal(t, "La Liga", match.Tournament)
	assert.Equal(t, "a1", match.ArenaID)
	assert.Equal(t, "t1", match.HomeTeamID)
	assert.Equal(t, "t2", match.AwayTeamID)
	assert.True(t, match.Kickoff.Equal(localTime("2026-07-08T20:00:00")))

	assert.Equal(t, 1, f.metrics.RefreshRuns())

	// The authoritative lists were persisted to the snapshot store.
	assert.Len(t, f.snapshot.Arenas, 2)
	assert.Len(t, f.snapshot.Matches, 1)
	_, ok, err := f.snapshot.RefreshedAt()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRefresh_FailureKeepsPreviousState(t *testing.T) {
	f := newFixture(t)

	f.client.ListTeamsFunc = func(ctx context.Context) ([]matchapi.Team, error) {
		return nil, errors.New("backend down")
	}
	err := f.sched.Refresh(context.Background())
	require.Error(t, err)

	assert.Len(t, f.sched.Teams(), 3, "failed refresh must not clear the loaded collections")
	assert.Equal(t, 1, f.metrics.RefreshRuns(), "a failed refresh does not count")
}

func TestCreateArena(t *testing.T) {
	t.Run("validation failure issues zero remote calls", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.sched.CreateArena(context.Background(), domain.ArenaDraft{City: "Valencia"})
		var missing *domain.MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "capacity", missing.Field)
		assert.Empty(t, f.client.Journal)

		_, err = f.sched.CreateArena(context.Background(), domain.ArenaDraft{City: "Valencia", Capacity: intPtr(-1)})
		var invalid *domain.InvalidValueError
		require.ErrorAs(t, err, &invalid)
		assert.Empty(t, f.client.Journal)
	})

	t.Run("success resolves the provisional record", func(t *testing.T) {
		f := newFixture(t)
		f.client.CreateArenaFunc = func(ctx context.Context, req matchapi.ArenaRequest) (matchapi.Arena, error) {
			return matchapi.Arena{ID: "a9", City: req.City, Capacity: req.Capacity}, nil
		}

		arena, err := f.sched.CreateArena(context.Background(), domain.ArenaDraft{City: "Valencia", Capacity: intPtr(49000)})
		require.NoError(t, err)
		assert.Equal(t, "a9", arena.ID)

		list := f.sched.Arenas()
		require.Len(t, list, 3)
		assert.Equal(t, "a9", list[2].ID, "resolved record sits where the provisional one was appended")
		assert.False(t, cache.IsProvisionalID(list[2].ID))
		assert.Equal(t, 1, f.metrics.OptimisticCreates())
		assert.Equal(t, 0, f.metrics.OptimisticRollbacks())
	})

	t.Run("remote failure rolls back to the exact prior state", func(t *testing.T) {
		f := newFixture(t)
		before := f.sched.Arenas()
		f.client.CreateArenaFunc = func(ctx context.Context, req matchapi.ArenaRequest) (matchapi.Arena, error) {
			return matchapi.Arena{}, errors.New("duplicate city")
		}

		_, err := f.sched.CreateArena(context.Background(), domain.ArenaDraft{City: "Valencia", Capacity: intPtr(49000)})
		var remote *domain.RemoteOpError
		require.ErrorAs(t, err, &remote)
		assert.Equal(t, "create", remote.Op)
		assert.Equal(t, "arena", remote.Entity)

		assert.Equal(t, before, f.sched.Arenas())
		assert.Equal(t, 1, f.metrics.OptimisticRollbacks())
		require.Len(t, f.notifier.SendCreateFailureCalls, 1)
		assert.Equal(t, "arena", f.notifier.SendCreateFailureCalls[0].Entity)
	})
}

func TestCreateMatch(t *testing.T) {
	validDraft := func() domain.MatchDraft {
		return domain.MatchDraft{
			Kickoff:    timePtr(localTime("2026-08-01T18:00:00")),
			Tournament: "copa del rey",
			ArenaID:    "a2",
			HomeTeamID: "t1",
			AwayTeamID: "t3",
		}
	}

	t.Run("duplicate team slot is rejected before any remote call", func(t *testing.T) {
		f := newFixture(t)
		draft := validDraft()
		draft.AwayTeamID = draft.HomeTeamID

		_, err := f.sched.CreateMatch(context.Background(), draft)
		require.ErrorIs(t, err, domain.ErrDuplicateTeamSlot)
		assert.Empty(t, f.client.Journal)
	})

	t.Run("unknown references are rejected before any remote call", func(t *testing.T) {
		f := newFixture(t)
		draft := validDraft()
		draft.ArenaID = "a99"

		_, err := f.sched.CreateMatch(context.Background(), draft)
		require.ErrorIs(t, err, scheduler.ErrUnknownArena)
		assert.Empty(t, f.client.Journal)
	})

	t.Run("success normalizes the tournament and publishes the event", func(t *testing.T) {
		f := newFixture(t)
		f.client.CreateMatchFunc = func(ctx context.Context, req matchapi.MatchRequest) (matchapi.Match, error) {
			return matchapi.Match{
				ID:         "m9",
				DateTime:   req.DateTime,
				Tournament: req.Tournament,
				Arena:      &matchapi.Arena{ID: req.ArenaID},
				Teams:      []matchapi.Team{{ID: req.HomeTeamID}, {ID: req.AwayTeamID}},
			}, nil
		}

		match, err := f.sched.CreateMatch(context.Background(), validDraft())
		require.NoError(t, err)
		assert.Equal(t, "m9", match.ID)
		assert.Equal(t, "Copa Del Rey", match.Tournament)

		require.Len(t, f.client.CreateMatchCalls, 1)
		assert.Equal(t, "2026-08-01T18:00:00", f.client.CreateMatchCalls[0].DateTime)
		assert.Equal(t, "Copa Del Rey", f.client.CreateMatchCalls[0].Tournament)

		require.Len(t, f.events.SendMessageCalls, 1)
		assert.Equal(t, "match-created", f.events.SendMessageCalls[0].Topic)

		require.Len(t, f.notifier.SendMatchScheduledCalls, 1)
		assert.Equal(t, "Barcelona", f.notifier.SendMatchScheduledCalls[0].HomeTeam)
		assert.Equal(t, "Sevilla", f.notifier.SendMatchScheduledCalls[0].AwayTeam)
	})

	t.Run("remote failure rolls back and notifies", func(t *testing.T) {
		f := newFixture(t)
		before := f.sched.Matches()
		f.client.CreateMatchFunc = func(ctx context.Context, req matchapi.MatchRequest) (matchapi.Match, error) {
			return matchapi.Match{}, errors.New("arena occupied")
		}

		_, err := f.sched.CreateMatch(context.Background(), validDraft())
		var remote *domain.RemoteOpError
		require.ErrorAs(t, err, &remote)
		assert.Equal(t, before, f.sched.Matches())
		assert.Empty(t, f.events.SendMessageCalls)
		require.Len(t, f.notifier.SendCreateFailureCalls, 1)
		assert.Equal(t, "Barcelona vs Sevilla", f.notifier.SendCreateFailureCalls[0].Detail)
	})
}

func TestCreateTeamsBulk(t *testing.T) {
	t.Run("one bad draft fails the whole batch locally", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.sched.CreateTeamsBulk(context.Background(), []domain.TeamDraft{
			{Name: "Valencia", Country: "Spain"},
			{Name: "", Country: "Spain"},
		})
		var missing *domain.MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Empty(t, f.client.Journal)
	})

	t.Run("success resolves every provisional record in order", func(t *testing.T) {
		f := newFixture(t)
		f.client.CreateTeamsBulkFunc = func(ctx context.Context, reqs []matchapi.TeamRequest) ([]matchapi.Team, error) {
			out := make([]matchapi.Team, len(reqs))
			for i, req := range reqs {
				out[i] = matchapi.Team{ID: "bulk-" + req.Name, Name: req.Name, Country: req.Country}
			}
			return out, nil
		}

		created, err := f.sched.CreateTeamsBulk(context.Background(), []domain.TeamDraft{
			{Name: "Valencia", Country: "Spain"},
			{Name: "Betis", Country: "Spain"},
		})
		require.NoError(t, err)
		require.Len(t, created, 2)

		list := f.sched.Teams()
		require.Len(t, list, 5)
		assert.Equal(t, "bulk-Valencia", list[3].ID)
		assert.Equal(t, "bulk-Betis", list[4].ID)
	})

	t.Run("remote failure drops every provisional record", func(t *testing.T) {
		f := newFixture(t)
		before := f.sched.Teams()
		f.client.CreateTeamsBulkFunc = func(ctx context.Context, reqs []matchapi.TeamRequest) ([]matchapi.Team, error) {
			return nil, errors.New("backend down")
		}

		_, err := f.sched.CreateTeamsBulk(context.Background(), []domain.TeamDraft{
			{Name: "Valencia", Country: "Spain"},
			{Name: "Betis", Country: "Spain"},
		})
		require.Error(t, err)
		assert.Equal(t, before, f.sched.Teams())
		assert.Equal(t, 2, f.metrics.OptimisticRollbacks())
	})
}

func TestEditMatch(t *testing.T) {
	timeOnlyDraft := domain.MatchDraft{
		Kickoff:    timePtr(localTime("2026-07-08T21:00:00")),
		Tournament: "La Liga",
		ArenaID:    "a1",
		HomeTeamID: "t1",
		AwayTeamID: "t2",
	}

	t.Run("time-only edit issues exactly one mutation call", func(t *testing.T) {
		f := newFixture(t)

		result, err := f.sched.EditMatch(context.Background(), "m1", timeOnlyDraft, false)
		require.NoError(t, err)
		require.Len(t, result.Plan, 1)
		assert.Equal(t, syncer.StepSetTime, result.Plan[0].Kind)

		require.Len(t, f.client.SetMatchTimeCalls, 1)
		assert.Equal(t, "2026-07-08T21:00:00", f.client.SetMatchTimeCalls[0].Time)
		assert.Empty(t, f.client.SetMatchArenaCalls)
		assert.Empty(t, f.client.AddTeamToMatchCalls)
		assert.Empty(t, f.client.RemoveTeamFromMatchCalls)
		assert.Empty(t, f.client.UpdateMatchCalls)

		// A full reload follows the applied plan.
		assert.Contains(t, f.client.Journal, "ListMatches")
		assert.Equal(t, 2, f.metrics.RefreshRuns())
	})

	t.Run("identical desired state issues no remote calls", func(t *testing.T) {
		f := newFixture(t)
		draft := timeOnlyDraft
		draft.Kickoff = timePtr(localTime("2026-07-08T20:00:00"))

		result, err := f.sched.EditMatch(context.Background(), "m1", draft, false)
		require.NoError(t, err)
		assert.Empty(t, result.Plan)
		assert.Empty(t, f.client.Journal)
	})

	t.Run("dry run returns the plan without applying it", func(t *testing.T) {
		f := newFixture(t)
		draft := timeOnlyDraft
		draft.ArenaID = "a2"

		result, err := f.sched.EditMatch(context.Background(), "m1", draft, true)
		require.NoError(t, err)
		assert.True(t, result.DryRun)
		require.Len(t, result.Plan, 2)
		assert.Equal(t, syncer.StepSetTime, result.Plan[0].Kind)
		assert.Equal(t, syncer.StepSetArena, result.Plan[1].Kind)
		assert.Empty(t, f.client.Journal)
	})

	t.Run("home team swap removes the old team before adding the new one", func(t *testing.T) {
		f := newFixture(t)
		draft := domain.MatchDraft{
			Kickoff:    timePtr(localTime("2026-07-08T20:00:00")),
			Tournament: "La Liga",
			ArenaID:    "a1",
			HomeTeamID: "t3",
			AwayTeamID: "t2",
		}

		_, err := f.sched.EditMatch(context.Background(), "m1", draft, false)
		require.NoError(t, err)

		require.Len(t, f.client.RemoveTeamFromMatchCalls, 1)
		assert.Equal(t, "t1", f.client.RemoveTeamFromMatchCalls[0].OtherID)
		require.Len(t, f.client.AddTeamToMatchCalls, 1)
		assert.Equal(t, "t3", f.client.AddTeamToMatchCalls[0].OtherID)

		removeIdx, addIdx := -1, -1
		for i, entry := range f.client.Journal {
			switch entry {
			case "RemoveTeamFromMatch:t1":
				removeIdx = i
			case "AddTeamToMatch:t3":
				addIdx = i
			}
		}
		require.NotEqual(t, -1, removeIdx)
		require.NotEqual(t, -1, addIdx)
		assert.Less(t, removeIdx, addIdx, "removal must precede addition for the slot")
	})

	t.Run("arena step failure stops the run and reports a partial sync", func(t *testing.T) {
		f := newFixture(t)
		draft := domain.MatchDraft{
			Kickoff:    timePtr(localTime("2026-07-08T21:00:00")),
			Tournament: "La Liga",
			ArenaID:    "a2",
			HomeTeamID: "t3",
			AwayTeamID: "t2",
		}
		f.client.SetMatchArenaFunc = func(ctx context.Context, matchID, arenaID string) (matchapi.Match, error) {
			return matchapi.Match{}, errors.New("arena occupied")
		}

		_, err := f.sched.EditMatch(context.Background(), "m1", draft, false)
		var partial *syncer.PartialSyncFailure
		require.ErrorAs(t, err, &partial)
		assert.Equal(t, syncer.StepSetArena, partial.Failed.Kind)
		require.Len(t, partial.Applied, 1)
		assert.Equal(t, syncer.StepSetTime, partial.Applied[0].Kind)

		assert.Empty(t, f.client.AddTeamToMatchCalls, "steps after the failure are never attempted")
		assert.Empty(t, f.client.RemoveTeamFromMatchCalls)
		assert.Empty(t, f.client.UpdateMatchCalls)

		assert.Equal(t, 1, f.metrics.PartialSyncs())
		require.Len(t, f.notifier.SendSyncFailureCalls, 1)
		require.Len(t, f.events.SendMessageCalls, 1)
		assert.Equal(t, "sync-failed", f.events.SendMessageCalls[0].Topic)

		// The collections were reloaded so callers see the committed prefix.
		assert.Contains(t, f.client.Journal, "ListMatches")
	})

	t.Run("unknown match is rejected before validation", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.sched.EditMatch(context.Background(), "m99", timeOnlyDraft, false)
		require.ErrorIs(t, err, scheduler.ErrUnknownMatch)
		assert.Empty(t, f.client.Journal)
	})
}

func TestSearches(t *testing.T) {
	t.Run("blank tournament query is rejected locally", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.sched.SearchMatchesByTournament(context.Background(), "   ")
		require.ErrorIs(t, err, domain.ErrEmptyQuery)
		assert.Empty(t, f.client.Journal)
	})

	t.Run("tournament query reaches the backend verbatim", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.sched.SearchMatchesByTournament(context.Background(), "liga")
		require.NoError(t, err)
		require.Len(t, f.client.SearchTournamentCalls, 1)
		assert.Equal(t, "liga", f.client.SearchTournamentCalls[0])
		assert.Equal(t, 1, f.metrics.Searches())
	})

	t.Run("date range requires at least one bound", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.sched.SearchMatchesByDateRange(context.Background(), nil, nil)
		require.ErrorIs(t, err, domain.ErrEmptyRange)
		assert.Empty(t, f.client.Journal)
	})

	t.Run("date bounds widen to calendar-day edges", func(t *testing.T) {
		f := newFixture(t)
		day := localTime("2024-05-01T13:45:00")

		_, err := f.sched.SearchMatchesByDateRange(context.Background(), timePtr(day), timePtr(day))
		require.NoError(t, err)
		require.Len(t, f.client.SearchDateRangeCalls, 1)
		assert.Equal(t, "2024-05-01T00:00:00", f.client.SearchDateRangeCalls[0].Start)
		assert.Equal(t, "2024-05-01T23:59:59", f.client.SearchDateRangeCalls[0].End)
	})

	t.Run("one-sided range leaves the other side unconstrained", func(t *testing.T) {
		f := newFixture(t)
		day := localTime("2024-05-01T00:00:00")

		_, err := f.sched.SearchMatchesByDateRange(context.Background(), timePtr(day), nil)
		require.NoError(t, err)
		require.Len(t, f.client.SearchDateRangeCalls, 1)
		assert.Equal(t, "2024-05-01T00:00:00", f.client.SearchDateRangeCalls[0].Start)
		assert.Empty(t, f.client.SearchDateRangeCalls[0].End)
	})

	t.Run("capacity search defaults to the full range", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.sched.SearchArenasByCapacity(context.Background(), nil, nil)
		require.NoError(t, err)
		require.Len(t, f.client.SearchArenasByCapacityCalls, 1)
		assert.Equal(t, 0, f.client.SearchArenasByCapacityCalls[0].Min)
		assert.Equal(t, 100000, f.client.SearchArenasByCapacityCalls[0].Max)
	})

	t.Run("capacity search passes explicit bounds", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.sched.SearchArenasByCapacity(context.Background(), intPtr(40000), intPtr(90000))
		require.NoError(t, err)
		require.Len(t, f.client.SearchArenasByCapacityCalls, 1)
		assert.Equal(t, 40000, f.client.SearchArenasByCapacityCalls[0].Min)
		assert.Equal(t, 90000, f.client.SearchArenasByCapacityCalls[0].Max)
	})
}

func TestFilterMatchesLocal(t *testing.T) {
	f := newFixture(t)

	assert.Len(t, f.sched.FilterMatchesLocal("liga"), 1, "matches by tournament label")
	assert.Len(t, f.sched.FilterMatchesLocal("madrid"), 1, "matches by arena city and team name")
	assert.Len(t, f.sched.FilterMatchesLocal("sevilla"), 0)
	assert.Len(t, f.sched.FilterMatchesLocal(""), 1, "blank term keeps everything")
	assert.Empty(t, f.client.Journal, "local filtering never calls the backend")
}

func TestRosterMoves(t *testing.T) {
	t.Run("moving an affiliated player removes before adding", func(t *testing.T) {
		f := newFixture(t)
		f.client.AddPlayerToTeamFunc = func(ctx context.Context, teamID, playerID string) (matchapi.Team, error) {
			return matchapi.Team{ID: teamID, Name: "Sevilla", Country: "Spain", Players: []matchapi.Player{{ID: playerID}}}, nil
		}

		team, err := f.sched.AssignPlayerToTeam(context.Background(), "p1", "t3")
		require.NoError(t, err)
		assert.Equal(t, []string{"p1"}, team.PlayerIDs)

		require.Len(t, f.client.RemovePlayerFromTeamCalls, 1)
		assert.Equal(t, "t1", f.client.RemovePlayerFromTeamCalls[0].ID)
		require.Len(t, f.client.AddPlayerToTeamCalls, 1)
		assert.Equal(t, "t3", f.client.AddPlayerToTeamCalls[0].ID)
		require.Len(t, f.client.Journal, 2)
		assert.Equal(t, "RemovePlayerFromTeam", f.client.Journal[0])
		assert.Equal(t, "AddPlayerToTeam", f.client.Journal[1])

		// Local collections reflect the confirmed move.
		players := f.sched.Players()
		assert.Equal(t, "t3", players[0].TeamID)
		for _, tm := range f.sched.Teams() {
			if tm.ID == "t1" {
				assert.NotContains(t, tm.PlayerIDs, "p1")
			}
		}
	})

	t.Run("moving an unaffiliated player skips the removal", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.sched.AssignPlayerToTeam(context.Background(), "p3", "t3")
		require.NoError(t, err)
		assert.Empty(t, f.client.RemovePlayerFromTeamCalls)
		require.Len(t, f.client.AddPlayerToTeamCalls, 1)
	})

	t.Run("assigning to the current team is a no-op", func(t *testing.T) {
		f := newFixture(t)

		team, err := f.sched.AssignPlayerToTeam(context.Background(), "p1", "t1")
		require.NoError(t, err)
		assert.Equal(t, "t1", team.ID)
		assert.Empty(t, f.client.Journal)
	})

	t.Run("add failure after removal is surfaced without compensation", func(t *testing.T) {
		f := newFixture(t)
		f.client.AddPlayerToTeamFunc = func(ctx context.Context, teamID, playerID string) (matchapi.Team, error) {
			return matchapi.Team{}, errors.New("roster full")
		}

		_, err := f.sched.AssignPlayerToTeam(context.Background(), "p1", "t3")
		var remote *domain.RemoteOpError
		require.ErrorAs(t, err, &remote)
		require.Len(t, f.client.RemovePlayerFromTeamCalls, 1)
		require.Len(t, f.client.AddPlayerToTeamCalls, 1)
		assert.Len(t, f.client.Journal, 2, "no compensating re-add is attempted")
	})
}

func TestDeletes(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.sched.DeleteMatch(context.Background(), "m1"))
	assert.Empty(t, f.sched.Matches())

	f.client.DeleteArenaFunc = func(ctx context.Context, id string) error {
		return errors.New("arena still referenced")
	}
	err := f.sched.DeleteArena(context.Background(), "a1")
	var remote *domain.RemoteOpError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "delete", remote.Op)
	assert.Len(t, f.sched.Arenas(), 2, "a rejected delete keeps the record")
}

func TestUpdateArena(t *testing.T) {
	f := newFixture(t)
	f.client.UpdateArenaFunc = func(ctx context.Context, id string, req matchapi.ArenaRequest) (matchapi.Arena, error) {
		return matchapi.Arena{ID: id, City: req.City, Capacity: req.Capacity}, nil
	}

	arena, err := f.sched.UpdateArena(context.Background(), "a1", domain.ArenaDraft{City: "Madrid", Capacity: intPtr(85000)})
	require.NoError(t, err)
	assert.Equal(t, 85000, arena.Capacity)

	got := f.sched.Arenas()[0]
	assert.Equal(t, 85000, got.Capacity)

	_, err = f.sched.UpdateArena(context.Background(), "a99", domain.ArenaDraft{City: "Nowhere", Capacity: intPtr(1)})
	require.ErrorIs(t, err, scheduler.ErrUnknownArena)
}
