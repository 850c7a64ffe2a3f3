// Package syncer reconciles a match's associated state (kickoff time, arena,
// the two team slots, tournament label) with a desired state. Each
// association is mutated through an independent remote call with no shared
// transaction, so the plan is ordered to keep every intermediate server state
// sensible and the apply short-circuits on the first failure.
package syncer

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/everolfe/matchday/internal/domain"
	"github.com/everolfe/matchday/internal/matchapi"
)

// Plan computes the ordered remote calls that move a match from current to
// desired. Time first (least entangled), then arena, then each team slot as a
// remove-before-add pair, tournament label last. An unchanged field produces
// no step; an identical desired state produces an empty plan.
func Plan(current, desired domain.Match) []Step {
	var steps []Step

	if !current.Kickoff.Equal(desired.Kickoff) {
		steps = append(steps, Step{Kind: StepSetTime, LocalTime: domain.FormatLocalTime(desired.Kickoff)})
	}

	if current.ArenaID != desired.ArenaID {
		steps = append(steps, Step{Kind: StepSetArena, ArenaID: desired.ArenaID})
	}

	steps = append(steps, planSlot(SlotHome, current.HomeTeamID, desired.HomeTeamID)...)
	steps = append(steps, planSlot(SlotAway, current.AwayTeamID, desired.AwayTeamID)...)

	if want := domain.NormalizeTournament(desired.Tournament); want != domain.NormalizeTournament(current.Tournament) {
		steps = append(steps, Step{Kind: StepSetTournament, Tournament: want})
	}

	return steps
}

// planSlot emits the remove/add pair for one team slot. The removal of the
// old occupant always precedes the addition of the new one, so the match
// never holds two teams in the same slot. It may transiently hold zero.
func planSlot(slot Slot, currentID, desiredID string) []Step {
	if currentID == desiredID {
		return nil
	}
	var steps []Step
	if currentID != "" {
		steps = append(steps, Step{Kind: StepRemoveTeam, Slot: slot, TeamID: currentID})
	}
	if desiredID != "" {
		steps = append(steps, Step{Kind: StepAddTeam, Slot: slot, TeamID: desiredID})
	}
	return steps
}

// Apply executes the plan strictly in order, stopping at the first failure.
// Already-applied steps stay committed on the server; no compensating calls
// are issued. The returned error is a *PartialSyncFailure identifying the
// failed step.
func Apply(ctx context.Context, client matchapi.Client, matchID string, steps []Step) error {
	for i, step := range steps {
		log.Debug("Applying sync step", "matchID", matchID, "step", step.String())
		var err error
		switch step.Kind {
		case StepSetTime:
			_, err = client.SetMatchTime(ctx, matchID, step.LocalTime)
		case StepSetArena:
			_, err = client.SetMatchArena(ctx, matchID, step.ArenaID)
		case StepRemoveTeam:
			_, err = client.RemoveTeamFromMatch(ctx, matchID, step.TeamID)
		case StepAddTeam:
			_, err = client.AddTeamToMatch(ctx, matchID, step.TeamID)
		case StepSetTournament:
			_, err = client.UpdateMatch(ctx, matchID, matchapi.MatchUpdateRequest{Tournament: step.Tournament})
		}
		if err != nil {
			log.Error("Sync step failed, aborting remaining steps",
				"matchID", matchID, "step", step.String(), "applied", i, "remaining", len(steps)-i-1, "error", err)
			return &PartialSyncFailure{
				MatchID: matchID,
				Applied: steps[:i],
				Failed:  step,
				Err:     err,
			}
		}
	}
	if len(steps) > 0 {
		log.Info("Sync plan applied", "matchID", matchID, "steps", len(steps))
	}
	return nil
}
