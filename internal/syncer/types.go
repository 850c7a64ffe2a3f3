package syncer

import (
	"fmt"
	"strings"
)

// StepKind names one remote mutation in a sync plan.
type StepKind string

const (
	StepSetTime       StepKind = "set-time"
	StepSetArena      StepKind = "set-arena"
	StepRemoveTeam    StepKind = "remove-team"
	StepAddTeam       StepKind = "add-team"
	StepSetTournament StepKind = "set-tournament"
)

// Slot names which conceptual team slot a team step targets.
type Slot string

const (
	SlotHome Slot = "home"
	SlotAway Slot = "away"
)

// Step is one remote call in a sync plan. Exactly one of the value fields is
// meaningful depending on Kind.
type Step struct {
	Kind       StepKind `json:"kind"`
	Slot       Slot     `json:"slot,omitempty"`
	TeamID     string   `json:"teamId,omitempty"`
	ArenaID    string   `json:"arenaId,omitempty"`
	LocalTime  string   `json:"time,omitempty"`
	Tournament string   `json:"tournamentName,omitempty"`
}

func (s Step) String() string {
	switch s.Kind {
	case StepSetTime:
		return fmt.Sprintf("%s(%s)", s.Kind, s.LocalTime)
	case StepSetArena:
		return fmt.Sprintf("%s(%s)", s.Kind, s.ArenaID)
	case StepRemoveTeam, StepAddTeam:
		return fmt.Sprintf("%s(%s,%s)", s.Kind, s.Slot, s.TeamID)
	case StepSetTournament:
		return fmt.Sprintf("%s(%s)", s.Kind, s.Tournament)
	}
	return string(s.Kind)
}

// PartialSyncFailure reports a sync run that stopped partway. Steps in
// Applied are committed on the server; steps after Failed were never
// attempted. The match is left in a prefix of the desired state, so callers
// must re-read and re-attempt the remainder rather than assume a clean
// rollback.
type PartialSyncFailure struct {
	MatchID string
	Applied []Step
	Failed  Step
	Err     error
}

func (e *PartialSyncFailure) Error() string {
	applied := make([]string, len(e.Applied))
	for i, s := range e.Applied {
		applied[i] = s.String()
	}
	return fmt.Sprintf("sync of match %s failed at step %s after [%s]: %v",
		e.MatchID, e.Failed, strings.Join(applied, " "), e.Err)
}

func (e *PartialSyncFailure) Unwrap() error {
	return e.Err
}
