package scheduler

import (
	"github.com/charmbracelet/log"
	"github.com/everolfe/matchday/internal/domain"
	"github.com/everolfe/matchday/internal/notifier"
	"github.com/everolfe/matchday/internal/pubsub"
	"github.com/everolfe/matchday/internal/syncer"
)

// Outbound side channels. Publish and notification failures never fail the
// operation that triggered them; they are logged and dropped.

func (s *Scheduler) publish(topic pubsub.EventType, data any) {
	if s.events == nil {
		return
	}
	if err := s.events.SendMessage(topic, data); err != nil {
		log.Error("Failed to publish event", "topic", topic, "error", err)
	}
}

func (s *Scheduler) notifyCreateFailure(entity, detail string, cause error) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.SendCreateFailure(entity, detail, cause, false); err != nil {
		log.Error("Failed to send create-failure notification", "entity", entity, "error", err)
	}
}

func (s *Scheduler) notifyMatchScheduled(match domain.Match) {
	if s.notifier == nil {
		return
	}
	notice := &notifier.MatchNotice{
		MatchID:    match.ID,
		Tournament: match.Tournament,
		Kickoff:    match.Kickoff,
	}
	if arena, ok := s.arenas.Get(match.ArenaID); ok {
		notice.ArenaCity = arena.City
	}
	if team, ok := s.teams.Get(match.HomeTeamID); ok {
		notice.HomeTeam = team.Name
	}
	if team, ok := s.teams.Get(match.AwayTeamID); ok {
		notice.AwayTeam = team.Name
	}
	if err := s.notifier.SendMatchScheduled(notice, false); err != nil {
		log.Error("Failed to send match-scheduled notification", "matchID", match.ID, "error", err)
	}
}

func (s *Scheduler) notifySyncFailure(failure *syncer.PartialSyncFailure) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.SendSyncFailure(failure, false); err != nil {
		log.Error("Failed to send sync-failure notification", "matchID", failure.MatchID, "error", err)
	}
}

func matchEvent(m domain.Match) pubsub.MatchEvent {
	return pubsub.MatchEvent{
		MatchID:    m.ID,
		Tournament: m.Tournament,
		Kickoff:    domain.FormatLocalTime(m.Kickoff),
		ArenaID:    m.ArenaID,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
	}
}

func syncFailedEvent(f *syncer.PartialSyncFailure) pubsub.SyncFailedEvent {
	applied := make([]string, len(f.Applied))
	for i, step := range f.Applied {
		applied[i] = step.String()
	}
	return pubsub.SyncFailedEvent{
		MatchID:    f.MatchID,
		Applied:    applied,
		FailedStep: f.Failed.String(),
		Reason:     f.Err.Error(),
	}
}
