package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/everolfe/matchday/internal/metrics"
	"github.com/everolfe/matchday/internal/notifier"
	"github.com/everolfe/matchday/internal/syncer"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// Implement the Notifier interface
func (s *Notifier) SendMatchScheduled(notice *notifier.MatchNotice, dryRun bool) error {
	msg := s.formatMatchScheduled(notice)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendCreateFailure(entity, detail string, cause error, dryRun bool) error {
	msg := s.formatCreateFailure(entity, detail, cause)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendSyncFailure(failure *syncer.PartialSyncFailure, dryRun bool) error {
	msg := s.formatSyncFailure(failure)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// formatMatchScheduled creates the Slack message for a newly scheduled match using Block Kit.
func (s *Notifier) formatMatchScheduled(notice *notifier.MatchNotice) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "⚽ New match scheduled! ⚽", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("%s vs %s\nKickoff: %s",
		notice.HomeTeam,
		notice.AwayTeam,
		notice.Kickoff.Format("Monday 02 Jan, 15:04"),
	)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	var contextElements []slack.MixedElement
	if notice.Tournament != "" {
		contextElements = append(contextElements, slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏆 %s", notice.Tournament), true, false))
	}
	if notice.ArenaCity != "" {
		contextElements = append(contextElements, slack.NewTextBlockObject("plain_text", fmt.Sprintf("📍 %s", notice.ArenaCity), true, false))
	}
	if len(contextElements) > 0 {
		blocks = append(blocks, slack.NewContextBlock("", contextElements...))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatCreateFailure creates the Slack message for a rolled-back create.
func (s *Notifier) formatCreateFailure(entity, detail string, cause error) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "❌ Create rolled back", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("Could not create %s: %s", entity, detail)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	if cause != nil {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject("plain_text", cause.Error(), true, false),
		))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatSyncFailure creates the Slack message for a sync that stopped partway.
// The applied steps are listed so an operator can see exactly what the server
// committed before the failure.
func (s *Notifier) formatSyncFailure(failure *syncer.PartialSyncFailure) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "⚠️ Match sync stopped partway", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("Match: %s\nFailed step: %s", failure.MatchID, failure.Failed)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	if len(failure.Applied) > 0 {
		applied := make([]string, len(failure.Applied))
		for i, step := range failure.Applied {
			applied[i] = fmt.Sprintf("• %s", step)
		}
		appliedText := "Already applied:\n" + strings.Join(applied, "\n")
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", appliedText, true, false), nil, nil))
	}

	if failure.Err != nil {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject("plain_text", failure.Err.Error(), true, false),
		))
	}

	return slack.NewBlockMessage(blocks...)
}
