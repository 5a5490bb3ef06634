// Package notify implements the notification backends.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
	"golang.org/x/time/rate"

	"github.com/diegoclair/form-window-bot/internal/domain/contract"
)

// SlackNotifier posts window notifications to a Slack channel.
type SlackNotifier struct {
	client  contract.SlackClient
	channel string
	limiter *rate.Limiter
	log     zerolog.Logger
}

func NewSlack(client contract.SlackClient, channel string, log zerolog.Logger) *SlackNotifier {
	return &SlackNotifier{
		client:  client,
		channel: channel,
		limiter: rate.NewLimiter(rate.Every(time.Second), 3),
		log:     log.With().Str("component", "notify").Logger(),
	}
}

// Send posts to the configured channel. A recipient that looks like a Slack
// conversation id overrides the default channel.
func (n *SlackNotifier) Send(recipient, subject, body string) error {
	if err := n.limiter.Wait(context.Background()); err != nil {
		return fmt.Errorf("failed to wait for rate limit: %w", err)
	}

	channel := n.channel
	if isConversationID(recipient) {
		channel = recipient
	}

	text := body
	if subject != "" {
		text = fmt.Sprintf("*%s*\n%s", subject, body)
	}

	if _, _, err := n.client.PostMessage(channel, slack.MsgOptionText(text, false)); err != nil {
		return fmt.Errorf("failed to post message: %w", err)
	}

	n.log.Debug().Str("channel", channel).Str("subject", subject).Msg("notification sent")
	return nil
}

// isConversationID reports whether s looks like a Slack channel, group, DM
// or user id.
func isConversationID(s string) bool {
	if len(s) < 2 {
		return false
	}

	switch s[0] {
	case 'C', 'G', 'D', 'U':
	default:
		return false
	}

	for _, c := range s[1:] {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}

	return true
}
