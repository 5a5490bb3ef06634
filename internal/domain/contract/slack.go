package contract

import "github.com/slack-go/slack"

// SlackClient is the part of the Slack API the notifier uses.
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// PostMessage sends a message to a Slack channel
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}
