package contract

import (
	"context"

	"github.com/slack-go/slack"
)

//go:generate mockgen -destination=../../../mocks/mock_slack.go -package=mocks . SlackClient,Notifier

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// PostMessageContext sends a message to a Slack channel
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Notifier delivers a plain text message to a channel
type Notifier interface {
	SendMessage(ctx context.Context, channelID, text string) error
}
