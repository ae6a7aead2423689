package slack

import (
	"context"
	"fmt"

	"github.com/diegoclair/corrupted-zone-bot/internal/domain/contract"
	goslack "github.com/slack-go/slack"
	"golang.org/x/time/rate"
)

// Notifier posts alerts through the Slack Web API. Sends are paced by a
// shared limiter to stay under chat.postMessage rate limits.
type Notifier struct {
	client  contract.SlackClient
	limiter *rate.Limiter
}

func NewNotifier(client contract.SlackClient, messagesPerMinute int) *Notifier {
	if messagesPerMinute <= 0 {
		messagesPerMinute = 60
	}
	rps := float64(messagesPerMinute) / 60.0

	return &Notifier{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

func (n *Notifier) SendMessage(ctx context.Context, channelID, text string) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	_, _, err := n.client.PostMessageContext(ctx, channelID,
		goslack.MsgOptionText(text, false),
		goslack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	return nil
}
