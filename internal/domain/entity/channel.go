package entity

import "time"

// Channel is a Slack channel subscribed to zone alerts
type Channel struct {
	ID               int64
	SlackChannelID   string
	SlackChannelName string
	SlackTeamID      string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
