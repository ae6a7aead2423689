package service

import (
	"context"
	"fmt"
	"log"

	"github.com/diegoclair/corrupted-zone-bot/internal/domain"
	"github.com/diegoclair/corrupted-zone-bot/internal/domain/contract"
	"github.com/diegoclair/corrupted-zone-bot/internal/domain/entity"
)

type zoneService struct {
	dm     contract.DataManager
	oracle contract.ScheduleOracle
	clock  contract.Clock
}

func newZoneService(dm contract.DataManager, oracle contract.ScheduleOracle, clock contract.Clock) *zoneService {
	return &zoneService{
		dm:     dm,
		oracle: oracle,
		clock:  clock,
	}
}

// StatusMessage renders the active window and the next four. It never
// touches alert state.
func (s *zoneService) StatusMessage() string {
	now := s.clock.Now()
	return FormatStatus(s.oracle.Upcoming(now, domain.StatusDepth), now)
}

// NextOccurrence resolves query to a zone and finds its next window. The bool
// is false when the zone does not occur within MaxLookahead windows.
func (s *zoneService) NextOccurrence(query string) (entity.ZoneInfo, bool, error) {
	zone, err := domain.LookupZone(query)
	if err != nil {
		return entity.ZoneInfo{}, false, err
	}

	info, ok := s.oracle.FindNext(s.clock.Now(), zone, domain.MaxLookahead)
	return info, ok, nil
}

// Subscribe registers a channel for alerts. It returns true when the channel
// was not subscribed before.
func (s *zoneService) Subscribe(slackChannelID, channelName, teamID string) (bool, error) {
	created := false

	err := s.dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		channel, err := tx.Channel().GetBySlackID(slackChannelID)
		if err != nil {
			return fmt.Errorf("failed to check channel: %w", err)
		}

		if channel == nil {
			channel = &entity.Channel{
				SlackChannelID:   slackChannelID,
				SlackChannelName: channelName,
				SlackTeamID:      teamID,
				IsActive:         true,
			}
			if err := tx.Channel().Create(channel); err != nil {
				return fmt.Errorf("failed to create channel: %w", err)
			}
			created = true
			return nil
		}

		if channel.IsActive {
			return nil
		}

		channel.IsActive = true
		channel.SlackChannelName = channelName
		if err := tx.Channel().Update(channel); err != nil {
			return fmt.Errorf("failed to update channel: %w", err)
		}
		created = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if created {
		log.Printf("Channel %s subscribed to zone alerts", slackChannelID)
	}
	return created, nil
}

func (s *zoneService) Unsubscribe(slackChannelID string) error {
	channel, err := s.dm.Channel().GetBySlackID(slackChannelID)
	if err != nil {
		return fmt.Errorf("failed to check channel: %w", err)
	}

	if channel == nil || !channel.IsActive {
		return fmt.Errorf("channel is not subscribed")
	}

	channel.IsActive = false
	if err := s.dm.Channel().Update(channel); err != nil {
		return fmt.Errorf("failed to update channel: %w", err)
	}

	log.Printf("Channel %s unsubscribed from zone alerts", slackChannelID)
	return nil
}
