package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/diegoclair/corrupted-zone-bot/internal/domain"
	"github.com/diegoclair/corrupted-zone-bot/internal/domain/contract"
	"github.com/diegoclair/corrupted-zone-bot/internal/domain/entity"
)

var ErrNoRecipients = errors.New("no channels to notify")

type scheduler struct {
	dm               contract.DataManager
	oracle           contract.ScheduleOracle
	notifier         contract.Notifier
	clock            contract.Clock
	defaultChannelID string

	activeAlert *alertPolicy
	cowAlert    *alertPolicy

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

func newScheduler(dm contract.DataManager, oracle contract.ScheduleOracle, notifier contract.Notifier, clock contract.Clock, defaultChannelID string) *scheduler {
	return &scheduler{
		dm:               dm,
		oracle:           oracle,
		notifier:         notifier,
		clock:            clock,
		defaultChannelID: defaultChannelID,
		activeAlert:      newAlertPolicy(domain.AlertTargetZoneActive),
		cowAlert:         newAlertPolicy(domain.AlertCowWarning),
	}
}

func (s *scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	log.Println("Scheduler starting...")
	go s.mainLoop(ctx, s.done)
}

// Stop cancels any in-flight delivery and waits for the loop to exit
func (s *scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	log.Println("Scheduler stopping...")
	cancel()
	<-done
}

// mainLoop runs every tick on a single goroutine, so ticks never overlap
func (s *scheduler) mainLoop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(domain.PollInterval)
	defer ticker.Stop()

	s.tick(ctx, s.clock.Now())

	for {
		select {
		case <-ticker.C:
			s.tick(ctx, s.clock.Now())
		case <-ctx.Done():
			return
		}
	}
}

// tick runs both checks against the same instant. They write disjoint state,
// so a failure in one never affects the other.
func (s *scheduler) tick(ctx context.Context, now time.Time) {
	s.checkActiveZone(ctx, now)
	s.checkUpcomingWarning(ctx, now)
}

func (s *scheduler) checkActiveZone(ctx context.Context, now time.Time) {
	current := s.oracle.ZoneAt(now, 0)

	fired, err := s.activeAlert.evaluate(current, domain.IsTargetZone(current.Zone), func() error {
		return s.broadcast(ctx, activeZoneMessage(current))
	})
	if err != nil {
		log.Printf("Failed to send active zone alert for %s (seed %d): %v", current.Zone, current.Seed, err)
		return
	}
	if fired {
		log.Printf("Active zone alert sent for %s (seed %d)", current.Zone, current.Seed)
	}
}

func (s *scheduler) checkUpcomingWarning(ctx context.Context, now time.Time) {
	next, ok := s.oracle.FindNext(now, domain.CowLevel, domain.MaxLookahead)
	if !ok {
		return
	}

	fired, err := s.cowAlert.evaluate(next, warningDue(next, now), func() error {
		return s.broadcast(ctx, upcomingWarningMessage(next, domain.WarningLeadTime))
	})
	if err != nil {
		log.Printf("Failed to send %s warning (seed %d): %v", next.Zone, next.Seed, err)
		return
	}
	if fired {
		log.Printf("%s warning sent, starts %s", next.Zone, next.WindowStart.Format("2006-01-02 15:04:05 UTC"))
	}
}

// warningDue reports whether now falls in the single poll tick that starts
// WarningLeadTime before the occurrence.
func warningDue(info entity.ZoneInfo, now time.Time) bool {
	warnAt := info.WindowStart.Add(-domain.WarningLeadTime)
	return !now.Before(warnAt) && now.Before(warnAt.Add(domain.PollInterval))
}

// broadcast succeeds when at least one channel accepted the message
func (s *scheduler) broadcast(ctx context.Context, text string) error {
	channelIDs := s.recipients()
	if len(channelIDs) == 0 {
		return ErrNoRecipients
	}

	var errs []error
	delivered := 0
	for _, channelID := range channelIDs {
		if err := s.notifier.SendMessage(ctx, channelID, text); err != nil {
			log.Printf("Failed to send notification to channel %s: %v", channelID, err)
			errs = append(errs, fmt.Errorf("channel %s: %w", channelID, err))
			continue
		}
		delivered++
	}

	if delivered == 0 {
		return errors.Join(errs...)
	}
	return nil
}

// recipients returns the configured channel followed by every active
// subscription, without duplicates.
func (s *scheduler) recipients() []string {
	seen := make(map[string]bool)
	var channelIDs []string

	add := func(id string) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		channelIDs = append(channelIDs, id)
	}

	add(s.defaultChannelID)

	channels, err := s.dm.Channel().GetActiveChannels()
	if err != nil {
		log.Printf("Error getting subscribed channels: %v", err)
		return channelIDs
	}

	for _, channel := range channels {
		add(channel.SlackChannelID)
	}

	return channelIDs
}
