package service

import (
	"time"

	"github.com/diegoclair/corrupted-zone-bot/internal/domain/contract"
)

type Instance struct {
	Zone      *zoneService
	Scheduler *scheduler
}

func NewInstance(dm contract.DataManager, notifier contract.Notifier, defaultChannelID string) *Instance {
	return newInstance(dm, notifier, SystemClock{}, defaultChannelID)
}

func newInstance(dm contract.DataManager, notifier contract.Notifier, clock contract.Clock, defaultChannelID string) *Instance {
	oracle := NewScheduleOracle()

	return &Instance{
		Zone:      newZoneService(dm, oracle, clock),
		Scheduler: newScheduler(dm, oracle, notifier, clock, defaultChannelID),
	}
}

// SystemClock reads the wall clock in UTC
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
