package contract

import (
	"time"

	"github.com/diegoclair/corrupted-zone-bot/internal/domain/entity"
)

//go:generate mockgen -destination=../../../mocks/mock_service.go -package=mocks . ZoneService,ScheduleOracle,Clock

// Clock supplies the current instant
type Clock interface {
	Now() time.Time
}

// ScheduleOracle answers which zone is active in a given window.
// All methods are pure functions of their arguments.
type ScheduleOracle interface {
	ZoneAt(now time.Time, tickOffset int) entity.ZoneInfo
	Upcoming(now time.Time, count int) []entity.ZoneInfo
	FindNext(now time.Time, zone string, maxLookahead int) (entity.ZoneInfo, bool)
}

type ZoneService interface {
	StatusMessage() string
	NextOccurrence(query string) (entity.ZoneInfo, bool, error)
	Subscribe(slackChannelID, channelName, teamID string) (bool, error)
	Unsubscribe(slackChannelID string) error
}
