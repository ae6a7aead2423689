package service

import (
	"time"

	"github.com/diegoclair/corrupted-zone-bot/internal/domain"
	"github.com/diegoclair/corrupted-zone-bot/internal/domain/contract"
	"github.com/diegoclair/corrupted-zone-bot/internal/domain/entity"
)

type scheduleOracle struct {
	zones []string
}

// NewScheduleOracle returns an oracle over the built-in rotation table
func NewScheduleOracle() contract.ScheduleOracle {
	return newScheduleOracle(domain.Zones)
}

// newScheduleOracle panics on an empty table since no index could be valid
func newScheduleOracle(zones []string) *scheduleOracle {
	if len(zones) == 0 {
		panic("schedule oracle needs at least one zone")
	}
	return &scheduleOracle{zones: zones}
}

func (o *scheduleOracle) ZoneAt(now time.Time, tickOffset int) entity.ZoneInfo {
	start := windowStart(now, tickOffset)
	seed := seedOf(start)
	idx := prngStep(seed, domain.PRNGMultiplier, domain.PRNGIncrement) % int64(len(o.zones))

	return entity.ZoneInfo{
		Zone:        o.zones[idx],
		WindowStart: start,
		Seed:        seed,
	}
}

// Upcoming returns the active window followed by count-1 future windows
func (o *scheduleOracle) Upcoming(now time.Time, count int) []entity.ZoneInfo {
	if count <= 0 {
		return nil
	}

	infos := make([]entity.ZoneInfo, 0, count)
	for i := 0; i < count; i++ {
		infos = append(infos, o.ZoneAt(now, i))
	}
	return infos
}

// FindNext scans the active window and the following ones, in order, for the
// first occurrence of zone. The rotation has no guaranteed period, hence the cap.
func (o *scheduleOracle) FindNext(now time.Time, zone string, maxLookahead int) (entity.ZoneInfo, bool) {
	for i := 0; i < maxLookahead; i++ {
		info := o.ZoneAt(now, i)
		if info.Zone == zone {
			return info, true
		}
	}
	return entity.ZoneInfo{}, false
}
