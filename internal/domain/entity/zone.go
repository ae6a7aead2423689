package entity

import (
	"time"

	"github.com/diegoclair/corrupted-zone-bot/internal/domain"
)

// ZoneInfo is the zone scheduled for one rotation window. Values are derived
// from the window start alone, so two ZoneInfo for the same window are equal.
type ZoneInfo struct {
	Zone        string
	WindowStart time.Time
	Seed        int64
}

// WindowEnd returns the instant the following window starts
func (z ZoneInfo) WindowEnd() time.Time {
	return z.WindowStart.Add(domain.WindowLength)
}
