package service

import (
	"time"

	"github.com/diegoclair/corrupted-zone-bot/internal/domain"
)

// windowStart returns the start of the window containing t, shifted forward
// by tickOffset whole windows.
func windowStart(t time.Time, tickOffset int) time.Time {
	base := floorDiv(t.UnixMilli(), domain.WindowLengthMs) * domain.WindowLengthMs
	return time.UnixMilli(base + domain.WindowLengthMs*int64(tickOffset)).UTC()
}

// seedOf derives the rotation seed of a window. It is a pure function of the
// window start and strictly increases from one window to the next.
func seedOf(start time.Time) int64 {
	ms := start.UnixMilli()
	return floorDiv(ms, domain.WindowLengthMs) + floorDiv(ms, domain.DayLengthMs)
}

// floorDiv rounds toward negative infinity, so instants before the epoch
// still land in the window that contains them.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
