package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/corrupted-zone-bot/internal/domain/entity"
	"github.com/mattn/go-runewidth"
)

const (
	statusTitle      = "Corrupted Zone Bot"
	statusLabelWidth = 10
	statusZoneWidth  = 40
)

type statusRow struct {
	Icon    string
	Label   string
	Zone    string
	Minutes int64
	// Active rows count down to the end of the window, the rest to their start
	Active bool
}

// statusRows builds the rows of the status block. The "Next" row reuses the
// active countdown because it starts exactly when the active window ends.
func statusRows(infos []entity.ZoneInfo, now time.Time) []statusRow {
	if len(infos) == 0 {
		return nil
	}

	activeLeft := minutesUntil(infos[0].WindowEnd(), now)

	rows := make([]statusRow, 0, len(infos))
	for i, z := range infos {
		row := statusRow{Zone: z.Zone}
		switch i {
		case 0:
			row.Icon, row.Label, row.Minutes, row.Active = "🟥", "Active", activeLeft, true
		case 1:
			row.Icon, row.Label, row.Minutes = "➡️", "Next", activeLeft
		default:
			row.Icon, row.Label, row.Minutes = "⏭️", fmt.Sprintf("Next +%d", i-1), minutesUntil(z.WindowStart, now)
		}
		rows = append(rows, row)
	}
	return rows
}

// FormatStatus renders the active window and the upcoming ones as a
// fixed-width block inside a Slack code fence.
func FormatStatus(infos []entity.ZoneInfo, now time.Time) string {
	lines := []string{statusTitle}

	for _, row := range statusRows(infos, now) {
		timing := fmt.Sprintf("(In %dm)", row.Minutes)
		if row.Active {
			timing = fmt.Sprintf("(Time Left %dm)", row.Minutes)
		}

		left := runewidth.FillRight(row.Icon+" "+row.Label, statusLabelWidth)
		zone := runewidth.FillRight(row.Zone, statusZoneWidth)
		lines = append(lines, fmt.Sprintf("%s : %s  %s", left, zone, timing))
	}

	return "```\n" + strings.Join(lines, "\n") + "\n```"
}

func activeZoneMessage(info entity.ZoneInfo) string {
	return fmt.Sprintf("🟥 *ACTIVE NOW:* `%s` — %s", info.Zone, SlackTime(info.WindowStart))
}

func upcomingWarningMessage(info entity.ZoneInfo, lead time.Duration) string {
	return fmt.Sprintf("🐮 *%s in %d minutes* — starts %s", info.Zone, int(lead.Minutes()), SlackTime(info.WindowStart))
}

// SlackTime renders t as a Slack date token, shown in each reader's timezone
func SlackTime(t time.Time) string {
	fallback := t.UTC().Format("2006-01-02 15:04 UTC")
	return fmt.Sprintf("<!date^%d^{date_short_pretty} {time}|%s>", t.Unix(), fallback)
}

func minutesUntil(target, now time.Time) int64 {
	ms := target.UnixMilli() - now.UnixMilli()
	if ms <= 0 {
		return 0
	}
	return ms / 60_000
}
