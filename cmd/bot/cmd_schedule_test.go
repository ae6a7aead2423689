package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/corrupted-zone-bot/internal/domain"
	"github.com/diegoclair/corrupted-zone-bot/internal/domain/service"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func Test_printZones(t *testing.T) {
	var buf bytes.Buffer
	now := time.UnixMilli(1_735_716_000_000).UTC()

	printZones(&buf, service.NewScheduleOracle(), now, 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "* 2025-01-01 07:15 UTC"))
	assert.True(t, strings.HasPrefix(lines[1], "  2025-01-01 07:30 UTC  Cow Level"))
}

func Test_printNext(t *testing.T) {
	oracle := service.NewScheduleOracle()
	start := time.UnixMilli(1_735_716_600_000).UTC()

	tests := []struct {
		name      string
		now       time.Time
		lookahead int
		want      string
	}{
		{
			name:      "Should print the next occurrence",
			now:       time.UnixMilli(1_735_689_600_000).UTC(),
			lookahead: domain.MaxLookahead,
			want:      "Cow Level is next active 2025-01-01 07:30 UTC (7 hours from now)",
		},
		{
			name:      "Should print an active zone",
			now:       start.Add(5 * time.Minute),
			lookahead: domain.MaxLookahead,
			want:      "Cow Level is active now, until 2025-01-01 07:45 UTC",
		},
		{
			name:      "Should report a short lookahead",
			now:       time.UnixMilli(1_735_689_600_000).UTC(),
			lookahead: 30,
			want:      "Cow Level is not in the rotation for the next 30 windows",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printNext(&buf, oracle, tt.now, domain.CowLevel, tt.lookahead)
			assert.Equal(t, tt.want+"\n", buf.String())
		})
	}
}
