package domain

import "time"

// Schedule constants. Every zone prediction depends on these values, so they
// are fixed at build time.
const (
	// WindowLengthMs is the length of one rotation window in milliseconds (15 minutes)
	WindowLengthMs int64 = 900_000
	// DayLengthMs is the length of a day in milliseconds
	DayLengthMs int64 = 86_400_000

	// PRNGMultiplier and PRNGIncrement are the legacy LCG constants
	PRNGMultiplier int64 = 214013
	PRNGIncrement  int64 = 2531011
)

// WindowLength is WindowLengthMs as a time.Duration
const WindowLength = time.Duration(WindowLengthMs) * time.Millisecond

// Alerting constants
const (
	// PollInterval is how often the scheduler checks the rotation
	PollInterval = 30 * time.Second
	// WarningLeadTime is how long before a watched zone starts the warning is sent
	WarningLeadTime = 10 * time.Minute
	// MaxLookahead caps how many windows FindNext scans (about 75 hours)
	MaxLookahead = 300
	// StatusDepth is the number of windows shown by the status command (Active + 4)
	StatusDepth = 5
)

// AlertKind identifies an independent alert state cell
type AlertKind string

const (
	AlertTargetZoneActive AlertKind = "targetZoneActive"
	AlertCowWarning       AlertKind = "cowWarning"
)
