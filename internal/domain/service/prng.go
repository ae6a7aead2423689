package service

// prngStep is one step of the legacy linear congruential generator. The
// arithmetic must stay in int64: seed*multiplier overflows 32 bits for
// present-day seeds and any truncation changes every prediction.
func prngStep(seed, multiplier, increment int64) int64 {
	return ((seed*multiplier + increment) >> 16) & 32767
}
