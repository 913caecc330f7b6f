package domain

import (
	"math"
	"time"

	"go.trai.ch/zerr"
)

// Largest values that still fit in a time.Duration.
const (
	MaxKillTimeoutMillis = uint64(math.MaxInt64 / int64(time.Millisecond))
	MaxThresholdSeconds  = uint64(math.MaxInt64 / int64(time.Second))
)

// KillTimeoutFromMillis converts a kill timeout given in milliseconds.
func KillTimeoutFromMillis(ms uint64) (time.Duration, error) {
	if ms > MaxKillTimeoutMillis {
		return 0, zerr.With(ErrDurationOutOfRange, "kill_timeout", ms)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// ThresholdFromSeconds converts a debounce threshold given in seconds.
func ThresholdFromSeconds(s uint64) (time.Duration, error) {
	if s > MaxThresholdSeconds {
		return 0, zerr.With(ErrDurationOutOfRange, "threshold", s)
	}
	return time.Duration(s) * time.Second, nil
}
