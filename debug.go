package choreo

import (
	"fmt"
	"math"
	"os"
	"time"
)

// debugMode gates all diagnostic output. The engine is single-threaded, so a
// plain package flag is enough.
var debugMode bool

// SetDebugMode enables or disables debug mode. When enabled, re-entrant Step
// calls panic instead of returning ErrReentrantStep, clamped durations and
// stale outputs are reported, and per-step stats are logged to stderr.
func SetDebugMode(enabled bool) {
	debugMode = enabled
}

// stepStats holds per-step counters. Only logged when debugMode is true.
type stepStats struct {
	visited   int
	removed   int
	callbacks int
	stepTime  time.Duration
}

// debugLog prints step stats to stderr.
func (t *Timeline) debugLog(stats stepStats) {
	if !debugMode {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[choreo] timeline %d %q: visited: %d | removed: %d | callbacks: %d | members: %d | step: %v\n",
		t.ID, t.Name, stats.visited, stats.removed, stats.callbacks, len(t.members), stats.stepTime)
}

// debugf prints a diagnostic line to stderr in debug mode.
func debugf(format string, args ...any) {
	if !debugMode {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[choreo] "+format+"\n", args...)
}

// clampDuration rejects negative and NaN durations by clamping them to zero.
func clampDuration(d float64, what string) float64 {
	if d < 0 || math.IsNaN(d) {
		debugf("warning: %s duration %v clamped to 0", what, d)
		return 0
	}
	return d
}
