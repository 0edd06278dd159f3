package compositor

import "time"

// debugStats holds per-iteration timing and counters for one pass of Run's
// main loop. Run fills it on every pass; it is only logged when
// Config.Debug is set.
type debugStats struct {
	drainCount        int
	queryDuration     time.Duration
	compositeDuration time.Duration
}

// debugLog emits stats at Debug level. Called unconditionally from Run;
// the slog handler (or the absence of one) decides whether Debug records
// actually go anywhere, so the check on v.cfg.Debug here just avoids
// paying for the record-building work on the hot path when nobody asked
// for it. The timings themselves are taken in Run and askForTiles either
// way.
func (v *Viewport) debugLog(stats debugStats) {
	if !v.cfg.Debug {
		return
	}
	Logger().Debug("compositor: tick",
		"drained", stats.drainCount,
		"query", stats.queryDuration,
		"composite", stats.compositeDuration,
	)
}
