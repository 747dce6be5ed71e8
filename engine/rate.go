package engine

import "time"

// minInterval floors the time delta between samples so sub-millisecond
// ticks cannot blow the division up into absurd rates.
const minInterval = time.Millisecond

// netSample is an immutable snapshot of cumulative network counters.
type netSample struct {
	sent uint64
	recv uint64
	at   time.Time
}

// RateTracker derives instantaneous network throughput from cumulative byte
// counters sampled across ticks. It holds the previous snapshot as a
// baseline and replaces it on every call.
type RateTracker struct {
	prev *netSample
}

// NewRateTracker returns a RateTracker with no baseline. The first Sample
// call seeds it and reports zero rates.
func NewRateTracker() *RateTracker {
	return &RateTracker{}
}

// Sample computes upload and download rates in bytes per second against the
// stored baseline, then re-baselines to the current snapshot regardless of
// outcome.
//
// The first call after construction returns (0, 0). A counter lower than
// the baseline means the provider restarted or the counter wrapped; that
// step also returns (0, 0) rather than a negative rate.
func (t *RateTracker) Sample(sent, recv uint64, now time.Time) (up, down float64) {
	prev := t.prev
	t.prev = &netSample{sent: sent, recv: recv, at: now}

	if prev == nil {
		return 0, 0
	}
	if sent < prev.sent || recv < prev.recv {
		// Counter reset: discard the negative delta.
		return 0, 0
	}

	dt := now.Sub(prev.at)
	if dt < minInterval {
		dt = minInterval
	}
	secs := dt.Seconds()

	return float64(sent-prev.sent) / secs, float64(recv-prev.recv) / secs
}
