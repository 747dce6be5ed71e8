// Package metrics provides point-in-time host readings for the bar-pulse
// engine: CPU and memory utilization, cumulative network counters, disk
// free space, battery state, and best-effort GPU utilization.
package metrics

import "context"

// BatteryState describes the host battery at a point in time.
type BatteryState struct {
	// Percent is the charge level from 0 to 100.
	Percent float64

	// Plugged reports whether external power is connected.
	Plugged bool
}

// Provider exposes point-in-time system readings. Each call may fail
// independently; callers are expected to isolate per-metric errors.
type Provider interface {
	// CPUPercent returns overall CPU utilization from 0 to 100.
	CPUPercent(ctx context.Context) (float64, error)

	// MemPercent returns virtual memory utilization from 0 to 100.
	MemPercent(ctx context.Context) (float64, error)

	// NetCounters returns cumulative bytes sent and received across all
	// interfaces since boot. Counters may reset if the source restarts.
	NetCounters(ctx context.Context) (sent, recv uint64, err error)

	// DiskFree returns the free bytes on the filesystem containing path.
	DiskFree(ctx context.Context, path string) (uint64, error)

	// Battery returns the current battery state, or nil with no error when
	// the host has no battery (the AC-only desktop case, not a failure).
	Battery(ctx context.Context) (*BatteryState, error)
}
