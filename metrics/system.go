package metrics

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
)

// cpuSeedInterval is the short blocking sample taken on the very first CPU
// read. gopsutil computes utilization as a delta since the previous call,
// so an unseeded zero-interval read reports a meaningless 0%.
const cpuSeedInterval = 50 * time.Millisecond

// SystemProvider implements Provider using gopsutil for CPU, memory,
// network, and disk, plus a platform-specific battery probe.
type SystemProvider struct {
	logger *slog.Logger

	// cpuSeeded flips after the first CPU read has established a baseline.
	cpuSeeded bool

	// readBattery is the platform battery probe, overridable for tests.
	readBattery func() (*BatteryState, error)
}

// NewSystemProvider creates a SystemProvider.
// If logger is nil, a no-op logger is used.
func NewSystemProvider(logger *slog.Logger) *SystemProvider {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SystemProvider{
		logger:      logger,
		readBattery: readBattery,
	}
}

// CPUPercent returns overall CPU utilization. The first call blocks for a
// short seeding interval so it does not report a misleading 0% on startup;
// subsequent calls measure since the previous call and return immediately.
func (p *SystemProvider) CPUPercent(ctx context.Context) (float64, error) {
	interval := time.Duration(0)
	if !p.cpuSeeded {
		interval = cpuSeedInterval
		p.cpuSeeded = true
	}

	pcts, err := cpu.PercentWithContext(ctx, interval, false)
	if err != nil {
		return 0, fmt.Errorf("metrics: cpu percent: %w", err)
	}
	if len(pcts) == 0 {
		return 0, fmt.Errorf("metrics: cpu percent: no samples")
	}
	return pcts[0], nil
}

// MemPercent returns virtual memory utilization.
func (p *SystemProvider) MemPercent(ctx context.Context) (float64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("metrics: virtual memory: %w", err)
	}
	return vm.UsedPercent, nil
}

// NetCounters returns cumulative bytes sent and received, aggregated across
// all network interfaces.
func (p *SystemProvider) NetCounters(ctx context.Context) (sent, recv uint64, err error) {
	counters, err := net.IOCountersWithContext(ctx, false)
	if err != nil {
		return 0, 0, fmt.Errorf("metrics: net counters: %w", err)
	}
	if len(counters) == 0 {
		return 0, 0, fmt.Errorf("metrics: net counters: no interfaces")
	}
	return counters[0].BytesSent, counters[0].BytesRecv, nil
}

// DiskFree returns the free bytes on the filesystem containing path.
func (p *SystemProvider) DiskFree(ctx context.Context, path string) (uint64, error) {
	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("metrics: disk usage %s: %w", path, err)
	}
	return usage.Free, nil
}

// Battery returns the current battery state via the platform probe, or nil
// when no battery is present.
func (p *SystemProvider) Battery(ctx context.Context) (*BatteryState, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return p.readBattery()
}

// Compile-time interface compliance check.
var _ Provider = (*SystemProvider)(nil)
