package metrics

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// gpuSamplerBinary is the external utility used for GPU utilization.
	// powermetrics ships with macOS; other platforms simply lack it and
	// the sampler reports unavailable.
	gpuSamplerBinary = "powermetrics"

	// gpuSampleTimeout bounds a single powermetrics invocation so a slow or
	// hanging external process cannot stall the tick loop.
	gpuSampleTimeout = 1500 * time.Millisecond
)

// GPUSampler reads GPU utilization by invoking an external sampling
// utility. Sampling is best-effort: a missing binary, a non-zero exit, a
// timeout, or output without a percentage all count as "unavailable"
// rather than errors.
type GPUSampler struct {
	binary  string
	timeout time.Duration
	logger  *slog.Logger

	// lookPath allows injection of exec.LookPath for testing.
	lookPath func(string) (string, error)

	// execCommand allows injection of command execution for testing.
	execCommand func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewGPUSampler creates a GPUSampler using the default powermetrics binary.
// If logger is nil, a no-op logger is used.
func NewGPUSampler(logger *slog.Logger) *GPUSampler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &GPUSampler{
		binary:      gpuSamplerBinary,
		timeout:     gpuSampleTimeout,
		logger:      logger,
		lookPath:    exec.LookPath,
		execCommand: exec.CommandContext,
	}
}

// Sample invokes the external utility with a one-sample GPU power request
// and parses the utilization percentage from its output. The second return
// value reports whether a reading was obtained.
func (g *GPUSampler) Sample(ctx context.Context) (float64, bool) {
	path, err := g.lookPath(g.binary)
	if err != nil {
		g.logger.Debug("gpu sampler binary not found", "binary", g.binary)
		return 0, false
	}

	execCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	cmd := g.execCommand(execCtx, path, "-n", "1", "--samplers", "gpu_power")
	out, err := cmd.Output()
	if err != nil {
		if errors.Is(execCtx.Err(), context.DeadlineExceeded) {
			g.logger.Warn("gpu sampler timed out", "timeout", g.timeout)
		} else {
			g.logger.Debug("gpu sampler failed", "error", err)
		}
		return 0, false
	}

	return parseGPUPercent(string(out))
}

// gpuPercentRe extracts the first number followed by a percent sign.
var gpuPercentRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)

// parseGPUPercent scans sampler output for a line mentioning the GPU with a
// percentage value, e.g. "GPU HW active residency:  12.34%".
func parseGPUPercent(out string) (float64, bool) {
	for _, line := range strings.Split(out, "\n") {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "gpu") || !strings.Contains(lower, "%") {
			continue
		}
		m := gpuPercentRe.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		pct, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return pct, true
	}
	return 0, false
}
