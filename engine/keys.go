// Package engine implements the sampling-and-rendering core of bar-pulse.
// Each tick queries the enabled metrics through a Provider, isolates
// per-metric failures, and assembles the results into a single
// bounded-length status line.
package engine

// MetricKey identifies one of the supported measurement categories.
// The set is fixed and closed.
type MetricKey string

const (
	KeyCPU     MetricKey = "cpu"
	KeyMem     MetricKey = "mem"
	KeyNet     MetricKey = "net"
	KeyDisk    MetricKey = "disk"
	KeyBattery MetricKey = "battery"
	KeyGPU     MetricKey = "gpu"
)

// DisplayOrder fixes the order metrics appear in the rendered line.
var DisplayOrder = []MetricKey{KeyCPU, KeyMem, KeyNet, KeyDisk, KeyBattery, KeyGPU}

// DefaultEnabled is the out-of-the-box module selection. Disk and GPU start
// off: free space barely moves tick to tick, and GPU sampling depends on an
// external utility that most hosts lack.
var DefaultEnabled = map[MetricKey]bool{
	KeyCPU:     true,
	KeyMem:     true,
	KeyNet:     true,
	KeyDisk:    false,
	KeyBattery: true,
	KeyGPU:     false,
}

// Labels maps metric keys to the human-readable names shown in the host
// shell's toggle menu.
var Labels = map[MetricKey]string{
	KeyCPU:     "CPU usage",
	KeyMem:     "Memory usage",
	KeyNet:     "Network rate",
	KeyDisk:    "Disk free",
	KeyBattery: "Battery",
	KeyGPU:     "GPU (experimental)",
}

// placeholders are substituted when a metric's renderer fails, so the user
// can tell which subsystem is unhealthy without losing the rest of the line.
var placeholders = map[MetricKey]string{
	KeyCPU:     "CPU ?",
	KeyMem:     "RAM ?",
	KeyNet:     "Net ?",
	KeyDisk:    "Disk ?",
	KeyBattery: "Bat ?",
	KeyGPU:     "GPU ?",
}
