//go:build darwin

package metrics

import (
	"fmt"
	"os/exec"
)

// readBattery shells out to pmset, the standard macOS power query tool.
// A nil state with a nil error means the host has no battery.
func readBattery() (*BatteryState, error) {
	out, err := exec.Command("pmset", "-g", "batt").Output()
	if err != nil {
		return nil, fmt.Errorf("metrics: pmset: %w", err)
	}
	return parsePMSet(string(out)), nil
}
