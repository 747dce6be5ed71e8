//go:build linux

package metrics

import (
	"os"
	"path/filepath"
)

// readBattery probes /sys/class/power_supply for the first battery entry.
// A nil state with a nil error means the host has no battery.
func readBattery() (*BatteryState, error) {
	matches, _ := filepath.Glob("/sys/class/power_supply/BAT*/capacity")
	for _, capFile := range matches {
		capData, err := os.ReadFile(capFile)
		if err != nil {
			continue
		}
		statusData, _ := os.ReadFile(filepath.Join(filepath.Dir(capFile), "status"))

		if state := parsePowerSupply(string(capData), string(statusData)); state != nil {
			return state, nil
		}
	}
	return nil, nil
}
