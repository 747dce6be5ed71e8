package metrics

import (
	"regexp"
	"strconv"
	"strings"
)

// parsePowerSupply interprets the capacity and status files of a sysfs
// power_supply battery entry (Linux). Returns nil if capacity is unreadable.
func parsePowerSupply(capacity, status string) *BatteryState {
	pct, err := strconv.ParseFloat(strings.TrimSpace(capacity), 64)
	if err != nil {
		return nil
	}

	s := strings.TrimSpace(status)
	plugged := s == "Charging" || s == "Full" || s == "Not charging"

	return &BatteryState{Percent: pct, Plugged: plugged}
}

// pmsetPercentRe matches the charge percentage in pmset -g batt output,
// e.g. "-InternalBattery-0 (id=123)  95%; charged; 0:00 remaining".
var pmsetPercentRe = regexp.MustCompile(`(\d+(?:\.\d+)?)%`)

// parsePMSet interprets `pmset -g batt` output (macOS). Returns nil when no
// battery line is present, which is the Mac-mini/desktop case.
func parsePMSet(out string) *BatteryState {
	plugged := strings.Contains(out, "'AC Power'")

	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "InternalBattery") {
			continue
		}
		m := pmsetPercentRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		pct, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return &BatteryState{Percent: pct, Plugged: plugged}
	}

	return nil
}
