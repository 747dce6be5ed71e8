//go:build !linux && !darwin

package metrics

// readBattery reports no battery on platforms without a probe.
func readBattery() (*BatteryState, error) {
	return nil, nil
}
