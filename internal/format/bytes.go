// Package format provides shared pure formatting helpers for metric values.
package format

import (
	"fmt"
	"math"
)

// byteUnits are the magnitude suffixes used by Bytes, in powers of 1024.
var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// Bytes renders a byte count scaled to the smallest unit where the scaled
// value stays below 1024. Plain bytes are rendered without decimals, larger
// units with one decimal place: Bytes(512) == "512B", Bytes(1536) == "1.5KB".
func Bytes(n float64) string {
	for _, unit := range byteUnits[:len(byteUnits)-1] {
		if math.Abs(n) < 1024 {
			if unit == "B" {
				return fmt.Sprintf("%.0f%s", n, unit)
			}
			return fmt.Sprintf("%.1f%s", n, unit)
		}
		n /= 1024
	}
	return fmt.Sprintf("%.1fPB", n)
}

// Rate renders a bytes-per-second throughput value: Rate(1536) == "1.5KB/s".
func Rate(bytesPerSecond float64) string {
	return Bytes(bytesPerSecond) + "/s"
}

// Percent renders a labelled percentage rounded to the nearest integer:
// Percent("CPU", 42.4) == "CPU 42%".
func Percent(label string, p float64) string {
	return fmt.Sprintf("%s %.0f%%", label, p)
}
