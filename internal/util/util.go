// Package util holds small formatting helpers shared across layers.
package util

import (
	"strconv"
)

const byteUnits = "KMGTPE"

// FormatBytes renders a byte count with a binary unit, e.g. 5242880 -> "5.0 MB".
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return strconv.FormatInt(n, 10) + " B"
	}

	div, exp := int64(unit), 0
	for rest := n / unit; rest >= unit && exp < len(byteUnits)-1; rest /= unit {
		div *= unit
		exp++
	}

	return strconv.FormatFloat(float64(n)/float64(div), 'f', 1, 64) + " " + string(byteUnits[exp]) + "B"
}
