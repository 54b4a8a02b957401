// internal/utils/math.go
package utils

import "math"

// Oscillate samples lift + amplitude*sin(t/period).
func Oscillate(t, period, amplitude, lift float64) float64 {
	if period == 0 {
		return lift
	}
	return math.Sin(t/period)*amplitude + lift
}
