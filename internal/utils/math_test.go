package utils

import (
	"math"
	"testing"
)

func TestOscillate(t *testing.T) {
	tests := []struct {
		t, period, amp, lift, want float64
	}{
		{0, 500, 50, 60, 60},
		{500 * math.Pi / 2, 500, 50, 60, 110},
		{500 * 3 * math.Pi / 2, 500, 50, 60, 10},
		{123, 0, 50, 60, 60},
	}
	for _, tt := range tests {
		got := Oscillate(tt.t, tt.period, tt.amp, tt.lift)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Oscillate(%v, %v, %v, %v) = %v, want %v", tt.t, tt.period, tt.amp, tt.lift, got, tt.want)
		}
	}
}
