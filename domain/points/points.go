// Package points holds the pure duration to point policies.
// The view table and the layer-2 click rule are deliberately kept apart.
package points

import (
	"math/rand/v2"
)

const (
	ClickMinSeconds = 45
	ClickMinPoints  = 20
	ClickMaxPoints  = 30
)

// ForView maps a view duration in seconds to the points awarded to the viewer.
func ForView(durationSeconds float64) int {
	switch {
	case durationSeconds < 30:
		return 0
	case durationSeconds < 60:
		return 2
	case durationSeconds < 90:
		return 5
	case durationSeconds < 120:
		return 8
	default:
		return 10
	}
}

// IntN returns a uniform integer in [0, n).
type IntN func(n int) int

// ForClick is the layer-2 policy: nothing under 45s, otherwise a uniform
// random amount in [20, 30] so the award cannot be predicted.
func ForClick(durationSeconds float64, intN IntN) int {
	if durationSeconds < ClickMinSeconds {
		return 0
	}
	if intN == nil {
		intN = rand.IntN
	}
	return ClickMinPoints + intN(ClickMaxPoints-ClickMinPoints+1)
}
