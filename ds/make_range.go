package ds

import (
	"golang.org/x/exp/constraints"
)

// MakeRange returns start, start+step, ... up to but excluding end.
func MakeRange[T constraints.Integer | constraints.Float](start, end, step T) []T {
	if step <= 0 || end <= start {
		return []T{}
	}
	sequence := make([]T, 0, int((end-start)/step)+1)
	for i := start; i < end; i += step {
		sequence = append(sequence, i)
	}
	return sequence
}

// Clamp bounds t to [low, high].
func Clamp[T constraints.Ordered](t, low, high T) T {
	if t < low {
		return low
	}
	if t > high {
		return high
	}
	return t
}
