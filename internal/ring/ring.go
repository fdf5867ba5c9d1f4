// Package ring implements arithmetic over a one-dimensional toroidal
// coordinate space: positions live in [0, size) and wrap at the ends.
package ring

import "math"

// Wrap folds pos back into [0, size) by at most one correction in each
// direction. It assumes |pos| < 2*size, which holds for every per-tick
// movement path (deltas are bounded velocities, applied to an in-range
// position). Callers with arbitrary input use WrapMod instead.
func Wrap(size, pos float64) float64 {
	if pos >= size {
		return pos - size
	}
	if pos < 0 {
		return pos + size
	}
	return pos
}

// WrapMod folds pos into [0, size) for arbitrary input, including
// excursions of more than one full turn.
func WrapMod(size, pos float64) float64 {
	m := math.Mod(pos, size)
	if m < 0 {
		m += size
	}
	return m
}

// Distance returns the signed shortest arc from start to end on a ring of
// the given size. The result is in (-size/2, size/2]: positive when the
// shortest way around is the forward direction, negative otherwise. The
// exact antipode reports +size/2.
func Distance(start, end, size float64) float64 {
	forward := WrapMod(size, end-start)
	if forward > size/2 {
		return forward - size
	}
	return forward
}

// Direction returns +1 when the shortest arc from start to end runs
// forward and -1 when it runs backward. Coincident positions and the
// antipode report +1, matching the sign convention of Distance.
func Direction(start, end, size float64) float64 {
	if Distance(start, end, size) < 0 {
		return -1
	}
	return 1
}
