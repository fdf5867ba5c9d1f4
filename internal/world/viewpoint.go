package world

import "github.com/ringworld/sim/internal/ring"

// ViewpointPos returns the current viewpoint position on the ring.
func (w World[E, L, R]) ViewpointPos() float64 { return w.vpPos }

// Player returns the player payload when the viewpoint is a player record.
// The second result is false for a camera viewpoint.
func (w World[E, L, R]) Player() (E, bool) {
	if w.vpKind != viewPlayer {
		var zero E
		return zero, false
	}
	return w.vpData, true
}

// MoveViewpoint shifts the viewpoint by delta and wraps. Deltas are
// per-tick velocities, so the single-wrap form suffices.
func (w World[E, L, R]) MoveViewpoint(delta float64) World[E, L, R] {
	w.vpPos = ring.Wrap(w.mapSize, w.vpPos+delta)
	return w
}

// SetViewpointPosition places the viewpoint at an absolute position. The
// input may come from config or tooling, so a full modulo wrap is used.
func (w World[E, L, R]) SetViewpointPosition(pos float64) World[E, L, R] {
	w.vpPos = ring.WrapMod(w.mapSize, pos)
	return w
}

// UpdateViewpoint transforms the player payload in place on the returned
// World. It is a no-op for a camera viewpoint.
func (w World[E, L, R]) UpdateViewpoint(fn func(E) E) World[E, L, R] {
	if w.vpKind == viewPlayer {
		w.vpData = fn(w.vpData)
	}
	return w
}
