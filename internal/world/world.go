// Package world implements the ring-world simulation kernel: an entity
// store on a toroidal 1-D map, logic/render system registries, and the
// tick scheduler with its deferred-command mutation protocol.
//
// A World is a pure value. Every operation returns a new World and leaves
// its receiver untouched, so two Worlds built from the same seed and the
// same operation sequence are bit-identical. Randomness is threaded through
// the World's seed; nothing reaches for process-global state.
package world

import (
	"github.com/ringworld/sim/internal/ring"
	"github.com/ringworld/sim/internal/rng"
)

// ID identifies an entity or a registered system. A single monotonic
// counter spans all three registries, so an ID is never reused, not even
// across kinds.
type ID uint64

type entityRec[E any] struct {
	pos  float64
	data E
}

type systemRec[T any] struct {
	id      ID
	enabled bool
	data    T
}

type viewpointKind uint8

const (
	viewCamera viewpointKind = iota
	viewPlayer
)

// World is the aggregate simulation state, generic over the entity payload
// E, the logic-system payload L, and the render-system payload R.
type World[E, L, R any] struct {
	mapSize float64
	seed    rng.Seed
	nextID  ID

	entities map[ID]entityRec[E]
	logic    []systemRec[L]
	render   []systemRec[R]

	vpKind viewpointKind
	vpPos  float64
	vpData E
}

// New creates an empty World with a free camera viewpoint at position 0.
// mapSize is the ring circumference and is fixed for the World's lifetime.
func New[E, L, R any](mapSize float64, seed rng.Seed) World[E, L, R] {
	return World[E, L, R]{
		mapSize:  mapSize,
		seed:     seed,
		nextID:   1,
		entities: make(map[ID]entityRec[E]),
	}
}

// NewWithPlayer creates an empty World whose viewpoint is a player record
// carrying its own payload, placed at the given position.
func NewWithPlayer[E, L, R any](mapSize float64, seed rng.Seed, pos float64, data E) World[E, L, R] {
	w := New[E, L, R](mapSize, seed)
	w.vpKind = viewPlayer
	w.vpPos = ring.WrapMod(mapSize, pos)
	w.vpData = data
	return w
}

// MapSize returns the ring circumference.
func (w World[E, L, R]) MapSize() float64 { return w.mapSize }

// Seed returns the current generator state.
func (w World[E, L, R]) Seed() rng.Seed { return w.seed }

// Len returns the number of live entities.
func (w World[E, L, R]) Len() int { return len(w.entities) }
