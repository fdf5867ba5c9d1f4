package world

import (
	"maps"
	"math"
	"slices"

	"github.com/ringworld/sim/internal/ring"
	"github.com/ringworld/sim/internal/rng"
)

// Placed is an entity snapshot returned by the read queries.
type Placed[E any] struct {
	ID   ID
	Pos  float64
	Data E
}

// AddEntity inserts data at the given position (wrapped onto the ring)
// under the next free ID. It always succeeds.
func (w World[E, L, R]) AddEntity(pos float64, data E) World[E, L, R] {
	next := maps.Clone(w.entities)
	next[w.nextID] = entityRec[E]{pos: ring.Wrap(w.mapSize, pos), data: data}
	w.entities = next
	w.nextID++
	return w
}

// AddEntityRandomPos draws a position from gen using the World's seed,
// advances the seed, and inserts data there.
func (w World[E, L, R]) AddEntityRandomPos(gen rng.Generator, data E) World[E, L, R] {
	pos, seed := gen(w.seed)
	w.seed = seed
	return w.AddEntity(pos, data)
}

// RemoveEntity deletes the entity if present. Removing an absent ID is a
// no-op, so removal is idempotent.
func (w World[E, L, R]) RemoveEntity(id ID) World[E, L, R] {
	if _, ok := w.entities[id]; !ok {
		return w
	}
	next := maps.Clone(w.entities)
	delete(next, id)
	w.entities = next
	return w
}

// MapEntities applies fn to every entity against the same snapshot: no
// call observes another call's result within the pass. Returned positions
// are wrapped back onto the ring. Entities are visited in ascending ID
// order so stateful fn closures stay deterministic.
func (w World[E, L, R]) MapEntities(fn func(id ID, pos float64, data E) (float64, E)) World[E, L, R] {
	next := make(map[ID]entityRec[E], len(w.entities))
	for _, id := range w.ids() {
		rec := w.entities[id]
		pos, data := fn(id, rec.pos, rec.data)
		next[id] = entityRec[E]{pos: ring.Wrap(w.mapSize, pos), data: data}
	}
	w.entities = next
	return w
}

// Entities returns a snapshot of all entities in ascending ID order.
func (w World[E, L, R]) Entities() []Placed[E] {
	out := make([]Placed[E], 0, len(w.entities))
	for _, id := range w.ids() {
		rec := w.entities[id]
		out = append(out, Placed[E]{ID: id, Pos: rec.pos, Data: rec.data})
	}
	return out
}

// EntitiesInRange returns entities whose shortest-path distance from
// center is at most radius (inclusive), in ascending ID order.
func (w World[E, L, R]) EntitiesInRange(center, radius float64) []Placed[E] {
	var out []Placed[E]
	for _, id := range w.ids() {
		rec := w.entities[id]
		if math.Abs(ring.Distance(center, rec.pos, w.mapSize)) <= radius {
			out = append(out, Placed[E]{ID: id, Pos: rec.pos, Data: rec.data})
		}
	}
	return out
}

func (w World[E, L, R]) ids() []ID {
	ids := make([]ID, 0, len(w.entities))
	for id := range w.entities {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
