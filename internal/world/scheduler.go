package world

import (
	"github.com/ringworld/sim/internal/ring"
)

// Step is the per-logic-system update contract: given one entity and the
// system's payload, produce the entity's next position and data plus any
// structural commands to run after the scan.
type Step[E, L any] func(id ID, pos float64, data E, sys L) (float64, E, []Command[E])

// Draw is the per-render-system contract: produce an opaque drawable for
// one visible entity. The drawable type D belongs to the rendering layer.
type Draw[E, R, D any] func(id ID, pos float64, data E, sys R) D

// Fragment is one entity's draw result, offset by the signed ring distance
// from the viewpoint so the scene is viewpoint-relative.
type Fragment[D any] struct {
	Entity   ID
	Offset   float64
	Drawable D
}

// Scene groups the fragments produced by one render system.
type Scene[D any] struct {
	System    ID
	Fragments []Fragment[D]
}

// RunLogicSystems executes one logic tick: each enabled logic system, in
// registration order, scans every entity once with snapshot semantics,
// then its emitted commands are applied before the next system runs.
// Systems therefore fold over the World sequentially; each one sees
// entities spawned or despawned by its predecessors in the same tick.
func (w World[E, L, R]) RunLogicSystems(step Step[E, L]) World[E, L, R] {
	for _, sys := range w.logic {
		if !sys.enabled {
			continue
		}
		var cmds []Command[E]
		next := make(map[ID]entityRec[E], len(w.entities))
		for _, id := range w.ids() {
			rec := w.entities[id]
			pos, data, emitted := step(id, rec.pos, rec.data, sys.data)
			next[id] = entityRec[E]{pos: ring.Wrap(w.mapSize, pos), data: data}
			cmds = append(cmds, emitted...)
		}
		w.entities = next
		w = w.apply(cmds)
	}
	return w
}

// RunRenderSystems executes one render pass: each enabled render system,
// in registration order, draws the entities within radius of the viewpoint
// in ascending ID order. No World state changes. It is a free function
// because the drawable type D is the caller's, not the World's.
func RunRenderSystems[E, L, R, D any](w World[E, L, R], radius float64, draw Draw[E, R, D]) []Scene[D] {
	scenes := make([]Scene[D], 0, len(w.render))
	for _, sys := range w.render {
		if !sys.enabled {
			continue
		}
		sc := Scene[D]{System: sys.id}
		for _, p := range w.EntitiesInRange(w.vpPos, radius) {
			sc.Fragments = append(sc.Fragments, Fragment[D]{
				Entity:   p.ID,
				Offset:   ring.Distance(w.vpPos, p.Pos, w.mapSize),
				Drawable: draw(p.ID, p.Pos, p.Data, sys.data),
			})
		}
		scenes = append(scenes, sc)
	}
	return scenes
}
