package game

import (
	"fmt"

	"github.com/ringworld/sim/internal/data"
	"github.com/ringworld/sim/internal/ring"
	"github.com/ringworld/sim/internal/rng"
	"github.com/ringworld/sim/internal/scripting"
	"github.com/ringworld/sim/internal/world"
)

// SystemKind tags the logic system payloads. Registration order in the
// World decides execution order: movement, then spawning, then culling.
type SystemKind uint8

const (
	SysMovement SystemKind = iota
	SysSpawn
	SysCull
)

// System is the logic-system payload.
type System struct {
	Kind SystemKind
}

// Env binds the demo's collaborators into kernel step functions.
type Env struct {
	Scripts *scripting.Engine // nil = built-in behaviors only
	Species *data.SpeciesTable
	MapSize float64
}

// Seed places the boot spawn list into the world at random positions.
func (e *Env) Seed(w World) (World, error) {
	gen := rng.Uniform(0, e.MapSize)
	for _, entry := range e.Species.Spawns() {
		sp, ok := e.Species.Get(entry.Species)
		if !ok {
			return w, fmt.Errorf("spawn entry references unknown species %q", entry.Species)
		}
		ent, err := NewEntity(sp)
		if err != nil {
			return w, err
		}
		for i := 0; i < entry.Count; i++ {
			w = w.AddEntityRandomPos(gen, ent)
		}
	}
	return w, nil
}

// RegisterSystems installs the demo's logic and render systems.
func (e *Env) RegisterSystems(w World) World {
	w = w.AddLogicSystem(System{Kind: SysMovement})
	w = w.AddLogicSystem(System{Kind: SysSpawn})
	w = w.AddLogicSystem(System{Kind: SysCull})
	w = w.AddRenderSystem(Layer{Name: "entities"})
	return w
}

// Step returns the tick's step function with the frame's player position
// and elapsed time bound in.
func (e *Env) Step(playerPos, dt float64) world.Step[Entity, System] {
	return func(id world.ID, pos float64, ent Entity, sys System) (float64, Entity, []world.Command[Entity]) {
		switch sys.Kind {
		case SysMovement:
			return e.move(pos, ent, playerPos, dt), ent, nil
		case SysSpawn:
			return e.spawn(pos, ent, dt)
		case SysCull:
			return e.cull(id, pos, ent, dt)
		}
		return pos, ent, nil
	}
}

func (e *Env) move(pos float64, ent Entity, playerPos, dt float64) float64 {
	dist := ring.Distance(pos, playerPos, e.MapSize)

	if e.Scripts != nil && ent.Behavior != "" {
		if delta, ok := e.Scripts.Steer(ent.Behavior, dist, ent.Speed, dt); ok {
			return pos + delta
		}
	}

	switch ent.Kind {
	case KindWalker:
		return pos + ent.Speed*dt
	case KindChaser:
		// Stop inside arm's reach so chasers don't oscillate on the player.
		if dist > -1 && dist < 1 {
			return pos
		}
		return pos + ring.Direction(pos, playerPos, e.MapSize)*ent.Speed*dt
	}
	return pos
}

func (e *Env) spawn(pos float64, ent Entity, dt float64) (float64, Entity, []world.Command[Entity]) {
	if ent.Kind != KindSpawner || ent.SpawnInterval <= 0 {
		return pos, ent, nil
	}
	ent.SpawnClock += dt
	if ent.SpawnClock < ent.SpawnInterval {
		return pos, ent, nil
	}
	ent.SpawnClock -= ent.SpawnInterval

	sp, ok := e.Species.Get(ent.SpawnSpecies)
	if !ok {
		return pos, ent, nil
	}
	child, err := NewEntity(sp)
	if err != nil {
		return pos, ent, nil
	}
	// Children appear in a band around the spawner; AddEntity wraps the
	// drawn position back onto the ring.
	gen := rng.Uniform(pos-spawnSpread, pos+spawnSpread)
	return pos, ent, []world.Command[Entity]{world.Spawn(gen, child)}
}

const spawnSpread = 40.0

func (e *Env) cull(id world.ID, pos float64, ent Entity, dt float64) (float64, Entity, []world.Command[Entity]) {
	ent.Age += dt
	if ent.Lifetime > 0 && ent.Age > ent.Lifetime {
		return pos, ent, []world.Command[Entity]{world.Despawn[Entity](id)}
	}
	return pos, ent, nil
}
