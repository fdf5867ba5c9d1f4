package world

import "github.com/ringworld/sim/internal/rng"

type commandOp uint8

const (
	opSpawn commandOp = iota
	opDespawn
)

// A Command is a deferred structural mutation emitted by a logic step.
// Commands are collected over a full entity scan and applied only after
// the scan's position/data updates land, so the scan always sees a fixed
// entity set with stable IDs.
type Command[E any] struct {
	op   commandOp
	gen  rng.Generator
	data E
	id   ID
}

// Spawn requests a new entity at a generator-drawn position.
func Spawn[E any](gen rng.Generator, data E) Command[E] {
	return Command[E]{op: opSpawn, gen: gen, data: data}
}

// Despawn requests removal of the given entity. Despawning an ID that is
// already gone is harmless.
func Despawn[E any](id ID) Command[E] {
	return Command[E]{op: opDespawn, id: id}
}

// apply executes commands in emission order. A spawn earlier in the batch
// has already executed by the time a later despawn runs, so batches may
// remove entities they created on a previous tick without special cases.
func (w World[E, L, R]) apply(cmds []Command[E]) World[E, L, R] {
	for _, c := range cmds {
		switch c.op {
		case opSpawn:
			w = w.AddEntityRandomPos(c.gen, c.data)
		case opDespawn:
			w = w.RemoveEntity(c.id)
		}
	}
	return w
}
