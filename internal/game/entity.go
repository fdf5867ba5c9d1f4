// Package game is the reference consumer of the simulation kernel: the
// entity payloads, logic systems, and render system of the playable demo.
package game

import (
	"fmt"

	"github.com/ringworld/sim/internal/data"
	"github.com/ringworld/sim/internal/world"
)

// Kind tags the entity payload variants. Variants carry no shared mutable
// base; behavior dispatches on the tag.
type Kind uint8

const (
	KindWalker Kind = iota
	KindChaser
	KindSpawner
	KindPlayer
)

// Entity is the payload stored per ring position. One struct covers all
// variants; unused fields stay zero.
type Entity struct {
	Kind     Kind
	Species  string
	Glyph    rune
	Color    string
	Speed    float64
	Behavior string // Lua steering function, empty = built-in movement
	Age      float64
	Lifetime float64 // seconds; 0 = immortal

	// Spawner state.
	SpawnSpecies  string
	SpawnInterval float64
	SpawnClock    float64
}

// World is the kernel instantiated with the demo payload types.
type World = world.World[Entity, System, Layer]

// NewEntity builds an entity payload from a species definition.
func NewEntity(sp *data.Species) (Entity, error) {
	kind, err := parseKind(sp.Kind)
	if err != nil {
		return Entity{}, fmt.Errorf("species %q: %w", sp.Name, err)
	}
	glyph := 'o'
	for _, r := range sp.Glyph {
		glyph = r
		break
	}
	return Entity{
		Kind:          kind,
		Species:       sp.Name,
		Glyph:         glyph,
		Color:         sp.Color,
		Speed:         sp.Speed,
		Behavior:      sp.Behavior,
		Lifetime:      sp.Lifetime,
		SpawnSpecies:  sp.SpawnSpecies,
		SpawnInterval: sp.SpawnInterval,
	}, nil
}

// NewPlayer builds the viewpoint payload.
func NewPlayer(speed float64) Entity {
	return Entity{Kind: KindPlayer, Species: "player", Glyph: '@', Color: "white", Speed: speed}
}

func parseKind(s string) (Kind, error) {
	switch s {
	case "walker":
		return KindWalker, nil
	case "chaser":
		return KindChaser, nil
	case "spawner":
		return KindSpawner, nil
	default:
		return 0, fmt.Errorf("unknown kind %q", s)
	}
}
