package world

import (
	"math"
	"reflect"
	"testing"

	"github.com/ringworld/sim/internal/rng"
)

type testEnt struct {
	Vel float64
	Tag string
}

type testLogic struct {
	Name string
}

type testRender struct {
	Layer string
}

type testWorld = World[testEnt, testLogic, testRender]

func newTestWorld() testWorld {
	return New[testEnt, testLogic, testRender](2300, rng.Seed(1))
}

func TestAddEntityWrapsPosition(t *testing.T) {
	w := newTestWorld()
	w = w.AddEntity(2310, testEnt{Tag: "a"})
	w = w.AddEntity(-20, testEnt{Tag: "b"})

	got := w.Entities()
	if len(got) != 2 {
		t.Fatalf("want 2 entities, got %d", len(got))
	}
	if got[0].Pos != 10 {
		t.Errorf("entity a at %v, want 10", got[0].Pos)
	}
	if got[1].Pos != 2280 {
		t.Errorf("entity b at %v, want 2280", got[1].Pos)
	}
}

func TestWrapInvariantUnderOperations(t *testing.T) {
	w := newTestWorld()
	w = w.AddEntity(2299.5, testEnt{Vel: 3})
	w = w.AddEntityRandomPos(rng.Uniform(0, 2300), testEnt{})
	for i := 0; i < 50; i++ {
		w = w.MapEntities(func(_ ID, pos float64, e testEnt) (float64, testEnt) {
			return pos + 100, e
		})
		for _, p := range w.Entities() {
			if p.Pos < 0 || p.Pos >= w.MapSize() {
				t.Fatalf("tick %d: position %v outside [0, %v)", i, p.Pos, w.MapSize())
			}
		}
	}
}

func TestIDMonotonicAcrossRegistries(t *testing.T) {
	w := newTestWorld()
	w = w.AddEntity(1, testEnt{})
	w = w.AddLogicSystem(testLogic{Name: "move"})
	w = w.AddEntity(2, testEnt{})
	w = w.AddRenderSystem(testRender{Layer: "glyphs"})
	w = w.AddEntity(3, testEnt{})

	var ids []ID
	for _, p := range w.Entities() {
		ids = append(ids, p.ID)
	}
	for _, s := range w.LogicSystems() {
		ids = append(ids, s.ID)
	}
	for _, s := range w.RenderSystems() {
		ids = append(ids, s.ID)
	}

	seen := make(map[ID]bool)
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("id %d allocated twice", id)
		}
		seen[id] = true
	}
	// The interleaved allocation order was e, l, e, r, e.
	want := []ID{1, 3, 5, 2, 4}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("allocated ids %v, want %v", ids, want)
	}
}

func TestIDNotReusedAfterRemoval(t *testing.T) {
	w := newTestWorld()
	w = w.AddEntity(5, testEnt{Tag: "first"})
	first := w.Entities()[0].ID
	w = w.RemoveEntity(first)
	w = w.AddEntity(6, testEnt{Tag: "second"})
	second := w.Entities()[0].ID
	if second == first {
		t.Errorf("id %d reused after removal", first)
	}
	if second <= first {
		t.Errorf("id %d not strictly greater than %d", second, first)
	}
}

func TestRemoveEntityIdempotent(t *testing.T) {
	w := newTestWorld()
	w = w.AddEntity(1, testEnt{})
	id := w.Entities()[0].ID

	once := w.RemoveEntity(id)
	twice := once.RemoveEntity(id)
	if !reflect.DeepEqual(once.Entities(), twice.Entities()) {
		t.Error("second removal changed the entity set")
	}
	if twice.Len() != 0 {
		t.Errorf("want empty store, got %d entities", twice.Len())
	}

	// Removing an id that never existed is also a no-op.
	ghost := w.RemoveEntity(9999)
	if ghost.Len() != w.Len() {
		t.Error("removing an unknown id changed the store")
	}
}

func TestOperationsDoNotMutateReceiver(t *testing.T) {
	w := newTestWorld()
	w = w.AddEntity(100, testEnt{Tag: "keep"})
	before := w.Entities()

	_ = w.AddEntity(200, testEnt{Tag: "other"})
	_ = w.RemoveEntity(before[0].ID)
	_ = w.MapEntities(func(_ ID, pos float64, e testEnt) (float64, testEnt) {
		return pos + 50, testEnt{Tag: "mangled"}
	})
	_ = w.AddLogicSystem(testLogic{})
	_ = w.AddEntityRandomPos(rng.Uniform(0, 10), testEnt{})

	if !reflect.DeepEqual(w.Entities(), before) {
		t.Error("an operation mutated its receiver World")
	}
}

func TestMapEntitiesSnapshotSemantics(t *testing.T) {
	w := newTestWorld()
	w = w.AddEntity(10, testEnt{Vel: 1})
	w = w.AddEntity(20, testEnt{Vel: 2})

	// Each entity is updated against the pre-pass snapshot: the closure
	// reads other entities through the captured World, which must not
	// reflect this pass's updates.
	snapshot := w
	w = w.MapEntities(func(id ID, pos float64, e testEnt) (float64, testEnt) {
		for _, other := range snapshot.Entities() {
			if other.ID != id && other.Pos != 10 && other.Pos != 20 {
				t.Errorf("mid-pass observation of updated position %v", other.Pos)
			}
		}
		return pos + e.Vel, e
	})

	got := w.Entities()
	if got[0].Pos != 11 || got[1].Pos != 22 {
		t.Errorf("positions = %v, %v, want 11, 22", got[0].Pos, got[1].Pos)
	}
}

func TestEntitiesInRangeInclusive(t *testing.T) {
	w := newTestWorld()
	w = w.AddEntity(1150, testEnt{Tag: "antipode"}) // exactly mapSize/2 from 0
	w = w.AddEntity(100, testEnt{Tag: "near"})
	w = w.AddEntity(1000, testEnt{Tag: "far"})

	got := w.EntitiesInRange(0, 1150)
	if len(got) != 3 {
		t.Fatalf("radius 1150 should include the antipode: got %d of 3", len(got))
	}

	got = w.EntitiesInRange(0, 200)
	if len(got) != 1 || got[0].Data.Tag != "near" {
		t.Fatalf("radius 200: got %+v, want only the near entity", got)
	}

	// Wrap-around inclusion: 2250 is 50 backward from 0.
	w = w.AddEntity(2250, testEnt{Tag: "behind"})
	got = w.EntitiesInRange(0, 60)
	if len(got) != 1 || got[0].Data.Tag != "behind" {
		t.Fatalf("wrapped range query: got %+v, want only the behind entity", got)
	}
}

func TestEntitiesInRangeEmptyResult(t *testing.T) {
	w := newTestWorld()
	if got := w.EntitiesInRange(0, 1150); len(got) != 0 {
		t.Errorf("empty world range query returned %d entities", len(got))
	}
}

func TestAddEntityRandomPosThreadsSeed(t *testing.T) {
	gen := rng.Uniform(0, 2300)
	w := newTestWorld()
	s0 := w.Seed()
	w = w.AddEntityRandomPos(gen, testEnt{})
	if w.Seed() == s0 {
		t.Error("seed did not advance")
	}
	w = w.AddEntityRandomPos(gen, testEnt{})

	ents := w.Entities()
	if len(ents) != 2 {
		t.Fatalf("want 2 entities, got %d", len(ents))
	}
	if ents[0].Pos == ents[1].Pos {
		t.Error("successive random placements landed on the same position")
	}
	for _, p := range ents {
		if p.Pos < 0 || p.Pos >= 2300 {
			t.Errorf("random position %v outside the ring", p.Pos)
		}
	}
}

func TestDeterministicReplay(t *testing.T) {
	build := func() testWorld {
		w := NewWithPlayer[testEnt, testLogic, testRender](500, rng.Seed(77), 250, testEnt{Tag: "me"})
		w = w.AddLogicSystem(testLogic{Name: "move"})
		gen := rng.Uniform(0, 500)
		for i := 0; i < 10; i++ {
			w = w.AddEntityRandomPos(gen, testEnt{Vel: float64(i)})
		}
		w = w.RunLogicSystems(func(_ ID, pos float64, e testEnt, _ testLogic) (float64, testEnt, []Command[testEnt]) {
			return pos + e.Vel, e, []Command[testEnt]{Spawn(gen, testEnt{Tag: "child"})}
		})
		w = w.MoveViewpoint(12.5)
		return w
	}

	a, b := build(), build()
	if a.Seed() != b.Seed() {
		t.Errorf("seeds diverged: %v vs %v", a.Seed(), b.Seed())
	}
	if !reflect.DeepEqual(a.Entities(), b.Entities()) {
		t.Error("entity state diverged between identical runs")
	}
	if a.ViewpointPos() != b.ViewpointPos() {
		t.Error("viewpoint diverged between identical runs")
	}
}

func TestViewpointMotion(t *testing.T) {
	w := newTestWorld()
	w = w.MoveViewpoint(-10)
	if w.ViewpointPos() != 2290 {
		t.Errorf("viewpoint = %v, want 2290", w.ViewpointPos())
	}
	w = w.MoveViewpoint(30)
	if w.ViewpointPos() != 20 {
		t.Errorf("viewpoint = %v, want 20", w.ViewpointPos())
	}
	w = w.SetViewpointPosition(3*2300 + 7)
	if math.Abs(w.ViewpointPos()-7) > 1e-9 {
		t.Errorf("viewpoint = %v, want 7", w.ViewpointPos())
	}
}

func TestUpdateViewpoint(t *testing.T) {
	w := NewWithPlayer[testEnt, testLogic, testRender](100, rng.Seed(1), 50, testEnt{Vel: 1})
	w = w.UpdateViewpoint(func(e testEnt) testEnt {
		e.Vel += 2
		return e
	})
	p, ok := w.Player()
	if !ok {
		t.Fatal("player viewpoint reported as camera")
	}
	if p.Vel != 3 {
		t.Errorf("player vel = %v, want 3", p.Vel)
	}

	// Camera variant: UpdateViewpoint is a no-op and Player reports false.
	cam := newTestWorld()
	cam = cam.UpdateViewpoint(func(e testEnt) testEnt {
		t.Error("UpdateViewpoint ran on a camera viewpoint")
		return e
	})
	if _, ok := cam.Player(); ok {
		t.Error("camera viewpoint reported a player payload")
	}
}
