package world

import "slices"

// Registered is a system snapshot returned by the registry queries.
type Registered[T any] struct {
	ID      ID
	Enabled bool
	Data    T
}

// AddLogicSystem appends a logic system, enabled, consuming an ID from the
// shared counter. Registration order is execution order.
func (w World[E, L, R]) AddLogicSystem(data L) World[E, L, R] {
	w.logic = append(slices.Clone(w.logic), systemRec[L]{id: w.nextID, enabled: true, data: data})
	w.nextID++
	return w
}

// AddRenderSystem appends a render system, enabled, consuming an ID from
// the shared counter. Registration order is draw order.
func (w World[E, L, R]) AddRenderSystem(data R) World[E, L, R] {
	w.render = append(slices.Clone(w.render), systemRec[R]{id: w.nextID, enabled: true, data: data})
	w.nextID++
	return w
}

// LogicSystems returns the logic registry in registration order.
func (w World[E, L, R]) LogicSystems() []Registered[L] {
	out := make([]Registered[L], len(w.logic))
	for i, s := range w.logic {
		out[i] = Registered[L]{ID: s.id, Enabled: s.enabled, Data: s.data}
	}
	return out
}

// RenderSystems returns the render registry in registration order.
func (w World[E, L, R]) RenderSystems() []Registered[R] {
	out := make([]Registered[R], len(w.render))
	for i, s := range w.render {
		out[i] = Registered[R]{ID: s.id, Enabled: s.enabled, Data: s.data}
	}
	return out
}
