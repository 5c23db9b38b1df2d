package ljmd

import (
	"reflect"
	"sync"
)

// Query1/2/4 are the World's typed-tuple query contract: each type
// parameter names a component the query requires, and Map/ParallelMap
// visit every entity carrying the full tuple. The MD pipeline never needs
// dynamic include/exclude filtering or optional components — every system
// spawns with its full component set up front and queries a fixed tuple —
// so, unlike the store this was adapted from, there is no With/Without/Any
// filter chain and no per-call optional-component list.
type Query1[A any] struct{ ecs *Ecs }
type Query2[A, B any] struct{ ecs *Ecs }
type Query4[A, B, C, D any] struct{ ecs *Ecs }

func MakeQuery1[A any](cmd *Commands) Query1[A]       { return Query1[A]{ecs: cmd.app.ecs} }
func MakeQuery2[A, B any](cmd *Commands) Query2[A, B] { return Query2[A, B]{ecs: cmd.app.ecs} }
func MakeQuery4[A, B, C, D any](cmd *Commands) Query4[A, B, C, D] {
	return Query4[A, B, C, D]{ecs: cmd.app.ecs}
}

// Helper: type -> componentId
func idOf[T any](ecs *Ecs) componentId {
	var zero T
	t := reflect.TypeOf(zero)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return ecs.getComponentId(t)
}

// Archetype key membership helper.
func archHas(arch *archetype, ids []componentId) bool {
	for _, id := range ids {
		if _, ok := arch.componentData[id]; !ok {
			return false
		}
	}
	return true
}

func identifyComponents1[A any](ecs *Ecs) componentId {
	return idOf[A](ecs)
}
func identifyComponents2[A, B any](ecs *Ecs) (componentId, componentId) {
	return idOf[A](ecs), idOf[B](ecs)
}
func identifyComponents3[A, B, C any](ecs *Ecs) (componentId, componentId, componentId) {
	return idOf[A](ecs), idOf[B](ecs), idOf[C](ecs)
}
func identifyComponents4[A, B, C, D any](ecs *Ecs) (componentId, componentId, componentId, componentId) {
	return idOf[A](ecs), idOf[B](ecs), idOf[C](ecs), idOf[D](ecs)
}

func (q Query1[A]) Map(m func(EntityId, *A) bool) {
	id1 := identifyComponents1[A](q.ecs)
	req := []componentId{id1}

	for _, arch := range q.ecs.archetypes {
		if !archHas(arch, req) {
			continue
		}
		comps1 := arch.componentData[id1].([]A)
		for entityId, row := range arch.entities {
			if !m(entityId, &comps1[row]) {
				return
			}
		}
	}
}

func (q Query2[A, B]) Map(m func(EntityId, *A, *B) bool) {
	id1, id2 := identifyComponents2[A, B](q.ecs)
	req := []componentId{id1, id2}

	for _, arch := range q.ecs.archetypes {
		if !archHas(arch, req) {
			continue
		}
		comps1 := arch.componentData[id1].([]A)
		comps2 := arch.componentData[id2].([]B)
		for entityId, row := range arch.entities {
			if !m(entityId, &comps1[row], &comps2[row]) {
				return
			}
		}
	}
}

func (q Query4[A, B, C, D]) Map(m func(EntityId, *A, *B, *C, *D) bool) {
	id1, id2, id3, id4 := identifyComponents4[A, B, C, D](q.ecs)
	req := []componentId{id1, id2, id3, id4}

	for _, arch := range q.ecs.archetypes {
		if !archHas(arch, req) {
			continue
		}
		comps1 := arch.componentData[id1].([]A)
		comps2 := arch.componentData[id2].([]B)
		comps3 := arch.componentData[id3].([]C)
		comps4 := arch.componentData[id4].([]D)
		for entityId, row := range arch.entities {
			if !m(entityId, &comps1[row], &comps2[row], &comps3[row], &comps4[row]) {
				return
			}
		}
	}
}

// dispatchParallel splits [0,n) into batchSize-sized chunks and runs each
// chunk on its own goroutine, waiting for all of them before returning.
// Chunking, rather than one goroutine per entity, keeps the goroutine
// count at ceil(N/BatchSize) instead of N; a batchSize of 1
// degenerates to a goroutine per entity, which is still correct.
func dispatchParallel(n, batchSize int, chunk func(lo, hi int)) {
	if n == 0 {
		return
	}
	if batchSize < 1 {
		batchSize = 1
	}

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += batchSize {
		hi := lo + batchSize
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			chunk(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

type queryItem2[A, B any] struct {
	id EntityId
	a  *A
	b  *B
}

func (q Query2[A, B]) collect() []queryItem2[A, B] {
	id1, id2 := identifyComponents2[A, B](q.ecs)
	req := []componentId{id1, id2}

	var items []queryItem2[A, B]
	for _, arch := range q.ecs.archetypes {
		if !archHas(arch, req) {
			continue
		}
		comps1 := arch.componentData[id1].([]A)
		comps2 := arch.componentData[id2].([]B)
		for entityId, row := range arch.entities {
			items = append(items, queryItem2[A, B]{id: entityId, a: &comps1[row], b: &comps2[row]})
		}
	}
	return items
}

// ParallelMap visits every matching entity across a worker pool, chunked
// by batchSize. The body must write only to its own entity's components:
// the store guarantees disjoint per-entity storage, but nothing stops two
// goroutines from racing on a resource captured by the closure.
func (q Query2[A, B]) ParallelMap(batchSize int, body func(EntityId, *A, *B)) {
	items := q.collect()
	dispatchParallel(len(items), batchSize, func(lo, hi int) {
		for _, it := range items[lo:hi] {
			body(it.id, it.a, it.b)
		}
	})
}

func (q Query2[A, B]) Count() int {
	return len(q.collect())
}

type queryItem4[A, B, C, D any] struct {
	id EntityId
	a  *A
	b  *B
	c  *C
	d  *D
}

func (q Query4[A, B, C, D]) collect() []queryItem4[A, B, C, D] {
	id1, id2, id3, id4 := identifyComponents4[A, B, C, D](q.ecs)
	req := []componentId{id1, id2, id3, id4}

	var items []queryItem4[A, B, C, D]
	for _, arch := range q.ecs.archetypes {
		if !archHas(arch, req) {
			continue
		}
		comps1 := arch.componentData[id1].([]A)
		comps2 := arch.componentData[id2].([]B)
		comps3 := arch.componentData[id3].([]C)
		comps4 := arch.componentData[id4].([]D)
		for entityId, row := range arch.entities {
			items = append(items, queryItem4[A, B, C, D]{
				id: entityId, a: &comps1[row], b: &comps2[row], c: &comps3[row], d: &comps4[row],
			})
		}
	}
	return items
}

// ParallelMap visits every matching entity across a worker pool, chunked
// by batchSize. See Query2.ParallelMap for the disjoint-write contract.
func (q Query4[A, B, C, D]) ParallelMap(batchSize int, body func(EntityId, *A, *B, *C, *D)) {
	items := q.collect()
	dispatchParallel(len(items), batchSize, func(lo, hi int) {
		for _, it := range items[lo:hi] {
			body(it.id, it.a, it.b, it.c, it.d)
		}
	})
}
