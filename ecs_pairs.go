package ljmd

// PairQuery3 is the World's unordered-pair enumeration contract: every
// distinct pair (i,j), i<j, of entities carrying all of A, B, C, handed to
// the body with exclusive mutable access to both sides at once. Unlike
// Query2/Query4.ParallelMap, it is always run single-threaded by its
// caller, because a pair body mutates both particles simultaneously (see
// the force kernel).
type PairQuery3[A, B, C any] struct {
	ecs *Ecs
}

func MakePairQuery3[A, B, C any](cmd *Commands) PairQuery3[A, B, C] {
	return PairQuery3[A, B, C]{ecs: cmd.app.ecs}
}

type pairItem3[A, B, C any] struct {
	id EntityId
	a  *A
	b  *B
	c  *C
}

func (q PairQuery3[A, B, C]) collect() []pairItem3[A, B, C] {
	id1, id2, id3 := identifyComponents3[A, B, C](q.ecs)
	req := []componentId{id1, id2, id3}

	var items []pairItem3[A, B, C]
	for _, arch := range q.ecs.archetypes {
		if !archHas(arch, req) {
			continue
		}

		comps1 := arch.componentData[id1].([]A)
		comps2 := arch.componentData[id2].([]B)
		comps3 := arch.componentData[id3].([]C)

		for entityId, row := range arch.entities {
			items = append(items, pairItem3[A, B, C]{
				id: entityId,
				a:  &comps1[row],
				b:  &comps2[row],
				c:  &comps3[row],
			})
		}
	}
	return items
}

// Pairs enumerates every unordered pair exactly once. body returns false
// to stop enumeration early. The O(N^2) double loop is the design's
// accepted simplification: a future neighbor list would need to visit
// this exact pair set or the RDF normalization in rdf.go breaks.
func (q PairQuery3[A, B, C]) Pairs(body func(i EntityId, ai *A, bi *B, ci *C, j EntityId, aj *A, bj *B, cj *C) bool) {
	items := q.collect()
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if !body(items[i].id, items[i].a, items[i].b, items[i].c, items[j].id, items[j].a, items[j].b, items[j].c) {
				return
			}
		}
	}
}

// Count returns the number of entities matching this query's component
// set, independent of pairing.
func (q PairQuery3[A, B, C]) Count() int {
	return len(q.collect())
}
