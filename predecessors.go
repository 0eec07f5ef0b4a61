package omega

import (
	"iter"
	"slices"
)

// ScanPredecessors yields the edges of ts entering q by scanning every state.
// It returns false if q is not a state of ts.
func ScanPredecessors[S comparable, E, Q, C any](ts TransitionSystem[S, E, Q, C], q StateIndex) (iter.Seq[Edge[E, C]], bool) {
	if _, ok := ts.StateColor(q); !ok {
		return nil, false
	}
	return func(yield func(Edge[E, C]) bool) {
		for p := range ts.StateIndices() {
			edges, ok := ts.EdgesFrom(p)
			if !ok {
				continue
			}
			for e := range edges {
				if e.Target == q && !yield(e) {
					return
				}
			}
		}
	}, true
}

// PredecessorIndex is a reverse edge index built once from a transition
// system. It reflects the system at construction time; rebuild it after
// mutating the system.
type PredecessorIndex[E, C any] struct {
	incoming map[StateIndex][]Edge[E, C]
}

var _ PredecessorIterable[rune, int] = (*PredecessorIndex[rune, int])(nil)

// NewPredecessorIndex indexes the incoming edges of every state of ts.
func NewPredecessorIndex[S comparable, E, Q, C any](ts TransitionSystem[S, E, Q, C]) *PredecessorIndex[E, C] {
	idx := &PredecessorIndex[E, C]{incoming: make(map[StateIndex][]Edge[E, C])}
	for q := range ts.StateIndices() {
		if _, ok := idx.incoming[q]; !ok {
			idx.incoming[q] = nil
		}
		edges, ok := ts.EdgesFrom(q)
		if !ok {
			continue
		}
		for e := range edges {
			idx.incoming[e.Target] = append(idx.incoming[e.Target], e)
		}
	}
	return idx
}

// Predecessors yields the edges entering q, grouped by source in the order
// the sources were visited.
func (idx *PredecessorIndex[E, C]) Predecessors(q StateIndex) (iter.Seq[Edge[E, C]], bool) {
	edges, ok := idx.incoming[q]
	if !ok {
		return nil, false
	}
	return slices.Values(edges), true
}
