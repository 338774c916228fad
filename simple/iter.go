package simple

import (
	"github.com/hupe1980/graphapi/graph"
	"github.com/hupe1980/graphapi/internal/index"
	"github.com/hupe1980/graphapi/schema"
)

// indexIter maps index slots to vertex ids of one label.
type indexIter struct {
	label schema.Label
	it    index.SlotIter
}

func (i *indexIter) Next() (graph.VertexID, bool) {
	slot, ok := i.it.Next()
	if !ok {
		return graph.VertexID{}, false
	}
	return graph.VertexID{Label: i.label, Slot: slot}, true
}

// partitionIter walks the live slots of consecutive vertex partitions.
type partitionIter[V any] struct {
	parts []*labelledVertices[V]
	label int
	last  int
	slot  uint32
}

func (p *partitionIter[V]) Next() (graph.VertexID, bool) {
	for p.label <= p.last {
		slots := p.parts[p.label].slots
		if slot, ok := slots.Next(p.slot); ok {
			p.slot = slot + 1
			return graph.VertexID{Label: schema.Label(p.label), Slot: slot}, true
		}
		p.label++
		p.slot = 0
	}
	return graph.VertexID{}, false
}

type limitIter struct {
	it        graph.VertexIter
	remaining int
}

func (l *limitIter) Next() (graph.VertexID, bool) {
	if l.remaining <= 0 {
		return graph.VertexID{}, false
	}
	id, ok := l.it.Next()
	if ok {
		l.remaining--
	}
	return id, ok
}

func withLimit(it graph.VertexIter, search graph.VertexSearch) graph.VertexIter {
	if n, ok := search.Limit(); ok {
		return &limitIter{it: it, remaining: n}
	}
	return it
}

type noVertices struct{}

func (noVertices) Next() (graph.VertexID, bool) { return graph.VertexID{}, false }
