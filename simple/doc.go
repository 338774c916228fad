// Package simple provides the in-memory property graph backend.
//
// Storage is partitioned by label:
//   - One vertex partition per vertex label, holding (payload, adjacency set)
//     pairs in a tombstone vector
//   - One edge partition per edge label, holding payloads only
//   - One index storage per schema index
//
// # Identifiers
//
// Vertex ids are (label, slot). Edge ids additionally carry both endpoints,
// so edges can be resolved without a reverse lookup. Slots of removed
// elements are reused by later inserts; an edge id whose slot now belongs to
// a different edge is reported as missing because its tail no longer holds
// the matching adjacency entry.
//
// # Adjacency
//
// Every edge is recorded twice: an outgoing entry at its tail and a mirrored
// incoming entry at its head. Entries sort by (direction, edge label,
// adjacent label, edge slot, adjacent slot), so an edge search becomes a
// handful of contiguous B-tree ranges:
//
//	g.Edges(v, graph.EdgeLabel(Knows).Outgoing().AdjacentLabelled(Person))
//
// Removing a vertex removes every incident edge and its mirror entry.
//
// # Index Maintenance
//
// Indexes are updated on insert and removal. VertexMut.Update re-reads every
// indexed field before and after the closure and moves changed entries.
// VertexMut.UpdateWith hands the closure a schema.MutationListener instead,
// which generated setters call for each field they change.
//
// # Usage
//
//	g := simple.New(s, simple.WithLogger(logger))
//	bryn := g.AddVertex(Person{Name: "Bryn", Age: 45})
//	n, err := g.Walk().Vertices(graph.VertexIndex(ix.Age, value.Uint(45))).Count()
//
// A Graph is not safe for concurrent use.
package simple
