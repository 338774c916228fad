// Package graphapi provides an embeddable, in-process property graph for Go.
//
// Vertices and edges are plain Go values whose Label method places them in a
// label partition. A schema registers the labels and the indexed vertex
// fields; the graph keeps hash, ordered and full-text indexes in sync as
// vertices are added, updated and removed.
//
// # Quick Start
//
//	type Vertex struct {
//	    Kind schema.Label
//	    Name string
//	    Age  uint64
//	}
//
//	func (v Vertex) Label() schema.Label { return v.Kind }
//
//	b := graphapi.NewSchema[Vertex, Edge]().
//	    VertexLabels("Person", "Project").
//	    EdgeLabels("Knows", "Created")
//	age := b.VertexIndex("person_age", Person, schema.Ordered, value.KindUint,
//	    func(v Vertex) (value.Value, bool) { return value.Uint(v.Age), true })
//	g := graphapi.New(b.MustBuild())
//
//	bryn := g.AddVertex(Vertex{Kind: Person, Name: "Bryn", Age: 45})
//	julia := g.AddVertex(Vertex{Kind: Person, Name: "Julia", Age: 48})
//	g.AddEdge(bryn, julia, Edge{Kind: Knows})
//
// # Walkers
//
// Queries are lazy walker pipelines. Nothing touches the graph until a
// terminal step pulls elements:
//
//	friends, err := g.Walk().
//	    Vertices(graph.VertexRange(age, value.Between(value.Uint(30), value.Uint(50)))).
//	    Edges(graph.EdgeLabel(Knows).Outgoing()).
//	    Head().
//	    Collect()
//
// Walks started with WalkMut may end in walker.MutateVertices or
// walker.MutateEdges, which visit every element before the first mutation.
//
// # Packages
//
//   - value: tagged values and ranges for index keys
//   - schema: labels, index registrations, mutation listeners
//   - graph: ids, searches, the Graph contract
//   - simple: the in-memory backend returned by New
//   - walker: the query engine
//
// # Key Features
//
//   - Label-partitioned storage with slot reuse
//   - Hash, ordered (B-tree) and phonetic full-text (Double Metaphone + bloom) indexes
//   - Direction, edge label and adjacent label edge searches
//   - Lazy walkers with detours, reductions and typed contexts
//   - Structured logging (slog) and pluggable metrics
package graphapi
