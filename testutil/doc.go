// Package testutil provides testing utilities for graphapi.
//
// This package is intended for use in tests and examples only.
//
// # Reference Dataset
//
// Schema returns a schema with Person, Project and Rust vertices and
// Knows, Created and Language edges. Populate fills a graph with the
// reference dataset:
//
//	s, ix := testutil.Schema()
//	g := simple.New(s)
//	refs := testutil.Populate(g)
//
// Setters such as Indexes.SetAge report field changes through a
// schema.MutationListener, the way generated projections do:
//
//	m, _ := g.VertexMut(refs.Bryn)
//	m.UpdateWith(func(v *testutil.Vertex, l schema.MutationListener) {
//		ix.SetAge(v, l, 46)
//	})
//
// # Random Graphs
//
//	rng := testutil.NewRNG(seed)
//	ids := rng.RandomPeople(g, 1000)
package testutil
