// Package schema is the static registration table that describes a graph's
// vertex and edge variants and their indexed fields.
//
// A schema is built once per application from a vertex type V and an edge
// type E. Both implement Element so the store can route every element to its
// label partition. Indexed fields are registered with an Accessor that
// extracts the field as a value.Value; the store reads fields only through
// these accessors and never through concrete field names.
//
// # Mutation Listener
//
// Setters that change an indexed field report the change through a
// MutationListener so the store can drop the old index entry and insert the
// new one:
//
//	func SetAge(p *Person, l schema.MutationListener, age uint64) {
//	    before := value.Uint(p.Age)
//	    p.Age = age
//	    l.Update(PersonAge, before, value.Uint(age))
//	}
package schema
