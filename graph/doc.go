// Package graph defines the contract between graph backends and the walker
// engine: element ids, search descriptors, references and the Graph
// interfaces.
//
// # Capabilities
//
// Optional backend features are split into one interface or capability flag
// per feature:
//
//	Graph         read access and searches (gated by Capabilities)
//	MutableGraph  adding elements and in-place updates
//	Remover       SupportsElementRemoval
//	Clearer       SupportsClear
//
// A search that needs a missing capability is rejected with an error
// wrapping ErrUnsupported; it never degrades into a full scan.
//
// # Ids
//
// A VertexID is a (label, slot) pair. An EdgeID additionally embeds its tail
// and head vertex ids. Ids are stable while the element lives; a slot freed
// by removal may be handed to a new element later.
package graph
