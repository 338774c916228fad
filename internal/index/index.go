package index

import (
	"fmt"

	"github.com/hupe1980/graphapi/schema"
	"github.com/hupe1980/graphapi/value"
)

// Storage is the write side shared by every index variant.
//
// Inserting a key/slot pair twice keeps a single entry. Removing a pair
// that is not present is a no-op.
type Storage interface {
	// Kind returns the index kind this storage implements.
	Kind() schema.IndexKind
	// Insert adds slot under key.
	Insert(key value.Value, slot uint32)
	// Remove drops slot from key.
	Remove(key value.Value, slot uint32)
	// Clear removes every entry.
	Clear()
	// Len returns the number of distinct keys (or indexed slots for full-text).
	Len() int
}

// PointLookup is implemented by storages that answer equality lookups.
type PointLookup interface {
	// Get returns the slots stored under key.
	Get(key value.Value) SlotIter
}

// RangeLookup is implemented by ordered storages.
type RangeLookup interface {
	// Range returns the slots of every key within r, in key order.
	Range(r value.Range) SlotIter
}

// TextSearch is implemented by full-text storages.
type TextSearch interface {
	// Search returns the slots whose text contains every word of query.
	Search(query string) SlotIter
}

// New creates the storage for an index kind.
func New(kind schema.IndexKind) Storage {
	switch kind {
	case schema.Hash:
		return NewHash()
	case schema.Ordered:
		return NewOrdered()
	case schema.FullText:
		return NewFullText()
	default:
		panic(fmt.Sprintf("index: unknown kind %s", kind))
	}
}
