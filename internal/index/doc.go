// Package index provides the storage behind indexed vertex fields.
//
// There is one variant per schema.IndexKind:
//
//	Hash      key -> slots, point lookups
//	Ordered   key -> slots in a B-tree, point and range lookups
//	FullText  slot -> bloom filter of phonetic word codes, text search
//
// Slots of one key are kept in a SlotSet (a roaring bitmap), so inserting a
// pair twice never produces duplicate results. Lookups return pull
// iterators that are evaluated lazily.
package index
