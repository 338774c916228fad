package index

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/hupe1980/graphapi/schema"
	"github.com/hupe1980/graphapi/value"
)

// FalsePositiveRate is the target false-positive rate of each slot filter.
const FalsePositiveRate = 0.001

// FullText is a phonetic full-text index: slot -> bloom filter of the
// Double Metaphone codes of the slot's words.
//
// A search matches a slot when its filter contains every query word.
// Phonetically equal words always match; unrelated words may match with
// probability FalsePositiveRate per word.
type FullText struct {
	filters map[uint32]*bloom.BloomFilter
	slots   *SlotSet
}

// NewFullText creates an empty full-text index.
func NewFullText() *FullText {
	return &FullText{
		filters: make(map[uint32]*bloom.BloomFilter),
		slots:   NewSlotSet(),
	}
}

// Kind implements Storage.
func (f *FullText) Kind() schema.IndexKind { return schema.FullText }

// Insert implements Storage. key must be a string; other kinds are ignored.
// Inserting a slot again replaces its filter.
func (f *FullText) Insert(key value.Value, slot uint32) {
	text, ok := key.AsString()
	if !ok {
		return
	}
	toks := tokens(text)

	n := 0
	for _, t := range toks {
		n++
		if t.alt != "" {
			n++
		}
	}
	filter := bloom.NewWithEstimates(uint(max(n, 1)), FalsePositiveRate)
	for _, t := range toks {
		filter.AddString(t.primary)
		if t.alt != "" {
			filter.AddString(t.alt)
		}
	}

	f.filters[slot] = filter
	f.slots.Add(slot)
}

// Remove implements Storage. The key is ignored; the slot's filter is dropped.
func (f *FullText) Remove(_ value.Value, slot uint32) {
	if _, ok := f.filters[slot]; !ok {
		return
	}
	delete(f.filters, slot)
	f.slots.Remove(slot)
}

// Search implements TextSearch. An empty query matches nothing.
func (f *FullText) Search(query string) SlotIter {
	toks := tokens(query)
	if len(toks) == 0 || f.slots.IsEmpty() {
		return Empty()
	}
	return &searchIter{ft: f, toks: toks, it: f.slots.Iter()}
}

// Clear implements Storage.
func (f *FullText) Clear() {
	clear(f.filters)
	f.slots.Clear()
}

// Len implements Storage.
func (f *FullText) Len() int { return len(f.filters) }

func (f *FullText) matches(slot uint32, toks []phoneticWord) bool {
	filter, ok := f.filters[slot]
	if !ok {
		return false
	}
	for _, t := range toks {
		if filter.TestString(t.primary) {
			continue
		}
		if t.alt != "" && filter.TestString(t.alt) {
			continue
		}
		return false
	}
	return true
}

type searchIter struct {
	ft   *FullText
	toks []phoneticWord
	it   SlotIter
}

func (s *searchIter) Next() (uint32, bool) {
	for slot, ok := s.it.Next(); ok; slot, ok = s.it.Next() {
		if s.ft.matches(slot, s.toks) {
			return slot, true
		}
	}
	return 0, false
}
