package proximity

import "container/heap"

type entryHeap []Entry

func (h entryHeap) Len() int           { return len(h) }
func (h entryHeap) Less(i, j int) bool { return compareEntries(h[i], h[j]) < 0 }
func (h entryHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) {
	*h = append(*h, x.(Entry))
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}

// Ranker orders paths by proximity to a reference path. Paths are scored as
// they are added so input can be consumed incrementally.
type Ranker struct {
	reference string
	next      int
	h         entryHeap
}

// NewRanker returns an empty Ranker for reference.
func NewRanker(reference string) *Ranker {
	r := &Ranker{reference: reference}
	heap.Init(&r.h)
	return r
}

// Reference returns the path candidates are compared against.
func (r *Ranker) Reference() string {
	return r.reference
}

// Add scores path, queues it and returns the queued entry. Empty paths are
// dropped (ok is false) and do not consume an index.
func (r *Ranker) Add(path string) (Entry, bool) {
	if path == "" {
		return Entry{}, false
	}
	e := Entry{
		Path:  path,
		Score: Score(r.reference, path),
		Index: r.next,
	}
	r.next++
	heap.Push(&r.h, e)
	return e, true
}

// Len reports how many entries are queued.
func (r *Ranker) Len() int {
	return r.h.Len()
}

// Drain removes every queued entry in rank order: highest score first, input
// order among equal scores.
func (r *Ranker) Drain() []Entry {
	out := make([]Entry, 0, r.h.Len())
	for r.h.Len() > 0 {
		out = append(out, heap.Pop(&r.h).(Entry))
	}
	return out
}

// Rank orders items by proximity to reference and drops empty items.
func Rank(reference string, items []string) []string {
	r := NewRanker(reference)
	for _, item := range items {
		r.Add(item)
	}
	entries := r.Drain()
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}
	return paths
}

func compareEntries(a, b Entry) int {
	if diff := compareIntDesc(a.Score, b.Score); diff != 0 {
		return diff
	}
	return compareInt(a.Index, b.Index)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareIntDesc(a, b int) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}
