package huffman

import (
	"container/heap"
)

// type queueItem + type treeQueue {{{

type queueItem struct {
	index  int32
	weight uint64
	seq    uint32
}

// treeQueue yields pending trees in ascending order of weight.  Trees of
// equal weight come out in the order they went in.
type treeQueue struct {
	list    []queueItem
	nextSeq uint32
}

func (q *treeQueue) add(index int32, weight uint64) {
	heap.Push(q, queueItem{index: index, weight: weight, seq: q.nextSeq})
	q.nextSeq++
}

func (q *treeQueue) remove() (queueItem, bool) {
	if len(q.list) == 0 {
		return queueItem{}, false
	}
	return heap.Pop(q).(queueItem), true
}

func (q *treeQueue) Len() int {
	return len(q.list)
}

func (q *treeQueue) Swap(i, j int) {
	q.list[i], q.list[j] = q.list[j], q.list[i]
}

func (q *treeQueue) Less(i, j int) bool {
	a, b := q.list[i], q.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.seq < b.seq
}

func (q *treeQueue) Push(x interface{}) {
	q.list = append(q.list, x.(queueItem))
}

func (q *treeQueue) Pop() interface{} {
	last := uint(len(q.list)) - 1
	x := q.list[last]
	q.list = q.list[:last]
	return x
}

var _ heap.Interface = (*treeQueue)(nil)

// }}}
