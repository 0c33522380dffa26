package ecs

import (
	"errors"
	"iter"
)

var (
	ErrPoolExhausted = errors.New("ecs: pool exhausted")
	ErrSlotNotLive   = errors.New("ecs: slot is not live")
)

const none = -1

// Node is one slot of a Pool. Live nodes are threaded into a doubly linked
// chain through PrevIndex/NextIndex; -1 marks the chain ends.
type Node[T any] struct {
	Value     T
	Index     int
	PrevIndex int
	NextIndex int

	gen  generation
	live bool
}

func (n *Node[T]) HasPrevious() bool {
	return n.PrevIndex >= 0
}

func (n *Node[T]) HasNext() bool {
	return n.NextIndex >= 0
}

// Pool is a fixed-capacity slot array with a free-index stack and an
// intrusive linked list over the live slots. Add, Remove and lookups are
// O(1) and never allocate. The pool never grows.
//
// The chain runs from tail (oldest) to head (newest).
type Pool[T any] struct {
	nodes []Node[T]
	free  []int
	head  int
	tail  int
	count int
}

func NewPool[T any](capacity int) *Pool[T] {
	p := &Pool[T]{
		nodes: make([]Node[T], capacity),
		free:  make([]int, 0, capacity),
	}
	for i := range p.nodes {
		p.nodes[i].gen = 1
	}
	p.resetFree()
	return p
}

func (p *Pool[T]) resetFree() {
	p.free = p.free[:0]
	for i := len(p.nodes) - 1; i >= 0; i-- {
		p.free = append(p.free, i)
	}
	p.head = none
	p.tail = none
	p.count = 0
}

// Add stores value in a free slot, links it as the new head and returns its
// index. Adding to a full pool panics with ErrPoolExhausted.
func (p *Pool[T]) Add(value T) int {
	n := len(p.free)
	if n == 0 {
		panic(ErrPoolExhausted)
	}
	index := p.free[n-1]
	p.free = p.free[:n-1]

	node := &p.nodes[index]
	node.Value = value
	node.Index = index
	node.PrevIndex = p.head
	node.NextIndex = none
	node.live = true

	if p.head >= 0 {
		p.nodes[p.head].NextIndex = index
	}
	if p.tail < 0 {
		p.tail = index
	}
	p.head = index
	p.count++
	return index
}

// Remove unlinks the slot at index, returns its value and puts the index
// back on the free stack. Removing a slot that is not live panics with
// ErrSlotNotLive. Refs to the slot stop resolving.
func (p *Pool[T]) Remove(index int) T {
	if !p.IsLive(index) {
		panic(ErrSlotNotLive)
	}
	node := &p.nodes[index]

	if node.HasPrevious() {
		p.nodes[node.PrevIndex].NextIndex = node.NextIndex
	}
	if node.HasNext() {
		p.nodes[node.NextIndex].PrevIndex = node.PrevIndex
	}
	if index == p.tail {
		p.tail = node.NextIndex
	}
	if index == p.head {
		p.head = node.PrevIndex
	}

	value := node.Value
	var zero T
	node.Value = zero
	node.live = false
	node.gen++
	if node.gen == 0 {
		node.gen = 1
	}

	p.free = append(p.free, index)
	p.count--
	return value
}

// Clear frees every slot. Capacity is unchanged and outstanding refs go stale.
func (p *Pool[T]) Clear() {
	var zero T
	for i := range p.nodes {
		node := &p.nodes[i]
		if !node.live {
			continue
		}
		node.Value = zero
		node.live = false
		node.gen++
		if node.gen == 0 {
			node.gen = 1
		}
	}
	p.resetFree()
}

// IsLive reports whether index names an occupied slot.
func (p *Pool[T]) IsLive(index int) bool {
	return index >= 0 && index < len(p.nodes) && p.nodes[index].live
}

// GetAt returns the slot at index. The pointer stays valid until the slot is
// removed; callers must check liveness themselves.
func (p *Pool[T]) GetAt(index int) *Node[T] {
	return &p.nodes[index]
}

// Tail returns the oldest live node, or nil when the pool is empty.
func (p *Pool[T]) Tail() *Node[T] {
	if p.tail < 0 {
		return nil
	}
	return &p.nodes[p.tail]
}

// Head returns the newest live node, or nil when the pool is empty.
func (p *Pool[T]) Head() *Node[T] {
	if p.head < 0 {
		return nil
	}
	return &p.nodes[p.head]
}

func (p *Pool[T]) Previous(node *Node[T]) *Node[T] {
	if node == nil || !node.HasPrevious() {
		return nil
	}
	return &p.nodes[node.PrevIndex]
}

func (p *Pool[T]) Next(node *Node[T]) *Node[T] {
	if node == nil || !node.HasNext() {
		return nil
	}
	return &p.nodes[node.NextIndex]
}

// RefAt returns a generation-tagged ref to the live slot at index, or the
// zero Ref if the slot is free.
func (p *Pool[T]) RefAt(index int) Ref {
	if !p.IsLive(index) {
		return 0
	}
	return makeRef(slotIndex(index), p.nodes[index].gen)
}

// Resolve returns the node a ref was taken from, if that slot has not been
// freed since.
func (p *Pool[T]) Resolve(ref Ref) (*Node[T], bool) {
	index := ref.Index()
	if !ref.Valid() || !p.IsLive(index) {
		return nil, false
	}
	node := &p.nodes[index]
	if node.gen != ref.generation() {
		return nil, false
	}
	return node, true
}

// Count is the number of live slots.
func (p *Pool[T]) Count() int {
	return p.count
}

// Cap is the fixed number of slots.
func (p *Pool[T]) Cap() int {
	return len(p.nodes)
}

// Free is the size of the free-index stack. Free()+Count() == Cap() holds
// after every operation.
func (p *Pool[T]) Free() int {
	return len(p.free)
}

// Iterate walks the live chain from tail to head. The node just returned by
// Current may be removed before the next call to Next; removing any other
// node during the walk is not supported. Nodes added during the walk are not
// visited.
func (p *Pool[T]) Iterate() Iterator[T] {
	return Iterator[T]{pool: p, current: none, next: none}
}

// All yields index and value pointer of every live slot, tail to head, with
// the same removal rules as Iterate.
func (p *Pool[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		it := p.Iterate()
		for it.Next() {
			node := it.Current()
			if !yield(node.Index, &node.Value) {
				return
			}
		}
	}
}

// Iterator is a cursor over a pool's live chain. The successor is captured
// when the cursor advances, so freeing the current node does not cut the walk.
type Iterator[T any] struct {
	pool    *Pool[T]
	current int
	next    int
	started bool
	stop    int
}

// Next advances to the following live node and reports whether there was one.
func (it *Iterator[T]) Next() bool {
	if !it.started {
		it.started = true
		it.next = it.pool.tail
		it.stop = it.pool.head
	}
	if it.next < 0 || it.current == it.stop && it.current >= 0 {
		it.current = none
		it.next = none
		return false
	}
	it.current = it.next
	it.next = it.pool.nodes[it.current].NextIndex
	return true
}

// Current returns the node the cursor is on.
func (it *Iterator[T]) Current() *Node[T] {
	return &it.pool.nodes[it.current]
}
