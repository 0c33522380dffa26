package ecs

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func liveValues[T any](p *Pool[T]) []T {
	var out []T
	it := p.Iterate()
	for it.Next() {
		out = append(out, it.Current().Value)
	}
	return out
}

func requireInvariants[T any](t *testing.T, p *Pool[T]) {
	t.Helper()
	require.Equal(t, p.Cap(), p.Count()+p.Free(), "count + free must equal capacity")

	seen := make(map[int]bool, p.Count())
	it := p.Iterate()
	for it.Next() {
		node := it.Current()
		require.True(t, p.IsLive(node.Index), "chain visited free slot %d", node.Index)
		require.False(t, seen[node.Index], "chain visited slot %d twice", node.Index)
		seen[node.Index] = true
	}
	require.Len(t, seen, p.Count())
}

func TestPoolChainOrder(t *testing.T) {
	cases := []struct {
		name   string
		add    []string
		remove []int // positions in add order
		want   []string
	}{
		{"empty", nil, nil, nil},
		{"single", []string{"a"}, nil, []string{"a"}},
		{"insertion_order", []string{"a", "b", "c"}, nil, []string{"a", "b", "c"}},
		{"remove_middle", []string{"a", "b", "c"}, []int{1}, []string{"a", "c"}},
		{"remove_tail", []string{"a", "b", "c"}, []int{0}, []string{"b", "c"}},
		{"remove_head", []string{"a", "b", "c"}, []int{2}, []string{"a", "b"}},
		{"remove_all", []string{"a", "b", "c"}, []int{1, 0, 2}, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewPool[string](4)
			indices := make([]int, 0, len(c.add))
			for _, v := range c.add {
				indices = append(indices, p.Add(v))
			}
			for _, pos := range c.remove {
				p.Remove(indices[pos])
			}
			assert.Equal(t, c.want, liveValues(p))
			requireInvariants(t, p)
		})
	}
}

func TestPoolHeadAndTail(t *testing.T) {
	p := NewPool[int](3)
	assert.Nil(t, p.Head())
	assert.Nil(t, p.Tail())

	a := p.Add(1)
	b := p.Add(2)
	c := p.Add(3)

	require.Equal(t, a, p.Tail().Index)
	require.Equal(t, c, p.Head().Index)
	assert.Equal(t, b, p.Next(p.Tail()).Index)
	assert.Equal(t, b, p.Previous(p.Head()).Index)
	assert.Nil(t, p.Previous(p.Tail()))
	assert.Nil(t, p.Next(p.Head()))

	p.Remove(b)
	assert.Equal(t, c, p.Next(p.Tail()).Index)
	assert.Equal(t, a, p.Previous(p.Head()).Index)
}

func TestPoolReusesFreedSlots(t *testing.T) {
	p := NewPool[int](2)
	a := p.Add(1)
	p.Add(2)
	p.Remove(a)

	again := p.Add(3)
	assert.Equal(t, a, again, "freed index is reused first")
	assert.Equal(t, []int{2, 3}, liveValues(p), "reused slot joins at the head")
}

func TestPoolAddWhenFullPanics(t *testing.T) {
	p := NewPool[int](1)
	p.Add(1)
	assert.PanicsWithValue(t, ErrPoolExhausted, func() { p.Add(2) })
	requireInvariants(t, p)
}

func TestPoolDoubleFreeIsRejected(t *testing.T) {
	p := NewPool[int](3)
	a := p.Add(1)
	p.Add(2)
	p.Remove(a)

	assert.PanicsWithValue(t, ErrSlotNotLive, func() { p.Remove(a) })
	requireInvariants(t, p)
	assert.LessOrEqual(t, p.Free(), p.Cap())

	assert.PanicsWithValue(t, ErrSlotNotLive, func() { p.Remove(-1) })
	assert.PanicsWithValue(t, ErrSlotNotLive, func() { p.Remove(3) })
}

func TestPoolRemoveReturnsValue(t *testing.T) {
	p := NewPool[string](2)
	i := p.Add("zombie")
	assert.Equal(t, "zombie", p.Remove(i))
	assert.Equal(t, "", p.GetAt(i).Value)
}

func TestPoolRefsGoStale(t *testing.T) {
	p := NewPool[string](1)
	i := p.Add("first")
	ref := p.RefAt(i)
	require.True(t, ref.Valid())

	node, ok := p.Resolve(ref)
	require.True(t, ok)
	assert.Equal(t, "first", node.Value)

	p.Remove(i)
	_, ok = p.Resolve(ref)
	assert.False(t, ok, "ref to freed slot must not resolve")

	j := p.Add("second")
	require.Equal(t, i, j)
	_, ok = p.Resolve(ref)
	assert.False(t, ok, "ref must not resolve to the slot's new occupant")

	fresh := p.RefAt(j)
	assert.NotEqual(t, ref, fresh)
	node, ok = p.Resolve(fresh)
	require.True(t, ok)
	assert.Equal(t, "second", node.Value)

	assert.Equal(t, Ref(0), NewPool[int](1).RefAt(0), "free slot has no ref")
	_, ok = p.Resolve(0)
	assert.False(t, ok)
}

func TestPoolRemoveCurrentDuringIteration(t *testing.T) {
	p := NewPool[int](8)
	for i := 1; i <= 6; i++ {
		p.Add(i)
	}

	var visited []int
	it := p.Iterate()
	for it.Next() {
		node := it.Current()
		visited = append(visited, node.Value)
		if node.Value%2 == 0 {
			p.Remove(node.Index)
		}
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, visited)
	assert.Equal(t, []int{1, 3, 5}, liveValues(p))
	requireInvariants(t, p)
}

func TestPoolAddDuringIterationIsNotVisited(t *testing.T) {
	p := NewPool[int](4)
	p.Add(1)
	p.Add(2)

	var visited []int
	it := p.Iterate()
	for it.Next() {
		node := it.Current()
		visited = append(visited, node.Value)
		if node.Value == 1 {
			p.Remove(node.Index)
			p.Add(10)
		}
	}

	assert.Equal(t, []int{1, 2}, visited)
	assert.Equal(t, []int{2, 10}, liveValues(p))
}

func TestPoolIterateIsRestartable(t *testing.T) {
	p := NewPool[int](3)
	p.Add(1)
	p.Add(2)

	assert.Equal(t, []int{1, 2}, liveValues(p))
	assert.Equal(t, []int{1, 2}, liveValues(p))

	it := p.Iterate()
	require.True(t, it.Next())
	require.True(t, it.Next())
	assert.False(t, it.Next())
	assert.False(t, it.Next(), "exhausted iterator stays exhausted")
}

func TestPoolAll(t *testing.T) {
	p := NewPool[int](4)
	for i := 1; i <= 4; i++ {
		p.Add(i)
	}

	sum := 0
	for index, v := range p.All() {
		sum += *v
		if *v == 3 {
			p.Remove(index)
		}
		if *v == 4 {
			*v = 40
		}
	}
	assert.Equal(t, 10, sum)
	assert.Equal(t, []int{1, 2, 40}, liveValues(p))

	first := 0
	for _, v := range p.All() {
		first = *v
		break
	}
	assert.Equal(t, 1, first)
}

func TestPoolClear(t *testing.T) {
	p := NewPool[int](3)
	a := p.Add(1)
	ref := p.RefAt(a)
	p.Add(2)

	p.Clear()
	assert.Equal(t, 0, p.Count())
	assert.Equal(t, 3, p.Cap())
	assert.Empty(t, liveValues(p))
	_, ok := p.Resolve(ref)
	assert.False(t, ok)
	requireInvariants(t, p)

	for i := 0; i < 3; i++ {
		p.Add(i)
	}
	assert.Equal(t, []int{0, 1, 2}, liveValues(p))
}

func TestPoolInvariantUnderRandomOps(t *testing.T) {
	const capacity = 16
	rng := rand.New(rand.NewSource(42))
	p := NewPool[int](capacity)
	live := map[int]int{}
	var order []int

	for step := 0; step < 2000; step++ {
		if p.Count() < capacity && (p.Count() == 0 || rng.Intn(2) == 0) {
			idx := p.Add(step)
			live[idx] = step
			order = append(order, step)
		} else {
			victim := order[rng.Intn(len(order))]
			for idx, v := range live {
				if v == victim {
					p.Remove(idx)
					delete(live, idx)
					break
				}
			}
			for i, v := range order {
				if v == victim {
					order = append(order[:i], order[i+1:]...)
					break
				}
			}
		}

		requireInvariants(t, p)
		got := liveValues(p)
		require.Len(t, got, len(order), "step %d", step)
		for i := range order {
			require.Equal(t, order[i], got[i], "step %d position %d", step, i)
		}
	}
}

func TestStack(t *testing.T) {
	s := NewStack[string](2)
	assert.Equal(t, 2, s.Cap())
	assert.PanicsWithValue(t, ErrStackEmpty, func() { s.Pop() })

	s.Push("a")
	s.Push("b")
	assert.PanicsWithValue(t, ErrStackFull, func() { s.Push("c") })
	assert.Equal(t, 2, s.Len())

	assert.Equal(t, "b", s.Pop())
	assert.Equal(t, "a", s.Pop())
	assert.Equal(t, 0, s.Len())
}

func TestBuffer(t *testing.T) {
	b := NewBuffer[int](2)
	assert.True(t, b.Add(1))
	assert.True(t, b.Add(2))
	assert.False(t, b.Add(3))
	assert.Equal(t, 1, b.Dropped())
	assert.Equal(t, []int{1, 2}, b.Items())
	assert.Equal(t, 2, b.At(1))

	b.Clear()
	assert.Equal(t, 0, b.Len())
	assert.True(t, b.Add(4))
	assert.Equal(t, []int{4}, b.Items())

	var nilBuf *Buffer[int]
	assert.False(t, nilBuf.Add(1))
	assert.Equal(t, 0, nilBuf.Len())
	nilBuf.Clear()
}

type recordingSystem struct {
	name string
}

func (s recordingSystem) Update(log *[]string) {
	*log = append(*log, s.name)
}

func TestSchedulerRunsInOrder(t *testing.T) {
	systems := []System[*[]string]{recordingSystem{"fire"}, recordingSystem{"contacts"}, recordingSystem{"physics"}}
	s := NewScheduler(systems...)
	systems[0] = recordingSystem{"replaced"}

	var log []string
	s.Update(&log)
	assert.Equal(t, []string{"fire", "contacts", "physics"}, log)
}
