package ecs

import "strconv"

// Ref is a generation-tagged slot reference. The low 32 bits hold the slot
// index and the high 32 bits its generation. Generations start at 1 so the
// zero Ref never resolves.
type Ref uint64

type slotIndex uint32
type generation uint32

const slotIndexBits = 32

func makeRef(index slotIndex, gen generation) Ref {
	return Ref(uint64(gen)<<slotIndexBits | uint64(index))
}

// Index returns the slot index the ref points at.
func (r Ref) Index() int {
	return int(uint32(r))
}

func (r Ref) generation() generation {
	return generation(uint32(uint64(r) >> slotIndexBits))
}

func (r Ref) String() string {
	return strconv.Itoa(r.Index()) + "@" + strconv.FormatUint(uint64(r.generation()), 10)
}

func (r Ref) Valid() bool {
	return r.generation() != 0
}
