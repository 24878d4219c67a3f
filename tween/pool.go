package tween

const poolBlockSize = 64

// Pool recycles Tween instances through an explicit free list over
// block-allocated storage. Each engine owns its pools; there is no global
// pool and nothing is pooled behind the caller's back.
//
// Blocks are heap arrays referenced by pointer, so an acquired *Tween stays
// valid for the life of the pool even as more blocks are added. A released
// instance must not be used again: the same pointer will come back from a
// later Acquire, reset and reconfigured.
type Pool struct {
	blocks    []*[poolBlockSize]Tween
	live      []bool
	freeSlots []int
	nextIndex int
}

// NewPool creates an empty pool. Storage grows one block at a time on
// demand.
func NewPool() *Pool {
	return &Pool{}
}

// Acquire returns an unconfigured instance, reusing a released slot when one
// exists.
func (p *Pool) Acquire() *Tween {
	if n := len(p.freeSlots); n > 0 {
		slot := p.freeSlots[n-1]
		p.freeSlots = p.freeSlots[:n-1]
		p.live[slot] = true
		return p.at(slot)
	}

	slot := p.nextIndex
	p.nextIndex++

	if slot/poolBlockSize >= len(p.blocks) {
		p.blocks = append(p.blocks, new([poolBlockSize]Tween))
	}
	p.live = append(p.live, true)

	t := p.at(slot)
	t.pool = p
	t.slot = slot
	return t
}

// Release resets t and returns its slot to the free list. Releasing the same
// instance twice is a no-op; releasing an instance that belongs to another
// pool (or none) is a programmer error.
func (p *Pool) Release(t *Tween) {
	if t == nil {
		return
	}
	if t.pool != p {
		panic("tween: instance released to a pool it does not belong to")
	}
	if !p.live[t.slot] {
		return
	}
	p.live[t.slot] = false
	t.Reset()
	p.freeSlots = append(p.freeSlots, t.slot)
}

// To is the package-level To on a pooled instance.
func (p *Pool) To(reg *Registry, target any, tag TypeTag, kind, durationMillis int) *Tween {
	return p.Acquire().setupTo(reg, target, tag, kind, durationMillis)
}

// From is the package-level From on a pooled instance.
func (p *Pool) From(reg *Registry, target any, tag TypeTag, kind, durationMillis int) *Tween {
	return p.Acquire().setupFrom(reg, target, tag, kind, durationMillis)
}

// Set is the package-level Set on a pooled instance.
func (p *Pool) Set(reg *Registry, target any, tag TypeTag, kind int) *Tween {
	return p.Acquire().setupSet(reg, target, tag, kind)
}

// Call is the package-level Call on a pooled instance.
func (p *Pool) Call(cb Callback) *Tween {
	return p.Acquire().setupCall(cb)
}

// Mark is the package-level Mark on a pooled instance.
func (p *Pool) Mark() *Tween {
	return p.Acquire().setupMark()
}

// Size reports how many slots the pool has ever allocated.
func (p *Pool) Size() int {
	return p.nextIndex
}

// Idle reports how many allocated slots are waiting on the free list.
func (p *Pool) Idle() int {
	return len(p.freeSlots)
}

func (p *Pool) at(slot int) *Tween {
	return &p.blocks[slot/poolBlockSize][slot%poolBlockSize]
}
