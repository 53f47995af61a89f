// Atomic access to 32-bit peripheral registers.
//
// A Reg32 is one hardware register. On microcontroller builds register blocks
// are aliased onto their peripheral base addresses with unsafe.Pointer, and
// the sync/atomic operations below lower to the exclusive load/store sequence
// the bus requires; a plain read-modify-write here would lose concurrent
// updates to sibling bit fields.
package mmio

import "sync/atomic"

// Reg32 is a single 32-bit register.
type Reg32 struct {
	v uint32
}

// Get returns the current register value.
func (r *Reg32) Get() uint32 {
	return atomic.LoadUint32(&r.v)
}

// Set writes the register.
func (r *Reg32) Set(v uint32) {
	atomic.StoreUint32(&r.v, v)
}

// HasBits reports whether all bits in mask are set.
func (r *Reg32) HasBits(mask uint32) bool {
	return r.Get()&mask == mask
}

// SetBits sets the bits in mask, leaving the rest of the register untouched.
func (r *Reg32) SetBits(mask uint32) {
	r.update(func(v uint32) uint32 { return v | mask })
}

// ClearBits clears the bits in mask, leaving the rest of the register untouched.
func (r *Reg32) ClearBits(mask uint32) {
	r.update(func(v uint32) uint32 { return v &^ mask })
}

// ReplaceBits writes value into the bits selected by mask at bit position pos.
func (r *Reg32) ReplaceBits(value, mask uint32, pos uint8) {
	r.update(func(v uint32) uint32 { return v&^(mask<<pos) | value<<pos&(mask<<pos) })
}

// ReplaceField replaces the width-bit field at the given field index.
//
// A register packed with width-bit fields (width 1, 2 or 4) holds one field
// per pin index; ReplaceField rewrites exactly the bits
// [width*index, width*(index+1)) and leaves every other field intact, even
// when other callers are concurrently rewriting different fields of the same
// register. Callers that update the same field must hold the only live handle
// for it; that invariant is the pin ownership model, not this primitive.
func (r *Reg32) ReplaceField(value uint32, width, index uint8) {
	shift := uint(width) * uint(index)
	mask := uint32(1)<<width - 1
	r.update(func(v uint32) uint32 { return v&^(mask<<shift) | value&mask<<shift })
}

// update retries a compare-and-swap until the modification lands. There is no
// starvation bound; sustained contention spins. Do not call from two
// contexts where the loser cannot make progress (e.g. equal interrupt
// priority on a single core).
func (r *Reg32) update(f func(uint32) uint32) {
	for {
		old := atomic.LoadUint32(&r.v)
		if atomic.CompareAndSwapUint32(&r.v, old, f(old)) {
			return
		}
	}
}
