//go:build !tinygo

package gpio

// Host builds keep the banks in RAM and emulate the set/reset decode the
// hardware performs on a BSRR store, so output behavior is observable in the
// output data latch under go test.

var (
	GPIOA = new(Bank)
	GPIOB = new(Bank)
	GPIOC = new(Bank)
	GPIOD = new(Bank)
	GPIOE = new(Bank)
	GPIOF = new(Bank)
	GPIOG = new(Bank)
	GPIOH = new(Bank)
)

// bsrr applies a bit set/reset word to the output latch. Set wins over reset
// for the same pin, matching the hardware priority.
func (b *Bank) bsrr(word uint32) {
	set := word & 0xffff
	reset := word >> 16
	b.ODR.ClearBits(reset &^ set)
	b.ODR.SetBits(set)
}

// brr applies a bit reset word to the output latch.
func (b *Bank) brr(word uint32) {
	b.ODR.ClearBits(word & 0xffff)
}
