// GPIO port banks and the pin mode state machine.
//
// Every port shares one register bank layout. Typed pin handles hold the
// concrete *Bank; erased handles hold the PortIO interface instead. All
// sub-word register fields go through the lock-free field replace in mmio, so
// pins of the same bank can be driven from concurrent contexts without a lock.
package gpio

import "f3hal/mmio"

// Bank is one GPIO port register block (STM32F3 layout).
type Bank struct {
	MODER   mmio.Reg32
	OTYPER  mmio.Reg32
	OSPEEDR mmio.Reg32
	PUPDR   mmio.Reg32
	IDR     mmio.Reg32
	ODR     mmio.Reg32
	BSRR    mmio.Reg32
	LCKR    mmio.Reg32
	AFRL    mmio.Reg32
	AFRH    mmio.Reg32
	BRR     mmio.Reg32
}

// PortIO is the mode-independent I/O surface of a port. Erased pin handles
// drive their bank through it.
type PortIO interface {
	IsLow(pin uint8) bool
	IsSetLow(pin uint8) bool
	SetHigh(pin uint8)
	SetLow(pin uint8)
}

var _ PortIO = (*Bank)(nil)

// IsLow reports whether the input data latch reads the pin low.
func (b *Bank) IsLow(pin uint8) bool {
	return !b.IDR.HasBits(1 << pin)
}

// IsSetLow reports whether the output data latch holds the pin low.
func (b *Bank) IsSetLow(pin uint8) bool {
	return !b.ODR.HasBits(1 << pin)
}

// SetHigh drives the pin high through the set half of the bit set/reset
// register. A single store, never read-modify-write.
func (b *Bank) SetHigh(pin uint8) {
	b.bsrr(1 << pin)
}

// SetLow drives the pin low through the reset half of the bit set/reset
// register.
func (b *Bank) SetLow(pin uint8) {
	b.bsrr(1 << (uint32(pin) + 16))
}

// Mode register field values.
const (
	modeInput     = 0b00
	modeOutput    = 0b01
	modeAlternate = 0b10
	modeAnalog    = 0b11
)

// Pull register field values.
const (
	pullNone = 0b00
	pullUp   = 0b01
	pullDown = 0b10
)

// Output type register field values.
const (
	otypePushPull  = 0b0
	otypeOpenDrain = 0b1
)

func (b *Bank) setMode(pin uint8, mode uint32) {
	b.MODER.ReplaceField(mode, 2, pin)
}

func (b *Bank) setOutputType(pin uint8, typ uint32) {
	b.OTYPER.ReplaceField(typ, 1, pin)
}

func (b *Bank) setPull(pin uint8, pull uint32) {
	b.PUPDR.ReplaceField(pull, 2, pin)
}

func (b *Bank) setSpeed(pin uint8, speed uint32) {
	b.OSPEEDR.ReplaceField(speed, 2, pin)
}

// setAltFunc programs the 4-bit alternate function selector. Pins 0..7 live
// in AFRL, 8..15 in AFRH.
func (b *Bank) setAltFunc(pin uint8, fn uint32) {
	if pin < 8 {
		b.AFRL.ReplaceField(fn, 4, pin)
	} else {
		b.AFRH.ReplaceField(fn, 4, pin-8)
	}
}
