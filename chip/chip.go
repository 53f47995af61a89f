// Per-variant pin capability tables.
//
// Each supported chip variant contributes one build-tagged file declaring
// which ports exist, which pins each port bonds out, and which alternate
// functions each pin can multiplex. Exactly one variant is compiled in;
// stm32f303 is the default when no variant tag is given.
package chip

import "f3hal/exti"

// bankDesc describes one GPIO port of the selected variant. present is a
// bitmask of bonded-out pins; alt[n] is the bitmask of alternate function
// numbers pin n accepts. A pin can be present with an empty alt mask.
type bankDesc struct {
	present uint16
	alt     [16]uint16
}

const allPins = 0xffff

// pins builds a presence mask from explicit pin indices.
func pins(ns ...uint8) uint16 {
	var m uint16
	for _, n := range ns {
		m |= 1 << n
	}
	return m
}

// af builds an alternate-function mask from explicit function numbers.
func af(ns ...uint8) uint16 {
	var m uint16
	for _, n := range ns {
		m |= 1 << n
	}
	return m
}

// HasPort reports whether the variant bonds out any pin of the given port
// (0=A, 1=B, ...).
func HasPort(port uint8) bool {
	return port < 8 && banks[port].present != 0
}

// PinPresent reports whether the variant bonds out the given pin.
func PinPresent(port, pin uint8) bool {
	return port < 8 && pin < 16 && banks[port].present&(1<<pin) != 0
}

// AFAllowed reports whether the given pin can multiplex alternate function
// fn on this variant.
func AFAllowed(port, pin, fn uint8) bool {
	return PinPresent(port, pin) && fn < 16 && banks[port].alt[pin]&(1<<fn) != 0
}

// LineIRQ returns the interrupt-controller position serving the given
// external interrupt line. Lines 5..9 and 10..15 share a vector.
func LineIRQ(line uint8) exti.IRQ {
	switch {
	case line < 5:
		return exti.EXTI0 + exti.IRQ(line)
	case line < 10:
		return exti.EXTI9_5
	default:
		return exti.EXTI15_10
	}
}
