package gpio

import (
	"fmt"
	"sync/atomic"

	"f3hal/chip"
	"f3hal/rcc"
)

// Ports and split. Splitting a port enables its bus clock, pulses its reset
// line and hands out one typed handle per pin, each in its documented reset
// mode. A port splits once; pin handles are the only way to reach the pins
// afterwards.

// portCore carries the state shared by every port type.
type portCore struct {
	bank  *Bank
	index uint8
	taken atomic.Bool
}

// claim enforces single split and brings the bank up.
func (p *portCore) claim(ahb *rcc.AHB) {
	if !chip.HasPort(p.index) {
		panic(fmt.Sprintf("gpio: port %c not present on %s", 'A'+p.index, chip.Name))
	}
	if p.taken.Swap(true) {
		panic(fmt.Sprintf("gpio: port %c already split", 'A'+p.index))
	}
	ahb.EnableGPIO(p.index)
	ahb.ResetGPIO(p.index)
}

func (p *portCore) input(n uint8) Input {
	return Input{activePin{pin{bank: p.bank, port: p.index, num: n}}}
}

// af0 types a pin that resets into alternate function 0 (the debug port
// pins). No register is touched; the hardware reset state already matches.
func (p *portCore) af0(n uint8) Alternate[AF0] {
	return Alternate[AF0]{bufferedPin{activePin{pin{bank: p.bank, port: p.index, num: n}}}}
}

// APort is port A. Its own Split result type carries the debug pins PA13,
// PA14 and PA15 in their reset mode.
type APort struct {
	portCore
}

// PinsA is the split form of port A. PA13/PA14/PA15 reset to the serial-wire
// and JTAG debug functions on AF0; everything else resets to floating input.
type PinsA struct {
	PA0, PA1, PA2, PA3, PA4, PA5, PA6, PA7 Input
	PA8, PA9, PA10, PA11, PA12             Input
	PA13, PA14, PA15                       Alternate[AF0]
}

// Split brings the port up and hands out its pins.
func (p *APort) Split(ahb *rcc.AHB) PinsA {
	p.claim(ahb)
	return PinsA{
		PA0: p.input(0), PA1: p.input(1), PA2: p.input(2), PA3: p.input(3),
		PA4: p.input(4), PA5: p.input(5), PA6: p.input(6), PA7: p.input(7),
		PA8: p.input(8), PA9: p.input(9), PA10: p.input(10), PA11: p.input(11),
		PA12: p.input(12),
		PA13: p.af0(13), PA14: p.af0(14), PA15: p.af0(15),
	}
}

// BPort is port B. PB3 and PB4 reset to JTAG functions on AF0.
type BPort struct {
	portCore
}

// PinsB is the split form of port B.
type PinsB struct {
	PB0, PB1, PB2                       Input
	PB3, PB4                            Alternate[AF0]
	PB5, PB6, PB7, PB8, PB9, PB10, PB11 Input
	PB12, PB13, PB14, PB15              Input
}

// Split brings the port up and hands out its pins.
func (p *BPort) Split(ahb *rcc.AHB) PinsB {
	p.claim(ahb)
	return PinsB{
		PB0: p.input(0), PB1: p.input(1), PB2: p.input(2),
		PB3: p.af0(3), PB4: p.af0(4),
		PB5: p.input(5), PB6: p.input(6), PB7: p.input(7), PB8: p.input(8),
		PB9: p.input(9), PB10: p.input(10), PB11: p.input(11), PB12: p.input(12),
		PB13: p.input(13), PB14: p.input(14), PB15: p.input(15),
	}
}

// Port is any of the remaining ports. All their pins reset to floating
// input.
type Port struct {
	portCore
}

// Pins is the split form of a port without special reset modes.
type Pins struct {
	P0, P1, P2, P3, P4, P5, P6, P7       Input
	P8, P9, P10, P11, P12, P13, P14, P15 Input
}

// Split brings the port up and hands out its pins.
func (p *Port) Split(ahb *rcc.AHB) Pins {
	p.claim(ahb)
	return Pins{
		P0: p.input(0), P1: p.input(1), P2: p.input(2), P3: p.input(3),
		P4: p.input(4), P5: p.input(5), P6: p.input(6), P7: p.input(7),
		P8: p.input(8), P9: p.input(9), P10: p.input(10), P11: p.input(11),
		P12: p.input(12), P13: p.input(13), P14: p.input(14), P15: p.input(15),
	}
}

// The chip's ports. Splitting a port the variant does not bond out panics.
var (
	A = &APort{portCore{bank: GPIOA, index: 0}}
	B = &BPort{portCore{bank: GPIOB, index: 1}}
	C = &Port{portCore{bank: GPIOC, index: 2}}
	D = &Port{portCore{bank: GPIOD, index: 3}}
	E = &Port{portCore{bank: GPIOE, index: 4}}
	F = &Port{portCore{bank: GPIOF, index: 5}}
	G = &Port{portCore{bank: GPIOG, index: 6}}
	H = &Port{portCore{bank: GPIOH, index: 7}}
)
