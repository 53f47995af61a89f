package gpio

import (
	"fmt"

	"f3hal/chip"
)

// AF is the set of alternate function markers AF0..AF15. The marker carries
// the function number in the type, so a pin handle's alternate function is
// part of its static type. The interface cannot be implemented outside the
// package.
type AF interface {
	afnum() uint8
}

type (
	AF0  struct{}
	AF1  struct{}
	AF2  struct{}
	AF3  struct{}
	AF4  struct{}
	AF5  struct{}
	AF6  struct{}
	AF7  struct{}
	AF8  struct{}
	AF9  struct{}
	AF10 struct{}
	AF11 struct{}
	AF12 struct{}
	AF13 struct{}
	AF14 struct{}
	AF15 struct{}
)

func (AF0) afnum() uint8  { return 0 }
func (AF1) afnum() uint8  { return 1 }
func (AF2) afnum() uint8  { return 2 }
func (AF3) afnum() uint8  { return 3 }
func (AF4) afnum() uint8  { return 4 }
func (AF5) afnum() uint8  { return 5 }
func (AF6) afnum() uint8  { return 6 }
func (AF7) afnum() uint8  { return 7 }
func (AF8) afnum() uint8  { return 8 }
func (AF9) afnum() uint8  { return 9 }
func (AF10) afnum() uint8 { return 10 }
func (AF11) afnum() uint8 { return 11 }
func (AF12) afnum() uint8 { return 12 }
func (AF13) afnum() uint8 { return 13 }
func (AF14) afnum() uint8 { return 14 }
func (AF15) afnum() uint8 { return 15 }

// Alternate is a pin handed to the on-chip peripheral selected by the
// alternate function A.
type Alternate[A AF] struct {
	bufferedPin
}

// Function returns the alternate function number.
func (p Alternate[A]) Function() uint8 {
	var a A
	return a.afnum()
}

// IntoAlternatePushPull hands the pin to the peripheral selected by A with a
// push-pull output buffer. The chip variant's pin tables decide whether the
// pin can multiplex A; an inadmissible pairing returns an error and leaves
// the pin unchanged.
func IntoAlternatePushPull[A AF](h Handle) (Alternate[A], error) {
	return intoAlternate[A](h, otypePushPull)
}

// IntoAlternateOpenDrain hands the pin to the peripheral selected by A with
// an open-drain output buffer.
func IntoAlternateOpenDrain[A AF](h Handle) (Alternate[A], error) {
	return intoAlternate[A](h, otypeOpenDrain)
}

func intoAlternate[A AF](h Handle, otype uint32) (Alternate[A], error) {
	var a A
	p := h.raw()
	fn := a.afnum()
	if !chip.AFAllowed(p.port, p.num, fn) {
		return Alternate[A]{}, fmt.Errorf("gpio: P%c%d cannot multiplex AF%d on %s",
			'A'+p.port, p.num, fn, chip.Name)
	}
	p.bank.setAltFunc(p.num, uint32(fn))
	p.bank.setOutputType(p.num, otype)
	p.bank.setMode(p.num, modeAlternate)
	return Alternate[A]{bufferedPin{activePin{p}}}, nil
}
