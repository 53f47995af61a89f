// Package hal declares the capability interfaces the pin and timer handles
// satisfy. Code above the register layer should depend on these rather than
// on the concrete handle types, so a driver written against a DigitalOut
// works with a typed pin, an erased pin, or a test double alike.
package hal

// DigitalOut drives a digital line. Operations are infallible; the handle
// types guarantee the pin is in an output mode.
type DigitalOut interface {
	SetHigh()
	SetLow()
}

// StatefulOut additionally reads back and inverts its own output latch.
type StatefulOut interface {
	DigitalOut
	IsSetHigh() bool
	IsSetLow() bool
	Toggle()
}

// DigitalIn reads a digital line.
type DigitalIn interface {
	IsHigh() bool
	IsLow() bool
}

// PWM controls one pulse-width modulated output.
type PWM interface {
	Enable()
	Disable()
	MaxDuty() uint16
	Duty() uint16
	SetDuty(duty uint16)
}
