package gpio

import periphgpio "periph.io/x/conn/v3/gpio"

// Speed selects the output buffer slew rate.
type Speed uint8

const (
	LowSpeed    Speed = 0b00
	MediumSpeed Speed = 0b01
	HighSpeed   Speed = 0b11
)

// pin is the core of every handle: which bank, which port, which pin. The
// mode transitions live here so every handle type promotes them. Each
// transition returns a fresh handle for the new mode; the old handle is stale
// afterwards and must not be used again.
type pin struct {
	bank *Bank
	port uint8
	num  uint8
}

func (p pin) raw() pin { return p }

// Number returns the pin index within its port.
func (p pin) Number() uint8 { return p.num }

// PortIndex returns the port index (0=A, 1=B, ...).
func (p pin) PortIndex() uint8 { return p.port }

// Handle is satisfied by every pin handle type in this package. It exists so
// the alternate-function transitions can accept any mode; it cannot be
// implemented outside the package.
type Handle interface {
	raw() pin
}

// IntoFloatingInput reconfigures the pin as a floating input.
func (p pin) IntoFloatingInput() Input {
	p.bank.setPull(p.num, pullNone)
	p.bank.setMode(p.num, modeInput)
	return Input{activePin{p}}
}

// IntoPullUpInput reconfigures the pin as an input with the internal pull-up
// engaged.
func (p pin) IntoPullUpInput() Input {
	p.bank.setPull(p.num, pullUp)
	p.bank.setMode(p.num, modeInput)
	return Input{activePin{p}}
}

// IntoPullDownInput reconfigures the pin as an input with the internal
// pull-down engaged.
func (p pin) IntoPullDownInput() Input {
	p.bank.setPull(p.num, pullDown)
	p.bank.setMode(p.num, modeInput)
	return Input{activePin{p}}
}

// IntoPushPullOutput reconfigures the pin as a push-pull output.
func (p pin) IntoPushPullOutput() PushPullOutput {
	p.bank.setOutputType(p.num, otypePushPull)
	p.bank.setMode(p.num, modeOutput)
	return PushPullOutput{outPin{bufferedPin{activePin{p}}}}
}

// IntoOpenDrainOutput reconfigures the pin as an open-drain output.
func (p pin) IntoOpenDrainOutput() OpenDrainOutput {
	p.bank.setOutputType(p.num, otypeOpenDrain)
	p.bank.setMode(p.num, modeOutput)
	return OpenDrainOutput{outPin{bufferedPin{activePin{p}}}}
}

// IntoAnalog reconfigures the pin for the analog peripherals. The internal
// resistor is forced off; analog mode must not bias the line.
func (p pin) IntoAnalog() Analog {
	p.bank.setPull(p.num, pullNone)
	p.bank.setMode(p.num, modeAnalog)
	return Analog{p}
}

// activePin adds the operations shared by every digital mode: resistor
// control and external interrupt routing. Analog pins do not have it.
type activePin struct {
	pin
}

// SetInternalResistor engages or releases the internal pull resistor.
// PullNoChange leaves the current configuration alone.
func (p activePin) SetInternalResistor(res periphgpio.Pull) {
	switch res {
	case periphgpio.Float:
		p.bank.setPull(p.num, pullNone)
	case periphgpio.PullUp:
		p.bank.setPull(p.num, pullUp)
	case periphgpio.PullDown:
		p.bank.setPull(p.num, pullDown)
	}
}

// bufferedPin adds output buffer control for modes that drive the line.
type bufferedPin struct {
	activePin
}

// SetSpeed selects the output buffer slew rate.
func (p bufferedPin) SetSpeed(s Speed) {
	p.bank.setSpeed(p.num, uint32(s))
}

// outPin adds the digital output operations. All are infallible.
type outPin struct {
	bufferedPin
}

// SetHigh drives the pin high.
func (p outPin) SetHigh() { p.bank.SetHigh(p.num) }

// SetLow drives the pin low.
func (p outPin) SetLow() { p.bank.SetLow(p.num) }

// IsSetHigh reports whether the output latch holds the pin high. This reads
// the latch, not the line.
func (p outPin) IsSetHigh() bool { return !p.bank.IsSetLow(p.num) }

// IsSetLow reports whether the output latch holds the pin low.
func (p outPin) IsSetLow() bool { return p.bank.IsSetLow(p.num) }

// Toggle inverts the output latch.
func (p outPin) Toggle() {
	if p.IsSetLow() {
		p.SetHigh()
	} else {
		p.SetLow()
	}
}

// Input is a pin in input mode.
type Input struct {
	activePin
}

// IsHigh reports whether the line reads high.
func (p Input) IsHigh() bool { return !p.bank.IsLow(p.num) }

// IsLow reports whether the line reads low.
func (p Input) IsLow() bool { return p.bank.IsLow(p.num) }

// PushPullOutput is a pin in push-pull output mode.
type PushPullOutput struct {
	outPin
}

// OpenDrainOutput is a pin in open-drain output mode. The line can be read
// back: an external device may hold it low while the latch releases it.
type OpenDrainOutput struct {
	outPin
}

// IsHigh reports whether the line reads high.
func (p OpenDrainOutput) IsHigh() bool { return !p.bank.IsLow(p.num) }

// IsLow reports whether the line reads low.
func (p OpenDrainOutput) IsLow() bool { return p.bank.IsLow(p.num) }

// InternalPullUp engages or releases the internal pull-up. Open-drain lines
// often need it when no external resistor is fitted.
func (p OpenDrainOutput) InternalPullUp(on bool) {
	if on {
		p.bank.setPull(p.num, pullUp)
	} else {
		p.bank.setPull(p.num, pullNone)
	}
}

// Analog is a pin handed to the analog peripherals. It has no digital
// operations; only the mode transitions remain.
type Analog struct {
	pin
}
