package gpio

// Pin erasure. A typed handle holds its concrete *Bank; Downgrade trades
// that for the PortIO interface so pins from different ports can share a
// slice or array. The mode stays in the type; only the port becomes dynamic.

// ErasedInput is an input pin with the port erased.
type ErasedInput struct {
	port  PortIO
	index uint8
	num   uint8
}

// Downgrade erases the port from the handle.
func (p Input) Downgrade() ErasedInput {
	return ErasedInput{port: p.bank, index: p.port, num: p.num}
}

// Number returns the pin index within its port.
func (p ErasedInput) Number() uint8 { return p.num }

// PortIndex returns the port index (0=A, 1=B, ...).
func (p ErasedInput) PortIndex() uint8 { return p.index }

// IsHigh reports whether the line reads high.
func (p ErasedInput) IsHigh() bool { return !p.port.IsLow(p.num) }

// IsLow reports whether the line reads low.
func (p ErasedInput) IsLow() bool { return p.port.IsLow(p.num) }

// ErasedOutput is a push-pull output pin with the port erased.
type ErasedOutput struct {
	port  PortIO
	index uint8
	num   uint8
}

// Downgrade erases the port from the handle.
func (p PushPullOutput) Downgrade() ErasedOutput {
	return ErasedOutput{port: p.bank, index: p.port, num: p.num}
}

// Number returns the pin index within its port.
func (p ErasedOutput) Number() uint8 { return p.num }

// PortIndex returns the port index (0=A, 1=B, ...).
func (p ErasedOutput) PortIndex() uint8 { return p.index }

// SetHigh drives the pin high.
func (p ErasedOutput) SetHigh() { p.port.SetHigh(p.num) }

// SetLow drives the pin low.
func (p ErasedOutput) SetLow() { p.port.SetLow(p.num) }

// IsSetHigh reports whether the output latch holds the pin high.
func (p ErasedOutput) IsSetHigh() bool { return !p.port.IsSetLow(p.num) }

// IsSetLow reports whether the output latch holds the pin low.
func (p ErasedOutput) IsSetLow() bool { return p.port.IsSetLow(p.num) }

// Toggle inverts the output latch.
func (p ErasedOutput) Toggle() {
	if p.IsSetLow() {
		p.SetHigh()
	} else {
		p.SetLow()
	}
}

// ErasedOpenDrain is an open-drain output pin with the port erased. It keeps
// the line read-back of its typed form.
type ErasedOpenDrain struct {
	ErasedOutput
}

// Downgrade erases the port from the handle.
func (p OpenDrainOutput) Downgrade() ErasedOpenDrain {
	return ErasedOpenDrain{ErasedOutput{port: p.bank, index: p.port, num: p.num}}
}

// IsHigh reports whether the line reads high.
func (p ErasedOpenDrain) IsHigh() bool { return !p.port.IsLow(p.num) }

// IsLow reports whether the line reads low.
func (p ErasedOpenDrain) IsLow() bool { return p.port.IsLow(p.num) }
