package gpio

import (
	"f3hal/chip"
	"f3hal/exti"

	periphgpio "periph.io/x/conn/v3/gpio"
)

// External interrupt routing. Each pin index owns one external interrupt
// line; the routing registers select which port feeds it. These operations
// exist on every digital mode and are absent from analog pins.

// Interrupt returns the interrupt-controller position serving this pin's
// line. Lines 5..9 and 10..15 share a position.
func (p activePin) Interrupt() exti.IRQ {
	return chip.LineIRQ(p.num)
}

// MakeInterruptSource routes this pin's port onto its external interrupt
// line. The line serves one port at a time; rerouting steals it.
func (p activePin) MakeInterruptSource(s *exti.SysCfg) {
	s.SelectPort(p.port, p.num)
}

// TriggerOnEdge selects which signal edges raise the line's pending flag.
// Both trigger bits are rewritten, so a previous selection never lingers.
func (p activePin) TriggerOnEdge(c *exti.Controller, edge periphgpio.Edge) {
	var rising, falling uint32
	switch edge {
	case periphgpio.RisingEdge:
		rising = 1
	case periphgpio.FallingEdge:
		falling = 1
	case periphgpio.BothEdges:
		rising, falling = 1, 1
	}
	c.RTSR1.ReplaceField(rising, 1, p.num)
	c.FTSR1.ReplaceField(falling, 1, p.num)
}

// EnableInterrupt unmasks the line.
func (p activePin) EnableInterrupt(c *exti.Controller) {
	c.IMR1.ReplaceField(1, 1, p.num)
}

// DisableInterrupt masks the line.
func (p activePin) DisableInterrupt(c *exti.Controller) {
	c.IMR1.ReplaceField(0, 1, p.num)
}

// CheckInterrupt reports whether the line's pending flag is raised.
func (p activePin) CheckInterrupt(c *exti.Controller) bool {
	return c.Pending(p.num)
}

// ClearInterruptPendingBit drops the line's pending flag.
func (p activePin) ClearInterruptPendingBit(c *exti.Controller) {
	c.ClearPending(p.num)
}
