// External interrupt controller plumbing.
//
// Controller is the EXTI register block; SysCfg is the system-configuration
// block whose EXTICR fields route one port's signal onto each external
// interrupt line. Both are borrowed mutably by the pin operations in the gpio
// package; neither is owned by any pin.
package exti

import "f3hal/mmio"

// IRQ identifies an interrupt-controller line (NVIC position).
type IRQ uint8

// NVIC positions of the external interrupt vectors. Lines 0..4 are dedicated,
// lines 5..9 share EXTI9_5 and lines 10..15 share EXTI15_10. Line 2 is
// combined with the touch-sense controller; the f373 family names that vector
// EXTI2_TS instead of EXTI2_TSC but it sits at the same position.
const (
	EXTI0     IRQ = 6
	EXTI1     IRQ = 7
	EXTI2TSC  IRQ = 8
	EXTI2TS   IRQ = 8
	EXTI3     IRQ = 9
	EXTI4     IRQ = 10
	EXTI9_5   IRQ = 23
	EXTI15_10 IRQ = 40
)

// Controller is the EXTI register block (bank 1 covers lines 0..31, which
// includes all sixteen GPIO lines). Dual-core variants duplicate the mask and
// trigger registers per core; the build-tagged address file maps Controller
// at the bank belonging to the core being built for.
type Controller struct {
	IMR1   mmio.Reg32
	EMR1   mmio.Reg32
	RTSR1  mmio.Reg32
	FTSR1  mmio.Reg32
	SWIER1 mmio.Reg32
	PR1    mmio.Reg32
	IMR2   mmio.Reg32
	EMR2   mmio.Reg32
	RTSR2  mmio.Reg32
	FTSR2  mmio.Reg32
	SWIER2 mmio.Reg32
	PR2    mmio.Reg32
}

// SysCfg is the system configuration register block. EXTICR holds four 4-bit
// port-select fields per register, four registers for the sixteen lines.
type SysCfg struct {
	CFGR1  mmio.Reg32
	RCR    mmio.Reg32
	EXTICR [4]mmio.Reg32
	CFGR2  mmio.Reg32
}

// SelectPort routes the given port's signal (0=A, 1=B, ...) onto the
// external interrupt line of the given pin index.
func (s *SysCfg) SelectPort(port, pin uint8) {
	s.EXTICR[pin/4].ReplaceField(uint32(port), 4, pin%4)
}

// Pending reports whether the line's pending flag is raised.
func (c *Controller) Pending(line uint8) bool {
	return c.PR1.HasBits(1 << line)
}
