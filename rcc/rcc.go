// Reset and clock control.
//
// The RCC block gates every peripheral used by this module. Constrain splits
// it into bus handles (AHB for the GPIO banks, APB1/APB2 for the timers) so
// each consumer borrows exclusive access to exactly the enable registers it
// needs, and into a Clocks snapshot carrying the bus frequencies.
package rcc

import (
	"f3hal/mmio"

	"periph.io/x/conn/v3/physic"
)

// RCC is the reset and clock control register block (STM32F3 layout).
type RCC struct {
	CR       mmio.Reg32
	CFGR     mmio.Reg32
	CIR      mmio.Reg32
	APB2RSTR mmio.Reg32
	APB1RSTR mmio.Reg32
	AHBENR   mmio.Reg32
	APB2ENR  mmio.Reg32
	APB1ENR  mmio.Reg32
	BDCR     mmio.Reg32
	CSR      mmio.Reg32
	AHBRSTR  mmio.Reg32
	CFGR2    mmio.Reg32
	CFGR3    mmio.Reg32
}

// Peripheral enable bit positions.
const (
	TIM2EN = 0  // APB1
	TIM3EN = 1  // APB1
	TIM1EN = 11 // APB2
	TIM8EN = 13 // APB2
)

// Rcc is the constrained form of the RCC block.
type Rcc struct {
	AHB    AHB
	APB1   APB1
	APB2   APB2
	Clocks Clocks
}

// Constrain splits the RCC block into bus handles. The clock tree itself is
// configured elsewhere; clocks is the frozen result.
func (r *RCC) Constrain(clocks Clocks) *Rcc {
	return &Rcc{
		AHB:    AHB{enr: &r.AHBENR, rstr: &r.AHBRSTR},
		APB1:   APB1{enr: &r.APB1ENR},
		APB2:   APB2{enr: &r.APB2ENR},
		Clocks: clocks,
	}
}

// AHB owns the AHB peripheral clock-enable and reset registers.
type AHB struct {
	enr  *mmio.Reg32
	rstr *mmio.Reg32
}

// EnableGPIO gates the clock to the GPIO bank with the given port index
// (0=A, 1=B, ...).
func (a *AHB) EnableGPIO(port uint8) {
	a.enr.SetBits(1 << iopenBit(port))
}

// ResetGPIO pulses the reset line of the GPIO bank: assert, then deassert.
func (a *AHB) ResetGPIO(port uint8) {
	a.rstr.SetBits(1 << iopenBit(port))
	a.rstr.ClearBits(1 << iopenBit(port))
}

// iopenBit maps a port index to its IOPxEN/IOPxRST bit. Ports A..G occupy
// bits 17..23; port H sits below at bit 16.
func iopenBit(port uint8) uint8 {
	if port == 7 {
		return 16
	}
	return 17 + port
}

// APB1 owns the APB1 peripheral clock-enable register.
type APB1 struct {
	enr *mmio.Reg32
}

// Enable gates the clock to the APB1 peripheral at the given enable bit.
func (a *APB1) Enable(bit uint8) {
	a.enr.SetBits(1 << bit)
}

// APB2 owns the APB2 peripheral clock-enable register.
type APB2 struct {
	enr *mmio.Reg32
}

// Enable gates the clock to the APB2 peripheral at the given enable bit.
func (a *APB2) Enable(bit uint8) {
	a.enr.SetBits(1 << bit)
}

// Clocks is a frozen snapshot of the bus frequencies.
type Clocks struct {
	sysclk physic.Frequency
	hclk   physic.Frequency
	pclk1  physic.Frequency
	pclk2  physic.Frequency
}

// NewClocks builds a snapshot from explicit bus frequencies.
func NewClocks(sysclk, hclk, pclk1, pclk2 physic.Frequency) Clocks {
	return Clocks{sysclk: sysclk, hclk: hclk, pclk1: pclk1, pclk2: pclk2}
}

// DefaultClocks is the post-reset clock tree: 8 MHz HSI on every bus.
func DefaultClocks() Clocks {
	const hsi = 8 * physic.MegaHertz
	return Clocks{sysclk: hsi, hclk: hsi, pclk1: hsi, pclk2: hsi}
}

// SYSCLK returns the system clock frequency.
func (c Clocks) SYSCLK() physic.Frequency { return c.sysclk }

// HCLK returns the AHB clock frequency.
func (c Clocks) HCLK() physic.Frequency { return c.hclk }

// PCLK1 returns the APB1 peripheral clock frequency.
func (c Clocks) PCLK1() physic.Frequency { return c.pclk1 }

// PCLK2 returns the APB2 peripheral clock frequency.
func (c Clocks) PCLK2() physic.Frequency { return c.pclk2 }
