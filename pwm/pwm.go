// PWM output on the general purpose and advanced control timers.
//
// Tim3 and Tim8 bring a timer up for edge-aligned PWM and return a channel
// with no output pin bound. Binding a pin through one of the OutputTo
// operations yields the Channel with the duty controls; a channel that never
// bound a pin has no way to drive one.
package pwm

import (
	"fmt"

	"f3hal/gpio"
	"f3hal/mmio"
	"f3hal/rcc"

	"periph.io/x/conn/v3/physic"
)

// Timer is a TIM register block (STM32F3 layout, the general purpose and
// advanced control timers share it).
type Timer struct {
	CR1   mmio.Reg32
	CR2   mmio.Reg32
	SMCR  mmio.Reg32
	DIER  mmio.Reg32
	SR    mmio.Reg32
	EGR   mmio.Reg32
	CCMR1 mmio.Reg32
	CCMR2 mmio.Reg32
	CCER  mmio.Reg32
	CNT   mmio.Reg32
	PSC   mmio.Reg32
	ARR   mmio.Reg32
	RCR   mmio.Reg32
	CCR1  mmio.Reg32
	CCR2  mmio.Reg32
	CCR3  mmio.Reg32
	CCR4  mmio.Reg32
	BDTR  mmio.Reg32
	DCR   mmio.Reg32
	DMAR  mmio.Reg32
}

const (
	cr1CEN  = 1 << 0
	cr1ARPE = 1 << 7
	egrUG   = 1 << 0
	bdtrMOE = 1 << 15

	// PWM mode 1 with compare preload on both channels of one
	// capture/compare mode register.
	ccmrPWMMode1 = 0x6868
)

// configure runs the shared bring-up: auto-reload preload, resolution into
// the reload register, prescaler from the peripheral clock, PWM mode 1 on
// all four compare channels, counter on. The advanced control timer
// additionally needs an update event to latch the prescaler and a main
// output enable in its break register.
func configure(t *Timer, res, freq uint16, clocks rcc.Clocks, advanced bool) {
	t.CR1.Set(cr1ARPE)
	t.ARR.Set(uint32(res))
	t.PSC.Set(uint32(clocks.PCLK2()/physic.Hertz) / (uint32(res) * uint32(freq)))
	if advanced {
		t.EGR.Set(egrUG)
	}
	t.SMCR.Set(0)
	t.CR2.Set(0)
	t.CCMR1.Set(ccmrPWMMode1)
	t.CCMR2.Set(ccmrPWMMode1)
	if advanced {
		t.BDTR.Set(bdtrMOE)
	}
	t.CR1.SetBits(cr1CEN)
}

// Tim3 brings the general purpose timer up for PWM at the given duty
// resolution and repetition frequency in hertz.
func Tim3(t *Timer, apb1 *rcc.APB1, res, freq uint16, clocks rcc.Clocks) Tim3Ch3 {
	apb1.Enable(rcc.TIM3EN)
	configure(t, res, freq, clocks, false)
	return Tim3Ch3{tim: t}
}

// Tim8 brings the advanced control timer up for PWM.
func Tim8(t *Timer, apb2 *rcc.APB2, res, freq uint16, clocks rcc.Clocks) Tim8Ch3 {
	apb2.Enable(rcc.TIM8EN)
	configure(t, res, freq, clocks, true)
	return Tim8Ch3{tim: t}
}

// pinIdent is the identity every pin handle exposes.
type pinIdent interface {
	PortIndex() uint8
	Number() uint8
}

func expectPin(p pinIdent, port, num uint8) error {
	if p.PortIndex() != port || p.Number() != num {
		return fmt.Errorf("pwm: pin P%c%d bound where P%c%d expected",
			'A'+p.PortIndex(), p.Number(), 'A'+port, num)
	}
	return nil
}

// Tim3Ch3 is channel 3 of the general purpose timer, no output pin bound.
type Tim3Ch3 struct {
	tim *Timer
}

// OutputToPB0 binds PB0, multiplexed to the timer on AF2.
func (t Tim3Ch3) OutputToPB0(p gpio.Alternate[gpio.AF2]) (Channel, error) {
	if err := expectPin(p, 1, 0); err != nil {
		return Channel{}, err
	}
	return Channel{tim: t.tim, ch: 3}, nil
}

// OutputToPC8 binds PC8, multiplexed to the timer on AF2.
func (t Tim3Ch3) OutputToPC8(p gpio.Alternate[gpio.AF2]) (Channel, error) {
	if err := expectPin(p, 2, 8); err != nil {
		return Channel{}, err
	}
	return Channel{tim: t.tim, ch: 3}, nil
}

// Tim8Ch3 is channel 3 of the advanced control timer, no output pin bound.
type Tim8Ch3 struct {
	tim *Timer
}

// OutputToPC8 binds PC8, multiplexed to the timer on AF4.
func (t Tim8Ch3) OutputToPC8(p gpio.Alternate[gpio.AF4]) (Channel, error) {
	if err := expectPin(p, 2, 8); err != nil {
		return Channel{}, err
	}
	return Channel{tim: t.tim, ch: 3}, nil
}

// OutputToPB9 binds PB9, multiplexed to the timer on AF10.
func (t Tim8Ch3) OutputToPB9(p gpio.Alternate[gpio.AF10]) (Channel, error) {
	if err := expectPin(p, 1, 9); err != nil {
		return Channel{}, err
	}
	return Channel{tim: t.tim, ch: 3}, nil
}

// Channel is a PWM channel with its output pin bound.
type Channel struct {
	tim *Timer
	ch  uint8
}

func (c Channel) ccr() *mmio.Reg32 {
	switch c.ch {
	case 1:
		return &c.tim.CCR1
	case 2:
		return &c.tim.CCR2
	case 3:
		return &c.tim.CCR3
	default:
		return &c.tim.CCR4
	}
}

// Enable connects the channel to its output pin.
func (c Channel) Enable() {
	c.tim.CCER.ReplaceField(1, 1, 4*(c.ch-1))
}

// Disable disconnects the channel from its output pin.
func (c Channel) Disable() {
	c.tim.CCER.ReplaceField(0, 1, 4*(c.ch-1))
}

// MaxDuty returns the duty value for a constantly high output, the timer's
// reload value.
func (c Channel) MaxDuty() uint16 {
	return uint16(c.tim.ARR.Get())
}

// Duty returns the current compare value.
func (c Channel) Duty() uint16 {
	return uint16(c.ccr().Get())
}

// SetDuty sets the compare value. It is not checked against the reload
// value; a larger duty holds the output high.
func (c Channel) SetDuty(duty uint16) {
	c.ccr().Set(uint32(duty))
}
