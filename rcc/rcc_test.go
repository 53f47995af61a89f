package rcc

import (
	"testing"

	"periph.io/x/conn/v3/physic"
)

func TestEnableGPIOBits(t *testing.T) {
	cases := []struct {
		port uint8
		bit  uint8
	}{
		{0, 17}, // A
		{1, 18}, // B
		{2, 19}, // C
		{5, 22}, // F
		{6, 23}, // G
		{7, 16}, // H sits below A..G
	}
	for _, tc := range cases {
		var blk RCC
		r := blk.Constrain(DefaultClocks())
		r.AHB.EnableGPIO(tc.port)
		if got := blk.AHBENR.Get(); got != 1<<tc.bit {
			t.Errorf("port %d: AHBENR = %#x, want bit %d", tc.port, got, tc.bit)
		}
	}
}

func TestEnableGPIOPreservesOtherBits(t *testing.T) {
	var blk RCC
	r := blk.Constrain(DefaultClocks())
	r.AHB.EnableGPIO(0)
	r.AHB.EnableGPIO(1)
	want := uint32(1<<17 | 1<<18)
	if got := blk.AHBENR.Get(); got != want {
		t.Errorf("AHBENR = %#x, want %#x", got, want)
	}
}

func TestResetGPIOPulses(t *testing.T) {
	var blk RCC
	r := blk.Constrain(DefaultClocks())
	r.AHB.ResetGPIO(2)
	if got := blk.AHBRSTR.Get(); got != 0 {
		t.Errorf("AHBRSTR = %#x after reset pulse, want 0", got)
	}
}

func TestTimerEnableBits(t *testing.T) {
	var blk RCC
	r := blk.Constrain(DefaultClocks())
	r.APB1.Enable(TIM3EN)
	r.APB2.Enable(TIM8EN)
	if got := blk.APB1ENR.Get(); got != 1<<TIM3EN {
		t.Errorf("APB1ENR = %#x, want %#x", got, uint32(1)<<TIM3EN)
	}
	if got := blk.APB2ENR.Get(); got != 1<<TIM8EN {
		t.Errorf("APB2ENR = %#x, want %#x", got, uint32(1)<<TIM8EN)
	}
}

func TestDefaultClocks(t *testing.T) {
	c := DefaultClocks()
	const hsi = 8 * physic.MegaHertz
	if c.SYSCLK() != hsi || c.HCLK() != hsi || c.PCLK1() != hsi || c.PCLK2() != hsi {
		t.Errorf("DefaultClocks = %v/%v/%v/%v, want %v on every bus",
			c.SYSCLK(), c.HCLK(), c.PCLK1(), c.PCLK2(), hsi)
	}
}
