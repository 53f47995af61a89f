//go:build !stm32f302 && !stm32f303e && !stm32f333 && !stm32f373

package chip

import (
	"testing"

	"f3hal/exti"
)

// These run against the default variant tables.

func TestDefaultVariantName(t *testing.T) {
	if Name != "stm32f303" {
		t.Fatalf("Name = %q, want stm32f303", Name)
	}
}

func TestHasPort(t *testing.T) {
	for port := uint8(0); port < 6; port++ {
		if !HasPort(port) {
			t.Errorf("port %d missing", port)
		}
	}
	if HasPort(6) || HasPort(7) {
		t.Error("ports G and H should not exist on this variant")
	}
	if HasPort(8) {
		t.Error("port index out of range reported present")
	}
}

func TestPinPresent(t *testing.T) {
	if !PinPresent(0, 0) || !PinPresent(0, 15) {
		t.Error("port A pins missing")
	}
	// Port F bonds out a sparse subset.
	for _, pin := range []uint8{0, 1, 2, 4, 6, 9, 10} {
		if !PinPresent(5, pin) {
			t.Errorf("PF%d missing", pin)
		}
	}
	for _, pin := range []uint8{3, 5, 7, 8, 11, 15} {
		if PinPresent(5, pin) {
			t.Errorf("PF%d reported present", pin)
		}
	}
}

func TestAFAllowed(t *testing.T) {
	cases := []struct {
		port, pin, fn uint8
		want          bool
	}{
		{2, 8, 4, true},   // PC8 TIM8_CH3
		{2, 8, 2, true},   // PC8 TIM3_CH3
		{1, 9, 10, true},  // PB9 TIM8_CH3
		{1, 0, 2, true},   // PB0 TIM3_CH3
		{0, 13, 0, true},  // PA13 SWDIO
		{2, 8, 3, false},  // not in PC8's set
		{2, 14, 1, false}, // PC14 has no alternate functions
		{5, 3, 1, false},  // PF3 not bonded out
		{0, 0, 16, false}, // function number out of range
		{6, 0, 1, false},  // port G not on this variant
	}
	for _, tc := range cases {
		if got := AFAllowed(tc.port, tc.pin, tc.fn); got != tc.want {
			t.Errorf("AFAllowed(%d, %d, %d) = %v, want %v",
				tc.port, tc.pin, tc.fn, got, tc.want)
		}
	}
}

func TestLineIRQ(t *testing.T) {
	cases := []struct {
		line uint8
		want exti.IRQ
	}{
		{0, exti.EXTI0},
		{2, exti.EXTI2TSC},
		{4, exti.EXTI4},
		{5, exti.EXTI9_5},
		{9, exti.EXTI9_5},
		{10, exti.EXTI15_10},
		{15, exti.EXTI15_10},
	}
	for _, tc := range cases {
		if got := LineIRQ(tc.line); got != tc.want {
			t.Errorf("LineIRQ(%d) = %d, want %d", tc.line, got, tc.want)
		}
	}
}
