//go:build !stm32f302 && !stm32f303e && !stm32f333 && !stm32f373

package gpio

import (
	"testing"

	"f3hal/exti"

	periphgpio "periph.io/x/conn/v3/gpio"
)

func TestInterruptGrouping(t *testing.T) {
	bank := new(Bank)
	cases := []struct {
		num  uint8
		want exti.IRQ
	}{
		{0, exti.EXTI0},
		{2, exti.EXTI2TSC},
		{4, exti.EXTI4},
		{7, exti.EXTI9_5},
		{13, exti.EXTI15_10},
	}
	for _, tc := range cases {
		in := testPin(bank, 0, tc.num).IntoFloatingInput()
		if got := in.Interrupt(); got != tc.want {
			t.Errorf("pin %d: Interrupt() = %d, want %d", tc.num, got, tc.want)
		}
	}
}

func TestMakeInterruptSource(t *testing.T) {
	bank := new(Bank)
	var s exti.SysCfg
	in := testPin(bank, 2, 13).IntoPullUpInput()
	in.MakeInterruptSource(&s)
	if got := s.EXTICR[3].Get() >> 4 & 0xf; got != 2 {
		t.Errorf("EXTICR4 field 1 = %d, want port C", got)
	}
}

func TestTriggerOnEdgeRewritesBothBits(t *testing.T) {
	bank := new(Bank)
	var c exti.Controller
	in := testPin(bank, 0, 5).IntoFloatingInput()

	in.TriggerOnEdge(&c, periphgpio.BothEdges)
	if !c.RTSR1.HasBits(1<<5) || !c.FTSR1.HasBits(1<<5) {
		t.Fatal("BothEdges did not arm both triggers")
	}
	in.TriggerOnEdge(&c, periphgpio.RisingEdge)
	if !c.RTSR1.HasBits(1 << 5) {
		t.Error("rising trigger lost")
	}
	if c.FTSR1.HasBits(1 << 5) {
		t.Error("falling trigger lingered after reselection")
	}
	in.TriggerOnEdge(&c, periphgpio.NoEdge)
	if c.RTSR1.HasBits(1<<5) || c.FTSR1.HasBits(1<<5) {
		t.Error("NoEdge left a trigger armed")
	}
}

func TestEnableDisableInterrupt(t *testing.T) {
	bank := new(Bank)
	var c exti.Controller
	in := testPin(bank, 1, 9).IntoFloatingInput()
	in.EnableInterrupt(&c)
	if !c.IMR1.HasBits(1 << 9) {
		t.Fatal("line not unmasked")
	}
	in.DisableInterrupt(&c)
	if c.IMR1.HasBits(1 << 9) {
		t.Fatal("line not masked")
	}
}

func TestCheckClearInterrupt(t *testing.T) {
	bank := new(Bank)
	var c exti.Controller
	in := testPin(bank, 0, 3).IntoFloatingInput()
	if in.CheckInterrupt(&c) {
		t.Fatal("pending without a flag")
	}
	c.PR1.SetBits(1 << 3)
	if !in.CheckInterrupt(&c) {
		t.Fatal("raised flag not seen")
	}
	in.ClearInterruptPendingBit(&c)
	if in.CheckInterrupt(&c) {
		t.Fatal("flag survived the clear")
	}
}
