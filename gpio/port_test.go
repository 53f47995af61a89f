//go:build !stm32f302 && !stm32f303e && !stm32f333 && !stm32f373

package gpio

import (
	"testing"

	"f3hal/rcc"
)

func testBus() (*rcc.RCC, *rcc.Rcc) {
	blk := new(rcc.RCC)
	return blk, blk.Constrain(rcc.DefaultClocks())
}

func TestSplitEnablesClock(t *testing.T) {
	blk, r := testBus()
	port := &APort{portCore{bank: new(Bank), index: 0}}
	port.Split(&r.AHB)
	if !blk.AHBENR.HasBits(1 << 17) {
		t.Error("port A clock not enabled")
	}
	if blk.AHBRSTR.Get() != 0 {
		t.Error("reset line left asserted")
	}
}

func TestSplitResetModes(t *testing.T) {
	_, r := testBus()
	pins := (&APort{portCore{bank: new(Bank), index: 0}}).Split(&r.AHB)
	if pins.PA0.PortIndex() != 0 || pins.PA0.Number() != 0 {
		t.Error("PA0 identity wrong")
	}
	if pins.PA13.Function() != 0 || pins.PA15.Number() != 15 {
		t.Error("debug pins not typed to AF0")
	}

	pinsB := (&BPort{portCore{bank: new(Bank), index: 1}}).Split(&r.AHB)
	if pinsB.PB3.Function() != 0 || pinsB.PB4.Function() != 0 {
		t.Error("JTAG pins not typed to AF0")
	}
	if pinsB.PB5.PortIndex() != 1 || pinsB.PB5.Number() != 5 {
		t.Error("PB5 identity wrong")
	}
}

func TestSplitTwicePanics(t *testing.T) {
	_, r := testBus()
	port := &Port{portCore{bank: new(Bank), index: 2}}
	port.Split(&r.AHB)
	defer func() {
		if recover() == nil {
			t.Error("second split did not panic")
		}
	}()
	port.Split(&r.AHB)
}

func TestSplitAbsentPortPanics(t *testing.T) {
	_, r := testBus()
	// Port G is not bonded out on this variant.
	port := &Port{portCore{bank: new(Bank), index: 6}}
	defer func() {
		if recover() == nil {
			t.Error("split of an absent port did not panic")
		}
	}()
	port.Split(&r.AHB)
}

// The full path: split a port, drive a pin, reconfigure it and read it back.
func TestSplitDriveReadBack(t *testing.T) {
	_, r := testBus()
	bank := new(Bank)
	pins := (&APort{portCore{bank: bank, index: 0}}).Split(&r.AHB)

	led := pins.PA5.IntoPushPullOutput()
	led.SetHigh()
	if !led.IsSetHigh() {
		t.Fatal("latch did not take the high level")
	}

	button := pins.PA0.IntoPullUpInput()
	bank.IDR.SetBits(1 << 0)
	if !button.IsHigh() {
		t.Fatal("input did not see the line")
	}

	// The LED handle keeps working after other pins reconfigure.
	pins.PA6.IntoAnalog()
	if !led.IsSetHigh() {
		t.Fatal("unrelated transition disturbed the output latch")
	}

	// Retyped to an input, the pin reports the line, not the old latch.
	sense := led.IntoFloatingInput()
	if sense.IsHigh() {
		t.Fatal("input read the stale output latch instead of the line")
	}
	bank.IDR.SetBits(1 << 5)
	if !sense.IsHigh() {
		t.Fatal("input did not follow the line after retyping")
	}
}
