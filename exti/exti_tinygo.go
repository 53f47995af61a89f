//go:build tinygo

package exti

import "unsafe"

// Peripheral base addresses. On variants with per-core duplicate EXTI banks
// the Controller address is the one owned by the core this binary targets;
// changing cores is a build-configuration choice, never a runtime one.
const (
	extiBase   = 0x40010400
	syscfgBase = 0x40010000
)

var (
	EXTI   = (*Controller)(unsafe.Pointer(uintptr(extiBase)))
	SYSCFG = (*SysCfg)(unsafe.Pointer(uintptr(syscfgBase)))
)

// ClearPending drops the line's pending flag. The register is
// write-one-to-clear, so a plain store of the single bit suffices; no
// read-modify-write hazard exists for independent one-bit flags.
func (c *Controller) ClearPending(line uint8) {
	c.PR1.Set(1 << line)
}
