//go:build tinygo

package pwm

import "unsafe"

const (
	tim3Base = 0x40000400
	tim8Base = 0x40013400
)

var (
	TIM3 = (*Timer)(unsafe.Pointer(uintptr(tim3Base)))
	TIM8 = (*Timer)(unsafe.Pointer(uintptr(tim8Base)))
)
