//go:build tinygo

package rcc

import "unsafe"

const rccBase = 0x40021000

var Periph = (*RCC)(unsafe.Pointer(uintptr(rccBase)))
