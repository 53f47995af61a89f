//go:build tinygo

package gpio

import "unsafe"

// Bank base addresses. Banks sit 0x400 apart starting at port A.
const (
	bankBase   = 0x48000000
	bankStride = 0x400
)

var (
	GPIOA = (*Bank)(unsafe.Pointer(uintptr(bankBase + 0*bankStride)))
	GPIOB = (*Bank)(unsafe.Pointer(uintptr(bankBase + 1*bankStride)))
	GPIOC = (*Bank)(unsafe.Pointer(uintptr(bankBase + 2*bankStride)))
	GPIOD = (*Bank)(unsafe.Pointer(uintptr(bankBase + 3*bankStride)))
	GPIOE = (*Bank)(unsafe.Pointer(uintptr(bankBase + 4*bankStride)))
	GPIOF = (*Bank)(unsafe.Pointer(uintptr(bankBase + 5*bankStride)))
	GPIOG = (*Bank)(unsafe.Pointer(uintptr(bankBase + 6*bankStride)))
	GPIOH = (*Bank)(unsafe.Pointer(uintptr(bankBase + 7*bankStride)))
)

// bsrr stores a bit set/reset word. The hardware decodes set against reset;
// a plain store is race-free by construction.
func (b *Bank) bsrr(word uint32) {
	b.BSRR.Set(word)
}

// brr stores a bit reset word.
func (b *Bank) brr(word uint32) {
	b.BRR.Set(word)
}
