//go:build !tinygo

package rcc

// Host builds keep the register block in RAM so bus gating is testable with
// go test.
var Periph = new(RCC)
