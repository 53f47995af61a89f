//go:build !tinygo

package pwm

// Host builds keep the timer blocks in RAM so the bring-up sequence is
// testable with go test.
var (
	TIM3 = new(Timer)
	TIM8 = new(Timer)
)
