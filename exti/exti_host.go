//go:build !tinygo

package exti

// Host builds keep the register blocks in RAM so the routing logic is
// testable with go test.
var (
	EXTI   = new(Controller)
	SYSCFG = new(SysCfg)
)

// ClearPending emulates the write-one-to-clear pending register: on hardware
// the store of a 1 drops the flag.
func (c *Controller) ClearPending(line uint8) {
	c.PR1.ClearBits(1 << line)
}
