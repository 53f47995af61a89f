package gpio

import "f3hal/hal"

// The pin handles satisfy the capability interfaces.
var (
	_ hal.StatefulOut = PushPullOutput{}
	_ hal.StatefulOut = OpenDrainOutput{}
	_ hal.DigitalIn   = Input{}
	_ hal.DigitalIn   = OpenDrainOutput{}

	_ hal.StatefulOut = ErasedOutput{}
	_ hal.StatefulOut = ErasedOpenDrain{}
	_ hal.DigitalIn   = ErasedInput{}
	_ hal.DigitalIn   = ErasedOpenDrain{}
)
