//go:build rp2040 || rp2350

package power

import "machine"

// DefaultSteps darkens everything the wake cycle brings up on demand.
// The radio in particular must not boot-scan while the sensor warmup
// is drawing from the same battery.
func DefaultSteps() []Step {
	return []Step{
		{Name: "radio held in reset", Apply: func() {
			machine.NINA_RESETN.Configure(machine.PinConfig{Mode: machine.PinOutput})
			machine.NINA_RESETN.Low()
		}},
		{Name: "led off", Apply: func() {
			machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
			machine.LED.Low()
		}},
	}
}
