//go:build rp2040 || rp2350

package sleep

import (
	"machine"
	"time"
)

// NewDeep returns a scheduler that reboots the board after the wake
// interval. A watchdog timeout is the supported way to reset an RP2
// from software; the fresh boot reruns the whole cycle.
func NewDeep() *Scheduler {
	return &Scheduler{
		sleep: time.Sleep,
		reset: func() {
			machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 1})
			machine.Watchdog.Start()
			for {
				time.Sleep(time.Second)
			}
		},
	}
}
