// Package signal maps cycle conditions to blocking indicator patterns.
// Each condition has a fixed, visually distinct blink signature; a
// call returns only after the whole pattern has played out, so callers
// can treat it as an atomic status report. With no indicator attached
// the timing is preserved as a plain wait.
package signal

import (
	"time"

	"envlogger-go/types"
)

// Pin is the indicator line. machine.Pin satisfies it on boards; hosts
// pass a fake or nil.
type Pin interface {
	High()
	Low()
}

// LED plays condition patterns on one pin.
type LED struct {
	pin Pin

	// Sleep is the wait primitive; replaced in tests. Defaults to
	// time.Sleep.
	Sleep func(time.Duration)
}

func New(pin Pin) *LED {
	return &LED{pin: pin, Sleep: time.Sleep}
}

// Signal blocks for the full pattern bound to c. Unknown conditions
// are a no-op.
func (l *LED) Signal(c types.Condition) {
	switch c {
	case types.CondStartup:
		// 3 quick blinks: system alive.
		l.blink(3, 150*time.Millisecond, 150*time.Millisecond)
		l.Sleep(500 * time.Millisecond)
	case types.CondConnecting:
		// Fast continuous blinking for ~2s.
		l.blink(10, 100*time.Millisecond, 100*time.Millisecond)
	case types.CondConnected:
		l.solid(2 * time.Second)
		l.Sleep(500 * time.Millisecond)
	case types.CondAuthFailure:
		// 5 fast + 1 long: wrong credentials.
		l.blink(5, 100*time.Millisecond, 100*time.Millisecond)
		l.Sleep(300 * time.Millisecond)
		l.blink(1, 800*time.Millisecond, 300*time.Millisecond)
		l.Sleep(500 * time.Millisecond)
	case types.CondNoAccessPoint:
		// 2 long blinks: association timed out.
		l.blink(2, 800*time.Millisecond, 300*time.Millisecond)
		l.Sleep(500 * time.Millisecond)
	case types.CondSensorFailure:
		l.blink(3, 800*time.Millisecond, 300*time.Millisecond)
		l.Sleep(500 * time.Millisecond)
	case types.CondUploadFailure:
		l.blink(4, 200*time.Millisecond, 200*time.Millisecond)
		l.Sleep(500 * time.Millisecond)
	case types.CondSleepEntry:
		// One long pulse: goodbye.
		l.solid(time.Second)
		l.Sleep(200 * time.Millisecond)
	}
}

// blink pulses the pin n times; no trailing off-delay after the last
// pulse.
func (l *LED) blink(n int, on, off time.Duration) {
	for i := 0; i < n; i++ {
		l.set(true)
		l.Sleep(on)
		l.set(false)
		if i < n-1 {
			l.Sleep(off)
		}
	}
}

func (l *LED) solid(d time.Duration) {
	l.set(true)
	l.Sleep(d)
	l.set(false)
}

func (l *LED) set(on bool) {
	if l.pin == nil {
		return
	}
	if on {
		l.pin.High()
	} else {
		l.pin.Low()
	}
}
