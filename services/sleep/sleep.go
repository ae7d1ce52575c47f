// Package sleep parks the logger between wake cycles. On hardware the
// wake is a reset, so scheduling a wake is the last thing a cycle ever
// does; on a host the scheduler just blocks and lets the harness loop.
package sleep

import (
	"time"

	"envlogger-go/x/logx"
)

var log = logx.New("sleep")

// Scheduler blocks for the wake interval and then hands control to a
// platform reset, when one is configured.
type Scheduler struct {
	sleep func(time.Duration)
	reset func() // nil means return to the caller's cycle loop
}

func New() *Scheduler {
	return &Scheduler{sleep: time.Sleep}
}

// ScheduleWake parks for d. With a reset hook installed this call does
// not return.
func (s *Scheduler) ScheduleWake(d time.Duration) {
	log.Infof("sleeping for %ds", int64(d/time.Second))
	s.sleep(d)
	if s.reset != nil {
		s.reset()
	}
}
