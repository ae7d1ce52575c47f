package cycle

import (
	"time"

	"envlogger-go/errcode"
	"envlogger-go/x/logx"
	"envlogger-go/x/mathx"
	"envlogger-go/x/timex"
)

// Sanity bounds for a synced clock. A value at or below the epoch
// threshold means the clock was never set; a value above it can still
// decode to the epoch year when the sync wrote garbage, so both checks
// must pass.
const (
	epochSanityMin int64 = 100000
	epochZeroYear        = 1970
)

// TimeSyncConfig bounds the sync stage.
type TimeSyncConfig struct {
	Server        string
	OffsetSeconds int
	Attempts      int           // default 3
	Poll          time.Duration // clock poll interval (default 1s)
	PollCount     int           // polls per attempt (default 10)
	Backoff       time.Duration // delay between attempts (default 2s)
}

func (c TimeSyncConfig) withDefaults() TimeSyncConfig {
	c.Attempts = mathx.ClampDefault(c.Attempts, 3, 1, 10)
	c.PollCount = mathx.ClampDefault(c.PollCount, 10, 1, 60)
	if c.Poll <= 0 {
		c.Poll = time.Second
	}
	if c.Backoff <= 0 {
		c.Backoff = 2 * time.Second
	}
	return c
}

// TimeSync drives the clock collaborator through bounded retries with
// two-layer sanity validation. Failure is non-fatal to the cycle.
type TimeSync struct {
	clock TimeSource
	cfg   TimeSyncConfig
	yield YieldFunc
	log   logx.Logger
}

func NewTimeSync(clock TimeSource, cfg TimeSyncConfig, yield YieldFunc) *TimeSync {
	return &TimeSync{
		clock: clock,
		cfg:   cfg.withDefaults(),
		yield: yield,
		log:   logx.New("timesync"),
	}
}

func (t *TimeSync) Run() error {
	for attempt := 1; attempt <= t.cfg.Attempts; attempt++ {
		t.log.Infof("sync attempt %d of %d", attempt, t.cfg.Attempts)
		t.clock.RequestSync(t.cfg.Server, t.cfg.OffsetSeconds)

		budget := time.Duration(t.cfg.PollCount) * t.cfg.Poll
		set := pollUntil(func() bool {
			return t.clock.NowEpochSeconds() > epochSanityMin
		}, t.cfg.Poll, budget, t.yield)

		if set {
			now := t.clock.NowEpochSeconds()
			if year := timex.YearOf(now); year > epochZeroYear {
				t.log.Infof("clock synced: %s", timex.Stamp(now))
				return nil
			}
			t.log.Warnf("clock set but year is still %d", timex.YearOf(now))
		} else {
			t.log.Warnf("clock not set within poll budget")
		}
		if attempt < t.cfg.Attempts {
			idleWait(t.cfg.Backoff, t.yield)
		}
	}
	return &errcode.E{C: errcode.TimeSync, Op: "timesync",
		Msg: "all attempts exhausted"}
}
