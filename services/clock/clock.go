// Package clock provides the cycle's time source: the system clock
// corrected by an SNTP measurement plus the site's fixed UTC offset.
package clock

import (
	"sync"
	"time"

	"github.com/beevik/ntp"

	"envlogger-go/x/logx"
)

var log = logx.New("clock")

// QueryFunc measures the offset of the local clock against a time
// server. Swappable in tests.
type QueryFunc func(server string) (time.Duration, error)

const queryTimeout = 5 * time.Second

func defaultQuery(server string) (time.Duration, error) {
	resp, err := ntp.QueryWithOptions(server, ntp.QueryOptions{Timeout: queryTimeout})
	if err != nil {
		return 0, err
	}
	if err := resp.Validate(); err != nil {
		return 0, err
	}
	return resp.ClockOffset, nil
}

// SNTP corrects time.Now by the last measured network offset. Until a
// sync succeeds the raw system clock is reported, which on a freshly
// powered board sits near the epoch and fails the cycle's sanity
// checks, exactly as an unsynced clock should.
type SNTP struct {
	query QueryFunc

	mu     sync.Mutex
	offset time.Duration // measured against the server
	fixed  time.Duration // configured site offset from UTC
	synced bool
}

func NewSNTP() *SNTP {
	return &SNTP{query: defaultQuery}
}

// RequestSync runs one query against server and, on success, latches
// the measured offset together with the site offset. Failures leave
// the previous state untouched so a stale-but-synced clock never
// regresses to unsynced.
func (c *SNTP) RequestSync(server string, offsetSeconds int) {
	off, err := c.query(server)
	if err != nil {
		log.Warnf("sync against %s failed: %v", server, err)
		return
	}
	c.mu.Lock()
	c.offset = off
	c.fixed = time.Duration(offsetSeconds) * time.Second
	c.synced = true
	c.mu.Unlock()
	log.Infof("synced against %s, offset %dms", server, off.Milliseconds())
}

// NowEpochSeconds returns the corrected local time as a Unix epoch.
func (c *SNTP) NowEpochSeconds() int64 {
	c.mu.Lock()
	adj := c.offset + c.fixed
	synced := c.synced
	c.mu.Unlock()
	if !synced {
		return time.Now().Unix()
	}
	return time.Now().Add(adj).Unix()
}

// Synced reports whether at least one query has succeeded.
func (c *SNTP) Synced() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.synced
}
