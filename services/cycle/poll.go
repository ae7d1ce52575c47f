package cycle

import "time"

// YieldFunc hands control to host background tasks (watchdog refresh,
// network stack servicing). Nil is a no-op; time.Sleep already yields
// to the Go scheduler, the hook exists for platforms that need more.
type YieldFunc func()

// maxSleepSlice bounds any single blocking sleep so the yield hook
// runs often enough to keep a hardware watchdog fed.
const maxSleepSlice = 100 * time.Millisecond

// idleWait blocks for d, sleeping in bounded slices and yielding
// between them.
func idleWait(d time.Duration, yield YieldFunc) {
	for d > 0 {
		slice := d
		if slice > maxSleepSlice {
			slice = maxSleepSlice
		}
		time.Sleep(slice)
		if yield != nil {
			yield()
		}
		d -= slice
	}
}

// pollUntil evaluates pred every interval until it holds or timeout
// elapses. The predicate is checked once before any waiting. Returns
// true when pred held within the budget.
func pollUntil(pred func() bool, interval, timeout time.Duration, yield YieldFunc) bool {
	if interval <= 0 {
		interval = time.Millisecond
	}
	deadline := time.Now().Add(timeout)
	for {
		if pred() {
			return true
		}
		if !time.Now().Before(deadline) {
			return false
		}
		wait := interval
		if remain := time.Until(deadline); wait > remain {
			wait = remain
		}
		idleWait(wait, yield)
	}
}
