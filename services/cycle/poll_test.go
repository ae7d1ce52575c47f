package cycle

import (
	"testing"
	"time"
)

func TestPollUntilImmediate(t *testing.T) {
	calls := 0
	ok := pollUntil(func() bool { calls++; return true }, time.Millisecond, 10*time.Millisecond, nil)
	if !ok || calls != 1 {
		t.Fatalf("ok=%v calls=%d", ok, calls)
	}
}

func TestPollUntilEventually(t *testing.T) {
	calls := 0
	ok := pollUntil(func() bool {
		calls++
		return calls >= 3
	}, time.Millisecond, 100*time.Millisecond, nil)
	if !ok {
		t.Fatal("predicate became true within the deadline")
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
}

func TestPollUntilDeadline(t *testing.T) {
	yields := 0
	start := time.Now()
	ok := pollUntil(func() bool { return false }, time.Millisecond, 15*time.Millisecond,
		func() { yields++ })
	if ok {
		t.Fatal("predicate never true")
	}
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Fatalf("returned before the deadline: %v", elapsed)
	}
	if yields == 0 {
		t.Fatal("yield hook never invoked during waits")
	}
}

func TestIdleWaitSlicesLongDelays(t *testing.T) {
	yields := 0
	idleWait(5*time.Millisecond, func() { yields++ })
	if yields == 0 {
		t.Fatal("yield hook never invoked")
	}
}
