package cycle

import (
	"testing"
	"time"

	"envlogger-go/errcode"
)

func TestTimeSyncSuccess(t *testing.T) {
	clk := &fakeClock{onSync: func(n int) int64 { return 1_760_000_000 }}
	ts := NewTimeSync(clk, fastTimeSync(), nil)

	if err := ts.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clk.syncCalls != 1 {
		t.Fatalf("sync calls = %d, want 1", clk.syncCalls)
	}
}

func TestTimeSyncSecondAttempt(t *testing.T) {
	clk := &fakeClock{onSync: func(n int) int64 {
		if n < 2 {
			return 0
		}
		return 1_760_000_000
	}}
	ts := NewTimeSync(clk, fastTimeSync(), nil)

	if err := ts.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clk.syncCalls != 2 {
		t.Fatalf("sync calls = %d, want 2", clk.syncCalls)
	}
}

func TestTimeSyncEpochYearStillFails(t *testing.T) {
	// Just above the sanity threshold but still in 1970: both layers
	// must pass, so every attempt fails.
	clk := &fakeClock{onSync: func(n int) int64 { return 100_001 }}
	ts := NewTimeSync(clk, fastTimeSync(), nil)

	err := ts.Run()
	if err == nil {
		t.Fatal("expected failure for epoch-year clock")
	}
	if errcode.Of(err) != errcode.TimeSync {
		t.Fatalf("code = %v", errcode.Of(err))
	}
	if clk.syncCalls != 3 {
		t.Fatalf("sync calls = %d, want 3", clk.syncCalls)
	}
}

func TestTimeSyncNeverSetFailsAllAttempts(t *testing.T) {
	clk := &fakeClock{}
	cfg := fastTimeSync()
	ts := NewTimeSync(clk, cfg, nil)

	start := time.Now()
	err := ts.Run()
	if err == nil {
		t.Fatal("expected failure")
	}
	if clk.syncCalls != cfg.Attempts {
		t.Fatalf("sync calls = %d, want %d", clk.syncCalls, cfg.Attempts)
	}
	// Bounded: poll budget per attempt plus backoffs, with slack.
	if time.Since(start) > time.Second {
		t.Fatal("time sync exceeded its bounded budget")
	}
}
