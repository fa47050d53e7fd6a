package profiler

import (
	"testing"
	"time"
)

func TestProfilerIntervalGating(t *testing.T) {
	p := NewProfiler(WithUpdateInterval(20 * time.Millisecond))

	if p.TickBatch(100, time.Millisecond) {
		t.Fatal("first tick inside the interval should not log")
	}

	time.Sleep(30 * time.Millisecond)
	if !p.TickBatch(100, time.Millisecond) {
		t.Fatal("tick after the interval elapsed should log")
	}

	// Counters reset after a logging tick; the next immediate tick stays quiet.
	if p.TickBatch(100, time.Millisecond) {
		t.Fatal("tick right after logging should not log again")
	}
}

func TestProfilerDefaultInterval(t *testing.T) {
	p := NewProfiler()
	if p.updateInterval != time.Second {
		t.Fatalf("default interval = %v, want 1s", p.updateInterval)
	}

	p = NewProfiler(WithUpdateInterval(0))
	if p.updateInterval != time.Second {
		t.Fatalf("non-positive interval should keep the default, got %v", p.updateInterval)
	}
}
