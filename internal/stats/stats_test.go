package stats

import (
	"testing"
	"time"
)

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	r.Record("journey", 2*time.Millisecond)
	r.Record("journey", 4*time.Millisecond)
	r.Record("finance", 1*time.Millisecond)

	snap := r.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("expected 2 views, got %d", len(snap))
	}
	j := snap["journey"]
	if j.Renders != 2 {
		t.Fatalf("journey renders = %d", j.Renders)
	}
	if j.AverageLatency < 2*time.Millisecond || j.AverageLatency > 5*time.Millisecond {
		t.Fatalf("journey average out of range: %v", j.AverageLatency)
	}
	if j.P99Latency < j.P95Latency {
		t.Fatalf("p99 %v below p95 %v", j.P99Latency, j.P95Latency)
	}
}

func TestRecorderEmpty(t *testing.T) {
	if snap := NewRecorder().Snapshot(); len(snap) != 0 {
		t.Fatalf("expected empty snapshot, got %v", snap)
	}
}
