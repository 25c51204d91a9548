// Package stats tracks per-view render latency with HDR histograms and
// exposes the percentile summary the ops endpoint serves.
package stats

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// RenderStats is the latency summary for one view.
type RenderStats struct {
	Renders        int64         `json:"renders"`
	AverageLatency time.Duration `json:"average_latency"`
	P95Latency     time.Duration `json:"p95_latency"`
	P99Latency     time.Duration `json:"p99_latency"`
}

type Recorder struct {
	mu    sync.Mutex
	hists map[string]*hdrhistogram.Histogram
}

func NewRecorder() *Recorder {
	return &Recorder{hists: make(map[string]*hdrhistogram.Histogram)}
}

// Record adds one render duration for the named view.
func (r *Recorder) Record(view string, d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hists[view]
	if !ok {
		// 1us..10s range, 3 significant figures.
		h = hdrhistogram.New(1, 10_000_000_000, 3)
		r.hists[view] = h
	}
	h.RecordValue(d.Microseconds())
}

// Snapshot returns the per-view latency summary.
func (r *Recorder) Snapshot() map[string]RenderStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]RenderStats, len(r.hists))
	for view, h := range r.hists {
		out[view] = RenderStats{
			Renders:        h.TotalCount(),
			AverageLatency: time.Duration(h.Mean()) * time.Microsecond,
			P95Latency:     time.Duration(h.ValueAtQuantile(95)) * time.Microsecond,
			P99Latency:     time.Duration(h.ValueAtQuantile(99)) * time.Microsecond,
		}
	}
	return out
}
