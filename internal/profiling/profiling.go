// Package profiling records per-frame CPU time under named buckets.
package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Profiler accumulates durations for the current frame.
type Profiler struct {
	mu          sync.Mutex
	frameTotals map[string]time.Duration
	now         func() time.Time
}

func New() *Profiler {
	return &Profiler{
		frameTotals: make(map[string]time.Duration),
		now:         time.Now,
	}
}

// Track returns a stop function that records the elapsed time under name.
// Usage: defer p.Track("demo.Iterate")()
func (p *Profiler) Track(name string) func() {
	start := p.now()
	return func() {
		d := p.now().Sub(start)
		p.mu.Lock()
		p.frameTotals[name] += d
		p.mu.Unlock()
	}
}

// ResetFrame clears the current totals. Call at the start of each frame.
func (p *Profiler) ResetFrame() {
	p.mu.Lock()
	clear(p.frameTotals)
	p.mu.Unlock()
}

// Snapshot returns a copy of the current totals.
func (p *Profiler) Snapshot() map[string]time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]time.Duration, len(p.frameTotals))
	for k, v := range p.frameTotals {
		out[k] = v
	}
	return out
}

// SumWithPrefix adds up every bucket whose name starts with prefix.
func (p *Profiler) SumWithPrefix(prefix string) time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	var total time.Duration
	for k, v := range p.frameTotals {
		if strings.HasPrefix(k, prefix) {
			total += v
		}
	}
	return total
}

// TopN formats the n largest buckets, largest first.
// Example: "demo.Iterate:4.2ms, glfw.SwapBuffers:2.1ms"
func (p *Profiler) TopN(n int) string {
	ss := p.Snapshot()
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	n = min(max(n, 0), len(list))
	parts := make([]string, 0, n)
	for _, e := range list[:n] {
		parts = append(parts, e.name+":"+formatMs(e.dur))
	}
	return strings.Join(parts, ", ")
}

// one decimal place, no trailing ".0"
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := fmt.Sprintf("%.1f", ms)
	return strings.TrimSuffix(s, ".0") + "ms"
}
