package profiling

import (
	"testing"
	"time"
)

// fakeClock advances by step on every call
func fakeClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func TestTrackAccumulates(t *testing.T) {
	p := New()
	p.now = fakeClock(2 * time.Millisecond)

	p.Track("demo.Iterate")()
	p.Track("demo.Iterate")()
	p.Track("glfw.PollEvents")()

	snap := p.Snapshot()
	if got := snap["demo.Iterate"]; got != 4*time.Millisecond {
		t.Errorf("demo.Iterate = %v, want 4ms", got)
	}
	if got := snap["glfw.PollEvents"]; got != 2*time.Millisecond {
		t.Errorf("glfw.PollEvents = %v, want 2ms", got)
	}
}

func TestResetFrame(t *testing.T) {
	p := New()
	p.Track("a")()
	p.ResetFrame()
	if n := len(p.Snapshot()); n != 0 {
		t.Errorf("expected empty snapshot after reset, got %d entries", n)
	}
}

func TestSumWithPrefix(t *testing.T) {
	p := New()
	p.frameTotals["glfw.PollEvents"] = time.Millisecond
	p.frameTotals["glfw.SwapBuffers"] = 3 * time.Millisecond
	p.frameTotals["demo.Iterate"] = 10 * time.Millisecond

	if got := p.SumWithPrefix("glfw."); got != 4*time.Millisecond {
		t.Errorf("SumWithPrefix(glfw.) = %v, want 4ms", got)
	}
}

func TestTopN(t *testing.T) {
	p := New()
	p.frameTotals["a"] = 4200 * time.Microsecond
	p.frameTotals["b"] = 2 * time.Millisecond
	p.frameTotals["c"] = 100 * time.Microsecond

	tests := []struct {
		n    int
		want string
	}{
		{0, ""},
		{1, "a:4.2ms"},
		{2, "a:4.2ms, b:2ms"},
		{10, "a:4.2ms, b:2ms, c:0.1ms"},
		{-1, ""},
	}
	for _, tt := range tests {
		if got := p.TopN(tt.n); got != tt.want {
			t.Errorf("TopN(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
