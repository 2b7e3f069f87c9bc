package app

import (
	"time"

	"hello-gfx/internal/config"
)

// idleFPS is used while a demo reports itself paused.
const idleFPS = 30

// FPSLimiter provides high-precision frame rate limiting
type FPSLimiter struct {
	settings *config.Settings
	next     time.Time
}

// NewFPSLimiter creates a limiter reading its cap from settings
func NewFPSLimiter(settings *config.Settings) *FPSLimiter {
	return &FPSLimiter{settings: settings}
}

// interval returns the frame period, or 0 when unlimited.
func (f *FPSLimiter) interval(paused bool) time.Duration {
	limit := f.settings.FPSLimit()
	if paused && (limit == 0 || limit > idleFPS) {
		limit = idleFPS
	}
	if limit <= 0 {
		return 0
	}
	return time.Second / time.Duration(limit)
}

// Wait blocks until the next frame should be rendered based on the FPS limit.
// Uses a hybrid sleep/spin approach for better precision on high FPS caps.
func (f *FPSLimiter) Wait(paused bool) {
	target := f.interval(paused)
	if target == 0 {
		f.next = time.Time{}
		return
	}

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		// busy-wait for the final few microseconds
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// If we're significantly late (e.g., hitch), resync to avoid drift
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
