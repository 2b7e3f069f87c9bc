package config

import "sync"

// Settings holds values that may change while a demo runs
type Settings struct {
	mu       sync.RWMutex
	fpsLimit int
	paused   bool
}

// NewSettings seeds runtime settings from a loaded Config
func NewSettings(cfg Config) *Settings {
	s := &Settings{}
	s.SetFPSLimit(cfg.Frame.FPSLimit)
	return s
}

// FPSLimit returns the current frame cap, 0 meaning unlimited
func (s *Settings) FPSLimit() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fpsLimit
}

// SetFPSLimit sets the frame cap
func (s *Settings) SetFPSLimit(limit int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Clamp to reasonable values
	if limit < 0 {
		limit = 0
	}
	if limit > MaxFPSLimit {
		limit = MaxFPSLimit
	}

	s.fpsLimit = limit
}

// Paused reports whether the running demo asked for the idle frame rate
func (s *Settings) Paused() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.paused
}

func (s *Settings) SetPaused(paused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = paused
}
