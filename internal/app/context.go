package app

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"hello-gfx/internal/config"
	"hello-gfx/internal/input"
	"hello-gfx/internal/profiling"
)

// Context is the state the frame driver shares with a Demo. It replaces
// process-wide window, timing and input globals.
type Context struct {
	Window   *glfw.Window
	Input    *input.Manager
	Config   config.Config
	Settings *config.Settings
	Logger   *slog.Logger
	Profiler *profiling.Profiler

	pointer  *input.Pointer
	width    int
	height   int
	relative bool
}

func newContext(window *glfw.Window, cfg config.Config, logger *slog.Logger) *Context {
	return &Context{
		Window:   window,
		Input:    input.NewManager(),
		Config:   cfg,
		Settings: config.NewSettings(cfg),
		Logger:   logger,
		Profiler: profiling.New(),
		pointer:  input.NewPointer(),
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
	}
}

// Size returns the framebuffer size in pixels.
func (c *Context) Size() (width, height int) {
	return c.width, c.height
}

// Aspect returns width/height of the framebuffer, or 1 when minimized.
func (c *Context) Aspect() float32 {
	if c.height == 0 {
		return 1
	}
	return float32(c.width) / float32(c.height)
}

// RelativeMouse reports whether the cursor is captured.
func (c *Context) RelativeMouse() bool { return c.relative }

// SetRelativeMouse captures (hides and locks) or releases the cursor. Motion
// tracking restarts so the first event after a change carries no jump.
func (c *Context) SetRelativeMouse(on bool) {
	c.relative = on
	c.pointer.Reset()
	if c.Window == nil {
		return
	}
	if on {
		c.Window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		if glfw.RawMouseMotionSupported() {
			c.Window.SetInputMode(glfw.RawMouseMotion, glfw.True)
		}
	} else {
		c.Window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

func (c *Context) resize(width, height int) {
	c.width, c.height = width, height
}
