// Package app drives a Demo: it owns the window and GL context, turns GLFW
// callbacks into events, measures frame time and runs the per-frame loop.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"hello-gfx/internal/config"
)

// Run opens a window for cfg, builds the demo with factory and drives it
// until it returns Success or Failure. Resources acquired here are released
// on every return path. The caller must hold the main OS thread.
func Run(cfg config.Config, logger *slog.Logger, factory Factory) (err error) {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	ctx := newContext(window, cfg, logger)
	fbw, fbh := window.GetFramebufferSize()
	ctx.resize(fbw, fbh)
	gl.Viewport(0, 0, int32(fbw), int32(fbh))

	events := &EventQueue{}
	setupInputHandlers(ctx, events)

	logger.Info("window created",
		"title", cfg.Window.Title,
		"width", fbw, "height", fbh,
		"gl", gl.GoStr(gl.GetString(gl.VERSION)))

	demo, err := factory(ctx)
	if err != nil {
		return fmt.Errorf("init demo: %w", err)
	}
	defer func() {
		if cerr := demo.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close demo: %w", cerr)
		}
	}()

	l := &loop{
		surface:   glfwSurface{window},
		ctx:       ctx,
		events:    events,
		demo:      demo,
		clock:     NewFrameClock(),
		limiter:   NewFPSLimiter(ctx.Settings),
		slowFrame: time.Duration(cfg.Frame.SlowFrameMs) * time.Millisecond,
	}
	return l.run()
}

func setupWindow(wc config.WindowConfig) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if wc.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	window, err := glfw.CreateWindow(wc.Width, wc.Height, wc.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("init gl: %w", err)
	}

	if wc.VSync {
		glfw.SwapInterval(1)
	} else {
		// our own FPS limiter paces frames
		glfw.SwapInterval(0)
	}
	return window, nil
}

func setupInputHandlers(ctx *Context, events *EventQueue) {
	window := ctx.Window

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		for _, ev := range keyEvents(ctx.Input, key, action, mods) {
			events.Push(ev)
		}
	})

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		ev := MouseMotionEvent{X: xpos, Y: ypos}
		ev.XRel, ev.YRel, _ = ctx.pointer.Move(xpos, ypos)
		events.Push(ev)
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		ctx.Input.HandleMouseButtonEvent(button, action)
		x, y := w.GetCursorPos()
		events.Push(MouseButtonEvent{Button: button, Action: action, X: x, Y: y})
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		events.Push(MouseWheelEvent{X: xoff, Y: yoff})
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		events.Push(ResizeEvent{Width: width, Height: height})
	})

	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if !focused {
			ctx.Input.Reset()
		}
	})
}

// surface is the slice of the window the loop needs.
type surface interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	SetShouldClose(bool)
}

type glfwSurface struct {
	window *glfw.Window
}

var _ surface = glfwSurface{}

func (s glfwSurface) PollEvents()           { glfw.PollEvents() }
func (s glfwSurface) SwapBuffers()          { s.window.SwapBuffers() }
func (s glfwSurface) ShouldClose() bool     { return s.window.ShouldClose() }
func (s glfwSurface) SetShouldClose(v bool) { s.window.SetShouldClose(v) }

type waiter interface {
	Wait(paused bool)
}

type loop struct {
	surface   surface
	ctx       *Context
	events    *EventQueue
	demo      Demo
	clock     *FrameClock
	limiter   waiter
	slowFrame time.Duration
}

func (l *loop) run() error {
	for {
		switch res := l.tick(); res {
		case Continue:
		case Success:
			l.ctx.Logger.Info("demo finished")
			return nil
		default:
			l.ctx.Logger.Error("demo failed", "result", res)
			return ErrDemoFailed
		}
	}
}

// tick runs one frame: poll, deliver events, iterate, present, pace.
func (l *loop) tick() Result {
	prof := l.ctx.Profiler
	prof.ResetFrame()
	frame := l.clock.Tick()
	startTick := time.Now()

	func() { defer prof.Track("glfw.PollEvents")(); l.surface.PollEvents() }()
	if l.surface.ShouldClose() {
		// the demo decides; a Continue answer keeps the window open
		l.surface.SetShouldClose(false)
		l.events.Push(QuitEvent{})
	}

	if res := l.dispatch(); res != Continue {
		return res
	}

	res := func() Result { defer prof.Track("demo.Iterate")(); return l.demo.Iterate(frame) }()
	if res != Continue {
		return res
	}

	func() { defer prof.Track("glfw.SwapBuffers")(); l.surface.SwapBuffers() }()

	if d := time.Since(startTick); l.slowFrame > 0 && d > l.slowFrame {
		l.ctx.Logger.Debug("slow frame", "frame", frame.Index, "took", d, "top", prof.TopN(5))
	}

	l.ctx.Input.PostUpdate() // Clear "JustPressed" flags
	l.limiter.Wait(l.ctx.Settings.Paused())
	return Continue
}

func (l *loop) dispatch() Result {
	defer l.ctx.Profiler.Track("demo.HandleEvent")()
	for _, ev := range l.events.Drain() {
		if rs, ok := ev.(ResizeEvent); ok {
			l.ctx.resize(rs.Width, rs.Height)
		}
		if res := l.demo.HandleEvent(ev); res != Continue {
			return res
		}
	}
	return Continue
}
