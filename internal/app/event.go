package app

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"hello-gfx/internal/input"
)

// Event is anything the frame driver delivers to a Demo before Iterate.
type Event interface {
	isEvent()
}

// QuitEvent asks the demo to stop; returning Continue from HandleEvent
// ignores it.
type QuitEvent struct{}

type KeyEvent struct {
	Key    glfw.Key
	Action glfw.Action
	Mods   glfw.ModifierKey
}

// MouseMotionEvent carries the absolute cursor position and, when a
// previous sample exists, the motion since it. YRel grows upward.
type MouseMotionEvent struct {
	X, Y       float64
	XRel, YRel float64
}

type MouseButtonEvent struct {
	Button glfw.MouseButton
	Action glfw.Action
	X, Y   float64
}

type MouseWheelEvent struct {
	X, Y float64
}

// ResizeEvent reports a new framebuffer size in pixels.
type ResizeEvent struct {
	Width, Height int
}

func (QuitEvent) isEvent()        {}
func (KeyEvent) isEvent()         {}
func (MouseMotionEvent) isEvent() {}
func (MouseButtonEvent) isEvent() {}
func (MouseWheelEvent) isEvent()  {}
func (ResizeEvent) isEvent()      {}

// Pressed reports whether the key went down or repeated.
func (e KeyEvent) Pressed() bool {
	return e.Action == glfw.Press || e.Action == glfw.Repeat
}

// EventQueue buffers events raised by GLFW callbacks during PollEvents.
// Callbacks and the loop both run on the main thread, so no locking.
type EventQueue struct {
	events []Event
}

func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Drain returns queued events in arrival order and empties the queue.
func (q *EventQueue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

func (q *EventQueue) Len() int { return len(q.events) }

// keyEvents updates the input manager and returns the events a key
// transition produces. A press of a key bound to ActionQuit also yields a
// QuitEvent.
func keyEvents(im *input.Manager, key glfw.Key, action glfw.Action, mods glfw.ModifierKey) []Event {
	im.HandleKeyEvent(key, action)
	evs := []Event{KeyEvent{Key: key, Action: action, Mods: mods}}
	if action == glfw.Press {
		for _, a := range im.ActionsForKey(key) {
			if a == input.ActionQuit {
				evs = append(evs, QuitEvent{})
				break
			}
		}
	}
	return evs
}
