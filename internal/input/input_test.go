package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestDefaultBindings(t *testing.T) {
	im := NewManager()
	tests := []struct {
		key    glfw.Key
		action Action
	}{
		{glfw.KeyW, ActionMoveForward},
		{glfw.KeyS, ActionMoveBackward},
		{glfw.KeyA, ActionMoveLeft},
		{glfw.KeyD, ActionMoveRight},
		{glfw.KeySpace, ActionMoveUp},
		{glfw.KeyLeftShift, ActionMoveDown},
		{glfw.KeyUp, ActionSteerUp},
		{glfw.KeyEscape, ActionQuit},
	}
	for _, tt := range tests {
		got := im.ActionsForKey(tt.key)
		if len(got) != 1 || got[0] != tt.action {
			t.Errorf("key %v bound to %v, want [%v]", tt.key, got, tt.action)
		}
	}
}

func TestKeyEdges(t *testing.T) {
	im := NewManager()

	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if !im.IsActive(ActionMoveForward) || !im.JustPressed(ActionMoveForward) {
		t.Fatalf("expected forward active and just pressed")
	}

	im.PostUpdate()
	if im.JustPressed(ActionMoveForward) {
		t.Errorf("JustPressed should reset after PostUpdate")
	}

	// key repeat keeps the action held without a new edge
	im.HandleKeyEvent(glfw.KeyW, glfw.Repeat)
	if !im.IsActive(ActionMoveForward) || im.JustPressed(ActionMoveForward) {
		t.Errorf("repeat should hold without a press edge")
	}

	im.HandleKeyEvent(glfw.KeyW, glfw.Release)
	if im.IsActive(ActionMoveForward) || !im.JustReleased(ActionMoveForward) {
		t.Errorf("expected forward released")
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	im := NewManager()
	im.HandleKeyEvent(glfw.KeyF12, glfw.Press)
	for a := Action(0); a < ActionCount; a++ {
		if im.IsActive(a) {
			t.Errorf("action %d active after unbound key", a)
		}
	}
}

func TestBindAndUnbind(t *testing.T) {
	im := NewManager()
	im.BindKey(glfw.KeyI, ActionMoveForward)
	im.HandleKeyEvent(glfw.KeyI, glfw.Press)
	if !im.IsActive(ActionMoveForward) {
		t.Fatalf("extra binding should drive the action")
	}

	im.UnbindKey(glfw.KeyW)
	if got := im.ActionsForKey(glfw.KeyW); len(got) != 0 {
		t.Errorf("expected no bindings for W, got %v", got)
	}

	im.BindKey(glfw.KeyJ, ActionCount)
	if got := im.ActionsForKey(glfw.KeyJ); len(got) != 0 {
		t.Errorf("out of range action should not bind, got %v", got)
	}
}

func TestMouseButtons(t *testing.T) {
	im := NewManager()
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	if !im.JustPressed(ActionMouseLeft) {
		t.Errorf("expected left button press")
	}
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Release)
	if im.IsActive(ActionMouseLeft) || !im.JustReleased(ActionMouseLeft) {
		t.Errorf("expected left button release")
	}
}

func TestReset(t *testing.T) {
	im := NewManager()
	im.HandleKeyEvent(glfw.KeyA, glfw.Press)
	im.Reset()
	if im.IsActive(ActionMoveLeft) || im.JustPressed(ActionMoveLeft) {
		t.Errorf("Reset should release everything")
	}
}

func TestOutOfRangeQueries(t *testing.T) {
	im := NewManager()
	if im.IsActive(-1) || im.JustPressed(ActionCount) || im.JustReleased(ActionCount+3) {
		t.Errorf("out of range actions must report false")
	}
}

func TestPointer(t *testing.T) {
	p := NewPointer()

	if _, _, ok := p.Move(400, 300); ok {
		t.Fatalf("first sample must not produce motion")
	}

	dx, dy, ok := p.Move(410, 290)
	if !ok || dx != 10 || dy != 10 {
		t.Errorf("Move = (%v, %v, %v), want (10, 10, true)", dx, dy, ok)
	}

	p.Reset()
	if _, _, ok := p.Move(0, 0); ok {
		t.Errorf("sample after Reset must not produce motion")
	}
	dx, dy, _ = p.Move(-5, 5)
	if dx != -5 || dy != -5 {
		t.Errorf("Move after reset = (%v, %v), want (-5, -5)", dx, dy)
	}
}
