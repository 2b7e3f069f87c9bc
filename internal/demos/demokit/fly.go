package demokit

import (
	"github.com/go-gl/mathgl/mgl32"

	"hello-gfx/internal/app"
	"hello-gfx/internal/camera"
	"hello-gfx/internal/config"
	"hello-gfx/internal/input"
)

// FlyController drives a camera from held movement actions, captured pointer
// motion and the scroll wheel.
type FlyController struct {
	Camera         *camera.Camera
	ConstrainPitch bool
}

// NewFlyController builds the camera described by cfg.
func NewFlyController(cfg config.CameraConfig) *FlyController {
	cam := camera.New(mgl32.Vec3(cfg.Position),
		camera.WithYaw(cfg.Yaw),
		camera.WithPitch(cfg.Pitch),
		camera.WithSpeed(cfg.Speed),
		camera.WithSensitivity(cfg.Sensitivity),
		camera.WithZoom(cfg.Zoom),
	)
	return &FlyController{Camera: cam, ConstrainPitch: cfg.ConstrainPitch}
}

// HandleEvent turns the camera on pointer motion while captured is set and
// zooms on scroll.
func (f *FlyController) HandleEvent(ev app.Event, captured bool) {
	switch e := ev.(type) {
	case app.MouseMotionEvent:
		if captured {
			f.Camera.ProcessMouseMovement(float32(e.XRel), float32(e.YRel), f.ConstrainPitch)
		}
	case app.MouseWheelEvent:
		f.Camera.ProcessMouseScroll(float32(e.Y))
	}
}

var flyBindings = []struct {
	action input.Action
	move   camera.Movement
}{
	{input.ActionMoveForward, camera.Forward},
	{input.ActionMoveBackward, camera.Backward},
	{input.ActionMoveLeft, camera.Left},
	{input.ActionMoveRight, camera.Right},
	{input.ActionMoveUp, camera.Up},
	{input.ActionMoveDown, camera.Down},
}

// Update moves the camera for every held movement action.
func (f *FlyController) Update(im *input.Manager, dt float32) {
	for _, b := range flyBindings {
		if im.IsActive(b.action) {
			f.Camera.ProcessKeyboard(b.move, dt)
		}
	}
}

// ToggleCursor flips pointer capture when the toggle action was pressed
// this frame.
func ToggleCursor(ctx *app.Context) {
	if ctx.Input.JustPressed(input.ActionToggleCursor) {
		ctx.SetRelativeMouse(!ctx.RelativeMouse())
	}
}
