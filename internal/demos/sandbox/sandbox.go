// Package sandbox shows a rotating colour cube through the fly camera, with
// a text overlay and optional shader hot reload.
package sandbox

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"hello-gfx/internal/app"
	"hello-gfx/internal/demos/demokit"
	"hello-gfx/internal/graphics"
)

const (
	nearPlane = 0.1
	farPlane  = 100.0
	// degrees per second
	spinRate = 50.0
)

var (
	spinAxis  = mgl32.Vec3{0.5, 1, 0}.Normalize()
	hudColor  = mgl32.Vec3{1, 1, 1}
	clearTint = mgl32.Vec3{0.2, 0.3, 0.3}
)

type Demo struct {
	ctx     *app.Context
	fly     *demokit.FlyController
	shader  *graphics.Shader
	cube    *graphics.Mesh
	text    *graphics.TextRenderer
	watcher *graphics.ShaderWatcher
	fps     demokit.FPSCounter
}

func New(ctx *app.Context) (_ app.Demo, err error) {
	cfg := ctx.Config
	d := &Demo{ctx: ctx, fly: demokit.NewFlyController(cfg.Camera)}
	defer func() {
		if err != nil {
			d.Close()
		}
	}()

	if d.shader, err = graphics.LoadProgram(cfg.Shaders.Dir, graphics.ProgramColor); err != nil {
		return nil, err
	}
	if d.cube, err = graphics.NewMesh(graphics.CubeVertices, 3, 3); err != nil {
		return nil, err
	}
	w, h := ctx.Size()
	if d.text, err = graphics.NewTextRenderer(cfg.Shaders.Dir, 18, w, h); err != nil {
		return nil, err
	}
	if cfg.Shaders.HotReload && cfg.Shaders.Dir != "" {
		if d.watcher, err = graphics.NewShaderWatcher(cfg.Shaders.Dir, ctx.Logger); err != nil {
			return nil, err
		}
		ctx.Logger.Info("shader hot reload on", "dir", cfg.Shaders.Dir)
	}

	gl.Enable(gl.DEPTH_TEST)
	ctx.SetRelativeMouse(true)
	return d, nil
}

func (d *Demo) HandleEvent(ev app.Event) app.Result {
	if rs, ok := ev.(app.ResizeEvent); ok {
		d.text.Resize(rs.Width, rs.Height)
	}
	d.fly.HandleEvent(ev, d.ctx.RelativeMouse())
	return demokit.QuitResult(ev)
}

// ModelMatrix is the cube's rotation after t seconds.
func ModelMatrix(t float32) mgl32.Mat4 {
	return mgl32.HomogRotate3D(t*mgl32.DegToRad(spinRate), spinAxis)
}

func (d *Demo) Iterate(f app.Frame) app.Result {
	demokit.ToggleCursor(d.ctx)
	d.fly.Update(d.ctx.Input, float32(f.Delta))
	d.fps.Tick(f.Delta)
	if d.watcher != nil && d.watcher.Changed() {
		d.reload()
	}

	demokit.ClearDepth(clearTint[0], clearTint[1], clearTint[2])
	gl.Enable(gl.DEPTH_TEST)

	cam := d.fly.Camera
	d.shader.Use()
	d.shader.SetMat4("projection", cam.ProjectionMatrix(d.ctx.Aspect(), nearPlane, farPlane))
	d.shader.SetMat4("view", cam.ViewMatrix())
	d.shader.SetMat4("model", ModelMatrix(float32(f.Elapsed)))
	d.shader.SetFloat("brightness", 1)
	d.cube.Draw()

	d.text.DrawLines(demokit.HUDLines(cam, d.fps.FPS(), d.ctx.RelativeMouse()), 10, 24, 22, 1, hudColor)
	return app.Continue
}

// reload swaps in a recompiled program; the old one stays on failure.
func (d *Demo) reload() {
	s, err := graphics.LoadProgram(d.ctx.Config.Shaders.Dir, graphics.ProgramColor)
	if err != nil {
		d.ctx.Logger.Warn("shader reload failed", "err", err)
		return
	}
	d.shader.Delete()
	d.shader = s
	d.ctx.Logger.Info("shader reloaded")
}

func (d *Demo) Close() error {
	var err error
	if d.watcher != nil {
		err = d.watcher.Close()
	}
	if d.text != nil {
		d.text.Delete()
	}
	if d.cube != nil {
		d.cube.Delete()
	}
	if d.shader != nil {
		d.shader.Delete()
	}
	return err
}
