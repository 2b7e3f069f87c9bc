// Package arena is a walk-around over a floor of pillars using the fly
// camera, including Space/Shift vertical flight. Pillars outside the view
// are culled and the one under the crosshair is highlighted.
package arena

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"hello-gfx/internal/app"
	"hello-gfx/internal/demos/demokit"
	"hello-gfx/internal/graphics"
	"hello-gfx/internal/spatial"
)

const (
	gridSize = 9
	spacing  = 4.0
	floorY   = 0.0

	near, far  = 0.1, 200
	// cullMargin pads pillar boxes so edges do not pop at the screen border
	cullMargin = 0.5
)

// Pillar is a box standing on the floor.
type Pillar struct {
	Base   mgl32.Vec3
	Height float32
}

// Model scales the unit cube to the pillar and stands it on its base.
func (p Pillar) Model() mgl32.Mat4 {
	return mgl32.Translate3D(p.Base.X(), p.Base.Y()+p.Height/2, p.Base.Z()).
		Mul4(mgl32.Scale3D(1, p.Height, 1))
}

// Bounds is the pillar's box in world space.
func (p Pillar) Bounds() spatial.AABB {
	return spatial.BoxAround(p.Base, 1, p.Height, 1)
}

// Pillars lays out an n x n grid centred on the origin. Heights repeat a
// short pattern so neighbours differ.
func Pillars(n int, spacing float32) []Pillar {
	heights := [...]float32{1, 2.5, 1.5, 3, 2}
	out := make([]Pillar, 0, n*n)
	offset := float32(n-1) / 2
	for i := range n {
		for j := range n {
			out = append(out, Pillar{
				Base:   mgl32.Vec3{(float32(i) - offset) * spacing, floorY, (float32(j) - offset) * spacing},
				Height: heights[(i*n+j)%len(heights)],
			})
		}
	}
	return out
}

// FloorModel flattens the unit cube into a slab under the grid.
func FloorModel(n int, spacing float32) mgl32.Mat4 {
	side := float32(n+1) * spacing
	return mgl32.Translate3D(0, floorY-0.05, 0).Mul4(mgl32.Scale3D(side, 0.1, side))
}

type Demo struct {
	ctx     *app.Context
	fly     *demokit.FlyController
	shader  *graphics.Shader
	cube    *graphics.Mesh
	text    *graphics.TextRenderer
	overlay *graphics.Renderer2D
	pillars []Pillar
	bounds  []spatial.AABB
	floor   mgl32.Mat4
	fps     demokit.FPSCounter
}

// Visible returns the indices of boxes that intersect the view volume of clip.
func Visible(clip mgl32.Mat4, boxes []spatial.AABB) []int {
	f := spatial.NewFrustum(clip)
	out := make([]int, 0, len(boxes))
	for i, b := range boxes {
		if f.Intersects(b.Inflate(cullMargin)) {
			out = append(out, i)
		}
	}
	return out
}

func New(ctx *app.Context) (_ app.Demo, err error) {
	cfg := ctx.Config
	d := &Demo{
		ctx:     ctx,
		fly:     demokit.NewFlyController(cfg.Camera),
		pillars: Pillars(gridSize, spacing),
		floor:   FloorModel(gridSize, spacing),
	}
	for _, p := range d.pillars {
		d.bounds = append(d.bounds, p.Bounds())
	}
	defer func() {
		if err != nil {
			d.Close()
		}
	}()
	d.fly.Camera.Position = mgl32.Vec3{0, 1.7, float32(gridSize) * spacing / 2}

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
	if d.overlay, err = graphics.NewRenderer2D(cfg.Shaders.Dir, w, h); err != nil {
		return nil, err
	}

	gl.Enable(gl.DEPTH_TEST)
	ctx.SetRelativeMouse(true)
	ctx.Logger.Info("arena ready", "pillars", len(d.pillars))
	return d, nil
}

func (d *Demo) HandleEvent(ev app.Event) app.Result {
	if rs, ok := ev.(app.ResizeEvent); ok {
		d.text.Resize(rs.Width, rs.Height)
		d.overlay.Resize(rs.Width, rs.Height)
	}
	d.fly.HandleEvent(ev, d.ctx.RelativeMouse())
	return demokit.QuitResult(ev)
}

func (d *Demo) Iterate(f app.Frame) app.Result {
	demokit.ToggleCursor(d.ctx)
	d.fly.Update(d.ctx.Input, float32(f.Delta))
	d.fps.Tick(f.Delta)

	demokit.ClearDepth(0.05, 0.05, 0.1)
	gl.Enable(gl.DEPTH_TEST)

	cam := d.fly.Camera
	proj := cam.ProjectionMatrix(d.ctx.Aspect(), near, far)
	view := cam.ViewMatrix()

	prof := d.ctx.Profiler
	stop := prof.Track("arena.cull")
	visible := Visible(proj.Mul4(view), d.bounds)
	stop()
	stop = prof.Track("arena.pick")
	target := spatial.Raycast(cam.Position, cam.Front(), spatial.MinReachDistance, spatial.MaxReachDistance, d.bounds)
	stop()

	d.shader.Use()
	d.shader.SetMat4("projection", proj)
	d.shader.SetMat4("view", view)

	d.shader.SetFloat("brightness", 0.35)
	d.shader.SetMat4("model", d.floor)
	d.cube.Draw()

	for _, i := range visible {
		brightness := float32(1)
		if target.Hit && target.Index == i {
			brightness = 1.8
		}
		d.shader.SetFloat("brightness", brightness)
		d.shader.SetMat4("model", d.pillars[i].Model())
		d.cube.Draw()
	}

	lines := demokit.HUDLines(cam, d.fps.FPS(), d.ctx.RelativeMouse())
	lines = append(lines, pickLine(len(visible), len(d.pillars), target))
	d.text.DrawLines(lines, 10, 24, 22, 1, mgl32.Vec3{1, 0.9, 0.6})

	w, h := d.ctx.Size()
	demokit.DrawCrosshair(d.overlay, w, h)
	return app.Continue
}

func pickLine(drawn, total int, target spatial.RaycastResult) string {
	if !target.Hit {
		return fmt.Sprintf("drawn %d/%d  target none", drawn, total)
	}
	return fmt.Sprintf("drawn %d/%d  target #%d at %.1f", drawn, total, target.Index, target.Distance)
}

func (d *Demo) Close() error {
	if d.overlay != nil {
		d.overlay.Delete()
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
	return nil
}
