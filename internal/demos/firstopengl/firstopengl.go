// Package firstopengl draws a single shaded triangle with the core profile.
package firstopengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"hello-gfx/internal/app"
	"hello-gfx/internal/demos/demokit"
	"hello-gfx/internal/graphics"
)

type Demo struct {
	shader   *graphics.Shader
	triangle *graphics.Mesh
}

func New(ctx *app.Context) (app.Demo, error) {
	shader, err := graphics.LoadProgram(ctx.Config.Shaders.Dir, graphics.ProgramColor)
	if err != nil {
		return nil, err
	}
	triangle, err := graphics.NewMesh(graphics.TriangleVertices, 3, 3)
	if err != nil {
		shader.Delete()
		return nil, err
	}

	ctx.Logger.Info("first opengl ready", "renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return &Demo{shader: shader, triangle: triangle}, nil
}

func (d *Demo) HandleEvent(ev app.Event) app.Result {
	return demokit.QuitResult(ev)
}

func (d *Demo) Iterate(app.Frame) app.Result {
	gl.ClearColor(0.1, 0.1, 0.1, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	d.shader.Use()
	identity := mgl32.Ident4()
	d.shader.SetMat4("model", identity)
	d.shader.SetMat4("view", identity)
	d.shader.SetMat4("projection", identity)
	d.shader.SetFloat("brightness", 1)
	d.triangle.Draw()
	return app.Continue
}

func (d *Demo) Close() error {
	d.triangle.Delete()
	d.shader.Delete()
	return nil
}
