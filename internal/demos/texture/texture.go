// Package texture bounces a textured quad around the window. The image comes
// from [texture] path in the config, or a generated checkerboard.
package texture

import (
	"image"
	"image/color"

	"hello-gfx/internal/app"
	"hello-gfx/internal/demos/demokit"
	"hello-gfx/internal/graphics"
)

const checkerSize = 128

type Demo struct {
	demokit.Canvas2D
	ctx      *app.Context
	textures *graphics.TextureCache
	tex      *graphics.Texture
	sprite   demokit.Bouncer
}

func New(ctx *app.Context) (app.Demo, error) {
	c, err := demokit.NewCanvas2D(ctx)
	if err != nil {
		return nil, err
	}
	d := &Demo{Canvas2D: c, ctx: ctx, textures: graphics.NewTextureCache()}

	if path := ctx.Config.Texture.Path; path != "" {
		d.tex, err = d.textures.Get(path)
		if err != nil {
			c.Close()
			return nil, err
		}
		ctx.Logger.Info("texture loaded", "path", path, "width", d.tex.Width, "height", d.tex.Height)
	} else {
		d.tex = graphics.NewTextureFromImage(Placeholder())
	}

	d.sprite = demokit.Bouncer{
		Rect: graphics.Rect{W: float32(d.tex.Width), H: float32(d.tex.Height)},
		VX:   150,
		VY:   110,
	}
	return d, nil
}

// Placeholder is the image shown when no texture path is configured.
func Placeholder() *image.RGBA {
	return graphics.Checkerboard(checkerSize, checkerSize, 16,
		color.RGBA{240, 240, 240, 255},
		color.RGBA{200, 40, 120, 255})
}

func (d *Demo) Iterate(f app.Frame) app.Result {
	w, h := d.ctx.Size()
	d.sprite.Step(float32(f.Delta), w, h)

	d.R.SetDrawColor(color.RGBA{20, 20, 20, 255})
	d.R.Clear()
	d.R.Texture(d.tex, nil, d.sprite.Rect)
	return app.Continue
}

func (d *Demo) Close() error {
	if d.ctx.Config.Texture.Path == "" {
		d.tex.Delete()
	}
	d.textures.Delete()
	return d.Canvas2D.Close()
}
