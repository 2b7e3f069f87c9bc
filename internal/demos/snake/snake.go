// Package snake is a grid snake game: arrows steer, R restarts, P pauses.
package snake

import (
	"image"
	"image/color"
	"math/rand/v2"
	"time"

	"hello-gfx/internal/app"
	"hello-gfx/internal/demos/demokit"
	"hello-gfx/internal/graphics"
	"hello-gfx/internal/input"
)

const (
	gridW = 24
	gridH = 18
)

var (
	background = color.RGBA{16, 16, 16, 255}
	boardColor = color.RGBA{32, 40, 32, 255}
	foodColor  = color.RGBA{220, 40, 40, 255}
	bodyColor  = color.RGBA{40, 180, 60, 255}
	headColor  = color.RGBA{120, 240, 120, 255}
	overTint   = color.RGBA{160, 0, 0, 96}
)

type Demo struct {
	demokit.Canvas2D
	ctx  *app.Context
	game *Game
}

func New(ctx *app.Context) (app.Demo, error) {
	c, err := demokit.NewCanvas2D(ctx)
	if err != nil {
		return nil, err
	}
	seed := uint64(time.Now().UnixNano())
	return &Demo{
		Canvas2D: c,
		ctx:      ctx,
		game:     NewGame(gridW, gridH, rand.New(rand.NewPCG(seed, seed>>32))),
	}, nil
}

var steering = []struct {
	action input.Action
	dir    Dir
}{
	{input.ActionSteerUp, Up},
	{input.ActionSteerDown, Down},
	{input.ActionSteerLeft, Left},
	{input.ActionSteerRight, Right},
}

// control applies this frame's key presses to the game.
func control(im *input.Manager, g *Game) {
	for _, s := range steering {
		if im.JustPressed(s.action) {
			g.Steer(s.dir)
		}
	}
	if im.JustPressed(input.ActionRestart) {
		g.Reset()
	}
	if im.JustPressed(input.ActionPause) {
		g.TogglePause()
	}
}

func (d *Demo) Iterate(f app.Frame) app.Result {
	g := d.game
	before := g.State
	control(d.ctx.Input, g)
	g.Update(f.Delta)
	if g.State != before {
		d.ctx.Logger.Info("snake", "state", g.State, "score", g.Score, "length", len(g.Body))
	}
	d.ctx.Settings.SetPaused(g.State != Playing)

	w, h := d.ctx.Size()
	d.draw(Layout(w, h, g.W, g.H))
	return app.Continue
}

// Board places the grid in the window: cells are square and centred.
type Board struct {
	X, Y float32
	Cell float32
}

func Layout(width, height, cols, rows int) Board {
	cell := float32(min(width/cols, height/rows))
	return Board{
		X:    (float32(width) - cell*float32(cols)) / 2,
		Y:    (float32(height) - cell*float32(rows)) / 2,
		Cell: cell,
	}
}

func (b Board) CellRect(p image.Point) graphics.Rect {
	return graphics.Rect{
		X: b.X + float32(p.X)*b.Cell + 1,
		Y: b.Y + float32(p.Y)*b.Cell + 1,
		W: b.Cell - 2,
		H: b.Cell - 2,
	}
}

func (d *Demo) draw(b Board) {
	g := d.game
	r := d.R

	r.SetDrawColor(background)
	r.Clear()

	board := graphics.Rect{X: b.X, Y: b.Y, W: b.Cell * float32(g.W), H: b.Cell * float32(g.H)}
	r.SetDrawColor(boardColor)
	r.FillRect(board)

	r.SetDrawColor(foodColor)
	r.FillRect(b.CellRect(g.Food))

	r.SetDrawColor(bodyColor)
	for _, p := range g.Body[1:] {
		r.FillRect(b.CellRect(p))
	}
	r.SetDrawColor(headColor)
	r.FillRect(b.CellRect(g.Head()))

	if g.State == GameOver {
		r.SetDrawColor(overTint)
		r.FillRect(board)
	}
	r.Flush()
}

func (d *Demo) Close() error {
	d.ctx.Logger.Info("snake closed", "score", d.game.Score)
	return d.Canvas2D.Close()
}
