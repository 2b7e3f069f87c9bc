package snake

import (
	"image"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hello-gfx/internal/input"
)

func newTestGame(w, h int) *Game {
	return NewGame(w, h, rand.New(rand.NewPCG(7, 11)))
}

// moveFoodAway parks the food where the snake will not reach it soon.
func moveFoodAway(g *Game) {
	g.Food = image.Pt(g.W-1, 0)
}

func TestNewGame(t *testing.T) {
	g := newTestGame(10, 8)
	require.Len(t, g.Body, initialLength)
	assert.Equal(t, image.Pt(5, 4), g.Head())
	assert.Equal(t, image.Pt(2, 4), g.Body[len(g.Body)-1])
	assert.Equal(t, Playing, g.State)
	assert.Equal(t, Right, g.Dir())
	assert.False(t, g.Occupies(g.Food), "food never spawns on the snake")
}

func TestStepMoves(t *testing.T) {
	g := newTestGame(10, 8)
	moveFoodAway(g)
	g.Step()
	assert.Equal(t, image.Pt(6, 4), g.Head())
	assert.Len(t, g.Body, initialLength)
	assert.Equal(t, image.Pt(3, 4), g.Body[len(g.Body)-1])
}

func TestStepWraps(t *testing.T) {
	g := newTestGame(10, 8)
	moveFoodAway(g)
	for range 5 {
		g.Step()
	}
	assert.Equal(t, image.Pt(0, 4), g.Head())

	g.Steer(Up)
	for range 5 {
		g.Step()
	}
	assert.Equal(t, image.Pt(0, 7), g.Head())
	assert.Equal(t, Playing, g.State)
}

func TestEatGrows(t *testing.T) {
	g := newTestGame(10, 8)
	g.Food = image.Pt(6, 4)
	g.Step()

	assert.Equal(t, 1, g.Score)
	assert.Len(t, g.Body, initialLength+1)
	assert.Equal(t, image.Pt(6, 4), g.Head())
	assert.Equal(t, image.Pt(2, 4), g.Body[len(g.Body)-1], "tail stays put while growing")
	assert.False(t, g.Occupies(g.Food))
}

func TestSteerIgnoresReverse(t *testing.T) {
	g := newTestGame(10, 8)
	g.Steer(Left)
	moveFoodAway(g)
	g.Step()
	assert.Equal(t, Right, g.Dir())

	// a quick up-then-left within one move cannot fold back
	g.Steer(Up)
	g.Steer(Left)
	g.Step()
	assert.Equal(t, Up, g.Dir())
	assert.Equal(t, Playing, g.State)
}

func TestSelfCollision(t *testing.T) {
	g := newTestGame(10, 8)
	// a snake long enough to bite itself when it turns in a tight square
	g.Body = []image.Point{{5, 4}, {4, 4}, {3, 4}, {3, 5}, {4, 5}, {5, 5}, {6, 5}}
	moveFoodAway(g)

	g.Steer(Down)
	g.Step()
	assert.Equal(t, GameOver, g.State)

	g.Step()
	assert.Equal(t, image.Pt(5, 4), g.Head(), "no moves after game over")
}

func TestMovingIntoVacatedTail(t *testing.T) {
	g := newTestGame(10, 8)
	g.Body = []image.Point{{5, 4}, {5, 5}, {4, 5}, {4, 4}}
	g.dir, g.next = Up, Up
	moveFoodAway(g)

	g.Steer(Left)
	g.Step()
	assert.Equal(t, Playing, g.State)
	assert.Equal(t, image.Pt(4, 4), g.Head())
}

func TestUpdateStepsOnInterval(t *testing.T) {
	g := newTestGame(10, 8)
	moveFoodAway(g)

	assert.Equal(t, 0, g.Update(StepInterval/2))
	assert.Equal(t, 1, g.Update(StepInterval/2))
	assert.Equal(t, 3, g.Update(3*StepInterval))
	assert.Equal(t, 0, g.Update(-1))
}

func TestPause(t *testing.T) {
	g := newTestGame(10, 8)
	moveFoodAway(g)
	g.TogglePause()
	assert.Equal(t, Paused, g.State)

	head := g.Head()
	assert.Equal(t, 0, g.Update(1))
	g.Steer(Up)
	assert.Equal(t, head, g.Head())

	g.TogglePause()
	assert.Equal(t, Playing, g.State)
	assert.Equal(t, Right, g.next, "steering while paused is dropped")
}

func TestPauseAfterGameOver(t *testing.T) {
	g := newTestGame(10, 8)
	g.State = GameOver
	g.TogglePause()
	assert.Equal(t, GameOver, g.State)
}

func TestReset(t *testing.T) {
	g := newTestGame(10, 8)
	g.Food = image.Pt(6, 4)
	g.Step()
	g.State = GameOver

	g.Reset()
	assert.Equal(t, Playing, g.State)
	assert.Zero(t, g.Score)
	assert.Len(t, g.Body, initialLength)
	assert.Equal(t, image.Pt(5, 4), g.Head())
}

func TestFullBoardEndsGame(t *testing.T) {
	g := newTestGame(4, 1)
	require.Len(t, g.Body, 4)
	assert.Equal(t, GameOver, g.State)
}

func TestFoodCoversFreeCells(t *testing.T) {
	g := newTestGame(6, 3)
	seen := map[image.Point]bool{}
	for range 500 {
		g.placeFood()
		require.False(t, g.Occupies(g.Food))
		seen[g.Food] = true
	}
	assert.Len(t, seen, 6*3-initialLength)
}

func TestControl(t *testing.T) {
	g := newTestGame(10, 8)
	im := input.NewManager()

	im.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	control(im, g)
	assert.Equal(t, Up, g.next)
	im.PostUpdate()

	im.HandleKeyEvent(glfw.KeyP, glfw.Press)
	control(im, g)
	assert.Equal(t, Paused, g.State)
	im.PostUpdate()

	// held keys do not repeat the toggle
	control(im, g)
	assert.Equal(t, Paused, g.State)

	g.State = GameOver
	im.HandleKeyEvent(glfw.KeyR, glfw.Press)
	control(im, g)
	assert.Equal(t, Playing, g.State)
}

func TestLayout(t *testing.T) {
	b := Layout(800, 600, 24, 18)
	assert.Equal(t, float32(33), b.Cell)
	assert.Equal(t, float32(4), b.X)
	assert.Equal(t, float32(3), b.Y)

	r := b.CellRect(image.Pt(1, 2))
	assert.Equal(t, float32(4+33+1), r.X)
	assert.Equal(t, float32(3+66+1), r.Y)
	assert.Equal(t, float32(31), r.W)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "game over", GameOver.String())
	assert.Equal(t, "unknown", State(9).String())
}
