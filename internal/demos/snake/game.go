package snake

import (
	"image"
	"math/rand/v2"
)

// Dir is a heading on the grid.
type Dir int

const (
	Right Dir = iota
	Up
	Left
	Down
)

// delta is the grid step for d; y grows downwards.
func (d Dir) delta() image.Point {
	switch d {
	case Up:
		return image.Pt(0, -1)
	case Down:
		return image.Pt(0, 1)
	case Left:
		return image.Pt(-1, 0)
	default:
		return image.Pt(1, 0)
	}
}

func (d Dir) opposite(o Dir) bool {
	return d.delta().Add(o.delta()) == image.Point{}
}

type State int

const (
	Playing State = iota
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	}
	return "unknown"
}

const (
	// StepInterval is the time between moves in seconds.
	StepInterval  = 0.125
	initialLength = 4
)

// Game is a snake on a wrapping grid. The body is stored head first.
type Game struct {
	W, H  int
	Body  []image.Point
	Food  image.Point
	State State
	Score int

	dir  Dir
	next Dir
	acc  float64
	rng  *rand.Rand
}

// NewGame starts a game on a w x h grid; both must be positive.
func NewGame(w, h int, rng *rand.Rand) *Game {
	g := &Game{W: w, H: h, rng: rng}
	g.Reset()
	return g
}

// Reset puts a fresh snake in the middle of the grid heading right.
func (g *Game) Reset() {
	g.Body = g.Body[:0]
	head := image.Pt(g.W/2, g.H/2)
	for i := range initialLength {
		g.Body = append(g.Body, g.wrap(head.Sub(image.Pt(i, 0))))
	}
	g.dir, g.next = Right, Right
	g.State = Playing
	g.Score = 0
	g.acc = 0
	g.placeFood()
}

func (g *Game) Head() image.Point { return g.Body[0] }

func (g *Game) Dir() Dir { return g.dir }

// Steer queues a heading for the next move. Turning back onto the body is
// ignored.
func (g *Game) Steer(d Dir) {
	if g.State != Playing || d.opposite(g.dir) {
		return
	}
	g.next = d
}

// TogglePause pauses or resumes; it does nothing once the game is over.
func (g *Game) TogglePause() {
	switch g.State {
	case Playing:
		g.State = Paused
	case Paused:
		g.State = Playing
	}
}

// Update accumulates dt seconds and moves once per StepInterval. It
// returns the number of moves made.
func (g *Game) Update(dt float64) int {
	if g.State != Playing || dt <= 0 {
		return 0
	}
	g.acc += dt
	steps := 0
	for g.acc >= StepInterval && g.State == Playing {
		g.acc -= StepInterval
		g.Step()
		steps++
	}
	return steps
}

// Step moves the snake one cell. Eating food grows it by one; running into
// itself ends the game.
func (g *Game) Step() {
	if g.State != Playing {
		return
	}
	g.dir = g.next
	head := g.wrap(g.Head().Add(g.dir.delta()))
	grow := head == g.Food

	// the tail cell is vacated this move unless the snake grows
	body := g.Body
	if !grow {
		body = body[:len(body)-1]
	}
	for _, p := range body {
		if p == head {
			g.State = GameOver
			return
		}
	}

	if grow {
		g.Body = append(g.Body, image.Point{})
	}
	copy(g.Body[1:], g.Body[:len(g.Body)-1])
	g.Body[0] = head

	if grow {
		g.Score++
		g.placeFood()
	}
}

func (g *Game) wrap(p image.Point) image.Point {
	p.X = (p.X%g.W + g.W) % g.W
	p.Y = (p.Y%g.H + g.H) % g.H
	return p
}

// Occupies reports whether p is part of the snake.
func (g *Game) Occupies(p image.Point) bool {
	for _, b := range g.Body {
		if b == p {
			return true
		}
	}
	return false
}

// placeFood picks a random free cell. A full board ends the game.
func (g *Game) placeFood() {
	free := g.W*g.H - len(g.Body)
	if free <= 0 {
		g.State = GameOver
		return
	}
	n := g.rng.IntN(free)
	for y := range g.H {
		for x := range g.W {
			p := image.Pt(x, y)
			if g.Occupies(p) {
				continue
			}
			if n == 0 {
				g.Food = p
				return
			}
			n--
		}
	}
}
