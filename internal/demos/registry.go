// Package demos lists the runnable demos by name.
package demos

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"hello-gfx/internal/app"
	"hello-gfx/internal/demos/arena"
	"hello-gfx/internal/demos/firstopengl"
	"hello-gfx/internal/demos/firstwindow"
	"hello-gfx/internal/demos/lines"
	"hello-gfx/internal/demos/points"
	"hello-gfx/internal/demos/rectangle"
	"hello-gfx/internal/demos/sandbox"
	"hello-gfx/internal/demos/snake"
	"hello-gfx/internal/demos/streaming"
	"hello-gfx/internal/demos/texture"
)

var ErrUnknownDemo = errors.New("unknown demo")

type Entry struct {
	Name        string
	Description string
	Factory     app.Factory
}

var registry = []Entry{
	{"first-window", "clear colour cycling through sine-phased RGB", firstwindow.New},
	{"lines", "rotating star of lines", lines.New},
	{"points", "field of drifting points", points.New},
	{"rectangle", "rectangle bouncing off the window edges", rectangle.New},
	{"texture", "bouncing texture from [texture] path or a checkerboard", texture.New},
	{"streaming-texture", "CPU-filled texture updated every frame", streaming.New},
	{"snake", "grid snake: arrows steer, R restarts, P pauses", snake.New},
	{"first-opengl", "a single shaded triangle", firstopengl.New},
	{"sandbox", "rotating cube through the fly camera with HUD and shader hot reload", sandbox.New},
	{"arena", "fly-camera walk-around over a grid of pillars", arena.New},
}

// All returns every demo in listing order.
func All() []Entry {
	return slices.Clone(registry)
}

// Names returns the demo names in listing order.
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.Name
	}
	return names
}

// Lookup returns the factory registered under name.
func Lookup(name string) (app.Factory, error) {
	for _, e := range registry {
		if e.Name == name {
			return e.Factory, nil
		}
	}
	return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownDemo, name, strings.Join(Names(), ", "))
}
