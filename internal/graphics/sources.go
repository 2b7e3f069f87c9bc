package graphics

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

// Built-in program names. Each has a <name>.vert and <name>.frag source.
const (
	ProgramColor   = "color"
	ProgramShape2D = "shape2d"
	ProgramSprite  = "sprite"
	ProgramFont    = "font"
)

//go:embed shaders/*.vert shaders/*.frag
var embeddedShaders embed.FS

// ShaderSources returns the vertex and fragment source of the named program.
// With an empty dir the embedded copies are used, otherwise the files are
// read from dir.
func ShaderSources(dir, name string) (vert, frag string, err error) {
	var fsys fs.FS
	if dir == "" {
		fsys, _ = fs.Sub(embeddedShaders, "shaders")
	} else {
		fsys = os.DirFS(dir)
	}

	v, err := fs.ReadFile(fsys, name+".vert")
	if err != nil {
		return "", "", fmt.Errorf("shader %q: %w", name, err)
	}
	f, err := fs.ReadFile(fsys, name+".frag")
	if err != nil {
		return "", "", fmt.Errorf("shader %q: %w", name, err)
	}
	return string(v), string(f), nil
}

// LoadProgram compiles the named program; see ShaderSources for dir.
func LoadProgram(dir, name string) (*Shader, error) {
	vert, frag, err := ShaderSources(dir, name)
	if err != nil {
		return nil, err
	}
	s, err := NewShaderFromSource(vert, frag)
	if err != nil {
		return nil, fmt.Errorf("shader %q: %w", name, err)
	}
	return s, nil
}
