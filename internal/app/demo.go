package app

import "errors"

// Result tells the frame driver whether to keep going.
type Result int

const (
	Continue Result = iota
	Success
	Failure
)

func (r Result) String() string {
	switch r {
	case Continue:
		return "continue"
	case Success:
		return "success"
	case Failure:
		return "failure"
	}
	return "unknown"
}

// ErrDemoFailed is returned by Run when a demo ends with Failure.
var ErrDemoFailed = errors.New("demo reported failure")

// Frame describes the tick being rendered.
type Frame struct {
	Index   uint64
	Delta   float64 // seconds since the previous frame, never negative
	Elapsed float64 // seconds since the first frame
}

// Demo is one runnable program. All methods are called on the main thread
// with the GL context current. For every frame, queued events are delivered
// through HandleEvent before Iterate runs.
type Demo interface {
	HandleEvent(ev Event) Result
	Iterate(frame Frame) Result
	Close() error
}

// Factory builds a Demo once the window and GL context exist. If it returns
// an error the window is still torn down.
type Factory func(ctx *Context) (Demo, error)
