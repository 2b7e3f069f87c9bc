package input

// Pointer turns absolute cursor positions into relative motion. The first
// sample after creation or Reset only sets the reference point, so
// re-capturing the cursor does not produce a jump.
type Pointer struct {
	lastX, lastY float64
	first        bool
}

func NewPointer() *Pointer {
	return &Pointer{first: true}
}

// Move records a cursor position and returns the offset from the previous
// one. y grows upward in the result, matching camera pitch. ok is false for
// the first sample.
func (p *Pointer) Move(xpos, ypos float64) (dx, dy float64, ok bool) {
	if p.first {
		p.lastX = xpos
		p.lastY = ypos
		p.first = false
		return 0, 0, false
	}

	dx = xpos - p.lastX
	dy = p.lastY - ypos
	p.lastX = xpos
	p.lastY = ypos
	return dx, dy, true
}

// Reset forgets the reference point.
func (p *Pointer) Reset() {
	p.first = true
}
