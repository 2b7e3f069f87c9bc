//go:build !debug

package camera

import "github.com/chewxy/math32"

// finite saturates non-finite input to zero. Build with -tags debug to panic
// instead.
func finite(_ string, v float32) float32 {
	if math32.IsNaN(v) || math32.IsInf(v, 0) {
		return 0
	}
	return v
}
