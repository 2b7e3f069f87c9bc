//go:build debug

package camera

import (
	"fmt"

	"github.com/chewxy/math32"
)

func finite(name string, v float32) float32 {
	if math32.IsNaN(v) || math32.IsInf(v, 0) {
		panic(fmt.Sprintf("camera: non-finite %s: %v", name, v))
	}
	return v
}
