package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Color is an RGBA value with components in [0,1].
type Color = mgl32.Vec4

var (
	Black = Color{0, 0, 0, 0}
	Red   = Color{1, 0, 0, 0}
)
