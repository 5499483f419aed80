package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CubeVertices are the corners of a 1×1×0.2 box centred on the origin in x/y.
var CubeVertices = []mgl32.Vec3{
	{-0.5, -0.5, 0.0}, // 0 front bottom left
	{-0.5, 0.5, 0.0},  // 1 front top left
	{0.5, 0.5, 0.0},   // 2 front top right
	{0.5, -0.5, 0.0},  // 3 front bottom right
	{-0.5, -0.5, 0.2}, // 4 back bottom left
	{-0.5, 0.5, 0.2},  // 5 back top left
	{0.5, 0.5, 0.2},   // 6 back top right
	{0.5, -0.5, 0.2},  // 7 back bottom right
}

// CubeIndices lists the 12 triangles of the box, two per face.
var CubeIndices = []uint32{
	0, 1, 2, 0, 2, 3, // front
	4, 5, 6, 4, 6, 7, // back
	1, 5, 6, 1, 6, 2, // top
	0, 4, 7, 0, 7, 3, // bottom
	0, 1, 5, 0, 5, 4, // left
	3, 2, 6, 3, 6, 7, // right
}
