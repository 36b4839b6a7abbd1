// Package sphere builds the unit UV-sphere drawn by the Phong demo.
//
// Ring vertices are laid out row-major below the north pole, followed by the
// north pole and then the south pole. Because a unit sphere is centred on the
// origin every vertex doubles as its own outward normal.
package sphere

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"github.com/go-gl/mathgl/mgl32"
)

// Reference resolution: longitude and latitude divisions.
const (
	DefaultWidth  = 32
	DefaultHeight = 16
)

// Counts are bounded by what a single gl.DrawElements call can address.
const maxElements = math.MaxInt32

var (
	ErrInvalidParameters = errors.New("sphere: invalid parameters")
	ErrAllocation        = errors.New("sphere: allocation failure")
	ErrReleased          = errors.New("sphere: mesh released")
)

// Mesh owns a vertex buffer and a triangle index buffer.
type Mesh struct {
	Vertices []mgl32.Vec3
	Indices  []uint32

	width, height int
}

// Counts returns the vertex and index buffer lengths Generate would allocate
// for the given resolution.
func Counts(width, height int) (vertices, indices int, err error) {
	if width < 2 || height < 3 {
		return 0, 0, fmt.Errorf("%w: width %d (min 2), height %d (min 3)", ErrInvalidParameters, width, height)
	}
	ringHi, rings := bits.Mul64(uint64(height-2), uint64(width))
	triHi, tris := bits.Mul64(uint64(height-2), uint64(width-1)*2)
	if ringHi != 0 || triHi != 0 || rings > maxElements-2 || tris > maxElements/3 {
		return 0, 0, fmt.Errorf("%w: %dx%d sphere exceeds %d elements", ErrAllocation, width, height, maxElements)
	}
	return int(rings) + 2, int(tris) * 3, nil
}

// Generate builds a UV-sphere of radius 1 with width longitude divisions and
// height latitude divisions. Nothing is allocated when the resolution is
// rejected.
func Generate(width, height int) (*Mesh, error) {
	numVertices, numIndices, err := Counts(width, height)
	if err != nil {
		return nil, err
	}

	m := &Mesh{
		Vertices: make([]mgl32.Vec3, 0, numVertices),
		Indices:  make([]uint32, 0, numIndices),
		width:    width,
		height:   height,
	}

	// Longitude uses width-1 as divisor so column width-1 lands on column 0.
	// The seam column is never stitched back to column 0.
	for j := 1; j < height-1; j++ {
		theta := float64(j) / float64(height-1) * math.Pi
		for i := 0; i < width; i++ {
			phi := float64(i) / float64(width-1) * 2 * math.Pi
			m.Vertices = append(m.Vertices, mgl32.Vec3{
				float32(math.Sin(theta) * math.Cos(phi)),
				float32(math.Cos(theta)),
				float32(-math.Sin(theta) * math.Sin(phi)),
			})
		}
	}
	m.Vertices = append(m.Vertices, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, -1, 0})

	w := uint32(width)
	for j := uint32(0); j < uint32(height-3); j++ {
		for i := uint32(0); i < w-1; i++ {
			m.Indices = append(m.Indices,
				j*w+i, (j+1)*w+(i+1), j*w+(i+1),
				j*w+i, (j+1)*w+i, (j+1)*w+(i+1),
			)
		}
	}

	north := uint32(m.NorthPoleIndex())
	for i := uint32(0); i < w-1; i++ {
		m.Indices = append(m.Indices, north, i, i+1)
	}

	// Reversed relative to the north cap so both caps face outward.
	south := uint32(m.SouthPoleIndex())
	bottom := uint32(height-3) * w
	for i := uint32(0); i < w-1; i++ {
		m.Indices = append(m.Indices, south, bottom+i+1, bottom+i)
	}

	return m, nil
}

func (m *Mesh) VertexCount() int {
	if m == nil {
		return 0
	}
	return len(m.Vertices)
}

func (m *Mesh) IndexCount() int {
	if m == nil {
		return 0
	}
	return len(m.Indices)
}

func (m *Mesh) TriangleCount() int {
	return m.IndexCount() / 3
}

// Width and Height report the resolution the mesh was generated with. Both are
// zero for meshes read from OBJ and for released meshes.
func (m *Mesh) Width() int {
	if m == nil {
		return 0
	}
	return m.width
}

func (m *Mesh) Height() int {
	if m == nil {
		return 0
	}
	return m.height
}

// NorthPoleIndex returns the flat index of the north pole, or -1 when the mesh
// was not produced by Generate.
func (m *Mesh) NorthPoleIndex() int {
	if m.Height() == 0 {
		return -1
	}
	return (m.height - 2) * m.width
}

// SouthPoleIndex returns the flat index of the south pole, or -1 when the mesh
// was not produced by Generate.
func (m *Mesh) SouthPoleIndex() int {
	if m.Height() == 0 {
		return -1
	}
	return m.NorthPoleIndex() + 1
}

// Released reports whether the buffers have been dropped.
func (m *Mesh) Released() bool {
	return m == nil || (m.Vertices == nil && m.Indices == nil)
}

// Release drops both buffers and zeroes the counts. Calling it again, or on a
// nil mesh, does nothing.
func (m *Mesh) Release() {
	if m == nil {
		return
	}
	m.Vertices = nil
	m.Indices = nil
	m.width, m.height = 0, 0
}
