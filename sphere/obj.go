package sphere

import (
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/udhos/gwob"
)

const objGroupName = "sphere"

// toObj lays the mesh out as interleaved position/normal coordinates.
func (m *Mesh) toObj() *gwob.Obj {
	coord := make([]float32, 0, len(m.Vertices)*6)
	for _, v := range m.Vertices {
		// position, then normal
		coord = append(coord, v[0], v[1], v[2], v[0], v[1], v[2])
	}
	indices := make([]int, len(m.Indices))
	for i, idx := range m.Indices {
		indices[i] = int(idx)
	}

	return &gwob.Obj{
		Indices:              indices,
		Coord:                coord,
		NormCoordFound:       true,
		BigIndexFound:        len(m.Vertices) > 65535,
		StrideSize:           6 * 4,
		StrideOffsetPosition: 0,
		StrideOffsetNormal:   3 * 4,
		Groups: []*gwob.Group{{
			Name:       objGroupName,
			IndexBegin: 0,
			IndexCount: len(indices),
		}},
	}
}

// WriteOBJ encodes the mesh as Wavefront OBJ.
func (m *Mesh) WriteOBJ(w io.Writer) error {
	if m.Released() {
		return ErrReleased
	}
	if err := m.toObj().ToWriter(w); err != nil {
		return fmt.Errorf("failed to write OBJ: %w", err)
	}
	return nil
}

// SaveOBJ writes the mesh to the named OBJ file.
func (m *Mesh) SaveOBJ(path string) error {
	if m.Released() {
		return ErrReleased
	}
	if err := m.toObj().ToFile(path); err != nil {
		return fmt.Errorf("failed to save OBJ %s: %w", path, err)
	}
	return nil
}

// ReadOBJ parses an OBJ stream into a flattened mesh holding one vertex per
// face corner, in face order.
func ReadOBJ(r io.Reader) (*Mesh, error) {
	obj, err := gwob.NewObjFromReader(objGroupName, r, &gwob.ObjParserOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse OBJ: %w", err)
	}
	if len(obj.Indices) == 0 {
		return nil, fmt.Errorf("failed to parse OBJ: no faces")
	}
	return fromObj(obj)
}

func fromObj(obj *gwob.Obj) (*Mesh, error) {
	stride := obj.StrideSize / 4
	m := &Mesh{}
	for _, group := range obj.Groups {
		for i := group.IndexBegin; i < group.IndexBegin+group.IndexCount; i++ {
			posOffset := obj.Indices[i]*stride + obj.StrideOffsetPosition/4
			if posOffset < 0 || posOffset+2 >= len(obj.Coord) {
				return nil, fmt.Errorf("failed to parse OBJ: index %d out of range", obj.Indices[i])
			}
			m.Vertices = append(m.Vertices, mgl32.Vec3{
				obj.Coord[posOffset],
				obj.Coord[posOffset+1],
				obj.Coord[posOffset+2],
			})
			m.Indices = append(m.Indices, uint32(len(m.Vertices)-1))
		}
	}
	return m, nil
}
