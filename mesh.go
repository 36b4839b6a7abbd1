package main

import (
	"unsafe"

	"github.com/braheezy/phong-sphere/sphere"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// SphereMesh is the GPU copy of a sphere.Mesh.
type SphereMesh struct {
	indexCount int32
	VAO        uint32
	VBO        uint32
	EBO        uint32
}

func NewSphereMesh(m *sphere.Mesh) (*SphereMesh, error) {
	if m.Released() {
		return nil, sphere.ErrReleased
	}
	mesh := &SphereMesh{indexCount: int32(m.IndexCount())}
	mesh.setupMesh(m)
	return mesh, nil
}

// Draw issues the indexed draw call. The Phong program must already be in use.
func (mesh *SphereMesh) Draw() {
	gl.BindVertexArray(mesh.VAO)
	gl.DrawElements(gl.TRIANGLES, mesh.indexCount, gl.UNSIGNED_INT, unsafe.Pointer(nil))
	gl.BindVertexArray(0)
}

func (mesh *SphereMesh) Delete() {
	gl.DeleteVertexArrays(1, &mesh.VAO)
	gl.DeleteBuffers(1, &mesh.VBO)
	gl.DeleteBuffers(1, &mesh.EBO)
	mesh.indexCount = 0
}

func (mesh *SphereMesh) setupMesh(m *sphere.Mesh) {
	// Create buffers/arrays
	gl.GenVertexArrays(1, &mesh.VAO)
	gl.GenBuffers(1, &mesh.VBO)
	gl.GenBuffers(1, &mesh.EBO)

	gl.BindVertexArray(mesh.VAO)

	// Load data into vertex buffers
	vertexSize := int32(unsafe.Sizeof(mgl32.Vec3{}))
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(vertexSize), unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mesh.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*int(unsafe.Sizeof(uint32(0))), unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	// Vertex Positions
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexSize, gl.Ptr(nil))

	// Vertex Normals, read from the same buffer since a unit sphere's
	// positions are its normals.
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, vertexSize, gl.Ptr(nil))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}
