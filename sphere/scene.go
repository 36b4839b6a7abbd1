package sphere

// Scene holds the one sphere the program renders between Create and Delete.
// It is not safe for concurrent use; the render loop must not read the mesh
// across a Create or Delete call.
type Scene struct {
	mesh *Mesh
}

// Create replaces the current mesh with a new one of the given resolution. The
// previous mesh is released first, so on error the scene is left empty.
func (s *Scene) Create(width, height int) error {
	s.Delete()
	m, err := Generate(width, height)
	if err != nil {
		return err
	}
	s.mesh = m
	return nil
}

// Delete releases the current mesh. It is safe to call on an empty scene.
func (s *Scene) Delete() {
	if s.mesh == nil {
		return
	}
	s.mesh.Release()
	s.mesh = nil
}

// Mesh returns the current mesh, or nil after Delete.
func (s *Scene) Mesh() *Mesh {
	return s.mesh
}
