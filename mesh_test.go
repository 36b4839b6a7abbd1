package main

import (
	"errors"
	"testing"

	"github.com/braheezy/phong-sphere/sphere"
)

// Rejection happens before any GL call, so no context is needed.
func TestNewSphereMeshRejectsReleased(t *testing.T) {
	m, err := sphere.Generate(sphere.DefaultWidth, sphere.DefaultHeight)
	if err != nil {
		t.Fatal(err)
	}
	m.Release()

	for name, in := range map[string]*sphere.Mesh{"released": m, "nil": nil} {
		mesh, err := NewSphereMesh(in)
		if !errors.Is(err, sphere.ErrReleased) {
			t.Errorf("%s: expected ErrReleased, got %v", name, err)
		}
		if mesh != nil {
			t.Errorf("%s: expected no GPU mesh", name)
		}
	}
}
