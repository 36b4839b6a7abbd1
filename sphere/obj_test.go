package sphere

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/udhos/gwob"
)

func TestOBJRoundTrip(t *testing.T) {
	m, err := Generate(DefaultWidth, DefaultHeight)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := m.WriteOBJ(&buf); err != nil {
		t.Fatal(err)
	}

	got, err := ReadOBJ(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.IndexCount() != m.IndexCount() {
		t.Fatalf("expected %d indices, got %d", m.IndexCount(), got.IndexCount())
	}
	for k, idx := range m.Indices {
		want := m.Vertices[idx]
		have := got.Vertices[got.Indices[k]]
		if !have.ApproxEqualThreshold(want, 1e-4) {
			t.Fatalf("corner %d: expected %v, got %v", k, want, have)
		}
	}
	if got.Width() != 0 || got.NorthPoleIndex() != -1 {
		t.Error("expected a parsed mesh to carry no sphere resolution")
	}
}

func TestSaveOBJ(t *testing.T) {
	m, err := Generate(8, 6)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "sphere.obj")
	if err := m.SaveOBJ(path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := ReadOBJ(f)
	if err != nil {
		t.Fatal(err)
	}
	if got.TriangleCount() != m.TriangleCount() {
		t.Errorf("expected %d triangles, got %d", m.TriangleCount(), got.TriangleCount())
	}
}

func TestWriteOBJReleased(t *testing.T) {
	m, err := Generate(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	m.Release()
	if err := m.WriteOBJ(&bytes.Buffer{}); !errors.Is(err, ErrReleased) {
		t.Errorf("expected ErrReleased, got %v", err)
	}
	if err := m.SaveOBJ(filepath.Join(t.TempDir(), "x.obj")); !errors.Is(err, ErrReleased) {
		t.Errorf("expected ErrReleased, got %v", err)
	}
}

func TestReadOBJNoFaces(t *testing.T) {
	if _, err := ReadOBJ(strings.NewReader("v 0 1 0\nv 0 -1 0\n")); err == nil {
		t.Error("expected an error for an OBJ without faces")
	}
}

// Mirrors "v" x3 then "f 1 2 5": the last corner points past the coordinates.
func TestReadOBJIndexOutOfRange(t *testing.T) {
	obj := &gwob.Obj{
		Indices:    []int{0, 1, 4},
		Coord:      []float32{0, 1, 0, 1, 0, 0, 0, 0, 1},
		StrideSize: 3 * 4,
		Groups: []*gwob.Group{{
			Name:       objGroupName,
			IndexBegin: 0,
			IndexCount: 3,
		}},
	}
	m, err := fromObj(obj)
	if err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Errorf("expected an out of range error, got %v", err)
	}
	if m != nil {
		t.Error("expected no mesh")
	}
}

func TestReadOBJInRange(t *testing.T) {
	obj := &gwob.Obj{
		Indices:    []int{0, 1, 2},
		Coord:      []float32{0, 1, 0, 1, 0, 0, 0, 0, 1},
		StrideSize: 3 * 4,
		Groups:     []*gwob.Group{{Name: objGroupName, IndexCount: 3}},
	}
	m, err := fromObj(obj)
	if err != nil {
		t.Fatal(err)
	}
	if m.TriangleCount() != 1 || m.Vertices[2].Z() != 1 {
		t.Errorf("expected one triangle ending at (0,0,1), got %v", m.Vertices)
	}
}
