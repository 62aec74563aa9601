package library

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"voxelbake/internal/model"
	"voxelbake/pkg/meshsource"
)

func newCube(name string) *model.Model {
	m := model.New()
	m.SetName(name)
	m.SetGeometryType(model.GeometryCube)
	return m
}

// newBroken returns a model whose bake fails (mesh without normals).
func newBroken(name string) *model.Model {
	m := model.New()
	m.SetName(name)
	m.SetGeometryType(model.GeometryCustomMesh)
	m.SetCustomMesh(&meshsource.Mesh{
		Positions: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Indices:   []int32{0, 1, 2},
	})
	return m
}

func TestRegisterAssignsSequentialIDs(t *testing.T) {
	lib := New()
	for i := 0; i < 3; i++ {
		id, err := lib.Register(newCube("m"))
		if err != nil {
			t.Fatalf("register failed: %v", err)
		}
		if id != i {
			t.Fatalf("got id %d, want %d", id, i)
		}
	}
	if lib.Len() != 3 {
		t.Fatalf("got %d models, want 3", lib.Len())
	}
}

func TestRegisterRejectsRegisteredModel(t *testing.T) {
	a := New()
	b := New()
	m := newCube("m")
	if _, err := a.Register(m); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := b.Register(m); !errors.Is(err, model.ErrIDAlreadySet) {
		t.Fatalf("expected ErrIDAlreadySet, got %v", err)
	}
}

func TestBakeAllContinuesPastFailures(t *testing.T) {
	lib := New()
	lib.SetAtlasSize(4)

	if _, err := lib.Register(newCube("good")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := lib.Register(newBroken("broken")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := lib.Register(newCube("also_good")); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := lib.BakeAll(false); err != nil {
		t.Fatalf("batch bake should swallow per-model failures, got %v", err)
	}

	if lib.Baked(0).Empty {
		t.Errorf("model 0 should have baked")
	}
	if !lib.Baked(1).Empty {
		t.Errorf("failed model should be substituted by an empty record")
	}
	if lib.Baked(2).Empty {
		t.Errorf("model 2 should have baked despite model 1 failing")
	}
}

func TestBakeAllFailFast(t *testing.T) {
	lib := New()
	if _, err := lib.Register(newBroken("broken")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := lib.BakeAll(true); !errors.Is(err, model.ErrMissingNormals) {
		t.Fatalf("expected the underlying bake error, got %v", err)
	}
}

func TestBakedOutOfRange(t *testing.T) {
	lib := New()
	if lib.Baked(0) != nil || lib.Baked(-1) != nil {
		t.Fatalf("out-of-range lookups should return nil")
	}
	if lib.Model(0) != nil {
		t.Fatalf("unknown model lookup should return nil")
	}
}
