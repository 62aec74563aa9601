package main

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"voxelbake/internal/cube"
	"voxelbake/internal/model"
	"voxelbake/pkg/meshsource"
)

// manifest is the YAML description of a model set.
type manifest struct {
	Models []modelEntry `yaml:"models"`
}

type modelEntry struct {
	Name           string                `yaml:"name"`
	Geometry       string                `yaml:"geometry"` // none | cube | mesh
	Mesh           string                `yaml:"mesh"`
	Material       int                   `yaml:"material"`
	Transparency   int                   `yaml:"transparency"`
	Color          *[4]float32           `yaml:"color"`
	Tiles          map[string][2]float32 `yaml:"tiles"`
	RandomTickable bool                  `yaml:"random_tickable"`
}

func loadManifest(path string) (*manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read manifest: %w", err)
	}
	var mf manifest
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("could not unmarshal manifest yaml: %w", err)
	}
	return &mf, nil
}

// buildModel turns a manifest entry into a model definition, loading the
// referenced mesh through the shared loader when needed.
func buildModel(e modelEntry, loader *meshsource.Loader, maxMaterials int) (*model.Model, error) {
	m := model.New()
	m.SetName(e.Name)

	switch e.Geometry {
	case "", "none":
		m.SetGeometryType(model.GeometryNone)
	case "cube":
		m.SetGeometryType(model.GeometryCube)
	case "mesh":
		m.SetGeometryType(model.GeometryCustomMesh)
	default:
		return nil, fmt.Errorf("model %q: unknown geometry %q", e.Name, e.Geometry)
	}

	if err := m.SetMaterialID(e.Material, maxMaterials); err != nil {
		return nil, fmt.Errorf("model %q: %w", e.Name, err)
	}
	m.SetTransparencyIndex(e.Transparency)
	if e.Color != nil {
		m.SetColor(mgl32.Vec4{e.Color[0], e.Color[1], e.Color[2], e.Color[3]})
	}
	m.SetRandomTickable(e.RandomTickable)

	for name, tile := range e.Tiles {
		side := cube.SideFromName(name)
		if side == cube.SideCount {
			return nil, fmt.Errorf("model %q: unknown side %q", e.Name, name)
		}
		m.SetCubeTile(side, mgl32.Vec2{tile[0], tile[1]})
	}

	if e.Mesh != "" {
		mesh, err := loader.Load(e.Mesh)
		if err != nil {
			return nil, fmt.Errorf("model %q: %w", e.Name, err)
		}
		m.SetCustomMesh(mesh)
	}

	return m, nil
}
