package meshsource

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
)

// meshFile is the on-disk JSON layout of a mesh asset.
type meshFile struct {
	Positions [][3]float32 `json:"positions"`
	Normals   [][3]float32 `json:"normals"`
	UVs       [][2]float32 `json:"uvs"`
	Tangents  []float32    `json:"tangents"`
	Indices   []int32      `json:"indices"`
}

// Loader reads mesh assets from a directory and caches them by name, so
// several models referencing the same mesh share one instance.
type Loader struct {
	assetsPath string
	meshCache  map[string]*Mesh
}

func NewLoader(assetsPath string) *Loader {
	return &Loader{
		assetsPath: assetsPath,
		meshCache:  make(map[string]*Mesh),
	}
}

// Load returns the mesh stored under meshes/<name>.json, loading it on
// first use.
func (l *Loader) Load(name string) (*Mesh, error) {
	if mesh, ok := l.meshCache[name]; ok {
		return mesh, nil
	}

	path := filepath.Join(l.assetsPath, "meshes", name+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read mesh file: %w", err)
	}

	var mf meshFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("could not unmarshal mesh json: %w", err)
	}

	mesh := &Mesh{
		Positions: make([]mgl32.Vec3, len(mf.Positions)),
		Normals:   make([]mgl32.Vec3, len(mf.Normals)),
		Tangents:  mf.Tangents,
		Indices:   mf.Indices,
	}
	for i, p := range mf.Positions {
		mesh.Positions[i] = mgl32.Vec3{p[0], p[1], p[2]}
	}
	for i, n := range mf.Normals {
		mesh.Normals[i] = mgl32.Vec3{n[0], n[1], n[2]}
	}
	if len(mf.UVs) > 0 {
		mesh.UVs = make([]mgl32.Vec2, len(mf.UVs))
		for i, uv := range mf.UVs {
			mesh.UVs[i] = mgl32.Vec2{uv[0], uv[1]}
		}
	}

	l.meshCache[name] = mesh
	return mesh, nil
}
