// Package model implements voxel model definitions and the baking step
// that turns them into side-partitioned geometry ready for chunk meshing.
package model

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"voxelbake/internal/cube"
	"voxelbake/internal/vmath"
	"voxelbake/pkg/meshsource"
)

// MaxVoxelTypes bounds the id space a library may assign.
const MaxVoxelTypes = 65536

// IDUnassigned is the id of a model not yet registered into a library.
const IDUnassigned = -1

// GeometryType selects what geometry a model bakes.
type GeometryType int

const (
	GeometryNone GeometryType = iota
	GeometryCube
	GeometryCustomMesh
)

var (
	ErrIDOutOfRange  = errors.New("model id out of range")
	ErrIDAlreadySet  = errors.New("model id cannot be modified after being added to a library")
	ErrBadMaterialID = errors.New("material id out of range")
)

// Model is the mutable, authorable definition of a voxel type. It is
// independent of baking: it can be edited repeatedly and re-baked on
// demand. Callers must serialize edits against bakes of the same model.
type Model struct {
	name              string
	id                int
	materialID        int
	transparencyIndex int
	color             mgl32.Vec4
	geometry          GeometryType
	cubeTiles         [cube.SideCount]mgl32.Vec2
	customMesh        *meshsource.Mesh
	collisionBoxes    []vmath.Box
	collisionMask     uint32
	randomTickable    bool
	empty             bool
}

// New returns a model with no geometry, a white tint and no id.
func New() *Model {
	return &Model{
		id:    IDUnassigned,
		color: mgl32.Vec4{1, 1, 1, 1},
		empty: true,
	}
}

func (m *Model) Name() string { return m.name }
func (m *Model) SetName(name string) { m.name = name }

func (m *Model) ID() int { return m.id }

// SetID assigns the model's library id. It can only be done once.
func (m *Model) SetID(id int) error {
	if id < 0 || id >= MaxVoxelTypes {
		return fmt.Errorf("%w: %d", ErrIDOutOfRange, id)
	}
	if m.id != IDUnassigned {
		return ErrIDAlreadySet
	}
	m.id = id
	return nil
}

func (m *Model) Color() mgl32.Vec4 { return m.color }
func (m *Model) SetColor(c mgl32.Vec4) { m.color = c }
func (m *Model) MaterialID() int { return m.materialID }

// SetMaterialID validates id against the renderer's material bound,
// passed in by the caller (typically from configuration).
func (m *Model) SetMaterialID(id, maxMaterials int) error {
	if id < 0 || id >= maxMaterials {
		return fmt.Errorf("%w: %d (max %d)", ErrBadMaterialID, id, maxMaterials)
	}
	m.materialID = id
	return nil
}

func (m *Model) TransparencyIndex() int { return m.transparencyIndex }
func (m *Model) IsTransparent() bool { return m.transparencyIndex > 0 }

// SetTransparent is the boolean convenience over transparency indices:
// true promotes an opaque model to index 1, false resets it to opaque.
func (m *Model) SetTransparent(t bool) {
	if t {
		if m.transparencyIndex == 0 {
			m.transparencyIndex = 1
		}
	} else {
		m.transparencyIndex = 0
	}
}

// SetTransparencyIndex sets the draw-order rank among transparent
// models, clamped to [0,255]. 0 means opaque.
func (m *Model) SetTransparencyIndex(i int) {
	if i < 0 {
		i = 0
	}
	if i > 255 {
		i = 255
	}
	m.transparencyIndex = i
}

func (m *Model) GeometryType() GeometryType { return m.geometry }

// SetGeometryType switches the model's shape kind, resetting
// shape-dependent state. Baked output is untouched until the next bake.
func (m *Model) SetGeometryType(t GeometryType) {
	if t == m.geometry {
		return
	}
	m.geometry = t

	switch t {
	case GeometryNone:
		m.collisionBoxes = nil

	case GeometryCube:
		m.collisionBoxes = []vmath.Box{vmath.UnitBox()}
		m.empty = false

	case GeometryCustomMesh:
		// Collision boxes are user-defined for custom meshes.

	default:
		panic(fmt.Sprintf("unknown geometry type %d", t))
	}
}

func (m *Model) CustomMesh() *meshsource.Mesh { return m.customMesh }

// SetCustomMesh sets the externally-owned mesh reference. The mesh may
// be shared with other models and is never mutated by baking.
func (m *Model) SetCustomMesh(mesh *meshsource.Mesh) { m.customMesh = mesh }

func (m *Model) CubeTile(side cube.Side) mgl32.Vec2 { return m.cubeTiles[side] }

// SetCubeTile sets the atlas tile coordinate for one cube side. Only
// meaningful when the geometry type is GeometryCube.
func (m *Model) SetCubeTile(side cube.Side, tile mgl32.Vec2) { m.cubeTiles[side] = tile }

func (m *Model) CollisionBoxes() []vmath.Box { return m.collisionBoxes }
func (m *Model) SetCollisionBoxes(boxes []vmath.Box) { m.collisionBoxes = boxes }
func (m *Model) CollisionMask() uint32 { return m.collisionMask }
func (m *Model) SetCollisionMask(mask uint32) { m.collisionMask = mask }
func (m *Model) IsRandomTickable() bool { return m.randomTickable }
func (m *Model) SetRandomTickable(rt bool) { m.randomTickable = rt }

// IsEmpty reports the cached emptiness from the last bake. True until a
// successful bake proves geometry exists.
func (m *Model) IsEmpty() bool { return m.empty }

// Duplicate returns an independent copy with no id assigned. When
// subresources is true the referenced mesh is deep-copied as well,
// otherwise it stays shared.
func (m *Model) Duplicate(subresources bool) *Model {
	d := &Model{
		name:              m.name,
		id:                IDUnassigned,
		materialID:        m.materialID,
		transparencyIndex: m.transparencyIndex,
		color:             m.color,
		geometry:          m.geometry,
		cubeTiles:         m.cubeTiles,
		customMesh:        m.customMesh,
		collisionMask:     m.collisionMask,
		randomTickable:    m.randomTickable,
		empty:             m.empty,
	}
	if m.collisionBoxes != nil {
		d.collisionBoxes = make([]vmath.Box, len(m.collisionBoxes))
		copy(d.collisionBoxes, m.collisionBoxes)
	}
	if subresources && m.customMesh != nil {
		d.customMesh = m.customMesh.Clone()
	}
	return d
}
