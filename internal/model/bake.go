package model

import "fmt"

// Bake populates baked from the model definition. Prior baked state is
// discarded. The definition itself is only touched to refresh its cached
// emptiness flag; baking the same definition twice yields bit-identical
// output.
//
// atlasSize must be positive when the geometry type is GeometryCube; an
// unknown geometry type panics. Precondition violations in custom mesh
// data come back as errors and leave the record empty-ish, so a batch
// caller can substitute it and keep going.
func (m *Model) Bake(baked *BakedModel, atlasSize int, bakeTangents bool) error {
	baked.Clear()

	baked.TransparencyIndex = m.transparencyIndex
	baked.MaterialID = m.materialID
	baked.Color = m.color

	var err error
	switch m.geometry {
	case GeometryNone:
		baked.Empty = true

	case GeometryCube:
		bakeCubeGeometry(m, baked, atlasSize, bakeTangents)

	case GeometryCustomMesh:
		err = bakeMeshGeometry(m, baked, bakeTangents)

	default:
		panic(fmt.Sprintf("unknown geometry type %d", m.geometry))
	}

	m.empty = baked.Empty

	if err != nil {
		return fmt.Errorf("baking model %q: %w", m.name, err)
	}
	return nil
}
