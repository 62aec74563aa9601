// Package library owns the registry of voxel models: it assigns ids and
// holds one baked record per registered model.
package library

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"voxelbake/internal/logger"
	"voxelbake/internal/model"
)

var ErrFull = errors.New("library is full")

// Library maps model ids to definitions and, after BakeAll, to baked
// records. Ids are assigned in registration order, exactly once per
// model. Registration and baking must not run concurrently with each
// other; reads of baked records after BakeAll are safe from any
// goroutine.
type Library struct {
	models []*model.Model
	baked  []model.BakedModel

	atlasSize    int
	bakeTangents bool
}

// New returns an empty library with a 16x16 tile atlas and tangent
// baking enabled.
func New() *Library {
	return &Library{
		atlasSize:    16,
		bakeTangents: true,
	}
}

// SetAtlasSize sets the texture atlas side length in tiles.
func (l *Library) SetAtlasSize(size int) { l.atlasSize = size }

// SetBakeTangents toggles tangent generation for all models.
func (l *Library) SetBakeTangents(bake bool) { l.bakeTangents = bake }

// Len returns the number of registered models.
func (l *Library) Len() int { return len(l.models) }

// Register adds a model and assigns it the next free id.
func (l *Library) Register(m *model.Model) (int, error) {
	if len(l.models) >= model.MaxVoxelTypes {
		return model.IDUnassigned, fmt.Errorf("%w: %d models", ErrFull, len(l.models))
	}
	id := len(l.models)
	if err := m.SetID(id); err != nil {
		return model.IDUnassigned, err
	}
	l.models = append(l.models, m)
	return id, nil
}

// Model returns the definition registered under id, or nil.
func (l *Library) Model(id int) *model.Model {
	if id < 0 || id >= len(l.models) {
		return nil
	}
	return l.models[id]
}

// Baked returns the baked record for id. Only valid after BakeAll.
func (l *Library) Baked(id int) *model.BakedModel {
	if id < 0 || id >= len(l.baked) {
		return nil
	}
	return &l.baked[id]
}

// BakeAll (re)bakes every registered model. A model whose bake fails is
// replaced by an empty record and the batch continues, unless failFast
// is set, in which case the first failure aborts the batch.
func (l *Library) BakeAll(failFast bool) error {
	l.baked = make([]model.BakedModel, len(l.models))

	for id, m := range l.models {
		if err := m.Bake(&l.baked[id], l.atlasSize, l.bakeTangents); err != nil {
			if failFast {
				return fmt.Errorf("model %d: %w", id, err)
			}
			logger.Error("bake failed, substituting an empty model",
				zap.Int("id", id), zap.Error(err))
			l.baked[id].Clear()
		}
	}
	return nil
}
