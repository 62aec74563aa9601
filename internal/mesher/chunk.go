// Package mesher assembles chunk meshes from baked voxel models,
// culling side geometry hidden between adjacent voxels.
package mesher

// MaxMaterials is the number of materials the renderer batching scheme
// supports. Model material ids are validated against this bound.
const MaxMaterials = 8

// ChunkSize is the voxel side length of a cubic chunk.
const ChunkSize = 16

// Chunk is a dense grid of voxel ids referencing library models. Id 0 is
// conventionally an empty model.
type Chunk struct {
	voxels [ChunkSize * ChunkSize * ChunkSize]uint16
}

// Get returns the voxel id at (x,y,z). Coordinates outside the chunk
// read as 0, so chunk borders mesh as if exposed to air.
func (c *Chunk) Get(x, y, z int) uint16 {
	if x < 0 || x >= ChunkSize || y < 0 || y >= ChunkSize || z < 0 || z >= ChunkSize {
		return 0
	}
	return c.voxels[(y*ChunkSize+z)*ChunkSize+x]
}

// Set writes the voxel id at (x,y,z). Out-of-bounds writes are ignored.
func (c *Chunk) Set(x, y, z int, id uint16) {
	if x < 0 || x >= ChunkSize || y < 0 || y >= ChunkSize || z < 0 || z >= ChunkSize {
		return
	}
	c.voxels[(y*ChunkSize+z)*ChunkSize+x] = id
}
