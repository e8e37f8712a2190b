package neuron

import "cogentcore.org/core/math32"

// Voxel is an image-type neuron: a dense grid of float32 intensities.
// Grid is flattened in x-fastest order with Shape = [x, y, z] extents.
// Spacing is the world size of one voxel per axis (the neuron's units);
// Offset places the grid origin in world space.
type Voxel struct {
	Base

	Grid    []float32
	Shape   [3]int
	Spacing math32.Vector3
	Offset  math32.Vector3
}

// Value returns the intensity at grid coordinate (x, y, z), or 0 when out
// of bounds.
func (v *Voxel) Value(x, y, z int) float32 {
	if x < 0 || y < 0 || z < 0 || x >= v.Shape[0] || y >= v.Shape[1] || z >= v.Shape[2] {
		return 0
	}
	return v.Grid[x+y*v.Shape[0]+z*v.Shape[0]*v.Shape[1]]
}

// WorldPos returns the world-space position of grid coordinate (x, y, z).
func (v *Voxel) WorldPos(x, y, z int) math32.Vector3 {
	return math32.Vec3(
		v.Offset.X+float32(x)*v.Spacing.X,
		v.Offset.Y+float32(y)*v.Spacing.Y,
		v.Offset.Z+float32(z)*v.Spacing.Z,
	)
}
