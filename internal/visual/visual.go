// Package visual defines the renderable primitives the converters emit and
// the viewer consumes: line sets, point sets, meshes, spheres, and voxel
// volumes, each tagged with the identity of the neuron it came from.
package visual

import (
	"image/color"

	"cogentcore.org/core/math32"

	"github.com/navis-org/octarine-navis-plugin/internal/neuron"
)

// Kind selects the geometry payload of a Primitive.
type Kind int

const (
	// KindLines is a connected line set; NaN rows in Coords break strokes.
	KindLines Kind = iota
	// KindPoints is an unconnected point set.
	KindPoints
	// KindMesh is a triangle mesh (Vertices + Faces).
	KindMesh
	// KindSphere is a single sphere (Center + Radius).
	KindSphere
	// KindVolume is a dense voxel grid.
	KindVolume
)

func (k Kind) String() string {
	switch k {
	case KindLines:
		return "lines"
	case KindPoints:
		return "points"
	case KindMesh:
		return "mesh"
	case KindSphere:
		return "sphere"
	case KindVolume:
		return "volume"
	}
	return "unknown"
}

// Part labels which part of a neuron a primitive renders.
type Part string

const (
	PartNeurites   Part = "neurites"
	PartSoma       Part = "soma"
	PartConnectors Part = "connectors"
)

// Detail ties a primitive back to its source neuron. ObjectID groups all
// primitives produced from one neuron in one conversion pass and is never
// empty; it disambiguates neurons whose IDs collide.
type Detail struct {
	ObjectType string
	Part       Part
	NeuronID   string
	Name       string
	ObjectID   string
	Source     neuron.Neuron
}

// Primitive is one renderable unit. Kind decides which payload fields are
// meaningful; Detail identifies the source. VertexColors, when non-nil, is
// parallel to Coords (lines/points) or Vertices (mesh) and overrides Color.
type Primitive struct {
	Kind   Kind
	Detail Detail

	Color        color.RGBA
	VertexColors []color.RGBA

	// Lines / points payload. For lines, a row with NaN components ends the
	// current stroke so disjoint segments do not get connected.
	Coords    []math32.Vector3
	LineWidth float32
	PointSize float32

	// Mesh payload.
	Vertices []math32.Vector3
	Faces    [][3]int

	// Sphere payload.
	Center math32.Vector3
	Radius float32

	// Volume payload.
	Grid    []float32
	Shape   [3]int
	Spacing math32.Vector3
	Offset  math32.Vector3
}

// IsBreak reports whether the coordinate is a stroke-break sentinel row.
func IsBreak(v math32.Vector3) bool {
	return math32.IsNaN(v.X) || math32.IsNaN(v.Y) || math32.IsNaN(v.Z)
}

// Bounds returns the primitive's world-space bounding box, ignoring break
// rows. Empty for primitives with no geometry.
func (p *Primitive) Bounds() math32.Box3 {
	box := math32.B3Empty()
	switch p.Kind {
	case KindLines, KindPoints:
		for _, v := range p.Coords {
			if !IsBreak(v) {
				box.ExpandByPoint(v)
			}
		}
	case KindMesh:
		box.ExpandByPoints(p.Vertices)
	case KindSphere:
		box.ExpandByPoint(p.Center)
		box.ExpandByScalar(p.Radius)
	case KindVolume:
		box.ExpandByPoint(p.Offset)
		box.ExpandByPoint(math32.Vec3(
			p.Offset.X+float32(p.Shape[0])*p.Spacing.X,
			p.Offset.Y+float32(p.Shape[1])*p.Spacing.Y,
			p.Offset.Z+float32(p.Shape[2])*p.Spacing.Z,
		))
	}
	return box
}
