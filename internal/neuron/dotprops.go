package neuron

import "cogentcore.org/core/math32"

// Dotprops is an oriented point cloud: one point per entry in Points with a
// matching unit tangent vector in Vectors describing the local neurite
// direction.
type Dotprops struct {
	Base

	Points  []math32.Vector3
	Vectors []math32.Vector3
}

// autoScaleFraction sizes the "auto" dotprops line scale as a fraction of
// the point cloud's bounding-box diagonal.
const autoScaleFraction = float32(0.05)

// AutoScale returns the line half-length heuristic used when no explicit
// scale vector is given: a fixed fraction of the bounding-box diagonal.
func (d *Dotprops) AutoScale() float32 {
	if len(d.Points) == 0 {
		return 0
	}
	box := math32.B3Empty()
	box.ExpandByPoints(d.Points)
	return box.Size().Length() * autoScaleFraction
}

// ToSkeleton materializes a line approximation of the point cloud: one
// two-node segment per point, centered on the point and extended along its
// tangent vector by scale in total. scale <= 0 selects AutoScale. The
// identity and connector table carry over.
func (d *Dotprops) ToSkeleton(scale float32) *Skeleton {
	if scale <= 0 {
		scale = d.AutoScale()
	}
	sk := &Skeleton{Base: Base{ID: d.ID, Name: d.Name, Connectors: d.Connectors}}
	for i, p := range d.Points {
		var vec math32.Vector3
		if i < len(d.Vectors) {
			vec = d.Vectors[i]
		}
		half := vec.MulScalar(scale / 2)
		a := Node{ID: 2 * i, Parent: NoParent, Pos: p.Sub(half)}
		b := Node{ID: 2*i + 1, Parent: 2 * i, Pos: p.Add(half)}
		sk.Nodes = append(sk.Nodes, a, b)
	}
	return sk
}
