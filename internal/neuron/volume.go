package neuron

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Volume is a standalone enclosing mesh, e.g. a neuropil or compartment
// boundary. It is not a neuron variant: it carries no connectors or
// attributes and renders as a single translucent surface.
type Volume struct {
	ID   string
	Name string

	Vertices []math32.Vector3
	Faces    [][3]int

	// Color overrides the default translucent volume color when non-zero.
	Color color.RGBA
}

// Label returns the display name: Name if set, else the ID.
func (v *Volume) Label() string {
	if v.Name != "" {
		return v.Name
	}
	return v.ID
}
