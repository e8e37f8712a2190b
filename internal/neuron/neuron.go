// Package neuron holds the neuron representations the converters operate on:
// skeletons (node trees), meshes, voxel grids, and dotprops point clouds.
// All variants share identity and an optional connector table via Base.
package neuron

import "cogentcore.org/core/math32"

// Connector is a single synaptic contact associated with a neuron.
// Type is a free-form tag ("pre", "post", "gap_junction", ...); NodeID is the
// skeleton node the connector is attached to (-1 if not applicable).
type Connector struct {
	Position math32.Vector3
	Type     string
	NodeID   int
}

// Neuron is the closed set of renderable neuron variants: *Skeleton, *Mesh,
// *Voxel, and *Dotprops. Converters type-switch over these; anything else is
// an unsupported input.
type Neuron interface {
	NeuronID() string
	Label() string
	ConnectorTable() []Connector
	HasConnectors() bool
	Attribute(name string) ([]float32, bool)
}

// Base carries the identity and connector table shared by all variants.
// Embed it in a variant and set ID (and optionally Name) on construction.
type Base struct {
	ID         string
	Name       string
	Connectors []Connector

	// Attributes holds per-vertex scalar attributes by name (e.g.
	// "strahler_index", "confidence"), parallel to the variant's primary
	// vertex sequence: skeleton nodes, mesh vertices, or dotprops points.
	// NaN entries mean "no value".
	Attributes map[string][]float32
}

// Attribute returns the named per-vertex attribute, or false if absent.
func (b *Base) Attribute(name string) ([]float32, bool) {
	vals, ok := b.Attributes[name]
	return vals, ok
}

// NeuronID returns the neuron's identifier.
func (b *Base) NeuronID() string { return b.ID }

// Label returns the display name: Name if set, else the ID.
func (b *Base) Label() string {
	if b.Name != "" {
		return b.Name
	}
	return b.ID
}

// ConnectorTable returns the neuron's connectors (may be nil).
func (b *Base) ConnectorTable() []Connector { return b.Connectors }

// HasConnectors reports whether the neuron carries any connectors.
func (b *Base) HasConnectors() bool { return len(b.Connectors) > 0 }

// List is an ordered collection of neurons. Duplicate IDs are permitted;
// callers that care should check HasDuplicateIDs.
type List []Neuron

// HasDuplicateIDs reports whether two or more neurons in the list share an ID.
func (l List) HasDuplicateIDs() bool {
	seen := map[string]bool{}
	for _, n := range l {
		id := n.NeuronID()
		if seen[id] {
			return true
		}
		seen[id] = true
	}
	return false
}
