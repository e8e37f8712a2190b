package convert

import (
	"go.uber.org/zap"

	"github.com/navis-org/octarine-navis-plugin/internal/neuron"
	"github.com/navis-org/octarine-navis-plugin/internal/shading"
	"github.com/navis-org/octarine-navis-plugin/internal/style"
	"github.com/navis-org/octarine-navis-plugin/internal/visual"
)

// meshPrims converts a mesh neuron into a single mesh primitive. Meshes
// without faces yield nothing.
func meshPrims(m *neuron.Mesh, entry shading.Entry, objectID string, log *zap.Logger) []*visual.Primitive {
	if len(m.Faces) == 0 {
		log.Warn("skipping mesh without faces", zap.String("neuron", m.NeuronID()))
		return nil
	}
	return []*visual.Primitive{{
		Kind:         visual.KindMesh,
		Detail:       detail(m, visual.PartNeurites, objectID),
		Color:        entry.Flat,
		VertexColors: entry.Vertex,
		Vertices:     m.Vertices,
		Faces:        m.Faces,
	}}
}

// voxelPrims converts a voxel neuron into a volume primitive, carrying the
// grid spacing and spatial offset from the neuron's own units.
func voxelPrims(v *neuron.Voxel, entry shading.Entry, objectID string) []*visual.Primitive {
	return []*visual.Primitive{{
		Kind:    visual.KindVolume,
		Detail:  detail(v, visual.PartNeurites, objectID),
		Color:   entry.Flat,
		Grid:    v.Grid,
		Shape:   v.Shape,
		Spacing: v.Spacing,
		Offset:  v.Offset,
	}}
}

// dotpropPrims converts a dotprops neuron by materializing its skeleton
// approximation and reusing the skeleton converter. Empty point clouds
// yield nothing. Per-vertex color entries are expanded from one color per
// point to one per derived node (two nodes per point).
func dotpropPrims(d *neuron.Dotprops, entry shading.Entry, objectID string, opts *style.Options, log *zap.Logger) []*visual.Primitive {
	if len(d.Points) == 0 {
		log.Warn("skipping dotprops without points", zap.String("neuron", d.NeuronID()))
		return nil
	}
	sk := d.ToSkeleton(opts.DPSScale)
	if entry.PerVertex() {
		expanded := shading.Entry{Flat: entry.Flat}
		for _, c := range entry.Vertex {
			expanded.Vertex = append(expanded.Vertex, c, c)
		}
		entry = expanded
	}
	return skeletonPrims(sk, entry, objectID, opts, log)
}
