package convert

import (
	"go.uber.org/zap"

	"github.com/navis-org/octarine-navis-plugin/internal/neuron"
	"github.com/navis-org/octarine-navis-plugin/internal/shading"
	"github.com/navis-org/octarine-navis-plugin/internal/style"
	"github.com/navis-org/octarine-navis-plugin/internal/visual"
)

// skeletonPrims converts a skeleton into a neurite line primitive plus one
// sphere per valid soma. Degenerate skeletons (fewer than two nodes) yield
// nothing. A soma count at or above the configured limit disables soma
// rendering for the neuron: runaway soma detection would otherwise flood
// the scene with spheres.
func skeletonPrims(sk *neuron.Skeleton, entry shading.Entry, objectID string, opts *style.Options, log *zap.Logger) []*visual.Primitive {
	if len(sk.Nodes) == 0 {
		log.Warn("skipping skeleton without nodes", zap.String("neuron", sk.NeuronID()))
		return nil
	}
	if len(sk.Nodes) == 1 {
		log.Warn("skipping single-node skeleton", zap.String("neuron", sk.Label()))
		return nil
	}

	coords, vcs := SegmentsToCoords(sk, sk.Segments(), entry)
	line := &visual.Primitive{
		Kind:         visual.KindLines,
		Detail:       detail(sk, visual.PartNeurites, objectID),
		Color:        entry.Flat,
		VertexColors: vcs,
		Coords:       coords,
		LineWidth:    opts.LineWidthOrDefault(),
	}
	prims := []*visual.Primitive{line}

	if !opts.SomaEnabled() || len(sk.Soma) == 0 {
		return prims
	}
	if len(sk.Soma) >= opts.SomaLimit() {
		log.Warn("implausible soma count, skipping soma rendering",
			zap.String("neuron", sk.NeuronID()),
			zap.Int("somas", len(sk.Soma)))
		return prims
	}
	for _, id := range sk.Soma {
		n, ok := sk.Node(id)
		if !ok {
			continue
		}
		c := entry.Flat
		if entry.PerVertex() {
			c = entry.ColorAt(sk.NodeIndex(id))
		}
		prims = append(prims, &visual.Primitive{
			Kind:   visual.KindSphere,
			Detail: detail(sk, visual.PartSoma, objectID),
			Color:  c,
			Center: n.Pos,
			// Soma spheres render at twice the reported radius.
			Radius: 2 * sk.SomaRadiusFor(n),
		})
	}
	return prims
}
