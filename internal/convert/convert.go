// Package convert translates neuron representations into renderable
// primitives. The top-level entry point resolves colors for the whole batch
// first, then dispatches each neuron to its per-kind converter, preserving
// input order. Contract violations abort the call; per-item anomalies are
// logged and skipped.
package convert

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/navis-org/octarine-navis-plugin/internal/neuron"
	"github.com/navis-org/octarine-navis-plugin/internal/shading"
	"github.com/navis-org/octarine-navis-plugin/internal/style"
	"github.com/navis-org/octarine-navis-plugin/internal/visual"
)

// ErrUnsupportedType is returned when the input is neither a neuron nor a
// neuron list.
var ErrUnsupportedType = errors.New("convert: unsupported input type")

// ErrBadConnectorMode is returned for a connector display mode other than
// "circles" or "lines".
var ErrBadConnectorMode = errors.New("convert: unknown connector display mode")

// Neurons converts a single neuron.Neuron or a neuron.List into renderable
// primitives. opts may be nil for defaults; log may be nil to discard
// warnings. All primitives produced from one neuron share an object id: the
// neuron id, or a random UUID when RandomIDs is set or the id is empty.
func Neurons(x any, opts *style.Options, log *zap.Logger) ([]*visual.Primitive, error) {
	if opts == nil {
		d := style.Defaults()
		opts = &d
	}
	if log == nil {
		log = zap.NewNop()
	}

	var batch neuron.List
	switch v := x.(type) {
	case neuron.List:
		batch = v
	case neuron.Neuron:
		batch = neuron.List{v}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, x)
	}

	// Batch color resolution happens before any per-neuron work so that
	// contract violations surface without partial output.
	cmap, err := shading.Colormap(batch, opts)
	if err != nil {
		return nil, err
	}
	layout := style.DefaultSynapseLayout().Merge(opts.Layout)

	var prims []*visual.Primitive
	for i, n := range batch {
		objectID := n.NeuronID()
		if opts.RandomIDs || objectID == "" {
			objectID = uuid.NewString()
		}
		entry := cmap[i]

		if opts.Radius {
			// Tube rendering replaces the skeleton with a radius-honoring
			// mesh; connectors carry over on the converted neuron.
			if sk, ok := n.(*neuron.Skeleton); ok {
				if m := sk.TubeMesh(); m != nil {
					if entry.PerVertex() {
						entry = shading.Entry{Flat: entry.Flat, Vertex: tubeVertexColors(m, entry)}
					}
					n = m
				}
			}
		}

		if !opts.ConnectorsOnly {
			switch v := n.(type) {
			case *neuron.Skeleton:
				prims = append(prims, skeletonPrims(v, entry, objectID, opts, log)...)
			case *neuron.Mesh:
				prims = append(prims, meshPrims(v, entry, objectID, log)...)
			case *neuron.Voxel:
				prims = append(prims, voxelPrims(v, entry, objectID)...)
			case *neuron.Dotprops:
				prims = append(prims, dotpropPrims(v, entry, objectID, opts, log)...)
			default:
				log.Warn("skipping neuron of unrecognized variant",
					zap.String("neuron", n.NeuronID()),
					zap.String("type", fmt.Sprintf("%T", n)))
			}
		}

		if (opts.Connectors || opts.ConnectorsOnly) && n.HasConnectors() {
			cps, err := connectorPrims(n, entry, objectID, opts, layout)
			if err != nil {
				return nil, err
			}
			prims = append(prims, cps...)
		}
	}
	return prims, nil
}

// tubeVertexColors expands per-node colors onto the tube surface: every
// ring vertex inherits the color of the node it was swept around, keeping
// the mesh's vertex colors parallel to its vertices.
func tubeVertexColors(m *neuron.Mesh, entry shading.Entry) []color.RGBA {
	vcs := make([]color.RGBA, len(m.VertexNode))
	for i, ni := range m.VertexNode {
		vcs[i] = entry.ColorAt(ni)
	}
	return vcs
}

// detail builds the identity tag shared by all primitives of one neuron.
func detail(n neuron.Neuron, part visual.Part, objectID string) visual.Detail {
	return visual.Detail{
		ObjectType: "neuron",
		Part:       part,
		NeuronID:   n.NeuronID(),
		Name:       n.Label(),
		ObjectID:   objectID,
		Source:     n,
	}
}
