package convert

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"

	"github.com/navis-org/octarine-navis-plugin/internal/neuron"
	"github.com/navis-org/octarine-navis-plugin/internal/shading"
	"github.com/navis-org/octarine-navis-plugin/internal/style"
	"github.com/navis-org/octarine-navis-plugin/internal/visual"
)

// connectorPrims converts a neuron's connector table into one primitive per
// distinct connector type, preserving first-seen type order. Display mode
// "circles" yields point primitives; "lines" pairs each connector with its
// owning node, flattened with break rows. Mesh neurons always render
// circles (no nodes to pair with); so do other node-less variants. Any
// other display mode is a configuration error that aborts the conversion.
func connectorPrims(n neuron.Neuron, entry shading.Entry, objectID string, opts *style.Options, layout style.SynapseLayout) ([]*visual.Primitive, error) {
	mode := layout.Display
	if mode != style.DisplayCircles && mode != style.DisplayLines {
		return nil, fmt.Errorf("%w: %q", ErrBadConnectorMode, mode)
	}

	table := n.ConnectorTable()
	var types []string
	byType := map[string][]neuron.Connector{}
	for _, cn := range table {
		if _, ok := byType[cn.Type]; !ok {
			types = append(types, cn.Type)
		}
		byType[cn.Type] = append(byType[cn.Type], cn)
	}

	sk, isSkeleton := n.(*neuron.Skeleton)

	var prims []*visual.Primitive
	for _, typ := range types {
		c, err := connectorColor(typ, entry, opts, layout)
		if err != nil {
			return nil, err
		}
		cns := byType[typ]

		if mode == style.DisplayLines && isSkeleton {
			coords := connectorLineCoords(sk, cns)
			prims = append(prims, &visual.Primitive{
				Kind:      visual.KindLines,
				Detail:    detail(n, visual.PartConnectors, objectID),
				Color:     c,
				Coords:    coords,
				LineWidth: opts.LineWidthOrDefault(),
			})
			continue
		}

		coords := make([]math32.Vector3, len(cns))
		for i, cn := range cns {
			coords[i] = cn.Position
		}
		size := opts.PointSize
		if size <= 0 {
			size = layout.SizeFor(typ)
		}
		prims = append(prims, &visual.Primitive{
			Kind:      visual.KindPoints,
			Detail:    detail(n, visual.PartConnectors, objectID),
			Color:     c,
			Coords:    coords,
			PointSize: size,
		})
	}
	return prims, nil
}

// connectorColor resolves the color for one connector type. Precedence:
// explicit per-type mapping, the neuron's own color ("neuron"), a flat
// override, the layout's type color, then the fallback.
func connectorColor(typ string, entry shading.Entry, opts *style.Options, layout style.SynapseLayout) (color.RGBA, error) {
	if spec, ok := opts.ConnectorColors[typ]; ok {
		c, err := colors.FromString(spec)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("convert: connector color %q: %w", spec, err)
		}
		return c, nil
	}
	switch {
	case opts.ConnectorColor == style.ConnectorColorByNeuron:
		if entry.PerVertex() {
			return entry.ColorAt(0), nil
		}
		return entry.Flat, nil
	case opts.ConnectorColor != "":
		c, err := colors.FromString(opts.ConnectorColor)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("convert: connector color %q: %w", opts.ConnectorColor, err)
		}
		return c, nil
	}
	if ts, ok := layout.Types[typ]; ok && ts.Color != "" {
		c, err := colors.FromString(ts.Color)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("convert: layout color %q: %w", ts.Color, err)
		}
		return c, nil
	}
	return style.FallbackColor, nil
}

// connectorLineCoords pairs each connector position with its owning node's
// position, terminating each pair with a break row. Connectors whose node
// is missing are dropped.
func connectorLineCoords(sk *neuron.Skeleton, cns []neuron.Connector) []math32.Vector3 {
	coords := make([]math32.Vector3, 0, 3*len(cns))
	for _, cn := range cns {
		node, ok := sk.Node(cn.NodeID)
		if !ok {
			continue
		}
		coords = append(coords, cn.Position, node.Pos, BreakRow())
	}
	return coords
}
