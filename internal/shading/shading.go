// Package shading resolves colors for a batch of neurons before conversion:
// explicit color specs, a default per-neuron rotation, attribute-driven
// per-vertex colors through a named palette, and attribute-driven alpha
// shading. Palette math is delegated to cogentcore's colormap package.
package shading

import (
	"errors"
	"fmt"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/colors/colormap"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"

	"github.com/navis-org/octarine-navis-plugin/internal/neuron"
	"github.com/navis-org/octarine-navis-plugin/internal/style"
)

// ErrMissingPalette is returned when attribute-driven coloring is requested
// without naming a palette.
var ErrMissingPalette = errors.New("shading: color_by requires a palette (e.g. \"viridis\")")

// ErrMissingAttribute is returned under the raise policy when a neuron lacks
// the attribute selected for coloring or shading.
var ErrMissingAttribute = errors.New("shading: missing attribute")

// Entry is one neuron's resolved color: a flat color, or per-vertex colors
// parallel to the neuron's vertex sequence.
type Entry struct {
	Flat   color.RGBA
	Vertex []color.RGBA
}

// PerVertex reports whether the entry carries per-vertex colors.
func (e Entry) PerVertex() bool { return e.Vertex != nil }

// ColorAt returns the color for the given vertex index: the per-vertex
// color when present, else the flat color.
func (e Entry) ColorAt(i int) color.RGBA {
	if e.Vertex != nil && i >= 0 && i < len(e.Vertex) {
		return e.Vertex[i]
	}
	return e.Flat
}

// defaultRotation is cycled through when the caller gives no colors; one
// distinct hue per neuron in batch order.
var defaultRotation = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
	{R: 140, G: 86, B: 75, A: 255},
	{R: 227, G: 119, B: 194, A: 255},
	{R: 127, G: 127, B: 127, A: 255},
	{R: 188, G: 189, B: 34, A: 255},
	{R: 23, G: 190, B: 207, A: 255},
}

// Colormap resolves one color entry per neuron, in input order. With
// ColorBy set it produces per-vertex colors through the named palette;
// otherwise flat colors from the explicit specs or the default rotation.
// ShadeBy then overwrites per-vertex alpha, broadcasting flat colors to
// vertex count first. The error paths are contract violations and abort
// before any geometry work.
func Colormap(batch neuron.List, opts *style.Options) ([]Entry, error) {
	var entries []Entry
	var err error
	if opts.ColorBy != "" {
		if opts.Palette == "" {
			return nil, ErrMissingPalette
		}
		entries, err = vertexColors(batch, opts.ColorBy, opts.Palette, opts.Vmin, opts.Vmax, opts)
	} else {
		entries, err = flatColors(batch, opts)
	}
	if err != nil {
		return nil, err
	}
	if opts.ShadeBy != "" {
		if err := shadeAlpha(entries, batch, opts); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// flatColors resolves one flat color per neuron from the explicit specs or
// the default rotation, applying the alpha option.
func flatColors(batch neuron.List, opts *style.Options) ([]Entry, error) {
	entries := make([]Entry, len(batch))
	for i := range batch {
		var c color.RGBA
		switch {
		case len(opts.Colors) > 0:
			spec := opts.Colors[i%len(opts.Colors)]
			parsed, err := colors.FromString(spec)
			if err != nil {
				return nil, fmt.Errorf("shading: color %q: %w", spec, err)
			}
			c = parsed
		case opts.Color != "":
			parsed, err := colors.FromString(opts.Color)
			if err != nil {
				return nil, fmt.Errorf("shading: color %q: %w", opts.Color, err)
			}
			c = parsed
		default:
			c = defaultRotation[i%len(defaultRotation)]
		}
		if opts.Alpha >= 0 {
			c = colors.WithAF32(c, opts.Alpha)
		}
		entries[i] = Entry{Flat: c}
	}
	return entries, nil
}

// vertexColors maps the named attribute through the palette, normalized
// over [vmin, vmax] (each bound derived from the data across the whole
// batch when nil).
func vertexColors(batch neuron.List, attr, palette string, vmin, vmax *float32, opts *style.Options) ([]Entry, error) {
	cm, ok := colormap.AvailableMaps[palette]
	if !ok {
		return nil, fmt.Errorf("shading: unknown palette %q", palette)
	}

	rng, err := attributeRange(batch, attr, vmin, vmax, opts)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, len(batch))
	for i, n := range batch {
		vals, ok := n.Attribute(attr)
		if !ok {
			if opts.NAOrDefault() == style.NARaise {
				return nil, fmt.Errorf("%w: neuron %s has no attribute %q", ErrMissingAttribute, n.NeuronID(), attr)
			}
			entries[i] = Entry{Flat: style.FallbackColor}
			continue
		}
		vcs := make([]color.RGBA, len(vals))
		for j, v := range vals {
			if math32.IsNaN(v) {
				if opts.NAOrDefault() == style.NARaise {
					return nil, fmt.Errorf("%w: neuron %s attribute %q vertex %d", ErrMissingAttribute, n.NeuronID(), attr, j)
				}
				vcs[j] = style.FallbackColor
				continue
			}
			c := colors.AsRGBA(cm.Map(rng.NormValue(v)))
			if opts.Alpha >= 0 {
				c = colors.WithAF32(c, opts.Alpha)
			}
			vcs[j] = c
		}
		entries[i] = Entry{Vertex: vcs}
	}
	return entries, nil
}

// attributeRange fixes the normalization range. Each bound is independent:
// a nil bound is derived from the attribute's values across the whole
// batch, a set bound is used as given (including zero).
func attributeRange(batch neuron.List, attr string, vmin, vmax *float32, opts *style.Options) (minmax.F32, error) {
	var rng minmax.F32
	if vmin != nil && vmax != nil {
		rng.Set(*vmin, *vmax)
		return rng, nil
	}
	rng.SetInfinity()
	for _, n := range batch {
		vals, ok := n.Attribute(attr)
		if !ok {
			continue
		}
		for _, v := range vals {
			if !math32.IsNaN(v) {
				rng.FitValInRange(v)
			}
		}
	}
	if !rng.IsValid() {
		return rng, fmt.Errorf("%w: no values for attribute %q in batch", ErrMissingAttribute, attr)
	}
	if vmin != nil {
		rng.Min = *vmin
	}
	if vmax != nil {
		rng.Max = *vmax
	}
	return rng, nil
}

// shadeAlpha resolves the ShadeBy attribute to per-vertex alpha and merges
// it into the entries: flat entries broadcast to vertex count first, then
// alpha is overwritten per vertex.
func shadeAlpha(entries []Entry, batch neuron.List, opts *style.Options) error {
	rng, err := attributeRange(batch, opts.ShadeBy, opts.SMin, opts.SMax, opts)
	if err != nil {
		return err
	}
	for i, n := range batch {
		vals, ok := n.Attribute(opts.ShadeBy)
		if !ok {
			if opts.NAOrDefault() == style.NARaise {
				return fmt.Errorf("%w: neuron %s has no attribute %q", ErrMissingAttribute, n.NeuronID(), opts.ShadeBy)
			}
			continue
		}
		e := entries[i]
		if !e.PerVertex() {
			e.Vertex = make([]color.RGBA, len(vals))
			for j := range e.Vertex {
				e.Vertex[j] = e.Flat
			}
		}
		for j := range e.Vertex {
			if j >= len(vals) {
				break
			}
			v := vals[j]
			if math32.IsNaN(v) {
				if opts.NAOrDefault() == style.NARaise {
					return fmt.Errorf("%w: neuron %s attribute %q vertex %d", ErrMissingAttribute, n.NeuronID(), opts.ShadeBy, j)
				}
				continue
			}
			a := rng.NormValue(v)
			c := e.Vertex[j]
			c.A = uint8(math32.Round(a * 255))
			e.Vertex[j] = c
		}
		entries[i] = e
	}
	return nil
}
