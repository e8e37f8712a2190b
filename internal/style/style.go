// Package style holds the styling surface for neuron conversion: per-call
// options plus the synapse layout (per-connector-type display defaults).
// Layering is explicit: package defaults, then caller overrides, resolved
// once per conversion call. There is no shared mutable global.
package style

import "image/color"

// NAPolicy controls what happens when an attribute used for coloring or
// shading has no value for some vertex.
type NAPolicy string

const (
	// NARaise aborts the conversion on a missing attribute value.
	NARaise NAPolicy = "raise"
	// NASkip substitutes the fallback color for missing values.
	NASkip NAPolicy = "skip"
)

// Connector display modes. Anything else is a configuration error.
const (
	DisplayCircles = "circles"
	DisplayLines   = "lines"
)

// DefaultMaxSomaCount is the soma-count ceiling above which soma rendering
// is skipped for a neuron: runaway soma detection can report hundreds of
// somas and flood the viewer with sphere primitives.
const DefaultMaxSomaCount = 10

// DefaultLineWidth is the neurite line width when the caller sets none.
const DefaultLineWidth = 2

// ConnectorColorByNeuron selects the owning neuron's color for connectors
// when assigned to Options.ConnectorColor.
const ConnectorColorByNeuron = "neuron"

// Options is the full per-call styling surface. The zero value plus
// Defaults() semantics: unset fields fall back to the documented default at
// resolution time.
type Options struct {
	// Color sets one flat color (name, hex, or rgb spec) for all neurons.
	// Colors, when non-empty, assigns per-neuron colors in input order and
	// takes precedence over Color.
	Color  string
	Colors []string

	// Alpha in [0,1] is applied to resolved flat colors. Negative means
	// "leave the color's own alpha alone".
	Alpha float32

	// ColorBy names a per-node attribute to color vertices by; requires
	// Palette. ShadeBy names an attribute whose normalized value drives
	// per-vertex alpha.
	ColorBy string
	ShadeBy string

	// Palette is the colormap name used with ColorBy (e.g. "viridis").
	Palette string

	// Vmin/Vmax fix the value range for ColorBy normalization; each bound
	// is optional and nil derives that bound from the data, so a range can
	// be pinned at zero or on one side only. SMin/SMax do the same for
	// ShadeBy.
	Vmin, Vmax *float32
	SMin, SMax *float32

	// NA is the missing-attribute policy. Empty means NARaise.
	NA NAPolicy

	// Connectors adds connector primitives; ConnectorsOnly suppresses the
	// neuron geometry and renders connectors alone.
	Connectors     bool
	ConnectorsOnly bool

	// ConnectorColor overrides connector coloring: a color spec, or
	// ConnectorColorByNeuron to reuse the neuron's color. ConnectorColors
	// maps connector types to color specs and wins over ConnectorColor.
	ConnectorColor  string
	ConnectorColors map[string]string

	// Layout overrides parts of the default synapse layout.
	Layout *SynapseLayout

	LineWidth float32
	PointSize float32

	// Radius renders skeletons as radius-honoring tube meshes instead of
	// lines.
	Radius bool

	// DPSScale is the dotprops line scale; zero selects the automatic
	// bounding-box heuristic.
	DPSScale float32

	// Soma toggles soma sphere rendering (default on). MaxSomaCount
	// overrides DefaultMaxSomaCount when > 0.
	Soma         *bool
	MaxSomaCount int

	// RandomIDs assigns fresh random object ids instead of neuron ids,
	// for collections with duplicate neuron ids.
	RandomIDs bool

	// Viewer behavior: Center re-centers the camera after adding, Clear
	// empties the scene first.
	Center *bool
	Clear  bool
}

// Defaults returns the baseline options: soma on, camera centering on,
// raise on missing attribute values, default line width.
func Defaults() Options {
	on := true
	return Options{
		Alpha:     -1,
		NA:        NARaise,
		LineWidth: DefaultLineWidth,
		Soma:      &on,
		Center:    &on,
	}
}

// SomaEnabled resolves the Soma toggle (default true).
func (o *Options) SomaEnabled() bool {
	return o.Soma == nil || *o.Soma
}

// CenterEnabled resolves the Center toggle (default true).
func (o *Options) CenterEnabled() bool {
	return o.Center == nil || *o.Center
}

// SomaLimit resolves the soma-count ceiling.
func (o *Options) SomaLimit() int {
	if o.MaxSomaCount > 0 {
		return o.MaxSomaCount
	}
	return DefaultMaxSomaCount
}

// NAOrDefault resolves the missing-attribute policy.
func (o *Options) NAOrDefault() NAPolicy {
	if o.NA == "" {
		return NARaise
	}
	return o.NA
}

// LineWidthOrDefault resolves the neurite line width.
func (o *Options) LineWidthOrDefault() float32 {
	if o.LineWidth > 0 {
		return o.LineWidth
	}
	return DefaultLineWidth
}

// FallbackColor is the connector color used when neither the layout nor the
// caller provides one.
var FallbackColor = color.RGBA{R: 26, G: 26, B: 26, A: 255}
