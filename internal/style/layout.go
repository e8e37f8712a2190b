package style

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TypeStyle is the display style for one connector type. Color is a color
// spec string (name, hex, or "rgb(...)"); empty falls back to FallbackColor.
type TypeStyle struct {
	Name  string  `yaml:"name,omitempty"`
	Color string  `yaml:"color,omitempty"`
	Size  float32 `yaml:"size,omitempty"`
}

// SynapseLayout maps connector types to display styles plus the shared
// display mode and point size.
type SynapseLayout struct {
	Types   map[string]TypeStyle `yaml:"types,omitempty"`
	Display string               `yaml:"display,omitempty"`
	Size    float32              `yaml:"size,omitempty"`
}

// DefaultSynapseLayout returns the stock layout: presynapses red,
// postsynapses blue, gap junctions green, drawn as lines.
func DefaultSynapseLayout() SynapseLayout {
	return SynapseLayout{
		Types: map[string]TypeStyle{
			"pre":          {Name: "Presynapses", Color: "red"},
			"post":         {Name: "Postsynapses", Color: "blue"},
			"gap_junction": {Name: "Gap junctions", Color: "green"},
		},
		Display: DisplayLines,
		Size:    100,
	}
}

// Merge layers the override on top of the receiver and returns the result.
// Only set fields of the override win; type entries are merged per type.
func (l SynapseLayout) Merge(override *SynapseLayout) SynapseLayout {
	out := SynapseLayout{
		Types:   make(map[string]TypeStyle, len(l.Types)),
		Display: l.Display,
		Size:    l.Size,
	}
	for k, v := range l.Types {
		out.Types[k] = v
	}
	if override == nil {
		return out
	}
	if override.Display != "" {
		out.Display = override.Display
	}
	if override.Size > 0 {
		out.Size = override.Size
	}
	for k, v := range override.Types {
		cur := out.Types[k]
		if v.Name != "" {
			cur.Name = v.Name
		}
		if v.Color != "" {
			cur.Color = v.Color
		}
		if v.Size > 0 {
			cur.Size = v.Size
		}
		out.Types[k] = cur
	}
	return out
}

// SizeFor returns the point size for a connector type: the type's own size
// if set, else the layout-wide size.
func (l SynapseLayout) SizeFor(typ string) float32 {
	if ts, ok := l.Types[typ]; ok && ts.Size > 0 {
		return ts.Size
	}
	return l.Size
}

// LoadSynapseLayout reads a synapse layout override from a YAML file.
func LoadSynapseLayout(path string) (*SynapseLayout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("synapse layout: %w", err)
	}
	var l SynapseLayout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("synapse layout %s: %w", path, err)
	}
	return &l, nil
}
