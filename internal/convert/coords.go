package convert

import (
	"image/color"

	"cogentcore.org/core/math32"

	"github.com/navis-org/octarine-navis-plugin/internal/neuron"
	"github.com/navis-org/octarine-navis-plugin/internal/shading"
)

// BreakRow returns the sentinel coordinate that ends a line stroke.
func BreakRow() math32.Vector3 {
	return math32.Vec3(math32.NaN(), math32.NaN(), math32.NaN())
}

// breakColor fills color rows that match coordinate break rows.
var breakColor = color.RGBA{}

// FlattenSegments flattens per-segment point runs into a single ordered
// coordinate sequence. Every segment, including the last, is terminated by
// a NaN break row so a connected-line primitive renders disjoint strokes:
// two 2-point segments flatten to 6 rows.
func FlattenSegments(segs [][]math32.Vector3) []math32.Vector3 {
	var total int
	for _, seg := range segs {
		total += len(seg) + 1
	}
	coords := make([]math32.Vector3, 0, total)
	for _, seg := range segs {
		coords = append(coords, seg...)
		coords = append(coords, BreakRow())
	}
	return coords
}

// SegmentsToCoords flattens a skeleton's segments into line coordinates
// with break rows. When the color entry is per-vertex, a color sequence of
// equal length is returned, with break rows mirrored as zero colors;
// otherwise the second return is nil.
func SegmentsToCoords(sk *neuron.Skeleton, segs [][]neuron.Node, entry shading.Entry) ([]math32.Vector3, []color.RGBA) {
	var total int
	for _, seg := range segs {
		total += len(seg) + 1
	}
	coords := make([]math32.Vector3, 0, total)
	var vcs []color.RGBA
	if entry.PerVertex() {
		vcs = make([]color.RGBA, 0, total)
	}
	for _, seg := range segs {
		for _, n := range seg {
			coords = append(coords, n.Pos)
			if vcs != nil {
				vcs = append(vcs, entry.ColorAt(sk.NodeIndex(n.ID)))
			}
		}
		coords = append(coords, BreakRow())
		if vcs != nil {
			vcs = append(vcs, breakColor)
		}
	}
	return coords, vcs
}
