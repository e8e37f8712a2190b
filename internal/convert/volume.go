package convert

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/colors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/navis-org/octarine-navis-plugin/internal/neuron"
	"github.com/navis-org/octarine-navis-plugin/internal/style"
	"github.com/navis-org/octarine-navis-plugin/internal/visual"
)

// DefaultVolumeColor is the translucent near-white used for volumes that
// carry no color of their own.
var DefaultVolumeColor = color.RGBA{R: 242, G: 242, B: 242, A: 26}

// Volumes converts a standalone *neuron.Volume into a single mesh primitive
// tagged with object type "volume". Color precedence: caller's flat color
// option, the volume's own color, then the translucent default.
func Volumes(x any, opts *style.Options, log *zap.Logger) ([]*visual.Primitive, error) {
	if opts == nil {
		d := style.Defaults()
		opts = &d
	}
	if log == nil {
		log = zap.NewNop()
	}

	v, ok := x.(*neuron.Volume)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, x)
	}
	if len(v.Faces) == 0 {
		log.Warn("skipping volume without faces", zap.String("volume", v.ID))
		return nil, nil
	}

	c := DefaultVolumeColor
	if v.Color != (color.RGBA{}) {
		c = v.Color
	}
	if opts.Color != "" {
		parsed, err := colors.FromString(opts.Color)
		if err != nil {
			return nil, fmt.Errorf("convert: volume color %q: %w", opts.Color, err)
		}
		c = parsed
	}
	if opts.Alpha >= 0 {
		c = colors.WithAF32(c, opts.Alpha)
	}

	objectID := v.ID
	if opts.RandomIDs || objectID == "" {
		objectID = uuid.NewString()
	}
	return []*visual.Primitive{{
		Kind: visual.KindMesh,
		Detail: visual.Detail{
			ObjectType: "volume",
			NeuronID:   v.ID,
			Name:       v.Label(),
			ObjectID:   objectID,
		},
		Color:    c,
		Vertices: v.Vertices,
		Faces:    v.Faces,
	}}, nil
}

// RawSkeletons converts a *neuron.RawSkeleton by wrapping it into the
// neuron model and reusing the neuron pipeline.
func RawSkeletons(x any, opts *style.Options, log *zap.Logger) ([]*visual.Primitive, error) {
	r, ok := x.(*neuron.RawSkeleton)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, x)
	}
	return Neurons(r.Skeleton(), opts, log)
}
