package viewer

import (
	"fmt"

	"cogentcore.org/core/math32"
	"go.uber.org/zap"

	"github.com/navis-org/octarine-navis-plugin/internal/convert"
	"github.com/navis-org/octarine-navis-plugin/internal/neuron"
	"github.com/navis-org/octarine-navis-plugin/internal/style"
	"github.com/navis-org/octarine-navis-plugin/internal/visual"
)

// cameraDistanceFactor sets how far the camera sits from the scene center
// when centering, as a multiple of the bounding-box diagonal.
const cameraDistanceFactor = 1.2

// Viewer owns the scene primitives and the camera. It holds no other state:
// conversion is all-or-nothing per call and primitives are owned by the
// scene once added.
type Viewer struct {
	reg *Registry
	log *zap.Logger

	scene  []*visual.Primitive
	bounds math32.Box3

	// CameraPos and CameraTarget feed the render loop; CenterCamera
	// updates them from the scene bounds.
	CameraPos    math32.Vector3
	CameraTarget math32.Vector3
}

// New returns a viewer with the given registry (nil installs the standard
// neuron converters) and logger (nil discards warnings).
func New(reg *Registry, log *zap.Logger) *Viewer {
	if reg == nil {
		reg = NewRegistry()
		RegisterNeuronConverters(reg)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Viewer{
		reg:          reg,
		log:          log,
		bounds:       math32.B3Empty(),
		CameraPos:    math32.Vec3(10, 10, 10),
		CameraTarget: math32.Vec3(0, 0, 0),
	}
}

// Scene returns the primitives currently in the scene.
func (v *Viewer) Scene() []*visual.Primitive { return v.scene }

// Bounds returns the bounding box of everything in the scene.
func (v *Viewer) Bounds() math32.Box3 { return v.bounds }

// Clear empties the scene and resets the bounds.
func (v *Viewer) Clear() {
	v.scene = nil
	v.bounds = math32.B3Empty()
}

// Add converts any registered object and appends the result to the scene.
func (v *Viewer) Add(x any, opts *style.Options) error {
	prims, err := v.reg.Convert(x, opts, v.log)
	if err != nil {
		return err
	}
	v.append(prims)
	return nil
}

// AddNeurons converts a neuron or neuron list and adds the primitives to
// the scene. Collections with duplicate IDs are permitted but warned about
// unless RandomIDs is set. Scene clearing happens only after conversion
// succeeds; the camera is re-centered once at the end when centering is on.
func (v *Viewer) AddNeurons(x any, opts *style.Options) error {
	if opts == nil {
		d := style.Defaults()
		opts = &d
	}
	switch t := x.(type) {
	case neuron.Neuron:
	case neuron.List:
		if t.HasDuplicateIDs() && !opts.RandomIDs {
			v.log.Warn("neuron list contains duplicate IDs")
		}
	default:
		return fmt.Errorf("%w: %T", convert.ErrUnsupportedType, x)
	}

	prims, err := convert.Neurons(x, opts, v.log)
	if err != nil {
		return err
	}
	if opts.Clear {
		v.Clear()
	}
	v.append(prims)
	if opts.CenterEnabled() {
		v.CenterCamera()
	}
	return nil
}

// append adds primitives without per-primitive camera work.
func (v *Viewer) append(prims []*visual.Primitive) {
	for _, p := range prims {
		v.scene = append(v.scene, p)
		// Expanding by an empty box would poison the bounds with infinities.
		if pb := p.Bounds(); !pb.IsEmpty() {
			v.bounds.ExpandByBox(pb)
		}
	}
}

// CenterCamera points the camera at the scene center from a distance
// proportional to the scene extent. Empty scenes leave the camera alone.
func (v *Viewer) CenterCamera() {
	if v.bounds.IsEmpty() {
		return
	}
	center := v.bounds.Center()
	diag := v.bounds.Size().Length()
	if diag == 0 {
		diag = 1
	}
	dir := math32.Vec3(1, 1, 1).Normal()
	v.CameraTarget = center
	v.CameraPos = center.Add(dir.MulScalar(diag * cameraDistanceFactor))
}
