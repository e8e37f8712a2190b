// Package viewer hosts converted primitives: a registry mapping type
// predicates to converters, and a Viewer that owns a scene (an append
// target for primitives) and a camera it can center on the scene bounds.
package viewer

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/navis-org/octarine-navis-plugin/internal/convert"
	"github.com/navis-org/octarine-navis-plugin/internal/neuron"
	"github.com/navis-org/octarine-navis-plugin/internal/style"
	"github.com/navis-org/octarine-navis-plugin/internal/visual"
)

// ErrNoConverter is returned when no registered predicate matches the input.
var ErrNoConverter = errors.New("viewer: no registered converter for input")

// Predicate reports whether a converter accepts the given object.
type Predicate func(x any) bool

// Converter translates a matched object into renderable primitives.
type Converter func(x any, opts *style.Options, log *zap.Logger) ([]*visual.Primitive, error)

// Registry holds (predicate, converter) pairs in registration order. The
// embedding application populates it at startup; there is no implicit
// global registry.
type Registry struct {
	entries []registration
}

type registration struct {
	pred Predicate
	conv Converter
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a converter guarded by its predicate. Earlier
// registrations win when predicates overlap.
func (r *Registry) Register(pred Predicate, conv Converter) {
	r.entries = append(r.entries, registration{pred: pred, conv: conv})
}

// Convert dispatches x to the first converter whose predicate matches.
func (r *Registry) Convert(x any, opts *style.Options, log *zap.Logger) ([]*visual.Primitive, error) {
	for _, e := range r.entries {
		if e.pred(x) {
			return e.conv(x, opts, log)
		}
	}
	return nil, fmt.Errorf("%w: %T", ErrNoConverter, x)
}

// IsNeuron matches a single neuron variant.
func IsNeuron(x any) bool {
	_, ok := x.(neuron.Neuron)
	return ok
}

// IsNeuronList matches a neuron collection.
func IsNeuronList(x any) bool {
	_, ok := x.(neuron.List)
	return ok
}

// IsRawSkeleton matches a skeleton from a third-party skeletonization tool.
func IsRawSkeleton(x any) bool {
	_, ok := x.(*neuron.RawSkeleton)
	return ok
}

// IsVolume matches a standalone volume mesh.
func IsVolume(x any) bool {
	_, ok := x.(*neuron.Volume)
	return ok
}

// RegisterNeuronConverters installs the standard converters: single neurons
// and neuron lists route to convert.Neurons, raw third-party skeletons are
// wrapped into the neuron model, and standalone volumes get their own
// converter.
func RegisterNeuronConverters(r *Registry) {
	r.Register(IsNeuron, convert.Neurons)
	r.Register(IsNeuronList, convert.Neurons)
	r.Register(IsRawSkeleton, convert.RawSkeletons)
	r.Register(IsVolume, convert.Volumes)
}
