package viewer

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/navis-org/octarine-navis-plugin/internal/convert"
	"github.com/navis-org/octarine-navis-plugin/internal/neuron"
	"github.com/navis-org/octarine-navis-plugin/internal/style"
	"github.com/navis-org/octarine-navis-plugin/internal/visual"
)

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.WarnLevel)
	return zap.New(core), logs
}

func testSkeleton(id string) *neuron.Skeleton {
	return &neuron.Skeleton{
		Base: neuron.Base{ID: id},
		Nodes: []neuron.Node{
			{ID: 1, Parent: neuron.NoParent, Pos: math32.Vec3(0, 0, 0)},
			{ID: 2, Parent: 1, Pos: math32.Vec3(10, 0, 0)},
		},
	}
}

func TestRegistry(t *testing.T) {
	t.Run("first matching converter wins", func(t *testing.T) {
		r := NewRegistry()
		r.Register(func(x any) bool { return true }, func(x any, opts *style.Options, log *zap.Logger) ([]*visual.Primitive, error) {
			return []*visual.Primitive{{Kind: visual.KindPoints}}, nil
		})
		r.Register(func(x any) bool { return true }, func(x any, opts *style.Options, log *zap.Logger) ([]*visual.Primitive, error) {
			return []*visual.Primitive{{Kind: visual.KindMesh}}, nil
		})
		prims, err := r.Convert("anything", nil, nil)
		require.NoError(t, err)
		require.Len(t, prims, 1)
		assert.Equal(t, visual.KindPoints, prims[0].Kind)
	})

	t.Run("no match errors", func(t *testing.T) {
		r := NewRegistry()
		_, err := r.Convert(42, nil, nil)
		assert.ErrorIs(t, err, ErrNoConverter)
	})

	t.Run("standard predicates", func(t *testing.T) {
		assert.True(t, IsNeuron(testSkeleton("a")))
		assert.False(t, IsNeuron(neuron.List{}))
		assert.True(t, IsNeuronList(neuron.List{testSkeleton("a")}))
		assert.False(t, IsNeuronList("nope"))
		assert.True(t, IsRawSkeleton(&neuron.RawSkeleton{}))
		assert.False(t, IsRawSkeleton(testSkeleton("a")))
		assert.True(t, IsVolume(&neuron.Volume{}))
		assert.False(t, IsVolume(testSkeleton("a")))
	})

	t.Run("raw skeletons and volumes dispatch through the registry", func(t *testing.T) {
		r := NewRegistry()
		RegisterNeuronConverters(r)

		raw := &neuron.RawSkeleton{
			Vertices: []math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0)},
			Edges:    [][2]int{{1, 0}},
		}
		prims, err := r.Convert(raw, nil, nil)
		require.NoError(t, err)
		require.Len(t, prims, 1)
		assert.Equal(t, visual.KindLines, prims[0].Kind)

		vol := &neuron.Volume{
			ID: "lobe",
			Vertices: []math32.Vector3{
				math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0),
			},
			Faces: [][3]int{{0, 1, 2}},
		}
		prims, err = r.Convert(vol, nil, nil)
		require.NoError(t, err)
		require.Len(t, prims, 1)
		assert.Equal(t, "volume", prims[0].Detail.ObjectType)
	})

	t.Run("registered neuron converters round-trip", func(t *testing.T) {
		r := NewRegistry()
		RegisterNeuronConverters(r)
		prims, err := r.Convert(testSkeleton("a"), nil, nil)
		require.NoError(t, err)
		assert.Len(t, prims, 1)

		prims, err = r.Convert(neuron.List{testSkeleton("a"), testSkeleton("b")}, nil, nil)
		require.NoError(t, err)
		assert.Len(t, prims, 2)
	})
}

func TestViewerAddNeurons(t *testing.T) {
	t.Run("adds primitives and centers the camera", func(t *testing.T) {
		v := New(nil, nil)
		before := v.CameraTarget
		require.NoError(t, v.AddNeurons(testSkeleton("a"), nil))
		assert.Len(t, v.Scene(), 1)
		assert.NotEqual(t, before, v.CameraTarget)
		assert.Equal(t, math32.Vec3(5, 0, 0), v.CameraTarget)
	})

	t.Run("no centering when disabled", func(t *testing.T) {
		v := New(nil, nil)
		off := false
		opts := style.Defaults()
		opts.Center = &off
		before := v.CameraTarget
		require.NoError(t, v.AddNeurons(testSkeleton("a"), &opts))
		assert.Equal(t, before, v.CameraTarget)
	})

	t.Run("unsupported input is rejected", func(t *testing.T) {
		v := New(nil, nil)
		err := v.AddNeurons("nope", nil)
		assert.ErrorIs(t, err, convert.ErrUnsupportedType)
		assert.Empty(t, v.Scene())
	})

	t.Run("duplicate ids warn unless random ids", func(t *testing.T) {
		log, logs := observedLogger()
		v := New(nil, log)
		batch := neuron.List{testSkeleton("a"), testSkeleton("a")}
		require.NoError(t, v.AddNeurons(batch, nil))
		assert.Equal(t, 1, logs.FilterMessageSnippet("duplicate IDs").Len())

		log2, logs2 := observedLogger()
		v2 := New(nil, log2)
		opts := style.Defaults()
		opts.RandomIDs = true
		require.NoError(t, v2.AddNeurons(batch, &opts))
		assert.Equal(t, 0, logs2.FilterMessageSnippet("duplicate IDs").Len())
	})

	t.Run("clear empties the scene first", func(t *testing.T) {
		v := New(nil, nil)
		require.NoError(t, v.AddNeurons(testSkeleton("a"), nil))
		opts := style.Defaults()
		opts.Clear = true
		require.NoError(t, v.AddNeurons(testSkeleton("b"), &opts))
		require.Len(t, v.Scene(), 1)
		assert.Equal(t, "b", v.Scene()[0].Detail.NeuronID)
	})

	t.Run("failed conversion leaves the scene untouched", func(t *testing.T) {
		v := New(nil, nil)
		require.NoError(t, v.AddNeurons(testSkeleton("a"), nil))
		opts := style.Defaults()
		opts.Clear = true
		opts.ColorBy = "depth" // no palette: contract violation
		assert.Error(t, v.AddNeurons(testSkeleton("b"), &opts))
		assert.Len(t, v.Scene(), 1)
	})
}

func TestViewerAdd(t *testing.T) {
	v := New(nil, nil)
	require.NoError(t, v.Add(testSkeleton("a"), nil))
	assert.Len(t, v.Scene(), 1)

	err := v.Add(3.14, nil)
	assert.ErrorIs(t, err, ErrNoConverter)
}

func TestViewerBounds(t *testing.T) {
	v := New(nil, nil)
	assert.True(t, v.Bounds().IsEmpty())
	require.NoError(t, v.AddNeurons(testSkeleton("a"), nil))
	b := v.Bounds()
	assert.Equal(t, math32.Vec3(0, 0, 0), b.Min)
	assert.Equal(t, math32.Vec3(10, 0, 0), b.Max)

	v.Clear()
	assert.Empty(t, v.Scene())
	assert.True(t, v.Bounds().IsEmpty())
}
