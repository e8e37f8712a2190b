package convert

import (
	"image/color"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/navis-org/octarine-navis-plugin/internal/neuron"
	"github.com/navis-org/octarine-navis-plugin/internal/style"
	"github.com/navis-org/octarine-navis-plugin/internal/visual"
)

// observedLogger returns a logger capturing warn-and-above entries.
func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.WarnLevel)
	return zap.New(core), logs
}

// linearSkeleton returns a 3-node root→mid→leaf chain with no soma.
func linearSkeleton(id string) *neuron.Skeleton {
	return &neuron.Skeleton{
		Base: neuron.Base{ID: id},
		Nodes: []neuron.Node{
			{ID: 1, Parent: neuron.NoParent, Pos: math32.Vec3(0, 0, 0), Radius: 1},
			{ID: 2, Parent: 1, Pos: math32.Vec3(1, 0, 0), Radius: 1},
			{ID: 3, Parent: 2, Pos: math32.Vec3(2, 0, 0), Radius: 1},
		},
	}
}

func TestNeuronsEndToEnd(t *testing.T) {
	t.Run("single linear skeleton yields one neurite primitive", func(t *testing.T) {
		prims, err := Neurons(linearSkeleton("n1"), nil, nil)
		require.NoError(t, err)
		require.Len(t, prims, 1)
		p := prims[0]
		assert.Equal(t, visual.KindLines, p.Kind)
		assert.Equal(t, visual.PartNeurites, p.Detail.Part)
		assert.Equal(t, "n1", p.Detail.NeuronID)
		assert.Equal(t, "neuron", p.Detail.ObjectType)
		assert.NotEmpty(t, p.Detail.ObjectID)
	})

	t.Run("unsupported input type is a hard failure", func(t *testing.T) {
		_, err := Neurons(42, nil, nil)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("input order maps to resolved colors", func(t *testing.T) {
		batch := neuron.List{linearSkeleton("a"), linearSkeleton("b"), linearSkeleton("c")}
		opts := style.Defaults()
		opts.Colors = []string{"red", "green", "blue"}
		prims, err := Neurons(batch, &opts, nil)
		require.NoError(t, err)
		require.Len(t, prims, 3)
		assert.Equal(t, color.RGBA{R: 255, A: 255}, prims[0].Color)
		assert.Equal(t, "a", prims[0].Detail.NeuronID)
		assert.Equal(t, color.RGBA{B: 255, A: 255}, prims[2].Color)
		assert.Equal(t, "c", prims[2].Detail.NeuronID)
	})

	t.Run("color_by without palette fails before geometry", func(t *testing.T) {
		opts := style.Defaults()
		opts.ColorBy = "depth"
		prims, err := Neurons(linearSkeleton("n1"), &opts, nil)
		assert.Error(t, err)
		assert.Nil(t, prims)
	})

	t.Run("unrecognized variant in a batch is skipped with a warning", func(t *testing.T) {
		log, logs := observedLogger()
		batch := neuron.List{linearSkeleton("a"), &fakeNeuron{}, linearSkeleton("b")}
		prims, err := Neurons(batch, nil, log)
		require.NoError(t, err)
		assert.Len(t, prims, 2)
		assert.Equal(t, 1, logs.FilterMessageSnippet("unrecognized variant").Len())
	})

	t.Run("object ids group primitives per neuron", func(t *testing.T) {
		sk := linearSkeleton("n1")
		sk.Soma = []int{2}
		prims, err := Neurons(sk, nil, nil)
		require.NoError(t, err)
		require.Len(t, prims, 2)
		assert.Equal(t, prims[0].Detail.ObjectID, prims[1].Detail.ObjectID)
	})

	t.Run("random ids differ from the neuron id", func(t *testing.T) {
		opts := style.Defaults()
		opts.RandomIDs = true
		prims, err := Neurons(linearSkeleton("n1"), &opts, nil)
		require.NoError(t, err)
		assert.NotEqual(t, "n1", prims[0].Detail.ObjectID)
		assert.NotEmpty(t, prims[0].Detail.ObjectID)
	})

	t.Run("radius option converts skeletons to tube meshes", func(t *testing.T) {
		opts := style.Defaults()
		opts.Radius = true
		prims, err := Neurons(linearSkeleton("n1"), &opts, nil)
		require.NoError(t, err)
		require.Len(t, prims, 1)
		assert.Equal(t, visual.KindMesh, prims[0].Kind)
		assert.Equal(t, visual.PartNeurites, prims[0].Detail.Part)
	})

	t.Run("radius expands per-node colors to the tube vertices", func(t *testing.T) {
		sk := linearSkeleton("n1")
		sk.Attributes = map[string][]float32{"depth": {0, 5, 10}}
		opts := style.Defaults()
		opts.Radius = true
		opts.ColorBy = "depth"
		opts.Palette = "ColdHot"
		prims, err := Neurons(sk, &opts, nil)
		require.NoError(t, err)
		require.Len(t, prims, 1)
		m := prims[0]
		require.Equal(t, visual.KindMesh, m.Kind)
		// Vertex colors stay parallel to the tube vertices, one ring per
		// node: the first ring shares its node's color, the last ring (the
		// leaf node) differs from the root's.
		require.Len(t, m.VertexColors, len(m.Vertices))
		assert.Equal(t, m.VertexColors[0], m.VertexColors[7])
		assert.NotEqual(t, m.VertexColors[0], m.VertexColors[len(m.VertexColors)-1])
	})
}

// fakeNeuron is a variant the dispatcher does not recognize.
type fakeNeuron struct{ neuron.Base }

func TestSkeletonConversion(t *testing.T) {
	t.Run("empty skeleton warns and yields nothing", func(t *testing.T) {
		log, logs := observedLogger()
		prims, err := Neurons(&neuron.Skeleton{Base: neuron.Base{ID: "e"}}, nil, log)
		require.NoError(t, err)
		assert.Empty(t, prims)
		assert.Equal(t, 1, logs.FilterMessageSnippet("without nodes").Len())
	})

	t.Run("single-node skeleton warns and yields nothing", func(t *testing.T) {
		log, logs := observedLogger()
		sk := &neuron.Skeleton{
			Base:  neuron.Base{ID: "s"},
			Nodes: []neuron.Node{{ID: 1, Parent: neuron.NoParent}},
		}
		prims, err := Neurons(sk, nil, log)
		require.NoError(t, err)
		assert.Empty(t, prims)
		assert.Equal(t, 1, logs.FilterMessageSnippet("single-node").Len())
	})

	t.Run("soma renders as sphere with doubled radius", func(t *testing.T) {
		sk := linearSkeleton("n1")
		sk.Soma = []int{2}
		prims, err := Neurons(sk, nil, nil)
		require.NoError(t, err)
		require.Len(t, prims, 2)
		sphere := prims[1]
		assert.Equal(t, visual.KindSphere, sphere.Kind)
		assert.Equal(t, visual.PartSoma, sphere.Detail.Part)
		assert.Equal(t, math32.Vec3(1, 0, 0), sphere.Center)
		assert.Equal(t, float32(2), sphere.Radius)
	})

	t.Run("excessive somas keep neurites but skip spheres", func(t *testing.T) {
		log, logs := observedLogger()
		sk := linearSkeleton("n1")
		for i := 0; i < 10; i++ {
			sk.Soma = append(sk.Soma, 1)
		}
		prims, err := Neurons(sk, nil, log)
		require.NoError(t, err)
		require.Len(t, prims, 1)
		assert.Equal(t, visual.KindLines, prims[0].Kind)
		assert.Equal(t, 1, logs.FilterMessageSnippet("soma count").Len())
	})

	t.Run("soma limit is overridable", func(t *testing.T) {
		sk := linearSkeleton("n1")
		sk.Soma = []int{1, 2, 3}
		opts := style.Defaults()
		opts.MaxSomaCount = 3
		prims, err := Neurons(sk, &opts, nil)
		require.NoError(t, err)
		assert.Len(t, prims, 1)

		opts.MaxSomaCount = 4
		prims, err = Neurons(sk, &opts, nil)
		require.NoError(t, err)
		assert.Len(t, prims, 4)
	})

	t.Run("soma toggle off", func(t *testing.T) {
		sk := linearSkeleton("n1")
		sk.Soma = []int{2}
		off := false
		opts := style.Defaults()
		opts.Soma = &off
		prims, err := Neurons(sk, &opts, nil)
		require.NoError(t, err)
		assert.Len(t, prims, 1)
	})
}

func TestMeshAndVoxelConversion(t *testing.T) {
	t.Run("empty mesh warns and yields nothing", func(t *testing.T) {
		log, logs := observedLogger()
		prims, err := Neurons(&neuron.Mesh{Base: neuron.Base{ID: "m"}}, nil, log)
		require.NoError(t, err)
		assert.Empty(t, prims)
		assert.Equal(t, 1, logs.FilterMessageSnippet("without faces").Len())
	})

	t.Run("mesh converts with geometry intact", func(t *testing.T) {
		m := &neuron.Mesh{
			Base: neuron.Base{ID: "m"},
			Vertices: []math32.Vector3{
				math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0),
			},
			Faces: [][3]int{{0, 1, 2}},
		}
		prims, err := Neurons(m, nil, nil)
		require.NoError(t, err)
		require.Len(t, prims, 1)
		assert.Equal(t, visual.KindMesh, prims[0].Kind)
		assert.Len(t, prims[0].Vertices, 3)
		assert.Equal(t, visual.PartNeurites, prims[0].Detail.Part)
	})

	t.Run("voxel carries spacing and offset", func(t *testing.T) {
		v := &neuron.Voxel{
			Base:    neuron.Base{ID: "v"},
			Grid:    []float32{1},
			Shape:   [3]int{1, 1, 1},
			Spacing: math32.Vec3(2, 2, 2),
			Offset:  math32.Vec3(5, 0, 0),
		}
		prims, err := Neurons(v, nil, nil)
		require.NoError(t, err)
		require.Len(t, prims, 1)
		assert.Equal(t, visual.KindVolume, prims[0].Kind)
		assert.Equal(t, math32.Vec3(2, 2, 2), prims[0].Spacing)
		assert.Equal(t, math32.Vec3(5, 0, 0), prims[0].Offset)
	})
}

func TestDotpropConversion(t *testing.T) {
	t.Run("empty point cloud warns and yields nothing", func(t *testing.T) {
		log, logs := observedLogger()
		prims, err := Neurons(&neuron.Dotprops{Base: neuron.Base{ID: "d"}}, nil, log)
		require.NoError(t, err)
		assert.Empty(t, prims)
		assert.Equal(t, 1, logs.FilterMessageSnippet("without points").Len())
	})

	t.Run("points become line segments", func(t *testing.T) {
		d := &neuron.Dotprops{
			Base:    neuron.Base{ID: "d"},
			Points:  []math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(5, 0, 0)},
			Vectors: []math32.Vector3{math32.Vec3(1, 0, 0), math32.Vec3(1, 0, 0)},
		}
		prims, err := Neurons(d, nil, nil)
		require.NoError(t, err)
		require.Len(t, prims, 1)
		assert.Equal(t, visual.KindLines, prims[0].Kind)
		// Two 2-point segments plus one break row each.
		assert.Len(t, prims[0].Coords, 6)
	})
}
