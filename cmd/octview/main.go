// Command octview loads neuron skeletons from SWC files, converts them to
// renderable primitives, and shows them in an interactive 3D window.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/navis-org/octarine-navis-plugin/internal/neuron"
	"github.com/navis-org/octarine-navis-plugin/internal/style"
	"github.com/navis-org/octarine-navis-plugin/internal/viewer"
)

var (
	verbose bool

	colorSpec      string
	colorList      []string
	alpha          float64
	palette        string
	colorBy        string
	shadeBy        string
	vmin, vmax     float64
	connectors     bool
	connectorsOnly bool
	cnColor        string
	lineWidth      float64
	pointSize      float64
	radius         bool
	noSoma         bool
	noCenter       bool
	randomIDs      bool
	clearScene     bool
	layoutFile     string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "octview [file.swc ...]",
	Short: "Interactive 3D viewer for neuron skeletons",
	Long: `octview reads neuron skeletons from SWC files, converts them into
renderable primitives, and opens an interactive 3D window (free camera:
mouse to look, wheel to zoom).`,
	Args: cobra.MinimumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	var batch neuron.List
	for _, path := range args {
		sk, err := neuron.ReadSWC(path)
		if err != nil {
			return err
		}
		batch = append(batch, sk)
	}

	opts := style.Defaults()
	opts.Color = colorSpec
	opts.Colors = colorList
	opts.Alpha = float32(alpha)
	opts.Palette = palette
	opts.ColorBy = colorBy
	opts.ShadeBy = shadeBy
	if cmd.Flags().Changed("vmin") {
		v := float32(vmin)
		opts.Vmin = &v
	}
	if cmd.Flags().Changed("vmax") {
		v := float32(vmax)
		opts.Vmax = &v
	}
	opts.Connectors = connectors
	opts.ConnectorsOnly = connectorsOnly
	opts.ConnectorColor = cnColor
	opts.LineWidth = float32(lineWidth)
	opts.PointSize = float32(pointSize)
	opts.Radius = radius
	opts.RandomIDs = randomIDs
	opts.Clear = clearScene
	if noSoma {
		off := false
		opts.Soma = &off
	}
	if noCenter {
		off := false
		opts.Center = &off
	}
	if layoutFile != "" {
		layout, err := style.LoadSynapseLayout(layoutFile)
		if err != nil {
			return err
		}
		opts.Layout = layout
	}

	v := viewer.New(nil, logger)
	if err := v.AddNeurons(batch, &opts); err != nil {
		return err
	}
	logger.Info("scene built",
		zap.Int("neurons", len(batch)),
		zap.Int("primitives", len(v.Scene())))

	v.Run("octview", 1280, 800)
	return nil
}

func main() {
	rootCmd.Flags().StringVar(&colorSpec, "color", "", "flat color for all neurons (name, hex, or rgb spec)")
	rootCmd.Flags().StringSliceVar(&colorList, "colors", nil, "per-neuron colors in input order")
	rootCmd.Flags().Float64Var(&alpha, "alpha", -1, "alpha in [0,1] applied to flat colors")
	rootCmd.Flags().StringVar(&palette, "palette", "", "colormap name for --color-by (e.g. viridis)")
	rootCmd.Flags().StringVar(&colorBy, "color-by", "", "per-node attribute to color vertices by")
	rootCmd.Flags().StringVar(&shadeBy, "shade-by", "", "per-node attribute driving vertex alpha")
	rootCmd.Flags().Float64Var(&vmin, "vmin", 0, "lower bound for attribute normalization (unset: from data)")
	rootCmd.Flags().Float64Var(&vmax, "vmax", 0, "upper bound for attribute normalization (unset: from data)")
	rootCmd.Flags().BoolVar(&connectors, "connectors", false, "also render synaptic connectors")
	rootCmd.Flags().BoolVar(&connectorsOnly, "connectors-only", false, "render connectors without neuron geometry")
	rootCmd.Flags().StringVar(&cnColor, "cn-color", "", "connector color override (or \"neuron\")")
	rootCmd.Flags().Float64Var(&lineWidth, "linewidth", 0, "neurite line width")
	rootCmd.Flags().Float64Var(&pointSize, "point-size", 0, "connector point size")
	rootCmd.Flags().BoolVar(&radius, "radius", false, "render skeletons as radius-honoring tube meshes")
	rootCmd.Flags().BoolVar(&noSoma, "no-soma", false, "skip soma sphere rendering")
	rootCmd.Flags().BoolVar(&noCenter, "no-center", false, "do not re-center the camera after adding")
	rootCmd.Flags().BoolVar(&randomIDs, "random-ids", false, "assign random object ids (for duplicate neuron ids)")
	rootCmd.Flags().BoolVar(&clearScene, "clear", false, "empty the scene before adding")
	rootCmd.Flags().StringVar(&layoutFile, "synapse-layout", "", "YAML file overriding the synapse layout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
