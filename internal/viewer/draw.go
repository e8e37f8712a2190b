package viewer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"cogentcore.org/core/math32"

	"github.com/navis-org/octarine-navis-plugin/internal/visual"
)

// somaRings and somaSlices control soma sphere resolution.
const somaRings = 16
const somaSlices = 8

// voxelDrawThreshold: voxels at or above this fraction of the grid's peak
// intensity are drawn as cubes.
const voxelDrawThreshold = float32(0.5)

// pointDrawScale converts a primitive's point size (layout units) into a
// world-space sphere radius relative to the scene extent.
const pointDrawScale = float32(0.00005)

// Run opens a window and renders the scene until the window is closed.
// Each frame the free camera updates first, then every primitive is drawn.
// Based on the common raylib core_3d_camera_free loop.
func (v *Viewer) Run(title string, width, height int32) {
	rl.InitWindow(width, height, title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	cam := rl.Camera3D{
		Position:   rlVec(v.CameraPos),
		Target:     rlVec(v.CameraTarget),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	for !rl.WindowShouldClose() {
		rl.UpdateCamera(&cam, rl.CameraFree)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		rl.BeginMode3D(cam)
		diag := v.bounds.Size().Length()
		for _, p := range v.scene {
			drawPrimitive(p, diag)
		}
		rl.EndMode3D()
		rl.EndDrawing()
	}
}

// drawPrimitive renders one primitive. Meshes draw as filled triangles,
// volumes as cubes for voxels above the intensity threshold, line sets as
// strokes split at break rows.
func drawPrimitive(p *visual.Primitive, sceneDiag float32) {
	switch p.Kind {
	case visual.KindLines:
		drawLines(p)
	case visual.KindPoints:
		r := p.PointSize * sceneDiag * pointDrawScale
		if r <= 0 {
			r = sceneDiag * pointDrawScale * 100
		}
		for _, c := range p.Coords {
			rl.DrawSphereEx(rlVec(c), r, somaRings, somaSlices, p.Color)
		}
	case visual.KindSphere:
		rl.DrawSphereEx(rlVec(p.Center), p.Radius, somaRings, somaSlices, p.Color)
	case visual.KindMesh:
		for _, f := range p.Faces {
			rl.DrawTriangle3D(rlVec(p.Vertices[f[0]]), rlVec(p.Vertices[f[1]]), rlVec(p.Vertices[f[2]]), p.Color)
		}
	case visual.KindVolume:
		drawVolume(p)
	}
}

// drawLines draws each stroke of a line set, using per-vertex colors when
// present.
func drawLines(p *visual.Primitive) {
	for i := 1; i < len(p.Coords); i++ {
		a, b := p.Coords[i-1], p.Coords[i]
		if visual.IsBreak(a) || visual.IsBreak(b) {
			continue
		}
		c := p.Color
		if p.VertexColors != nil && i < len(p.VertexColors) {
			c = p.VertexColors[i]
		}
		rl.DrawLine3D(rlVec(a), rlVec(b), c)
	}
}

// drawVolume renders voxels above the intensity threshold as cubes sized by
// the grid spacing.
func drawVolume(p *visual.Primitive) {
	var peak float32
	for _, g := range p.Grid {
		if g > peak {
			peak = g
		}
	}
	if peak == 0 {
		return
	}
	cut := peak * voxelDrawThreshold
	size := rl.NewVector3(p.Spacing.X, p.Spacing.Y, p.Spacing.Z)
	for z := 0; z < p.Shape[2]; z++ {
		for y := 0; y < p.Shape[1]; y++ {
			for x := 0; x < p.Shape[0]; x++ {
				val := p.Grid[x+y*p.Shape[0]+z*p.Shape[0]*p.Shape[1]]
				if val < cut {
					continue
				}
				pos := rl.NewVector3(
					p.Offset.X+float32(x)*p.Spacing.X,
					p.Offset.Y+float32(y)*p.Spacing.Y,
					p.Offset.Z+float32(z)*p.Spacing.Z,
				)
				rl.DrawCubeV(pos, size, p.Color)
			}
		}
	}
}

func rlVec(v math32.Vector3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}
