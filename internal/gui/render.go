package gui

import (
	"image"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/texture"
)

func bodyColor(c body.RGB) rl.Color {
	return rl.NewColor(uint8(c.R*255), uint8(c.G*255), uint8(c.B*255), 255)
}

func displayVec(v orbit.Vec3) rl.Vector3 {
	return rl.NewVector3(
		float32(v.X*DisplayScale),
		float32(v.Y*DisplayScale),
		float32(v.Z*DisplayScale),
	)
}

// loadEarthModel bakes the procedural surface map onto a sphere mesh.
func (a *App) loadEarthModel() {
	m := texture.Generate(texture.Options{
		Rows:        64,
		Cols:        128,
		LandDensity: a.Cfg.Texture.LandDensity,
		Seed:        a.Cfg.Texture.Seed,
	})

	img := image.NewRGBA(image.Rect(0, 0, m.Cols, m.Rows))
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			c := m.At(row, col)
			img.Set(col, row, color.RGBA{
				R: uint8(c.R * 255),
				G: uint8(c.G * 255),
				B: uint8(c.B * 255),
				A: 255,
			})
		}
	}

	rlImg := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)

	mesh := rl.GenMeshSphere(1.0, 24, 48)
	a.EarthModel = rl.LoadModelFromMesh(mesh)
	rl.SetMaterialTexture(a.EarthModel.Materials, rl.MapDiffuse, tex)
	a.earthLoaded = true
}

func (a *App) unloadEarthModel() {
	if a.earthLoaded {
		rl.UnloadModel(a.EarthModel)
		a.earthLoaded = false
	}
}

func (a *App) drawScene() {
	rl.BeginMode3D(a.Camera)

	if a.ShowGrid {
		a.drawGrid(60, 20.0)
	}

	for _, st := range orbit.States(a.Reg) {
		pos := displayVec(st.Position)
		radius := float32(st.VisualRadius * DisplayScale)

		switch {
		case st.Appearance == body.TexturedSphere && a.earthLoaded:
			rl.DrawModelEx(a.EarthModel, pos,
				rl.NewVector3(0, 1, 0), float32(st.SpinDegrees),
				rl.NewVector3(radius, radius, radius), rl.White)
		default:
			rl.DrawSphere(pos, radius, bodyColor(st.Color))
		}

		if st.Highlighted {
			wireRadius := float32((st.VisualRadius + 0.1) * DisplayScale)
			rl.DrawSphereWires(pos, wireRadius, 12, 12, ColSelect)
		}
	}

	rl.EndMode3D()
}

func (a *App) drawGrid(slices int, spacing float32) {
	halfSize := float32(slices) * spacing / 2
	for i := -slices / 2; i <= slices/2; i++ {
		pos := float32(i) * spacing
		rl.DrawLine3D(rl.NewVector3(pos, 0, -halfSize), rl.NewVector3(pos, 0, halfSize), ColGrid)
		rl.DrawLine3D(rl.NewVector3(-halfSize, 0, pos), rl.NewVector3(halfSize, 0, pos), ColGrid)
	}
}
