// Package gui is the interactive raylib front end: a 3D view of the
// system with mouse camera control and a double-click editing panel.
package gui

import (
	"fmt"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/panel"
)

// Theme colors.
var (
	ColBg      = rl.NewColor(5, 5, 12, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColGrid    = rl.NewColor(26, 26, 34, 255)
	ColPanel   = rl.NewColor(14, 14, 20, 235)
)

// DisplayScale compresses model units into camera space so the outer
// planets stay inside raylib's default far cull distance.
const DisplayScale = 0.2

type App struct {
	Cfg     *config.Config
	Reg     *body.Registry
	Stepper *orbit.Stepper
	Bridge  *panel.Bridge
	Clicks  *panel.ClickDetector

	Camera       rl.Camera3D
	CamPosTarget rl.Vector3
	CamTgtTarget rl.Vector3
	Yaw          float64
	Pitch        float64
	Dist         float64

	Running  bool
	ShowGrid bool
	Quit     bool
	Font     rl.Font

	// Panel editing state
	Fields   panel.Fields
	FieldSel int
	EditBuf  string
	Editing  bool
	LastErr  string

	EarthModel  rl.Model
	earthLoaded bool
}

func initWindow(cfg *config.Config) {
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "orrery")
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	rl.SetExitKey(0)
}

func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(cfg *config.Config, reg *body.Registry) *App {
	app := &App{
		Cfg:     cfg,
		Reg:     reg,
		Stepper: orbit.NewStepper(cfg.Sim.TimeScale),
		Bridge:  panel.NewBridge(reg),
		Clicks:  panel.NewClickDetector(time.Duration(cfg.Sim.DoubleClickMS) * time.Millisecond),

		Yaw:      -math.Pi / 2,
		Pitch:    0.5,
		Dist:     cfg.Camera.Distance,
		Running:  true,
		ShowGrid: cfg.Window.Grid,
		Font:     loadFont(),
	}

	app.Camera = rl.NewCamera3D(
		rl.NewVector3(0, 0, float32(cfg.Camera.Distance)),
		rl.NewVector3(0, 0, 0),
		rl.NewVector3(0, 1, 0),
		45.0,
		rl.CameraPerspective,
	)
	app.CamTgtTarget = app.Camera.Target
	app.CamPosTarget = app.orbitPosition()

	app.loadEarthModel()
	return app
}

// Run opens the window and blocks in the frame loop until close.
func Run(cfg *config.Config, reg *body.Registry) {
	initWindow(cfg)
	defer rl.CloseWindow()
	app := NewApp(cfg, reg)
	app.RunLoop()
	app.unloadEarthModel()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.Quit {
		a.Update()
		a.Draw()
	}
}

// orbitPosition converts the spherical camera parameters into a world
// position around the current target.
func (a *App) orbitPosition() rl.Vector3 {
	cp := math.Cos(a.Pitch)
	return rl.NewVector3(
		a.CamTgtTarget.X+float32(a.Dist*cp*math.Cos(a.Yaw)),
		a.CamTgtTarget.Y+float32(a.Dist*math.Sin(a.Pitch)),
		a.CamTgtTarget.Z+float32(a.Dist*cp*math.Sin(a.Yaw)),
	)
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) && !a.Bridge.IsOpen() {
		a.Quit = true
		return
	}

	if a.Bridge.IsOpen() {
		a.updatePanel()
	} else {
		a.updateView()
	}

	if a.Running {
		a.Stepper.Advance(a.Reg)
	}

	// Lerp toward the camera targets for inertia.
	lerp := float32(0.15)
	a.Camera.Position = rl.Vector3Lerp(a.Camera.Position, a.CamPosTarget, lerp)
	a.Camera.Target = rl.Vector3Lerp(a.Camera.Target, a.CamTgtTarget, lerp)
}

// updateView handles camera input and picking while no panel is open.
func (a *App) updateView() {
	sens := a.Cfg.Camera.Sensitivity

	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyG) {
		a.ShowGrid = !a.ShowGrid
	}

	// Left drag orbits the camera around the target.
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		a.Yaw += float64(delta.X) * 0.01 * sens * 3
		a.Pitch += float64(delta.Y) * 0.01 * sens * 3
		if a.Pitch > 1.55 {
			a.Pitch = 1.55
		}
		if a.Pitch < -1.55 {
			a.Pitch = -1.55
		}
	}

	// Right drag pans the target in the view plane.
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		right := rl.NewVector3(float32(-math.Sin(a.Yaw)), 0, float32(math.Cos(a.Yaw)))
		pan := float32(a.Dist) * 0.0015
		a.CamTgtTarget = rl.Vector3Add(a.CamTgtTarget, rl.Vector3Scale(right, -delta.X*pan))
		a.CamTgtTarget.Y += delta.Y * pan
	}

	// Wheel zooms along the view axis.
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.Dist -= float64(wheel) * a.Dist * 0.1
		if a.Dist < 5 {
			a.Dist = 5
		}
		if a.Dist > 5000 {
			a.Dist = 5000
		}
	}

	a.CamPosTarget = a.orbitPosition()

	// Double-click on a body opens the editing panel.
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && a.Clicks.Press(time.Now()) {
		if name, ok := a.pickBody(); ok {
			if err := a.Bridge.Select(name); err == nil {
				if err := a.Bridge.Open(); err == nil {
					a.Fields = a.Bridge.Fields()
					a.FieldSel = 0
					a.EditBuf = ""
					a.Editing = false
					a.LastErr = ""
				}
			}
		}
	}
}

// pickBody casts the mouse ray against every body sphere and returns
// the nearest hit.
func (a *App) pickBody() (string, bool) {
	ray := rl.GetMouseRay(rl.GetMousePosition(), a.Camera)

	var hit string
	best := float32(math.MaxFloat32)
	for _, st := range orbit.States(a.Reg) {
		center := rl.NewVector3(
			float32(st.Position.X*DisplayScale),
			float32(st.Position.Y*DisplayScale),
			float32(st.Position.Z*DisplayScale),
		)
		col := rl.GetRayCollisionSphere(ray, center, float32(st.VisualRadius*DisplayScale))
		if col.Hit && col.Distance < best {
			best = col.Distance
			hit = st.Name
		}
	}
	return hit, hit != ""
}

// fieldCount is the number of editable rows in the panel.
const fieldCount = 4

func (a *App) fieldLabel(i int) (string, *string) {
	switch i {
	case 0:
		return "rotation speed", &a.Fields.RotationSpeed
	case 1:
		return "mass (kg)", &a.Fields.Mass
	case 2:
		return "radius", &a.Fields.Radius
	default:
		return "density (kg/m3)", &a.Fields.Density
	}
}

// updatePanel handles keyboard input while the editing panel is open.
// The view keeps animating underneath; only input is captured.
func (a *App) updatePanel() {
	if a.Editing {
		for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
			if (ch >= '0' && ch <= '9') || ch == '.' || ch == '-' || ch == '+' || ch == 'e' || ch == 'E' {
				a.EditBuf += string(rune(ch))
			}
		}
		if rl.IsKeyPressed(rl.KeyBackspace) && len(a.EditBuf) > 0 {
			a.EditBuf = a.EditBuf[:len(a.EditBuf)-1]
		}
		if rl.IsKeyPressed(rl.KeyEnter) {
			_, field := a.fieldLabel(a.FieldSel)
			*field = a.EditBuf
			a.Editing = false
		}
		if rl.IsKeyPressed(rl.KeyEscape) {
			a.Editing = false
		}
		return
	}

	switch {
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ):
		a.FieldSel = (a.FieldSel + 1) % fieldCount
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK):
		a.FieldSel--
		if a.FieldSel < 0 {
			a.FieldSel = fieldCount - 1
		}
	case rl.IsKeyPressed(rl.KeyEnter):
		_, field := a.fieldLabel(a.FieldSel)
		a.EditBuf = *field
		a.Editing = true
	case rl.IsKeyPressed(rl.KeyA):
		if err := a.Bridge.ApplyEdits(a.Fields); err != nil {
			a.LastErr = err.Error()
		} else {
			a.Fields = a.Bridge.Fields()
			a.LastErr = ""
		}
	case rl.IsKeyPressed(rl.KeyR):
		if err := a.Bridge.RestoreSelected(); err != nil {
			a.LastErr = err.Error()
		} else {
			a.Fields = a.Bridge.Fields()
			a.LastErr = ""
		}
	case rl.IsKeyPressed(rl.KeyEscape):
		a.Bridge.Close()
		a.LastErr = ""
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawScene()
	a.DrawHUD()
	if a.Bridge.IsOpen() {
		a.drawPanel()
	}

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	a.drawText("orrery", 30, 30, 24, ColSelect)

	status := "RUNNING"
	col := ColSelect
	if !a.Running {
		status = "PAUSED"
		col = ColTextDim
	}
	a.drawText(status, a.Cfg.Window.Width-130, 30, 16, col)

	a.drawText(fmt.Sprintf("x%.2g", a.Stepper.TimeScale), 30, 60, 14, ColText)
	a.drawText("[DRAG] ORBIT  [RDRAG] PAN  [WHEEL] ZOOM  [2xCLICK] EDIT  [SPACE] PAUSE  [G] GRID",
		30, a.Cfg.Window.Height-40, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), a.Cfg.Window.Width-100, a.Cfg.Window.Height-40, 14, ColTextDim)
}

func (a *App) drawPanel() {
	w, h := int32(340), int32(260)
	x := int32(a.Cfg.Window.Width) - w - 30
	y := int32(80)

	rl.DrawRectangle(x, y, w, h, ColPanel)
	rl.DrawRectangleLines(x, y, w, h, ColAccent)

	a.drawText(a.Bridge.Selected(), int(x)+16, int(y)+14, 20, ColSelect)
	a.drawText(fmt.Sprintf("orbital speed  %s", a.Fields.OrbitalSpeed), int(x)+16, int(y)+46, 14, ColTextDim)

	rowY := int(y) + 76
	for i := 0; i < fieldCount; i++ {
		label, field := a.fieldLabel(i)
		val := *field
		col := ColText
		prefix := "  "
		if i == a.FieldSel {
			col = ColSelect
			prefix = "> "
			if a.Editing {
				val = a.EditBuf + "_"
			}
		}
		a.drawText(fmt.Sprintf("%s%-16s %s", prefix, label, val), int(x)+16, rowY, 15, col)
		rowY += 26
	}

	if a.LastErr != "" {
		a.drawText(a.LastErr, int(x)+16, rowY+6, 12, rl.NewColor(220, 90, 90, 255))
	}
	a.drawText("[ENTER] EDIT  [A] APPLY  [R] RESTORE  [ESC] CLOSE", int(x)+16, int(y+h)-28, 12, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
