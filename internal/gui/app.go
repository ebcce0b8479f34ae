package gui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/verletsim/internal/config"
	"github.com/san-kum/verletsim/internal/host"
	"github.com/san-kum/verletsim/internal/vec"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	panelWidth   = 260
	maxSpeed     = 4
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColPanel   = rl.NewColor(22, 22, 22, 255)
)

// Palette colours particles by tag.
var Palette = [host.PaletteSize]rl.Color{
	rl.NewColor(239, 71, 111, 255),
	rl.NewColor(255, 209, 102, 255),
	rl.NewColor(6, 214, 160, 255),
	rl.NewColor(17, 138, 178, 255),
	rl.NewColor(155, 93, 229, 255),
	rl.NewColor(241, 91, 181, 255),
	rl.NewColor(254, 228, 64, 255),
	rl.NewColor(0, 187, 249, 255),
}

type App struct {
	Cfg     *config.Config
	Host    *host.Host
	View    Transform
	Paused  bool
	Speed   float32
	ShowHUD bool
}

func initWindow(title string) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, title)
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func NewApp(cfg *config.Config) (*App, error) {
	h, err := cfg.NewHost()
	if err != nil {
		return nil, err
	}
	return &App{
		Cfg:     cfg,
		Host:    h,
		View:    NewTransform(windowWidth-panelWidth, windowHeight),
		Speed:   1,
		ShowHUD: true,
	}, nil
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config) error {
	app, err := NewApp(cfg)
	if err != nil {
		return err
	}
	initWindow("verletsim · " + cfg.Name)
	defer rl.CloseWindow()
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			return
		}
		a.Update()
		a.Draw()
	}
}

func (a *App) Reset() {
	h, err := a.Cfg.NewHost()
	if err != nil {
		return
	}
	a.Host = h
}

func (a *App) Update() {
	a.handleKeys()
	a.handlePointer()

	if a.Paused {
		return
	}
	steps := max(1, int(a.Speed))
	frame := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
	for i := 0; i < steps; i++ {
		a.Host.Advance(frame/time.Duration(steps), a.Cfg.Dt)
	}
}

func (a *App) handleKeys() {
	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		a.Paused = !a.Paused
	case rl.IsKeyPressed(rl.KeyS):
		a.Host.SpawnNow()
	case rl.IsKeyPressed(rl.KeyR):
		a.Reset()
	case rl.IsKeyPressed(rl.KeyH):
		a.ShowHUD = !a.ShowHUD
	}
}

// handlePointer forwards mouse input to the host. Presses over the control
// panel are left to the panel.
func (a *App) handlePointer() {
	m := rl.GetMousePosition()
	p := a.View.ToWorld(float64(m.X), float64(m.Y))

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && m.X < windowWidth-panelWidth {
		a.Host.Handle(host.Down())
	}
	a.Host.Handle(host.Moved(p))
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		a.Host.Handle(host.Up())
	}
}

func toScreen(t Transform, p vec.Vec2) rl.Vector2 {
	x, y := t.ToScreen(p)
	return rl.NewVector2(float32(x), float32(y))
}
