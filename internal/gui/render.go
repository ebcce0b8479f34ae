package gui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawBoundary()
	a.drawParticles()
	if a.ShowHUD {
		a.drawHUD()
	}
	a.drawPanel()

	rl.EndDrawing()
}

func (a *App) drawBoundary() {
	s := a.Host.Simulation()
	c := toScreen(a.View, s.BoundaryCenter())
	r := float32(s.BoundaryRadius() * a.View.Scale)

	rl.DrawCircleV(c, r, rl.NewColor(28, 28, 28, 255))
	rl.DrawCircleLines(int32(c.X), int32(c.Y), r, ColAccent)
	if a.Host.Pressed() {
		rl.DrawCircleV(c, 4, ColAccent)
	}
}

func (a *App) drawParticles() {
	for _, p := range a.Host.Simulation().Particles() {
		col := Palette[int(p.Tag)%len(Palette)]
		rl.DrawCircleV(toScreen(a.View, p.Pos), float32(p.Radius*a.View.Scale), col)
	}
}

func (a *App) drawHUD() {
	s := a.Host.Simulation()
	c := s.BoundaryCenter()
	lines := []string{
		fmt.Sprintf("particles  %d/%d", s.Len(), s.MaxParticles()),
		fmt.Sprintf("tick       %d", s.Tick()),
		fmt.Sprintf("center     (%.0f, %.0f)", c.X, c.Y),
		fmt.Sprintf("fps        %d", rl.GetFPS()),
	}
	for i, line := range lines {
		rl.DrawText(line, 16, int32(16+i*20), 16, ColText)
	}
	rl.DrawText("drag: move  S: spawn  space: pause  R: reset  H: hud  Q: quit",
		16, windowHeight-28, 14, ColTextDim)
}

// drawPanel draws the raygui control panel and applies its actions.
func (a *App) drawPanel() {
	x := float32(windowWidth - panelWidth)
	rl.DrawRectangle(int32(x), 0, panelWidth, windowHeight, ColPanel)

	x += 20
	y := float32(24)
	w := float32(panelWidth - 40)

	rl.DrawText(a.Cfg.Name, int32(x), int32(y), 20, ColAccent)
	y += 40

	a.Paused = gui.Toggle(rl.Rectangle{X: x, Y: y, Width: w, Height: 30}, "Pause", a.Paused)
	y += 40

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w/2 - 5, Height: 30}, "Spawn") {
		a.Host.SpawnNow()
	}
	if gui.Button(rl.Rectangle{X: x + w/2 + 5, Y: y, Width: w/2 - 5, Height: 30}, "Reset") {
		a.Reset()
	}
	y += 45

	sp := a.Host.Spawner()
	sp.Enabled = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 20, Height: 20}, "Auto-spawn", sp.Enabled)
	y += 40

	rl.DrawText("Speed", int32(x), int32(y), 14, ColText)
	y += 18
	a.Speed = gui.SliderBar(rl.Rectangle{X: x + 10, Y: y, Width: w - 50, Height: 20}, "1", fmt.Sprint(maxSpeed), a.Speed, 1, maxSpeed)
	y += 40

	s := a.Host.Simulation()
	g := s.Gravity()
	info := []string{
		fmt.Sprintf("gravity   (%.0f, %.0f)", g.X, g.Y),
		fmt.Sprintf("boundary  %.0f", s.BoundaryRadius()),
		fmt.Sprintf("radius    %.0f", a.Cfg.Particles.Radius),
		fmt.Sprintf("interval  %s", sp.Interval),
		fmt.Sprintf("spawned   %d", a.Host.Spawned()),
	}
	for _, line := range info {
		rl.DrawText(line, int32(x), int32(y), 14, ColText)
		y += 18
	}
}
