package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/verletsim/internal/config"
	"github.com/san-kum/verletsim/internal/host"
	"github.com/san-kum/verletsim/internal/metrics"
	"github.com/san-kum/verletsim/internal/vec"
	"github.com/san-kum/verletsim/internal/verlet"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 300
	nudgeStep       = 10.0
	// viewMargin leaves room to drag the boundary around.
	viewMargin = 1.6
)

type TickMsg time.Time

// Model is the live terminal view of one simulation.
type Model struct {
	cfg      *config.Config
	host     *host.Host
	dt       float64
	canvas   *Canvas
	view     viewport
	running  bool
	energy   []float64
	showHelp bool
}

func NewModel(cfg *config.Config) (Model, error) {
	h, err := cfg.NewHost()
	if err != nil {
		return Model{}, err
	}
	span := cfg.Boundary.Radius*viewMargin + cfg.Boundary.Center.Vec().Len()
	return Model{
		cfg:     cfg,
		host:    h,
		dt:      cfg.Dt,
		canvas:  NewCanvas(width, height),
		view:    newViewport(width, height, span),
		running: true,
		energy:  make([]float64, 0, historyCapacity),
	}, nil
}

func (m Model) Host() *host.Host { return m.host }

func tick(dt float64) tea.Cmd {
	return tea.Tick(host.FrameDuration(dt), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick(m.dt)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "s":
			m.host.SpawnNow()
		case "a":
			sp := m.host.Spawner()
			sp.Enabled = !sp.Enabled
		case "r":
			if err := m.reset(); err != nil {
				return m, tea.Quit
			}
		case "up", "k":
			m.host.Nudge(vec.New(0, nudgeStep))
		case "down", "j":
			m.host.Nudge(vec.New(0, -nudgeStep))
		case "left", "h":
			m.host.Nudge(vec.New(-nudgeStep, 0))
		case "right", "l":
			m.host.Nudge(vec.New(nudgeStep, 0))
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tick(m.dt)
	}
	return m, nil
}

// handleMouse turns left-button gestures into pointer events.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionMotion {
		return
	}
	p := m.view.cellToWorld(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		m.host.Handle(host.Down())
		m.host.Handle(host.Moved(p))
	case tea.MouseActionMotion:
		m.host.Handle(host.Moved(p))
	case tea.MouseActionRelease:
		m.host.Handle(host.Moved(p))
		m.host.Handle(host.Up())
	}
}

func (m *Model) step() {
	m.host.Advance(host.FrameDuration(m.dt), m.dt)
	m.energy = append(m.energy, metrics.TotalKinetic(m.host.Simulation(), m.dt))
	if len(m.energy) > historyCapacity {
		m.energy = m.energy[1:]
	}
}

func (m *Model) reset() error {
	h, err := m.cfg.NewHost()
	if err != nil {
		return err
	}
	m.host = h
	m.energy = m.energy[:0]
	return nil
}

func (m *Model) draw() {
	s := m.host.Simulation()
	m.canvas.Clear()

	cx, cy := m.view.toDot(s.BoundaryCenter())
	m.canvas.DrawCircle(cx, cy, m.view.length(s.BoundaryRadius()))
	m.canvas.Set(cx, cy)

	for _, p := range s.Particles() {
		x, y := m.view.toDot(p.Pos)
		m.canvas.FillCircle(x, y, m.view.length(p.Radius))
	}
}

func (m Model) View() string {
	m.draw()
	s := m.host.Simulation()

	var b strings.Builder
	b.WriteString(headerStyle().Render(strings.ToUpper(m.cfg.Name)) + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	if m.host.Pressed() {
		status += " · DRAG"
	}
	b.WriteString(statusStyle(!m.running).Render(status) + "\n")

	if len(m.energy) > 1 {
		chart := asciigraph.Plot(m.energy, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Kinetic energy"))
		b.WriteString(graphStyle.Render(chart) + "\n")
	}

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + valueStyle().Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%.2fs", float64(s.Tick())*m.dt))
	row("Tick", fmt.Sprintf("%d", s.Tick()))
	c := s.BoundaryCenter()
	row("Center", fmt.Sprintf("(%.0f, %.0f)", c.X, c.Y))
	fill := float64(s.Len()) / float64(s.MaxParticles())
	row("Particles", fmt.Sprintf("%s %d/%d", ProgressBar(fill, 10), s.Len(), s.MaxParticles()))
	auto := "off"
	if m.host.Spawner().Enabled {
		auto = "on"
	}
	row("Auto-spawn", auto)
	row("Tags", legend(s.Particles()))

	b.WriteString(helpStyle.Render("SP:Pause S:Spawn A:Auto R:Reset\nArrows/drag:Move T:Theme Q:Quit"))

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(b.String()),
	)
	if m.showHelp {
		return helpText + "\n" + main
	}
	return main
}

// legend shows one swatch per tag present, in palette order.
func legend(ps []verlet.ParticleView) string {
	var seen [host.PaletteSize]int
	for _, p := range ps {
		seen[int(p.Tag)%host.PaletteSize]++
	}
	var parts []string
	for tag, n := range seen {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%s%d", Swatch(uint8(tag)), n))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

const helpText = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  S        - Spawn a particle         ║
║  A        - Toggle auto-spawn        ║
║  R        - Reset                    ║
║  Arrows   - Move the boundary        ║
║  Mouse    - Drag the boundary        ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
`

// Run opens the live view until the user quits.
func Run(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
