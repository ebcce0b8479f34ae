package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/verletsim/internal/config"
)

var (
	cursorStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// Picker is a menu of presets. Chosen is empty if the user quit.
type Picker struct {
	presets []string
	cursor  int
	Chosen  string
}

func NewPicker() Picker {
	return Picker{presets: config.ListPresets()}
}

func (p Picker) Init() tea.Cmd { return nil }

func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return p, tea.Quit
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.presets)-1 {
			p.cursor++
		}
	case "enter", " ":
		p.Chosen = p.presets[p.cursor]
		return p, tea.Quit
	}
	return p, nil
}

func (p Picker) View() string {
	var b strings.Builder
	b.WriteString(headerStyle().Render("VERLETSIM") + "\n")
	for i, name := range p.presets {
		desc := dimStyle.Render(describe(config.GetPreset(name)))
		if i == p.cursor {
			b.WriteString(cursorStyle.Foreground(CurrentTheme.Primary).Render("> "+name) + "  " + desc + "\n")
			continue
		}
		b.WriteString("  " + name + "  " + desc + "\n")
	}
	b.WriteString(helpStyle.Render("↑↓:Select Enter:Start Q:Quit"))
	return b.String()
}

func describe(cfg *config.Config) string {
	if cfg == nil {
		return ""
	}
	return fmt.Sprintf("max %d · r %g · g (%g, %g)",
		cfg.Particles.Max, cfg.Particles.Radius, cfg.Gravity.X, cfg.Gravity.Y)
}

// PickPreset runs the picker and returns the chosen preset name.
func PickPreset() (string, error) {
	out, err := tea.NewProgram(NewPicker()).Run()
	if err != nil {
		return "", err
	}
	return out.(Picker).Chosen, nil
}
