// Package tui is the terminal front end: a live top-down orbit view
// with the same editing panel as the GUI, driven by a frame tick.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/panel"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type screen int

const (
	screenView screen = iota
	screenPanel
)

var fieldNames = []string{"rotation speed", "mass (kg)", "radius", "density (kg/m3)"}

type model struct {
	reg     *body.Registry
	stepper *orbit.Stepper
	bridge  *panel.Bridge

	screen screen
	cursor int
	names  []string

	fields      panel.Fields
	fieldCursor int
	editing     bool
	editBuf     string
	lastErr     string

	paused bool
	width  int
	height int
}

func newModel(cfg *config.Config, reg *body.Registry) *model {
	return &model{
		reg:     reg,
		stepper: orbit.NewStepper(cfg.Sim.TimeScale),
		bridge:  panel.NewBridge(reg),
		names:   reg.Names(),
		width:   80,
		height:  24,
	}
}

func (m model) Init() tea.Cmd { return tick() }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if !m.paused {
			m.stepper.Advance(m.reg)
		}
		return m, tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.screen == screenPanel {
		return m.panelKey(msg)
	}
	return m.viewKey(msg)
}

func (m model) viewKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case " ", "p":
		m.paused = !m.paused
	case "+", "=":
		m.stepper.TimeScale = math.Min(m.stepper.TimeScale*2, 64)
	case "-", "_":
		m.stepper.TimeScale = math.Max(m.stepper.TimeScale/2, 0.125)
	case "enter":
		name := m.names[m.cursor]
		if err := m.bridge.Select(name); err != nil {
			m.lastErr = err.Error()
			return m, nil
		}
		if err := m.bridge.Open(); err != nil {
			m.lastErr = err.Error()
			return m, nil
		}
		m.screen = screenPanel
		m.fields = m.bridge.Fields()
		m.fieldCursor = 0
		m.editing = false
		m.editBuf = ""
		m.lastErr = ""
	}
	return m, nil
}

func (m model) fieldAt(i int) string {
	switch i {
	case 0:
		return m.fields.RotationSpeed
	case 1:
		return m.fields.Mass
	case 2:
		return m.fields.Radius
	default:
		return m.fields.Density
	}
}

func (m *model) fieldValue(i int) *string {
	switch i {
	case 0:
		return &m.fields.RotationSpeed
	case 1:
		return &m.fields.Mass
	case 2:
		return &m.fields.Radius
	default:
		return &m.fields.Density
	}
}

func (m model) panelKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			*m.fieldValue(m.fieldCursor) = m.editBuf
			m.editing = false
			m.editBuf = ""
		case "escape", "esc":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "escape", "esc":
		m.bridge.Close()
		m.screen = screenView
		m.lastErr = ""
	case "up", "k":
		if m.fieldCursor > 0 {
			m.fieldCursor--
		}
	case "down", "j":
		if m.fieldCursor < len(fieldNames)-1 {
			m.fieldCursor++
		}
	case "enter":
		m.editing = true
		m.editBuf = *m.fieldValue(m.fieldCursor)
	case "a":
		if err := m.bridge.ApplyEdits(m.fields); err != nil {
			m.lastErr = err.Error()
		} else {
			m.fields = m.bridge.Fields()
			m.lastErr = ""
		}
	case "r":
		if err := m.bridge.RestoreSelected(); err != nil {
			m.lastErr = err.Error()
		} else {
			m.fields = m.bridge.Fields()
			m.lastErr = ""
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	status := green.Render("● running")
	if m.paused {
		status = yellow.Render("○ paused")
	}
	b.WriteString(fmt.Sprintf("\n   %s  %s  %s\n",
		cyan.Render("orrery"), status,
		dim.Render(fmt.Sprintf("x%.3g  frame %d", m.stepper.TimeScale, m.stepper.Frames()))))

	b.WriteString(m.viewCanvas())

	if m.screen == screenPanel {
		b.WriteString(m.viewPanel())
	} else {
		b.WriteString(m.viewList())
	}

	if m.lastErr != "" {
		b.WriteString("   " + red.Render(m.lastErr) + "\n")
	}

	if m.screen == screenPanel {
		b.WriteString("\n" + dim.Render("   ↑↓ field  enter edit  a apply  r restore  esc close") + "\n")
	} else {
		b.WriteString("\n" + dim.Render("   ↑↓ select  enter edit  space pause  ± speed  q quit") + "\n")
	}

	return b.String()
}

// viewCanvas renders the top-down orbit map. Distances are compressed
// with a square root so the inner planets don't collapse into the Sun.
func (m model) viewCanvas() string {
	cw := m.width - 6
	ch := m.height - 14
	if cw < 40 {
		cw = 40
	}
	if ch < 8 {
		ch = 8
	}

	canvas := NewCanvas(cw, ch)
	cx, cy := cw, ch*2 // center in sub-pixels

	var maxDist float64
	m.reg.Each(func(b *body.Body) {
		if b.Distance > maxDist {
			maxDist = b.Distance
		}
	})
	if maxDist == 0 {
		maxDist = 1
	}
	maxR := float64(cw) - 4

	selected := m.bridge.Selected()
	for _, st := range orbit.States(m.reg) {
		d := math.Hypot(st.Position.X, st.Position.Z)
		if d == 0 {
			canvas.DrawDot(cx, cy, 2)
			continue
		}
		r := math.Sqrt(d/maxDist) * maxR
		canvas.DrawCircle(cx, cy, r)

		angle := math.Atan2(st.Position.Z, st.Position.X)
		px := cx + int(r*math.Cos(angle))
		py := cy + int(r*math.Sin(angle)*0.5)
		size := 1
		if st.Name == selected || st.Highlighted {
			size = 2
		}
		canvas.DrawDot(px, py, size)
	}

	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(canvas.String(), "\n"), "\n") {
		b.WriteString("   " + dimmer.Render(line) + "\n")
	}
	return b.String()
}

func (m model) viewList() string {
	var b strings.Builder
	b.WriteString("\n")
	for i, name := range m.names {
		var speed string
		m.reg.View(name, func(bd *body.Body) {
			if bd.Central() {
				speed = panel.NotApplicable
			} else {
				speed = fmt.Sprintf("%.5f rev/day", bd.OrbitalSpeed)
			}
		})
		if i == m.cursor {
			b.WriteString("   " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-10s", name)) + dim.Render(speed) + "\n")
		} else {
			b.WriteString("     " + dim.Render(fmt.Sprintf("%-10s", name)) + dimmer.Render(speed) + "\n")
		}
	}
	return b.String()
}

func (m model) viewPanel() string {
	var b strings.Builder
	b.WriteString("\n   " + cyan.Render(m.bridge.Selected()) + "  " +
		dim.Render("orbital speed "+m.fields.OrbitalSpeed) + "\n")
	b.WriteString(dimmer.Render("   "+strings.Repeat("─", 40)) + "\n")

	for i, name := range fieldNames {
		val := m.fieldAt(i)
		if m.editing && i == m.fieldCursor {
			val = m.editBuf + "▋"
		}
		if i == m.fieldCursor {
			b.WriteString("   " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-16s", name)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("     " + dim.Render(fmt.Sprintf("%-16s", name)) + dim.Render(val) + "\n")
		}
	}
	return b.String()
}

// Run starts the terminal front end and blocks until quit.
func Run(cfg *config.Config, reg *body.Registry) error {
	p := tea.NewProgram(newModel(cfg, reg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
