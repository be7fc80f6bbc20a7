package viz

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orbital/internal/body"
	"github.com/san-kum/orbital/internal/engine"
	"github.com/san-kum/orbital/internal/vec"
)

const (
	canvasWidth     = 80
	canvasHeight    = 28
	historyCapacity = 600
)

var (
	canvasStyle  = lipgloss.NewStyle().Padding(1, 2)
	statsStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pausedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("84")).Bold(true)
	graphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model drives the engine from the terminal: it steps once per tick and
// renders bodies and trails onto a braille canvas with a stats panel.
type Model struct {
	eng           *engine.Engine
	canvas        *Canvas
	palette       *palette
	frameRate     int
	timeScale     float64
	worldSpan     float64
	energyHistory []float64
	showHelp      bool
}

func NewModel(eng *engine.Engine, frameRate int, timeScale float64) Model {
	if frameRate <= 0 {
		frameRate = 60
	}
	if timeScale <= 0 {
		timeScale = 1
	}
	return Model{
		eng:           eng,
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		palette:       newPalette(),
		frameRate:     frameRate,
		timeScale:     timeScale,
		worldSpan:     900,
		energyHistory: make([]float64, 0, historyCapacity),
	}
}

// Run starts the live view and blocks until the user quits.
func Run(eng *engine.Engine, frameRate int, timeScale float64) error {
	p := tea.NewProgram(NewModel(eng, frameRate, timeScale), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.eng.Paused = !m.eng.Paused
		case "r":
			m.eng.DemoScene()
			m.energyHistory = m.energyHistory[:0]
		case "c":
			m.eng.Clear()
			m.energyHistory = m.energyHistory[:0]
		case "a":
			m.spawn(body.Planet)
		case "o":
			m.spawn(body.Moon)
		case "up", "k":
			m.eng.G *= 1.05
		case "down", "j":
			m.eng.G *= 0.95
		case "left", "h":
			m.timeScale *= 0.8
		case "right", "l":
			m.timeScale *= 1.25
		case "[":
			if m.eng.MaxTrail > 10 {
				m.eng.MaxTrail -= 10
			}
		case "]":
			m.eng.MaxTrail += 10
		case "+", "=":
			m.worldSpan *= 0.8
		case "-", "_":
			m.worldSpan *= 1.25
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		m.eng.Step(1.0/float64(m.frameRate), m.timeScale)
		if !m.eng.Paused {
			m.energyHistory = append(m.energyHistory, m.eng.Energy())
			if len(m.energyHistory) > historyCapacity {
				m.energyHistory = m.energyHistory[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// spawn adds a body of the given kind on a circular orbit around the
// heaviest live body, at a random angle and radius. Colors cycle through
// the per-kind palette so successive spawns are distinguishable.
func (m *Model) spawn(kind body.Kind) {
	center := m.heaviest()
	angle := rand.Float64() * 2 * math.Pi
	radius := 120 + rand.Float64()*260
	offset := vec.New(radius*math.Cos(angle), radius*math.Sin(angle))
	pos := offset
	vel := vec.Zero
	if center != nil {
		v := m.eng.OrbitalSpeed(center.Mass, radius)
		pos = center.Pos.Add(offset)
		vel = center.Vel.Add(vec.New(-math.Sin(angle)*v, math.Cos(angle)*v))
	}
	b, err := m.eng.AddBody(kind, pos, vel)
	if err != nil {
		return
	}
	b.Color = m.palette.next(kind)
}

func (m *Model) heaviest() *body.Body {
	var best *body.Body
	for _, b := range m.eng.Bodies() {
		if best == nil || b.Mass > best.Mass {
			best = b
		}
	}
	return best
}

// project maps world coordinates to canvas sub-pixel coordinates, centered
// on the origin with worldSpan world units across the canvas width.
func (m *Model) project(p vec.Vec2) (int, int) {
	cw := float64(m.canvas.Width * 2)
	ch := float64(m.canvas.Height * 4)
	scale := cw / m.worldSpan
	x := cw/2 + p.X*scale
	// Terminal cells are taller than wide; y uses the same world scale so
	// circles stay round in sub-pixel space.
	y := ch/2 + p.Y*scale
	return int(x), int(y)
}

func (m *Model) draw() {
	m.canvas.Clear()
	scale := float64(m.canvas.Width*2) / m.worldSpan
	for _, b := range m.eng.Bodies() {
		for _, p := range b.Trail {
			x, y := m.project(p)
			m.canvas.Set(x, y)
		}
		x, y := m.project(b.Pos)
		r := int(b.Radius * scale)
		m.canvas.FillCircle(x, y, r)
	}
}

func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("ORBITAL") + "\n")
	if m.eng.Paused {
		s.WriteString(pausedStyle.Render("PAUSED") + "\n\n")
	} else {
		s.WriteString(runningStyle.Render("RUNNING") + "\n\n")
	}

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.eng.Elapsed())) + "\n")
	s.WriteString(labelStyle.Render("Bodies") + valueStyle.Render(fmt.Sprintf("%d", len(m.eng.Bodies()))) + "\n")
	s.WriteString(labelStyle.Render("G") + valueStyle.Render(fmt.Sprintf("%.1f", m.eng.G)) + "\n")
	s.WriteString(labelStyle.Render("Timescale") + valueStyle.Render(fmt.Sprintf("%.2fx", m.timeScale)) + "\n")
	s.WriteString(labelStyle.Render("Trail") + valueStyle.Render(fmt.Sprintf("%d", m.eng.MaxTrail)) + "\n")

	s.WriteString("\nBODIES\n")
	for i, b := range m.eng.Bodies() {
		if i >= 8 {
			s.WriteString(labelStyle.Render(fmt.Sprintf("  +%d more", len(m.eng.Bodies())-i)) + "\n")
			break
		}
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(b.Color)).Render("●")
		s.WriteString(fmt.Sprintf("  %s %-7s m=%.0f\n", dot, b.Kind, b.Mass))
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Demo C:Clear Q:Quit\nA:Planet O:Moon ↑↓:G ←→:Speed\n[ ]:Trail +-:Zoom ?:Help"))
	statsView := statsStyle.Render(s.String())

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Reset to demo scene      ║
║  C        - Clear all bodies         ║
║  A        - Spawn orbiting planet    ║
║  O        - Spawn orbiting moon      ║
║  Up/K     - Increase G (+5%)         ║
║  Down/J   - Decrease G (-5%)         ║
║  Left/H   - Slow down time           ║
║  Right/L  - Speed up time            ║
║  [ / ]    - Shorter/longer trails    ║
║  + / -    - Zoom in/out              ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`
