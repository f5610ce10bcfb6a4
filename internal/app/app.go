package app

import (
	"time"

	"crt-scope.dev/internal/config"
	"crt-scope.dev/internal/scope"
	"crt-scope.dev/internal/sim"
	"crt-scope.dev/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

// shared holds state shared between the Bubble Tea model copies.
// Because Bubble Tea uses value receivers, pointer fields ensure all
// copies see the same underlying data.
type shared struct {
	sim *sim.Simulator

	// View-side spring smoothing of the displayed beam dot. The kernel
	// position stays exact; only the drawn dot is eased.
	spring        harmonica.Spring
	dotX, dotVelX float64
	dotY, dotVelY float64
}

// Model is the root Bubble Tea model for the CRT scope.
type Model struct {
	width  int
	height int

	dt       float64
	fps      int
	selected int
	deltaIdx int

	shared *shared
}

// New creates the root model around a fresh simulator.
func New(dt float64, fps, trailCap int, sinusoidal bool) Model {
	s := sim.New()
	s.SetTrailCapacity(trailCap)
	if sinusoidal {
		s.SetMode(sim.ModeSinusoidal)
	}

	return Model{
		dt:  dt,
		fps: fps,
		shared: &shared{
			sim:    s,
			spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0),
		},
	}
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m.shared.sim.Tick(m.dt)
		m.updateDotSpring()
		return m, m.tickCmd()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.shared.sim

	switch msg.String() {
	case "q", "Q", "ctrl+c":
		return m, tea.Quit

	case " ":
		if s.IsRunning() {
			s.Stop()
		} else {
			s.Start()
		}

	case "r", "R":
		s.Reset()
		m.snapDot()

	case "m", "M":
		if s.Params().Mode == sim.ModeManual {
			s.SetMode(sim.ModeSinusoidal)
		} else {
			s.SetMode(sim.ModeManual)
		}

	case "d", "D":
		m.deltaIdx = (m.deltaIdx + 1) % len(config.DeltaPresets)
		s.SetTargetDelta(config.DeltaPresets[m.deltaIdx])

	case "1", "2", "3", "4":
		r := config.RatioPresets[int(msg.String()[0]-'1')]
		s.SetFrequencyRatioPreset(r[0], r[1])

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(paramDefs)-1 {
			m.selected++
		}

	case "left", "h":
		adjustParam(s, m.selected, -1)

	case "right", "l":
		adjustParam(s, m.selected, +1)

	case "home":
		m.selected = 0

	case "end":
		m.selected = len(paramDefs) - 1
	}

	return m, nil
}

// updateDotSpring eases the displayed dot toward the kernel position.
func (m Model) updateDotSpring() {
	sh := m.shared
	pos := sh.sim.CurrentPosition()
	sh.dotX, sh.dotVelX = sh.spring.Update(sh.dotX, sh.dotVelX, pos.X)
	sh.dotY, sh.dotVelY = sh.spring.Update(sh.dotY, sh.dotVelY, pos.Y)
}

// snapDot moves the displayed dot to the kernel position immediately.
func (m Model) snapDot() {
	sh := m.shared
	pos := sh.sim.CurrentPosition()
	sh.dotX, sh.dotY = pos.X, pos.Y
	sh.dotVelX, sh.dotVelY = 0, 0
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing CRT scope..."
	}

	s := m.shared.sim
	params := s.Params()

	menuH := 1
	statusH := 1
	presetH := 1
	graphH := 9
	viewH := 8
	bodyH := m.height - menuH - statusH - presetH - graphH - viewH
	if bodyH < 10 {
		bodyH = 10
	}

	screenW := m.width * 2 / 3
	if screenW < 40 {
		screenW = 40
	}
	sideW := m.width - screenW
	if sideW < 28 {
		sideW = 28
		screenW = m.width - sideW
	}

	menuBar := ui.RenderMenuBar(m.width, params.Mode.String(), s.IsRunning())

	innerW := screenW - 4
	innerH := bodyH - 4
	if innerW < 10 {
		innerW = 10
	}
	if innerH < 5 {
		innerH = 5
	}
	// Keep the drawn screen near the CRT's 200x120 proportions,
	// correcting for tall terminal cells.
	ideal := int(float64(innerW) * (config.ScreenYMax / config.ScreenXMax) * config.AspectRatio)
	if ideal >= 5 && innerH > ideal {
		innerH = ideal
	}
	screen := scope.Render(innerW, innerH, s.TrailPoints(), sim.Position{X: m.shared.dotX, Y: m.shared.dotY})
	screenPanel := ui.RenderScopePanel(screenW, bodyH, screen)

	controls := make([]ui.Control, len(paramDefs))
	for i, def := range paramDefs {
		controls[i] = ui.Control{
			Label: def.label,
			Value: formatParam(def, params),
			Unit:  def.unit,
		}
	}
	controlsH := bodyH * 3 / 5
	readoutH := bodyH - controlsH
	controlsPanel := ui.RenderControls(controls, m.selected, sideW, controlsH)

	vx, vy := s.CurrentVoltages()
	pos := s.CurrentPosition()
	readoutPanel := ui.RenderReadout(ui.Readout{
		Running:    s.IsRunning(),
		Elapsed:    s.ElapsedTime(),
		Mode:       params.Mode.String(),
		Accel:      params.Acceleration,
		Velocity:   s.InitialVelocity(),
		Vx:         vx,
		Vy:         vy,
		X:          pos.X,
		Y:          pos.Y,
		TrailLen:   len(s.TrailPoints()),
		TimeOrigin: s.TimeOrigin(),
	}, sideW, readoutH)
	sideColumn := ui.ComposeSideColumn(controlsPanel, readoutPanel)

	// Tube cross-sections: the side view sees the Y deflection, the top
	// view sees the X deflection.
	halfW := m.width / 2
	viewInnerH := viewH - 3 // border rows plus the title line
	sideView := ui.RenderViewPanel(halfW, viewH, "SIDE VIEW (Y)",
		scope.RenderBeamPath(halfW-4, viewInnerH, pos.Y))
	topView := ui.RenderViewPanel(m.width-halfW, viewH, "TOP VIEW (X)",
		scope.RenderBeamPath(m.width-halfW-4, viewInnerH, pos.X))
	beamViews := ui.ComposeBeamViews(sideView, topView)

	presetLine := ui.RenderPresets(m.width, config.RatioPresets, config.DeltaPresets, s.TargetDelta())

	var tMin, tMax float64
	if hist := s.VoltageHistory(); len(hist) > 0 {
		tMin, tMax = hist[0].T, hist[len(hist)-1].T
	}
	seriesX, seriesY := s.VoltageSeries()
	graphPanel := ui.RenderVoltageGraphs(seriesX, seriesY, tMin, tMax, m.width, graphH)

	statusBar := ui.RenderStatusBar(m.width, s.IsRunning(), s.ElapsedTime(),
		pos.X, pos.Y, len(s.TrailPoints()), s.TargetDelta())

	return ui.ComposeLayout(menuBar, screenPanel, sideColumn, beamViews, presetLine, graphPanel, statusBar)
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
