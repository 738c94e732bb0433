package tui

import (
	"fmt"
	"math"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JulianCruzet/Newtons-Cradle/internal/config"
	"github.com/JulianCruzet/Newtons-Cradle/internal/cradle"
)

type state int

const (
	stateMenu state = iota
	stateConfig
	stateSim
)

// param is one adjustable value with its arrow-key increment, mirroring
// the slider granularity of the original control panel.
type param struct {
	name string
	step float64
	min  float64
	max  float64
}

var paramDefs = []param{
	{"balls", 1, 2, 12},
	{"radius", 1, 5, 40},
	{"mass", 0.1, 0.1, 10},
	{"gravity", 1, 1, 200},
	{"rod length", 5, 50, 400},
	{"damping", 0.001, 0.9, 1.0},
	{"angle", 0.01, 0, math.Pi / 2},
	{"dt", 0.001, 0.001, 0.1},
}

type model struct {
	state   state
	cursor  int
	presets []string

	cfg         *config.Config
	paramCursor int
	editing     bool
	editBuf     string
	cfgErr      string

	chain   *cradle.Chain
	stepper *cradle.Stepper
	running bool
	paused  bool
	simTime float64
	speed   float64
	history []float64

	lastFrame time.Time
	fps       float64

	width  int
	height int
}

func NewApp() *model {
	names := config.ListPresets()
	sort.Strings(names)
	return &model{
		state:   stateMenu,
		presets: names,
		cfg:     config.DefaultConfig(),
		speed:   1.0,
		history: make([]float64, 0, 60),
		width:   80,
		height:  24,
	}
}

func (m model) Init() tea.Cmd { return nil }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
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
		if m.state != stateSim {
			return m, nil
		}
		if m.running && !m.paused && m.chain != nil {
			now := time.Now()
			if !m.lastFrame.IsZero() {
				if dt := now.Sub(m.lastFrame).Seconds(); dt > 0 {
					m.fps = 1.0 / dt
				}
			}
			m.lastFrame = now
			steps := int(m.speed)
			if steps < 1 {
				steps = 1
			}
			for i := 0; i < steps; i++ {
				m.step()
			}
		}
		if m.running {
			return m, tick()
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateConfig:
		return m.configKey(msg)
	case stateSim:
		return m.simKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "enter", " ":
		if cfg := config.GetPreset(m.presets[m.cursor]); cfg != nil {
			m.cfg = cfg
		}
		m.state = stateConfig
		m.paramCursor = 0
		m.cfgErr = ""
	}
	return m, nil
}

func (m model) configKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			fmt.Sscanf(m.editBuf, "%f", &val)
			m.setParam(m.paramCursor, val)
			m.editing = false
			m.editBuf = ""
		case "escape":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "escape":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(paramDefs)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = fmt.Sprintf("%.3f", m.getParam(m.paramCursor))
	case "left", "h":
		m.setParam(m.paramCursor, m.getParam(m.paramCursor)-paramDefs[m.paramCursor].step)
	case "right", "l":
		m.setParam(m.paramCursor, m.getParam(m.paramCursor)+paramDefs[m.paramCursor].step)
	case "s":
		if err := m.cfg.Validate(); err != nil {
			m.cfgErr = err.Error()
			return m, nil
		}
		m.cfgErr = ""
		m.start()
		m.state = stateSim
		return m, tea.Batch(tea.ClearScreen, tick())
	}
	return m, nil
}

func (m model) simKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "escape":
		m.running = false
		m.state = stateMenu
		m.chain = nil
		return m, tea.ClearScreen
	case " ", "p":
		m.paused = !m.paused
	case "r":
		m.start()
		return m, tea.ClearScreen
	case "c":
		m.running = false
		m.state = stateConfig
		m.chain = nil
		return m, tea.ClearScreen
	case "+", "=":
		m.speed = math.Min(m.speed*2, 16)
	case "-", "_":
		m.speed = math.Max(m.speed/2, 0.25)
	case "0":
		m.speed = 1.0
	}
	return m, nil
}

func (m model) getParam(i int) float64 {
	switch i {
	case 0:
		return float64(m.cfg.Balls)
	case 1:
		return m.cfg.Radius
	case 2:
		return m.cfg.Mass
	case 3:
		return m.cfg.Gravity
	case 4:
		return m.cfg.RodLength
	case 5:
		return m.cfg.Damping
	case 6:
		return m.cfg.InitialAngle
	case 7:
		return m.cfg.Dt
	}
	return 0
}

func (m *model) setParam(i int, val float64) {
	def := paramDefs[i]
	val = math.Max(def.min, math.Min(def.max, val))
	switch i {
	case 0:
		m.cfg.Balls = int(math.Round(val))
	case 1:
		m.cfg.Radius = val
	case 2:
		m.cfg.Mass = val
	case 3:
		m.cfg.Gravity = val
	case 4:
		m.cfg.RodLength = val
	case 5:
		m.cfg.Damping = val
	case 6:
		m.cfg.InitialAngle = val
	case 7:
		m.cfg.Dt = val
	}
}

// start builds a fresh chain from the current parameters. The old chain
// is dropped wholesale; it is never resized in place.
func (m *model) start() {
	chain, err := cradle.New(m.cfg.Physics())
	if err != nil {
		m.cfgErr = err.Error()
		m.state = stateConfig
		return
	}
	m.chain = chain
	m.stepper = cradle.NewStepper()
	m.simTime = 0
	m.speed = 1.0
	m.history = make([]float64, 0, 60)
	m.lastFrame = time.Time{}
	m.running = true
	m.paused = false
}

func (m *model) step() {
	m.stepper.Step(m.chain, m.chain.Config.Dt)
	m.simTime += m.chain.Config.Dt

	last := m.chain.Pendulums[m.chain.Len()-1]
	m.history = append(m.history, last.Angle)
	if len(m.history) > 60 {
		m.history = m.history[1:]
	}
}

// energy splits the chain total into kinetic and potential parts for the
// on-screen bar.
func (m model) energy() (ke, pe float64) {
	if m.chain == nil {
		return 0, 0
	}
	cfg := m.chain.Config
	for _, p := range m.chain.Pendulums {
		v := cfg.RodLength * p.Velocity
		ke += 0.5 * p.Mass * v * v
		pe += p.Mass * cfg.Gravity * cfg.RodLength * (1 - math.Cos(p.Angle))
	}
	return ke, pe
}

// Run launches the interactive terminal app.
func Run() error {
	p := tea.NewProgram(NewApp(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
