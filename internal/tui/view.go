package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
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

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConfig:
		return m.viewConfig()
	case stateSim:
		return m.viewSim()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("        " + cyan.Render("n e w t o n ' s   c r a d l e") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, name := range m.presets {
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(name) + "\n")
		} else {
			b.WriteString("        " + dim.Render(name) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter configure   q quit") + "\n")

	return b.String()
}

func (m model) viewConfig() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render("cradle parameters") + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 30)) + "\n\n")

	for i, def := range paramDefs {
		val := fmt.Sprintf("%10.3f", m.getParam(i))
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%10s", m.editBuf+"▋")
		}
		if i == m.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-12s", def.name)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-12s", def.name)) + dim.Render(val) + "\n")
		}
	}

	if m.cfgErr != "" {
		b.WriteString("\n      " + red.Render(m.cfgErr) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  s start  esc back") + "\n")

	return b.String()
}

func (m model) viewSim() string {
	cw := m.width - 6
	ch := m.height - 10
	if cw < 50 {
		cw = 50
	}
	if ch < 12 {
		ch = 12
	}

	canvas := make([][]rune, ch)
	for i := range canvas {
		canvas[i] = make([]rune, cw)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	m.drawCradle(canvas, cw, ch)

	var b strings.Builder

	statusIcon := green.Render("●")
	statusText := green.Render("running")
	if m.paused {
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("paused")
	}
	b.WriteString(fmt.Sprintf("\n   %s %s  %s  %s\n\n",
		statusIcon, cyan.Render("newton's cradle"), statusText,
		dim.Render(fmt.Sprintf("t=%.1fs  %.0ffps  x%.2g", m.simTime, m.fps, m.speed))))

	for _, row := range canvas {
		b.WriteString("   " + string(row) + "\n")
	}

	ke, pe := m.energy()
	total := ke + pe
	if total > 0 {
		keRatio := ke / total
		energyWidth := 20
		keBar := int(keRatio * float64(energyWidth))
		peBar := energyWidth - keBar
		b.WriteString(fmt.Sprintf("\n   energy %s%s  %s %.1f  %s %.1f\n",
			green.Render(strings.Repeat("█", keBar)),
			yellow.Render(strings.Repeat("█", peBar)),
			green.Render("KE"), ke,
			yellow.Render("PE"), pe))
	}

	if m.chain != nil {
		last := m.chain.Pendulums[m.chain.Len()-1]
		b.WriteString("   " + dim.Render("θ=") + white.Render(fmt.Sprintf("%.2f", last.Angle)) +
			"  " + dim.Render("ω=") + white.Render(fmt.Sprintf("%.2f", last.Velocity)) + "\n")
	}

	if len(m.history) > 1 {
		b.WriteString(fmt.Sprintf("   %s %s\n", dim.Render("θ"), cyan.Render(sparkline(m.history, 24))))
	}

	b.WriteString("\n" + dim.Render("   space pause  ±speed  r reset  c config  q quit") + "\n")

	return b.String()
}

// drawCradle maps the chain's world coordinates into the rune canvas:
// support bar across the pivots, a rod per ball, the balls themselves.
func (m model) drawCradle(canvas [][]rune, w, h int) {
	if m.chain == nil || m.chain.Len() == 0 {
		return
	}
	cfg := m.chain.Config
	n := m.chain.Len()

	worldLeft := m.chain.Pendulums[0].Pivot.X - cfg.RodLength
	worldRight := m.chain.Pendulums[n-1].Pivot.X + cfg.RodLength
	worldTop := cfg.Origin.Y
	worldBottom := cfg.Origin.Y + cfg.RodLength + cfg.Radius

	// terminal cells are roughly twice as tall as wide
	sx := float64(w-4) / (worldRight - worldLeft)
	sy := float64(h-3) / (worldBottom - worldTop)
	scale := math.Min(sx, sy*2)

	toX := func(wx float64) int { return 2 + int((wx-worldLeft)*scale) }
	toY := func(wy float64) int { return 1 + int((wy-worldTop)*scale/2) }

	barY := toY(cfg.Origin.Y)
	for x := toX(m.chain.Pendulums[0].Pivot.X - cfg.Radius); x <= toX(m.chain.Pendulums[n-1].Pivot.X+cfg.Radius); x++ {
		set(canvas, x, barY, '═', w, h)
	}

	for _, p := range m.chain.Pendulums {
		pos := p.Position(cfg)
		px, py := toX(p.Pivot.X), toY(p.Pivot.Y)
		bx, by := toX(pos.X), toY(pos.Y)
		drawLine(canvas, w, h, px, py+1, bx, by-1, '·')
		set(canvas, px, py, '╤', w, h)
		set(canvas, bx, by, '⬤', w, h)
	}
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		v := data[i*step]
		idx := int((v - minVal) / rang * 7)
		if idx > 7 {
			idx = 7
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

func set(canvas [][]rune, x, y int, c rune, w, h int) {
	if x >= 0 && x < w && y >= 0 && y < h {
		canvas[y][x] = c
	}
}

func drawLine(canvas [][]rune, w, h, x1, y1, x2, y2 int, c rune) {
	dx := intAbs(x2 - x1)
	dy := intAbs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		set(canvas, x1, y1, c, w, h)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func intAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
