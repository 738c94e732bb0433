package export

import (
	"fmt"
	"strings"

	"github.com/JulianCruzet/Newtons-Cradle/internal/cradle"
)

// DrawChain renders one frame of the chain onto the canvas: the support
// bar across the pivots, a rod from each pivot to its ball, and the ball
// outlines. World coordinates are mapped uniformly into the sub-pixel grid.
func DrawChain(canvas *Canvas, c *cradle.Chain) {
	if c.Len() == 0 {
		return
	}
	cfg := c.Config

	// world bounds with a margin: the support line, the widest swing
	worldLeft := c.Pendulums[0].Pivot.X - cfg.RodLength - cfg.Radius
	worldRight := c.Pendulums[c.Len()-1].Pivot.X + cfg.RodLength + cfg.Radius
	worldTop := cfg.Origin.Y - 2*cfg.Radius
	worldBottom := cfg.Origin.Y + cfg.RodLength + 2*cfg.Radius

	subW := float64(canvas.Width * 2)
	subH := float64(canvas.Height * 4)
	sx := subW / (worldRight - worldLeft)
	sy := subH / (worldBottom - worldTop)
	scale := sx
	if sy < scale {
		scale = sy
	}

	toX := func(wx float64) int { return int((wx - worldLeft) * scale) }
	toY := func(wy float64) int { return int((wy - worldTop) * scale) }

	left := c.Pendulums[0].Pivot
	right := c.Pendulums[c.Len()-1].Pivot
	canvas.DrawLine(toX(left.X-cfg.Radius), toY(left.Y), toX(right.X+cfg.Radius), toY(right.Y))

	for _, p := range c.Pendulums {
		pos := p.Position(cfg)
		canvas.DrawLine(toX(p.Pivot.X), toY(p.Pivot.Y), toX(pos.X), toY(pos.Y))
		r := int(cfg.Radius * scale)
		if r < 1 {
			r = 1
		}
		canvas.DrawCircle(toX(pos.X), toY(pos.Y), r)
	}
}

// CanvasToSVG converts a braille canvas to an SVG document, one dot per
// lit sub-pixel.
func CanvasToSVG(canvas *Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ccff">
`, width, height, width, height))

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
