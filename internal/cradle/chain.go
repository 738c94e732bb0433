package cradle

import "fmt"

// Chain is the left-to-right ordered row of pendulums together with the
// configuration it was built from. Index order matches physical order:
// pivot x-coordinates are strictly increasing by 2*Radius, so the balls
// exactly touch at mutual equilibrium.
type Chain struct {
	Pendulums []*Pendulum
	Config    Config
}

// New builds a chain from cfg: pivots spaced 2*Radius apart and centered
// as a group on cfg.Origin, every ball at rest except the rightmost, which
// starts raised to cfg.InitialAngle.
func New(cfg Config) (*Chain, error) {
	if cfg.Balls < 1 {
		return nil, fmt.Errorf("cradle: ball count must be >= 1, got %d", cfg.Balls)
	}

	spacing := 2 * cfg.Radius
	startX := cfg.Origin.X - float64(cfg.Balls-1)/2*spacing

	pendulums := make([]*Pendulum, cfg.Balls)
	for i := range pendulums {
		angle := 0.0
		if i == cfg.Balls-1 {
			angle = cfg.InitialAngle
		}
		pendulums[i] = &Pendulum{
			Mass:  cfg.Mass,
			Angle: angle,
			Pivot: Point{X: startX + float64(i)*spacing, Y: cfg.Origin.Y},
		}
	}

	return &Chain{Pendulums: pendulums, Config: cfg}, nil
}

// Len returns the number of pendulums.
func (c *Chain) Len() int { return len(c.Pendulums) }

// Energy returns the total mechanical energy of the chain.
func (c *Chain) Energy() float64 {
	total := 0.0
	for _, p := range c.Pendulums {
		total += p.Energy(c.Config)
	}
	return total
}
