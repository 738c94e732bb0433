package cradle

import "math"

// Pendulum is one ball on a rigid rod about a fixed pivot. Angle is measured
// from the vertical-down equilibrium, positive toward +x.
type Pendulum struct {
	Mass     float64
	Angle    float64
	Velocity float64 // angular velocity
	Accel    float64 // angular acceleration, recomputed each Integrate
	Pivot    Point   // set at construction, never moves
}

// Integrate advances the pendulum by one step of semi-implicit Euler:
// the velocity is updated from the gravitational torque first, then the
// angle from the updated velocity. This ordering keeps the energy error
// bounded over long runs. dt <= 0 leaves the state untouched.
func (p *Pendulum) Integrate(cfg Config, dt float64) {
	if dt <= 0 {
		return
	}
	p.Accel = -cfg.Gravity / cfg.RodLength * math.Sin(p.Angle)
	p.Velocity += p.Accel * dt
	p.Velocity *= cfg.Damping
	p.Angle += p.Velocity * dt
}

// Position returns the ball center derived from the pivot and current angle.
func (p *Pendulum) Position(cfg Config) Point {
	return Point{
		X: p.Pivot.X + cfg.RodLength*math.Sin(p.Angle),
		Y: p.Pivot.Y + cfg.RodLength*math.Cos(p.Angle),
	}
}

// Energy returns the total mechanical energy of the pendulum.
func (p *Pendulum) Energy(cfg Config) float64 {
	// KE = 0.5 * m * (L*omega)^2
	// PE = m * g * L * (1 - cos(theta))
	v := cfg.RodLength * p.Velocity
	ke := 0.5 * p.Mass * v * v
	pe := p.Mass * cfg.Gravity * cfg.RodLength * (1.0 - math.Cos(p.Angle))
	return ke + pe
}
