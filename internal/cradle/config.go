package cradle

import "math"

// Reference parameter set. Lengths are in the same arbitrary unit as the
// pivot origin; gravity is tuned to that scale rather than SI.
const (
	DefaultBalls     = 5
	DefaultRadius    = 20.0
	DefaultMass      = 1.0
	DefaultGravity   = 50.0
	DefaultRodLength = 200.0
	DefaultDamping   = 1.0
	DefaultDt        = 1.0 / 60.0
)

// Point is a fixed 2D position.
type Point struct {
	X float64
	Y float64
}

// Config bundles the physical and numeric parameters of one cradle run.
// It is copied into the chain at build time and never mutated afterwards;
// changing any field means building a new chain.
type Config struct {
	Balls        int     // number of pendulums, >= 1
	Radius       float64 // ball radius; pivot spacing is 2*Radius
	Mass         float64 // uniform across the chain
	Gravity      float64
	RodLength    float64
	Damping      float64 // per-step velocity multiplier, 1.0 = lossless
	InitialAngle float64 // radians, applied to the rightmost ball
	Dt           float64 // fixed time step, seconds
	Origin       Point   // center of the suspension line
}

// Default returns the reference configuration: five lossless balls with the
// rightmost raised to 45 degrees.
func Default() Config {
	return Config{
		Balls:        DefaultBalls,
		Radius:       DefaultRadius,
		Mass:         DefaultMass,
		Gravity:      DefaultGravity,
		RodLength:    DefaultRodLength,
		Damping:      DefaultDamping,
		InitialAngle: math.Pi / 4,
		Dt:           DefaultDt,
		Origin:       Point{X: 400, Y: 100},
	}
}
