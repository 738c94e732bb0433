package cradle

const (
	// DefaultTolerance is the slack added to the geometric touching
	// distance so that discrete steps overlapping slightly still count
	// as contact.
	DefaultTolerance = 1.0

	// DefaultMaxSweeps caps the per-frame cost of the iterative pass.
	// A single sweep cannot resolve a simultaneous multi-ball cascade,
	// an unbounded loop risks non-termination.
	DefaultMaxSweeps = 10
)

// Resolver enforces that adjacent pendulums do not interpenetrate and that
// momentum propagates through contact. It approximates the horizontal
// contact velocity as L*omega, valid near the bottom of the swing where
// the rods are nearly vertical.
//
// For equal masses the velocity swap conserves momentum and energy
// exactly. The swap is applied regardless of configured mass; that is the
// documented behavior of this cradle, not an oversight.
type Resolver struct {
	Tolerance float64
	MaxSweeps int

	sweeps int
	swaps  int
}

func NewResolver() *Resolver {
	return &Resolver{
		Tolerance: DefaultTolerance,
		MaxSweeps: DefaultMaxSweeps,
	}
}

// Resolve runs bounded sweeps over adjacent pairs, scanning from the
// rightmost pair toward the leftmost. The scan direction lets a cascade
// started by the raised rightmost ball propagate fully left within a
// single sweep. A pair is in contact when the horizontal gap between ball
// centers is below 2*Radius + Tolerance; a contact pair that is closing
// (right moving toward left) has its angular velocities swapped outright.
// Sweeps repeat until one completes with no swap, or MaxSweeps is reached.
//
// Only angular velocities are touched; angles and pivots never change.
func (r *Resolver) Resolve(c *Chain) {
	r.sweeps = 0
	r.swaps = 0

	cfg := c.Config
	contactDist := 2*cfg.Radius + r.Tolerance

	for s := 0; s < r.MaxSweeps; s++ {
		r.sweeps++
		swapped := false

		for i := c.Len() - 1; i > 0; i-- {
			right := c.Pendulums[i]
			left := c.Pendulums[i-1]

			gap := right.Position(cfg).X - left.Position(cfg).X
			if gap >= contactDist {
				continue
			}

			// v ~ L*omega near the bottom of the swing
			vRight := cfg.RodLength * right.Velocity
			vLeft := cfg.RodLength * left.Velocity
			if vRight-vLeft >= 0 {
				continue // separating or at rest relative to each other
			}

			left.Velocity, right.Velocity = right.Velocity, left.Velocity
			r.swaps++
			swapped = true
		}

		if !swapped {
			break
		}
	}
}

// Sweeps reports how many sweeps the most recent Resolve performed.
func (r *Resolver) Sweeps() int { return r.sweeps }

// Swaps reports how many velocity exchanges the most recent Resolve made.
func (r *Resolver) Swaps() int { return r.swaps }
