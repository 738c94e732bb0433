package metrics

import (
	"math"

	"github.com/JulianCruzet/Newtons-Cradle/internal/cradle"
	"github.com/JulianCruzet/Newtons-Cradle/internal/sim"
)

// chainEnergy sums KE + PE over a snapshot using the run configuration.
func chainEnergy(cfg cradle.Config, x sim.State) float64 {
	n := len(x) / 2
	total := 0.0
	for i := 0; i < n; i++ {
		theta, omega := x[i], x[n+i]
		v := cfg.RodLength * omega
		ke := 0.5 * cfg.Mass * v * v
		pe := cfg.Mass * cfg.Gravity * cfg.RodLength * (1 - math.Cos(theta))
		total += ke + pe
	}
	return total
}

// Energy reports the mean total mechanical energy of the chain over a run.
type Energy struct {
	cfg     cradle.Config
	samples int
	total   float64
}

func NewEnergy(cfg cradle.Config) *Energy {
	return &Energy{cfg: cfg}
}

func (e *Energy) Name() string { return "energy" }

func (e *Energy) Observe(x sim.State, t float64) {
	e.total += chainEnergy(e.cfg, x)
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *Energy) Reset() {
	e.total = 0
	e.samples = 0
}

// EnergyDrift reports the maximum relative deviation from the first
// observed energy. For an undamped cradle this stays small; growth means
// the integrator or the collision pass is injecting energy.
type EnergyDrift struct {
	cfg      cradle.Config
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift(cfg cradle.Config) *EnergyDrift {
	return &EnergyDrift{cfg: cfg}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(x sim.State, t float64) {
	energy := chainEnergy(e.cfg, x)

	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}
