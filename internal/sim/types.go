package sim

import (
	"fmt"
	"math"

	"github.com/JulianCruzet/Newtons-Cradle/internal/cradle"
)

// State is a flat snapshot of a chain: all angles followed by all angular
// velocities, [theta_0 .. theta_n-1, omega_0 .. omega_n-1].
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Snapshot captures the chain's current angles and velocities.
func Snapshot(c *cradle.Chain) State {
	n := c.Len()
	s := make(State, 2*n)
	for i, p := range c.Pendulums {
		s[i] = p.Angle
		s[n+i] = p.Velocity
	}
	return s
}

// Metric accumulates a scalar over the course of a run.
type Metric interface {
	Name() string
	Observe(x State, t float64)
	Value() float64
	Reset()
}

// Observer receives every frame of a run, e.g. for live rendering.
type Observer interface {
	OnStep(x State, t float64)
}

// RunConfig controls one headless run.
type RunConfig struct {
	Duration      float64 // seconds of simulated time
	ValidateState bool    // halt on NaN/Inf
}

func DefaultRunConfig() RunConfig {
	return RunConfig{
		Duration:      10.0,
		ValidateState: true,
	}
}

// Result collects the recorded trajectory and per-run aggregates.
type Result struct {
	States      []State
	Times       []float64
	Metrics     map[string]float64
	EnergyDrift float64
	Collisions  int // total velocity swaps across all frames
	StepsTaken  int
	Errors      []error
}

// SimError marks a failure at a specific step of a run.
type SimError struct {
	Time    float64
	Step    int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}
