package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/JulianCruzet/Newtons-Cradle/internal/cradle"
)

// Runner drives a chain frame by frame: build, integrate-and-resolve each
// step, feed metrics and observers, record the trajectory. One Runner
// serves one run at a time; it is not safe for concurrent use.
type Runner struct {
	stepper   *cradle.Stepper
	metrics   []Metric
	observers []Observer
}

func NewRunner() *Runner {
	return &Runner{
		stepper:   cradle.NewStepper(),
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run builds a chain from cfg and advances it for rc.Duration of simulated
// time. The returned Result holds whatever was recorded even when the run
// halts early on invalid state.
func (r *Runner) Run(ctx context.Context, cfg cradle.Config, rc RunConfig) (*Result, error) {
	if cfg.Dt <= 0 {
		return nil, fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if rc.Duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %f", rc.Duration)
	}

	chain, err := cradle.New(cfg)
	if err != nil {
		return nil, err
	}

	steps := int(rc.Duration / cfg.Dt)
	result := &Result{
		States:  make([]State, 0, steps+1),
		Times:   make([]float64, 0, steps+1),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	t := 0.0
	result.States = append(result.States, Snapshot(chain))
	result.Times = append(result.Times, t)

	initialEnergy := chain.Energy()

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		x := Snapshot(chain)
		for _, m := range r.metrics {
			m.Observe(x, t)
		}
		for _, obs := range r.observers {
			obs.OnStep(x, t)
		}

		r.stepper.Step(chain, cfg.Dt)
		result.Collisions += r.stepper.Resolver.Swaps()
		t += cfg.Dt
		result.StepsTaken++

		x = Snapshot(chain)
		if rc.ValidateState && !x.IsValid() {
			err := SimError{Time: t, Step: i, Message: "invalid state (NaN/Inf)"}
			result.Errors = append(result.Errors, err)
			break
		}

		result.States = append(result.States, x)
		result.Times = append(result.Times, t)
	}

	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(chain.Energy()-initialEnergy) / math.Abs(initialEnergy)
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
