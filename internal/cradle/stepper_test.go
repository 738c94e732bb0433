package cradle

import (
	"math"
	"testing"
)

func TestStepperStableAtScale(t *testing.T) {
	cfg := Default()
	cfg.Balls = 10
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	s := NewStepper()
	for i := 0; i < 1000; i++ {
		s.Step(c, cfg.Dt)
		for j, p := range c.Pendulums {
			if math.IsNaN(p.Angle) || math.IsInf(p.Angle, 0) {
				t.Fatalf("ball %d: non-finite angle at step %d", j, i)
			}
			if math.IsNaN(p.Velocity) || math.IsInf(p.Velocity, 0) {
				t.Fatalf("ball %d: non-finite velocity at step %d", j, i)
			}
		}
	}
}

func TestStepperMomentumPropagates(t *testing.T) {
	cfg := Default()
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Run long enough for the raised rightmost ball to fall and strike.
	s := NewStepper()
	maxLeft := 0.0
	for i := 0; i < 1000; i++ {
		s.Step(c, cfg.Dt)
		if a := math.Abs(c.Pendulums[0].Angle); a > maxLeft {
			maxLeft = a
		}
	}

	if maxLeft < 0.1 {
		t.Errorf("leftmost ball barely moved (max |angle| = %g); impact did not propagate", maxLeft)
	}
}

func TestStepperEnergyBounded(t *testing.T) {
	cfg := Default()
	cfg.Damping = 1.0
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	initial := c.Energy()
	s := NewStepper()
	for i := 0; i < 2000; i++ {
		s.Step(c, cfg.Dt)
	}

	drift := math.Abs(c.Energy()-initial) / initial
	if drift > 0.25 {
		t.Errorf("undamped chain energy drifted %.1f%%", drift*100)
	}
}

func TestStepperPivotsFixed(t *testing.T) {
	cfg := Default()
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	pivots := make([]Point, c.Len())
	for i, p := range c.Pendulums {
		pivots[i] = p.Pivot
	}

	s := NewStepper()
	for i := 0; i < 500; i++ {
		s.Step(c, cfg.Dt)
	}

	for i, p := range c.Pendulums {
		if p.Pivot != pivots[i] {
			t.Errorf("pivot %d moved from %v to %v", i, pivots[i], p.Pivot)
		}
	}
}
