package cradle

import (
	"math"
	"testing"
)

func TestPendulumEquilibrium(t *testing.T) {
	cfg := Default()
	p := &Pendulum{Mass: cfg.Mass, Pivot: cfg.Origin}

	for i := 0; i < 10000; i++ {
		p.Integrate(cfg, cfg.Dt)
	}

	if math.Abs(p.Angle) > 1e-12 {
		t.Errorf("expected angle to stay at equilibrium, got %g", p.Angle)
	}
	if math.Abs(p.Velocity) > 1e-12 {
		t.Errorf("expected velocity to stay zero, got %g", p.Velocity)
	}
}

func TestPendulumZeroDt(t *testing.T) {
	cfg := Default()
	p := &Pendulum{Mass: cfg.Mass, Angle: 0.3, Velocity: -0.2, Pivot: cfg.Origin}

	p.Integrate(cfg, 0)

	if p.Angle != 0.3 || p.Velocity != -0.2 {
		t.Errorf("dt=0 must be a no-op, got angle=%g velocity=%g", p.Angle, p.Velocity)
	}
	if math.IsNaN(p.Angle) || math.IsNaN(p.Velocity) {
		t.Error("dt=0 produced NaN")
	}
}

func TestPendulumPosition(t *testing.T) {
	cfg := Default()

	tests := []struct {
		name  string
		angle float64
		wantX float64
		wantY float64
	}{
		{"hanging", 0, cfg.Origin.X, cfg.Origin.Y + cfg.RodLength},
		{"right horizontal", math.Pi / 2, cfg.Origin.X + cfg.RodLength, cfg.Origin.Y},
		{"left horizontal", -math.Pi / 2, cfg.Origin.X - cfg.RodLength, cfg.Origin.Y},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Pendulum{Angle: tt.angle, Pivot: cfg.Origin}
			pos := p.Position(cfg)
			if math.Abs(pos.X-tt.wantX) > 1e-9 || math.Abs(pos.Y-tt.wantY) > 1e-9 {
				t.Errorf("position = (%g, %g), want (%g, %g)", pos.X, pos.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPendulumEnergyBounded(t *testing.T) {
	cfg := Default()
	cfg.Damping = 1.0
	p := &Pendulum{Mass: cfg.Mass, Angle: cfg.InitialAngle, Pivot: cfg.Origin}

	initial := p.Energy(cfg)
	if initial <= 0 {
		t.Fatalf("expected positive initial energy, got %g", initial)
	}

	// Several full oscillation periods at the default step size.
	maxDrift := 0.0
	for i := 0; i < 5000; i++ {
		p.Integrate(cfg, cfg.Dt)
		drift := math.Abs(p.Energy(cfg)-initial) / initial
		if drift > maxDrift {
			maxDrift = drift
		}
	}

	if maxDrift > 0.2 {
		t.Errorf("energy drifted %.1f%% from initial, want bounded by 20%%", maxDrift*100)
	}
}

func TestPendulumDampingDecay(t *testing.T) {
	cfg := Default()
	cfg.Damping = 0.999
	p := &Pendulum{Mass: cfg.Mass, Angle: cfg.InitialAngle, Pivot: cfg.Origin}

	steps := 12000
	latePeak := 0.0
	for i := 0; i < steps; i++ {
		p.Integrate(cfg, cfg.Dt)
		if i > steps/2 && math.Abs(p.Angle) > latePeak {
			latePeak = math.Abs(p.Angle)
		}
	}

	if latePeak >= cfg.InitialAngle {
		t.Errorf("peak angle %g did not decay below initial %g", latePeak, cfg.InitialAngle)
	}
}

func TestPendulumLongRunFinite(t *testing.T) {
	cfg := Default()
	p := &Pendulum{Mass: cfg.Mass, Angle: cfg.InitialAngle, Pivot: cfg.Origin}

	for i := 0; i < 100000; i++ {
		p.Integrate(cfg, cfg.Dt)
		if math.IsNaN(p.Angle) || math.IsInf(p.Angle, 0) {
			t.Fatalf("angle became non-finite at step %d", i)
		}
		if math.IsNaN(p.Velocity) || math.IsInf(p.Velocity, 0) {
			t.Fatalf("velocity became non-finite at step %d", i)
		}
	}
}
