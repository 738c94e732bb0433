package metrics

import (
	"math"
	"testing"

	"github.com/JulianCruzet/Newtons-Cradle/internal/cradle"
	"github.com/JulianCruzet/Newtons-Cradle/internal/sim"
)

func TestEnergyValue(t *testing.T) {
	cfg := cradle.Default()
	cfg.Balls = 1
	m := NewEnergy(cfg)

	theta := math.Pi / 4
	x := sim.State{theta, 0}
	m.Observe(x, 0)

	want := cfg.Mass * cfg.Gravity * cfg.RodLength * (1 - math.Cos(theta))
	if got := m.Value(); math.Abs(got-want) > 1e-9 {
		t.Errorf("energy = %g, want %g", got, want)
	}
}

func TestEnergyReset(t *testing.T) {
	cfg := cradle.Default()
	m := NewEnergy(cfg)

	m.Observe(sim.State{1, 0, 0, 0, 1, 0, 0, 0, 0, 0}, 0)
	if m.Value() == 0 {
		t.Error("expected non-zero energy")
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero energy after reset")
	}
}

func TestEnergyDriftConstantSignal(t *testing.T) {
	cfg := cradle.Default()
	cfg.Balls = 1
	m := NewEnergyDrift(cfg)

	x := sim.State{0.5, 0.1}
	for i := 0; i < 10; i++ {
		m.Observe(x, float64(i))
	}

	if m.Value() != 0 {
		t.Errorf("constant signal drifted: %g", m.Value())
	}
}

func TestPeakAngle(t *testing.T) {
	m := NewPeakAngle(0)

	m.Observe(sim.State{0.2, 0}, 0)
	m.Observe(sim.State{-0.7, 0}, 1)
	m.Observe(sim.State{0.3, 0}, 2)

	if math.Abs(m.Value()-0.7) > 1e-12 {
		t.Errorf("peak = %g, want 0.7", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestStability(t *testing.T) {
	m := NewStability(1.0)

	m.Observe(sim.State{0.5, 0.1}, 0)
	m.Observe(sim.State{2.0, 0.1}, 1)

	if got := m.Value(); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("stability = %g, want 0.5", got)
	}
}
