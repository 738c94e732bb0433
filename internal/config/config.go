package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/JulianCruzet/Newtons-Cradle/internal/cradle"
)

const DefaultDuration = 10.0

// Config is the user-facing parameter set: the physical cradle parameters
// plus run length. It owns validation of the adjustable ranges; the physics
// core assumes the values it receives are already in bounds.
type Config struct {
	Balls        int     `yaml:"balls"`
	Radius       float64 `yaml:"radius"`
	Mass         float64 `yaml:"mass"`
	Gravity      float64 `yaml:"gravity"`
	RodLength    float64 `yaml:"rod_length"`
	Damping      float64 `yaml:"damping"`
	InitialAngle float64 `yaml:"initial_angle"`
	Dt           float64 `yaml:"dt"`
	Duration     float64 `yaml:"duration"`
}

func DefaultConfig() *Config {
	phys := cradle.Default()
	return &Config{
		Balls:        phys.Balls,
		Radius:       phys.Radius,
		Mass:         phys.Mass,
		Gravity:      phys.Gravity,
		RodLength:    phys.RodLength,
		Damping:      phys.Damping,
		InitialAngle: phys.InitialAngle,
		Dt:           phys.Dt,
		Duration:     DefaultDuration,
	}
}

// Validate checks the adjustable ranges before anything reaches the core.
func (c *Config) Validate() error {
	if c.Balls < 2 {
		return fmt.Errorf("balls must be >= 2, got %d", c.Balls)
	}
	if c.Radius <= 0 {
		return fmt.Errorf("radius must be positive, got %g", c.Radius)
	}
	if c.Mass <= 0 {
		return fmt.Errorf("mass must be positive, got %g", c.Mass)
	}
	if c.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %g", c.Gravity)
	}
	if c.RodLength <= 0 {
		return fmt.Errorf("rod length must be positive, got %g", c.RodLength)
	}
	if c.Damping <= 0 || c.Damping > 1 {
		return fmt.Errorf("damping must be in (0, 1], got %g", c.Damping)
	}
	if c.InitialAngle < 0 || c.InitialAngle > math.Pi/2 {
		return fmt.Errorf("initial angle must be in [0, pi/2], got %g", c.InitialAngle)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %g", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %g", c.Duration)
	}
	return nil
}

// Physics converts to the core configuration, keeping the default pivot
// origin. The caller is expected to have called Validate first.
func (c *Config) Physics() cradle.Config {
	phys := cradle.Default()
	phys.Balls = c.Balls
	phys.Radius = c.Radius
	phys.Mass = c.Mass
	phys.Gravity = c.Gravity
	phys.RodLength = c.RodLength
	phys.Damping = c.Damping
	phys.InitialAngle = c.InitialAngle
	phys.Dt = c.Dt
	return phys
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
