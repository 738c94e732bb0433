package config

import "math"

var Presets = map[string]*Config{
	"classic": {
		Balls: 5, Radius: 20, Mass: 1.0, Gravity: 50, RodLength: 200,
		Damping: 1.0, InitialAngle: math.Pi / 4, Dt: 1.0 / 60, Duration: 20,
	},
	"two-ball": {
		Balls: 2, Radius: 25, Mass: 1.0, Gravity: 50, RodLength: 200,
		Damping: 1.0, InitialAngle: math.Pi / 3, Dt: 1.0 / 60, Duration: 20,
	},
	"gentle": {
		Balls: 5, Radius: 20, Mass: 1.0, Gravity: 50, RodLength: 200,
		Damping: 1.0, InitialAngle: 0.2, Dt: 1.0 / 60, Duration: 30,
	},
	"damped": {
		Balls: 5, Radius: 20, Mass: 1.0, Gravity: 50, RodLength: 200,
		Damping: 0.998, InitialAngle: math.Pi / 4, Dt: 1.0 / 60, Duration: 40,
	},
	"wide": {
		Balls: 8, Radius: 15, Mass: 1.0, Gravity: 50, RodLength: 180,
		Damping: 1.0, InitialAngle: math.Pi / 4, Dt: 1.0 / 60, Duration: 30,
	},
	"heavy": {
		Balls: 5, Radius: 22, Mass: 5.0, Gravity: 80, RodLength: 220,
		Damping: 1.0, InitialAngle: math.Pi / 4, Dt: 1.0 / 60, Duration: 20,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	clone := *cfg
	return &clone
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
