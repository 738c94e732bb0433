package store

import (
	"encoding/json"
	"os"

	"github.com/JulianCruzet/Newtons-Cradle/internal/config"
	"github.com/JulianCruzet/Newtons-Cradle/internal/sim"
)

type ExportData struct {
	Config     config.Config      `json:"config"`
	Steps      int                `json:"steps"`
	Collisions int                `json:"collisions"`
	Times      []float64          `json:"times"`
	States     [][]float64        `json:"states"`
	Metrics    map[string]float64 `json:"metrics"`
}

// ExportJSON writes one full run, trajectory included, to a single file.
func ExportJSON(path string, cfg *config.Config, result *sim.Result) error {
	states := make([][]float64, len(result.States))
	for i, s := range result.States {
		states[i] = s
	}

	data := ExportData{
		Config:     *cfg,
		Steps:      result.StepsTaken,
		Collisions: result.Collisions,
		Times:      result.Times,
		States:     states,
		Metrics:    result.Metrics,
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
