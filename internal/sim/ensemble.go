package sim

import (
	"context"
	"sync"

	"github.com/JulianCruzet/Newtons-Cradle/internal/cradle"
)

// Ensemble runs many independent configurations in parallel, one goroutine
// per run. The physics core stays single-threaded; only whole runs are
// parallel, each over its own chain.
type Ensemble struct {
	configs      []cradle.Config
	buildMetrics func(cradle.Config) []Metric
}

func NewEnsemble(configs []cradle.Config, buildMetrics func(cradle.Config) []Metric) *Ensemble {
	return &Ensemble{configs: configs, buildMetrics: buildMetrics}
}

// Run executes every configuration and returns results in config order.
// The first run error, if any, is returned after all runs finish.
func (e *Ensemble) Run(ctx context.Context, rc RunConfig) ([]*Result, error) {
	results := make([]*Result, len(e.configs))
	errs := make([]error, len(e.configs))

	var wg sync.WaitGroup
	for i, cfg := range e.configs {
		wg.Add(1)
		go func(idx int, cfg cradle.Config) {
			defer wg.Done()

			runner := NewRunner()
			if e.buildMetrics != nil {
				for _, m := range e.buildMetrics(cfg) {
					runner.AddMetric(m)
				}
			}

			results[idx], errs[idx] = runner.Run(ctx, cfg, rc)
		}(i, cfg)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}

	return results, nil
}
