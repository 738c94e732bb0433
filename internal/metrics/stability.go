package metrics

import (
	"math"

	"github.com/JulianCruzet/Newtons-Cradle/internal/sim"
)

// PeakAngle tracks the largest |angle| reached by one ball. With damping
// below 1.0 the peak over a late window must fall under the initial raise.
type PeakAngle struct {
	ball int
	peak float64
}

func NewPeakAngle(ball int) *PeakAngle {
	return &PeakAngle{ball: ball}
}

func (p *PeakAngle) Name() string { return "peak_angle" }

func (p *PeakAngle) Observe(x sim.State, t float64) {
	n := len(x) / 2
	if p.ball < 0 || p.ball >= n {
		return
	}
	if a := math.Abs(x[p.ball]); a > p.peak {
		p.peak = a
	}
}

func (p *PeakAngle) Value() float64 { return p.peak }

func (p *PeakAngle) Reset() { p.peak = 0 }

// Stability reports the fraction of samples in which every state component
// stayed inside a threshold.
type Stability struct {
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{threshold: threshold}
}

func (s *Stability) Name() string { return "stability" }

func (s *Stability) Observe(x sim.State, t float64) {
	s.samples++
	for _, v := range x {
		if math.Abs(v) > s.threshold {
			s.violations++
			break
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
