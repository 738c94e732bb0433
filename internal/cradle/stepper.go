package cradle

// Stepper advances a chain one frame at a time: integrate every pendulum,
// then resolve collisions exactly once. Integration has no inter-pendulum
// dependency, so per-pendulum order does not matter; resolving before all
// pendulums have integrated would mix partially-advanced state.
type Stepper struct {
	Resolver *Resolver
}

func NewStepper() *Stepper {
	return &Stepper{Resolver: NewResolver()}
}

// Step advances the whole chain by dt.
func (s *Stepper) Step(c *Chain, dt float64) {
	for _, p := range c.Pendulums {
		p.Integrate(c.Config, dt)
	}
	s.Resolver.Resolve(c)
}
