package cradle_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/JulianCruzet/Newtons-Cradle/internal/cradle"
)

// twoBallChain builds a two-ball chain at rest, balls exactly touching.
func twoBallChain() *cradle.Chain {
	cfg := cradle.Default()
	cfg.Balls = 2
	cfg.InitialAngle = 0
	c, err := cradle.New(cfg)
	Expect(err).NotTo(HaveOccurred())
	return c
}

var _ = Describe("Resolver", func() {
	var r *cradle.Resolver

	BeforeEach(func() {
		r = cradle.NewResolver()
	})

	Describe("a closing pair in contact", func() {
		It("swaps the angular velocities exactly", func() {
			c := twoBallChain()
			c.Pendulums[1].Velocity = -0.1

			r.Resolve(c)

			Expect(c.Pendulums[0].Velocity).To(BeNumerically("~", -0.1, 1e-12))
			Expect(c.Pendulums[1].Velocity).To(BeNumerically("~", 0.0, 1e-12))
		})

		It("never modifies angles or pivots", func() {
			c := twoBallChain()
			c.Pendulums[1].Velocity = -0.1
			angles := []float64{c.Pendulums[0].Angle, c.Pendulums[1].Angle}
			pivots := []cradle.Point{c.Pendulums[0].Pivot, c.Pendulums[1].Pivot}

			r.Resolve(c)

			for i, p := range c.Pendulums {
				Expect(p.Angle).To(Equal(angles[i]))
				Expect(p.Pivot).To(Equal(pivots[i]))
			}
		})

		It("swaps regardless of mass", func() {
			c := twoBallChain()
			c.Pendulums[0].Mass = 10
			c.Pendulums[1].Velocity = -0.1

			r.Resolve(c)

			Expect(c.Pendulums[0].Velocity).To(BeNumerically("~", -0.1, 1e-12))
			Expect(c.Pendulums[1].Velocity).To(BeNumerically("~", 0.0, 1e-12))
		})
	})

	Describe("non-qualifying pairs", func() {
		It("ignores balls separated beyond the contact distance", func() {
			c := twoBallChain()
			c.Pendulums[1].Angle = 0.5 // swung away, gap well over 2r + tolerance
			c.Pendulums[1].Velocity = -0.1

			r.Resolve(c)

			Expect(c.Pendulums[0].Velocity).To(BeZero())
			Expect(c.Pendulums[1].Velocity).To(Equal(-0.1))
			Expect(r.Swaps()).To(BeZero())
		})

		It("ignores a contact pair that is moving apart", func() {
			c := twoBallChain()
			c.Pendulums[1].Velocity = 0.1

			r.Resolve(c)

			Expect(c.Pendulums[0].Velocity).To(BeZero())
			Expect(c.Pendulums[1].Velocity).To(Equal(0.1))
			Expect(r.Swaps()).To(BeZero())
		})
	})

	Describe("cascades", func() {
		It("propagates a right-side impact to the leftmost ball in one sweep", func() {
			cfg := cradle.Default()
			cfg.Balls = 4
			cfg.InitialAngle = 0
			c, err := cradle.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			c.Pendulums[3].Velocity = -1.0

			r.Resolve(c)

			Expect(c.Pendulums[0].Velocity).To(BeNumerically("~", -1.0, 1e-12))
			for i := 1; i < 4; i++ {
				Expect(c.Pendulums[i].Velocity).To(BeNumerically("~", 0.0, 1e-12))
			}
			// one sweep of swaps plus the clean sweep that ends resolution
			Expect(r.Swaps()).To(Equal(3))
			Expect(r.Sweeps()).To(Equal(2))
		})

		It("exits on the first sweep when nothing qualifies", func() {
			c := twoBallChain()

			r.Resolve(c)
			r.Resolve(c)

			Expect(r.Swaps()).To(BeZero())
			Expect(r.Sweeps()).To(Equal(1))
		})

		It("never exceeds the sweep cap", func() {
			cfg := cradle.Default()
			cfg.Balls = 6
			cfg.InitialAngle = 0
			c, err := cradle.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			// converging velocities from both ends
			c.Pendulums[5].Velocity = -2.0
			c.Pendulums[4].Velocity = -1.0
			c.Pendulums[0].Velocity = 1.0
			c.Pendulums[1].Velocity = 0.5

			r.Resolve(c)

			Expect(r.Sweeps()).To(BeNumerically("<=", r.MaxSweeps))
		})
	})
})
