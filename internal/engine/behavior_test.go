package engine_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbital/internal/body"
	"github.com/san-kum/orbital/internal/engine"
	"github.com/san-kum/orbital/internal/vec"
)

var _ = Describe("collision resolution", func() {
	var e *engine.Engine

	BeforeEach(func() {
		e = engine.New(engine.Options{})
	})

	It("conserves momentum through a merge", func() {
		a, err := e.AddBody(body.Planet, vec.New(0, 0), vec.New(10, 0))
		Expect(err).NotTo(HaveOccurred())
		b, err := e.AddBody(body.Moon, vec.New(4, 0), vec.New(0, -5))
		Expect(err).NotTo(HaveOccurred())

		want := a.Vel.Scale(a.Mass).Add(b.Vel.Scale(b.Mass))
		e.Step(0.001, 1)

		Expect(e.Bodies()).To(HaveLen(1))
		p := e.Momentum()
		Expect(p.X).To(BeNumerically("~", want.X, 1e-9))
		Expect(p.Y).To(BeNumerically("~", want.Y, 1e-9))
	})

	It("lets the heavier body absorb the lighter one", func() {
		planet, _ := e.AddBody(body.Planet, vec.New(0, 0), vec.Zero)
		_, _ = e.AddBody(body.Moon, vec.New(4, 0), vec.Zero)

		e.Step(0.001, 1)

		Expect(e.Bodies()).To(HaveLen(1))
		Expect(e.Bodies()[0]).To(BeIdenticalTo(planet))
		Expect(planet.Kind).To(Equal(body.Planet))
	})

	It("grows the survivor's radius by the cube root of the mass ratio", func() {
		planet, _ := e.AddBody(body.Planet, vec.New(0, 0), vec.Zero)
		moon, _ := e.AddBody(body.Moon, vec.New(4, 0), vec.Zero)
		r0 := planet.Radius
		ratio := (planet.Mass + moon.Mass) / planet.Mass

		e.Step(0.001, 1)

		Expect(planet.Radius).To(BeNumerically("~", r0*math.Cbrt(ratio), 1e-9))
	})

	It("chains merges within a single pass", func() {
		// The first merge drags the survivor to the pair's barycenter,
		// close enough to absorb the third body in the same pass.
		_, _ = e.AddBody(body.Planet, vec.New(0, 0), vec.Zero)
		_, _ = e.AddBody(body.Planet, vec.New(4, 0), vec.Zero)
		_, _ = e.AddBody(body.Planet, vec.New(8, 0), vec.Zero)

		e.Step(0.001, 1)

		Expect(e.Bodies()).To(HaveLen(1))
		Expect(e.Bodies()[0].Mass).To(BeNumerically("~", 36, 1e-9))
	})

	It("keeps two merging stars a star", func() {
		a, _ := e.AddBody(body.Star, vec.New(0, 0), vec.Zero)
		b, _ := e.AddBody(body.Star, vec.New(5, 0), vec.Zero)
		total := a.Mass + b.Mass

		e.Step(0.001, 1)

		Expect(e.Bodies()).To(HaveLen(1))
		Expect(e.Bodies()[0].Kind).To(Equal(body.Star))
		Expect(e.Bodies()[0].Mass).To(Equal(total))
	})

	It("promotes a heavy non-star merge result to a star", func() {
		a, _ := e.AddBody(body.Planet, vec.New(0, 0), vec.Zero)
		b, _ := e.AddBody(body.Planet, vec.New(4, 0), vec.Zero)
		// Grown past the promotion threshold by earlier absorptions.
		a.Mass = 300
		b.Mass = 250

		e.Step(0.001, 1)

		Expect(e.Bodies()).To(HaveLen(1))
		Expect(e.Bodies()[0].Kind).To(Equal(body.Star))
		Expect(e.Bodies()[0].Mass).To(Equal(550.0))
	})
})

var _ = Describe("frame bookkeeping", func() {
	It("appends one trail entry and one age tick per frame", func() {
		e := engine.New(engine.Options{})
		b, _ := e.AddBody(body.Planet, vec.New(100, 0), vec.New(0, 10))

		for i := 1; i <= 3; i++ {
			e.Step(0.016, 1)
			Expect(b.Trail).To(HaveLen(i))
			Expect(b.Age).To(Equal(i))
		}
	})

	It("keeps running when tunables change between steps", func() {
		e := engine.New(engine.Options{})
		e.DemoScene()

		e.Step(0.016, 1)
		e.G *= 2
		e.Softening = 4
		e.Step(0.016, 1)

		Expect(e.Elapsed()).To(BeNumerically("~", 0.032, 1e-12))
		Expect(e.Bodies()).To(HaveLen(5))
	})
})

