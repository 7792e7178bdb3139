package core_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"periphfake/board"
	"periphfake/core"
	"periphfake/hal"
)

type unregistered struct{ n int }

var _ = Describe("Resolve", func() {
	var c *core.Context

	BeforeEach(func() {
		core.Reset()
		c = core.Get()
	})

	It("should resolve the serial singleton as a stream", func() {
		s, err := core.Resolve[hal.Stream](c, board.Serial)

		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(BeIdenticalTo(hal.Stream(c.Serial())))
	})

	It("should resolve the serial double as a stream", func() {
		d := c.SerialMock()

		s, err := core.Resolve[hal.Stream](c, d)

		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(BeIdenticalTo(hal.Stream(c.Serial())))
	})

	It("should resolve the same object through every view", func() {
		p, err := core.Resolve[hal.Print](c, board.Serial)
		Expect(err).NotTo(HaveOccurred())
		s, err := core.Resolve[hal.Serial](c, board.Serial)
		Expect(err).NotTo(HaveOccurred())

		Expect(p).To(BeIdenticalTo(hal.Print(s)))
	})

	It("should resolve every board singleton to its category", func() {
		for obj, want := range map[any]core.Category{
			board.Serial: core.Serial,
			board.SPI:    core.SPI,
			board.Wire:   core.Wire,
		} {
			cat, ok := core.Identify(c, obj)
			Expect(ok).To(BeTrue())
			Expect(cat).To(Equal(want))
		}
	})

	It("should resolve the wire singleton as a stream", func() {
		s := core.MustResolve[hal.Stream](c, board.Wire)

		Expect(s).To(BeIdenticalTo(hal.Stream(c.WireMock())))
	})

	It("should not create doubles while identifying", func() {
		_, ok := core.Identify(c, &unregistered{})
		Expect(ok).To(BeFalse())

		Expect(c.Instances.SPI).To(BeNil())
		Expect(c.Instances.Function).To(BeNil())
	})

	It("should not match a double of an earlier generation", func() {
		old := c.SPIMock()
		core.Reset()

		_, err := core.Resolve[hal.SPI](c, old)

		Expect(errors.Is(err, core.ErrUnknownInstance)).To(BeTrue())
	})

	It("should fail on an unknown instance", func() {
		obj := &unregistered{}

		_, err := core.Resolve[hal.Print](c, obj)

		Expect(err).To(MatchError("Unknown instance"))
		Expect(err).To(MatchError(core.ErrUnknownInstance))

		var cerr *core.Error
		Expect(errors.As(err, &cerr)).To(BeTrue())
		Expect(cerr.Kind).To(Equal(core.UnknownInstance))
		Expect(cerr.Identity).To(BeIdenticalTo(obj))
	})

	It("should fail on nil", func() {
		_, err := core.Resolve[hal.Stream](c, nil)
		Expect(err).To(MatchError(core.ErrUnknownInstance))
	})

	It("should panic when the category lacks the interface", func() {
		Expect(func() {
			_, _ = core.Resolve[hal.SPI](c, board.Serial)
		}).To(PanicWith(ContainSubstring("does not implement hal.SPI")))

		Expect(func() {
			core.MustResolve[hal.Print](c, &unregistered{})
		}).To(Panic())
	})

	It("should reject bad registrations", func() {
		Expect(func() {
			core.RegisterIdentity(core.Category(99), func(*core.Context) any { return nil })
		}).To(Panic())
		Expect(func() { core.RegisterIdentity(core.SPI, nil) }).To(Panic())
	})
})

var _ = Describe("Category", func() {
	It("should name every category", func() {
		names := []string{}
		for _, cat := range core.Categories() {
			names = append(names, cat.String())
		}
		Expect(names).To(Equal([]string{"Function", "Print", "Stream", "Serial", "SPI", "Wire"}))
		Expect(core.Category(42).String()).To(Equal("Category(42)"))
	})
})
