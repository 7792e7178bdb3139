package core_test

import (
	"bytes"
	"log"
	"os"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"periphfake/board"
	"periphfake/core"
	"periphfake/hal"
)

var _ = Describe("Context", func() {
	var c *core.Context

	BeforeEach(func() {
		core.Reset()
		c = core.Get()
	})

	It("should be a process-wide singleton", func() {
		Expect(core.Get()).To(BeIdenticalTo(c))
		Expect(core.Get()).To(BeIdenticalTo(core.Get()))
	})

	It("should keep the context across a reset", func() {
		gen := c.Generation()

		core.Reset()

		Expect(core.Get()).To(BeIdenticalTo(c))
		Expect(c.Generation()).To(Equal(gen + 1))
	})

	It("should return the same instance twice in a generation", func() {
		for _, cat := range core.Categories() {
			Expect(c.Instance(cat)).To(BeIdenticalTo(c.Instance(cat)), cat.String())
		}
	})

	It("should back every instance with the double of its category", func() {
		Expect(c.Serial()).To(BeIdenticalTo(c.SerialMock()))
		Expect(c.Double(core.SPI)).To(BeIdenticalTo(c.SPIMock()))

		fn := c.Function()
		Expect(c.Instances.Function).To(BeIdenticalTo(fn))
		Expect(fn).To(BeIdenticalTo(c.FunctionMock()))
	})

	It("should forget call history on reset", func() {
		for _, cat := range core.Categories() {
			Expect(c.Instance(cat)).NotTo(BeNil())
		}
		c.Serial().Begin(9600)
		c.Function().Millis()
		c.Stream().Read()
		c.Print().Flush()
		c.SPI().Begin()
		c.Wire().Begin()

		core.Reset()

		Expect(c.SerialMock().Calls).To(BeEmpty())
		Expect(c.FunctionMock().Calls).To(BeEmpty())
		Expect(c.StreamMock().Calls).To(BeEmpty())
		Expect(c.PrintMock().Calls).To(BeEmpty())
		Expect(c.SPIMock().Calls).To(BeEmpty())
		Expect(c.WireMock().Calls).To(BeEmpty())
	})

	It("should derive a cleared instance from the same double", func() {
		d := c.SerialMock()
		c.Instances.Serial = nil

		Expect(c.Serial()).To(BeIdenticalTo(d))
	})

	It("should use a replaced instance", func() {
		s := c.StreamMock()
		c.Instances.Print = s

		Expect(c.Print()).To(BeIdenticalTo(s))
	})

	It("should trace the lifecycle when debug is enabled", func() {
		var lines []string
		prev := core.SetDebugWriter(func(s string) { lines = append(lines, s) })
		core.SetDebugEnabled(true)
		DeferCleanup(func() {
			core.SetDebugEnabled(false)
			core.SetDebugWriter(prev)
		})

		core.Reset()
		c.SPIMock()

		Expect(core.IsDebugEnabled()).To(BeTrue())
		Expect(lines).To(ContainElement(HavePrefix("reset, generation")))
		Expect(lines).To(ContainElement("created SPI double"))
	})

	It("should log through the default writer", func() {
		var buf bytes.Buffer
		log.SetOutput(&buf)
		core.SetDebugEnabled(true)
		DeferCleanup(func() {
			core.SetDebugEnabled(false)
			log.SetOutput(os.Stderr)
		})

		core.Reset()

		Expect(buf.String()).To(ContainSubstring("periphfake: reset, generation"))
	})

	Context("SPI scenario", func() {
		It("should answer the stub until reset", func() {
			c.SPIMock().On("Transfer", byte(0x00)).Return(byte(0x42)).Once()

			Expect(board.SPI.Transfer(0x00)).To(Equal(byte(0x42)))

			core.Reset()

			Expect(board.SPI.Transfer(0x00)).To(Equal(byte(0)))
			Expect(c.SPIMock().Calls).To(HaveLen(1))
		})

		It("should start a new generation with empty history", func() {
			board.SPI.Transfer(0x01)
			core.Reset()

			Expect(c.SPIMock().Calls).To(BeEmpty())
		})
	})

	Context("Function scenario", func() {
		It("should count calls per generation", func() {
			fn := c.Function()
			Expect(c.Function()).To(BeIdenticalTo(fn))

			board.DigitalWrite(13, hal.High)
			board.Delay(10)
			c.FunctionMock().AssertNumberOfCalls(GinkgoT(), "DigitalWrite", 1)

			core.Reset()

			Expect(c.Function()).NotTo(BeNil())
			Expect(c.FunctionMock().Calls).To(BeEmpty())
			c.FunctionMock().AssertNotCalled(GinkgoT(), "DigitalWrite", hal.Pin(13), hal.High)
		})

		It("should answer unconfigured calls with zero values", func() {
			Expect(board.DigitalRead(2)).To(Equal(hal.Low))
			Expect(board.Millis()).To(BeZero())
			Expect(board.Random(1, 10)).To(BeZero())
			Expect(c.FunctionMock().Calls).To(HaveLen(3))
		})
	})

	Context("Setup", func() {
		It("should bind the doubles to the test and check them at cleanup", func() {
			var ctx *core.Context
			By("starting a new generation", func() {
				gen := c.Generation()
				ctx = core.Setup(GinkgoT())
				Expect(ctx.Generation()).To(Equal(gen + 1))
			})

			ctx.WireMock().On("SetClock", uint32(400000)).Once()
			board.Wire.SetClock(400000)
		})

		It("should fail the bound test on a mismatch, before and after a reset", func() {
			rec := &recordingT{}
			DeferCleanup(rec.finish)
			ctx := core.Setup(rec)

			ctx.SPIMock().On("Transfer", byte(1)).Return(byte(9)).Once()
			Expect(func() { runBound(func() { board.SPI.Transfer(2) }) }).NotTo(Panic())
			Expect(rec.failedNow()).To(BeTrue())
			Expect(rec.output()).To(ContainSubstring("Unexpected Method Call"))

			core.Reset()
			rec.failed = false

			ctx.SPIMock().On("Transfer", byte(3)).Return(byte(9)).Once()
			Expect(func() { runBound(func() { board.SPI.Transfer(4) }) }).NotTo(Panic())
			Expect(rec.failedNow()).To(BeTrue())
			Expect(strings.Count(rec.output(), "Unexpected Method Call")).To(Equal(2))

			rec.finish()
			Expect(strings.Count(rec.output(), "expectation(s) were met")).To(Equal(2))
		})

		It("should assert the outgoing generation at a reset", func() {
			rec := &recordingT{}
			DeferCleanup(rec.finish)
			ctx := core.Setup(rec)

			ctx.SPIMock().On("Begin").Once()
			core.Reset()

			Expect(rec.output()).To(ContainSubstring("FAIL: 0 out of 1 expectation(s) were met"))

			board.SPI.Begin()
			rec.finish()
			Expect(strings.Count(rec.output(), "expectation(s) were met")).To(Equal(1))
		})

		It("should stop asserting once the test is finished", func() {
			rec := &recordingT{}
			ctx := core.Setup(rec)
			rec.finish()

			ctx.SPIMock().On("Begin").Once()
			core.Reset()

			Expect(rec.output()).To(BeEmpty())
		})
	})
})
