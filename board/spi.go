package board

import (
	"errors"

	"tinygo.org/x/drivers"

	"periphfake/core"
	"periphfake/hal"
)

// SPIBus is an SPI front-end. Every call is forwarded unchanged to the SPI
// instance of the current generation.
type SPIBus struct {
	name string
}

var _ hal.SPI = (*SPIBus)(nil)

// SPI is the board's default SPI bus
var SPI = &SPIBus{name: "SPI"}

func (s *SPIBus) String() string {
	return s.name
}

func (s *SPIBus) Begin() {
	core.Get().SPI().Begin()
}

func (s *SPIBus) End() {
	core.Get().SPI().End()
}

func (s *SPIBus) BeginTransaction(settings hal.SPISettings) {
	core.Get().SPI().BeginTransaction(settings)
}

func (s *SPIBus) EndTransaction() {
	core.Get().SPI().EndTransaction()
}

func (s *SPIBus) Transfer(data byte) byte {
	return core.Get().SPI().Transfer(data)
}

func (s *SPIBus) Transfer16(data uint16) uint16 {
	return core.Get().SPI().Transfer16(data)
}

func (s *SPIBus) TransferBuffer(buf []byte) {
	core.Get().SPI().TransferBuffer(buf)
}

// ErrTxLength is returned by a driver adapter when the write and read
// buffers of a full-duplex transfer differ in length
var ErrTxLength = errors.New("tx and rx buffers differ in length")

// Driver adapts the bus to tinygo.org/x/drivers.SPI so TinyGo device
// drivers run against the SPI double.
func (s *SPIBus) Driver() drivers.SPI {
	return spiDriver{bus: s}
}

type spiDriver struct {
	bus *SPIBus
}

var _ drivers.SPI = spiDriver{}

// Tx exchanges w and r one byte at a time. A nil w clocks out zeros; a nil r
// discards what is received.
func (d spiDriver) Tx(w, r []byte) error {
	switch {
	case w == nil:
		for i := range r {
			r[i] = d.bus.Transfer(0)
		}
	case r == nil:
		for _, b := range w {
			d.bus.Transfer(b)
		}
	default:
		if len(w) != len(r) {
			return ErrTxLength
		}
		for i, b := range w {
			r[i] = d.bus.Transfer(b)
		}
	}
	return nil
}

func (d spiDriver) Transfer(b byte) (byte, error) {
	return d.bus.Transfer(b), nil
}
