package mocks

import (
	"github.com/stretchr/testify/mock"

	"periphfake/hal"
)

// Wire is a double for hal.Wire.
type Wire struct {
	mock.Mock
	streamer
}

var _ hal.Wire = (*Wire)(nil)

// NewWire returns a Wire double with no expectations.
func NewWire() *Wire {
	w := &Wire{}
	w.streamer = streamer{printer{m: &w.Mock}}
	return w
}

func (w *Wire) Begin() {
	invoke(&w.Mock, "Begin")
}

func (w *Wire) End() {
	invoke(&w.Mock, "End")
}

func (w *Wire) SetClock(hz uint32) {
	invoke(&w.Mock, "SetClock", hz)
}

func (w *Wire) BeginTransmission(addr hal.I2CAddress) {
	invoke(&w.Mock, "BeginTransmission", addr)
}

func (w *Wire) EndTransmission(stop bool) uint8 {
	return result[uint8](invoke(&w.Mock, "EndTransmission", stop), "EndTransmission", 0)
}

func (w *Wire) RequestFrom(addr hal.I2CAddress, quantity int, stop bool) int {
	ret := invoke(&w.Mock, "RequestFrom", addr, quantity, stop)
	return result[int](ret, "RequestFrom", 0)
}
