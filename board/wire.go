package board

import (
	"fmt"

	"tinygo.org/x/drivers"

	"periphfake/core"
	"periphfake/hal"
)

// TwoWire is an I2C front-end. Every call is forwarded unchanged to the Wire
// instance of the current generation.
type TwoWire struct {
	streamProxy
	name string
}

var _ hal.Wire = (*TwoWire)(nil)

// Wire is the board's default I2C controller
var Wire = &TwoWire{
	streamProxy: streamProxy{target: func() hal.Stream { return core.Get().Wire() }},
	name:        "Wire",
}

func (w *TwoWire) String() string {
	return w.name
}

func (w *TwoWire) Begin() {
	core.Get().Wire().Begin()
}

func (w *TwoWire) End() {
	core.Get().Wire().End()
}

func (w *TwoWire) SetClock(hz uint32) {
	core.Get().Wire().SetClock(hz)
}

func (w *TwoWire) BeginTransmission(addr hal.I2CAddress) {
	core.Get().Wire().BeginTransmission(addr)
}

func (w *TwoWire) EndTransmission(stop bool) uint8 {
	return core.Get().Wire().EndTransmission(stop)
}

func (w *TwoWire) RequestFrom(addr hal.I2CAddress, quantity int, stop bool) int {
	return core.Get().Wire().RequestFrom(addr, quantity, stop)
}

// I2CError reports a failed transaction made through a driver adapter
type I2CError struct {
	Addr   uint16
	Status uint8 // hal.I2C* result code, 0 for a short read
	Want   int
	Got    int
}

func (e *I2CError) Error() string {
	if e.Status != hal.I2CSuccess {
		return fmt.Sprintf("i2c 0x%02x: end transmission status %d", e.Addr, e.Status)
	}
	return fmt.Sprintf("i2c 0x%02x: short read, want %d bytes, got %d", e.Addr, e.Want, e.Got)
}

// Driver adapts the controller to tinygo.org/x/drivers.I2C so TinyGo device
// drivers run against the Wire double.
func (w *TwoWire) Driver() drivers.I2C {
	return i2cDriver{wire: w}
}

type i2cDriver struct {
	wire *TwoWire
}

var _ drivers.I2C = i2cDriver{}

// Tx writes w to addr, then reads len(r) bytes with a repeated start.
func (d i2cDriver) Tx(addr uint16, w, r []byte) error {
	target := hal.I2CAddress(addr)

	if len(w) > 0 {
		d.wire.BeginTransmission(target)
		if _, err := d.wire.Write(w); err != nil {
			return err
		}
		if status := d.wire.EndTransmission(len(r) == 0); status != hal.I2CSuccess {
			return &I2CError{Addr: addr, Status: status}
		}
	}

	if len(r) == 0 {
		return nil
	}

	if got := d.wire.RequestFrom(target, len(r), true); got < len(r) {
		return &I2CError{Addr: addr, Want: len(r), Got: got}
	}
	for i := range r {
		r[i] = byte(d.wire.Read())
	}
	return nil
}
