package mocks

import (
	"github.com/stretchr/testify/mock"

	"periphfake/hal"
)

// Function is a double for the board-level hal.Function API.
type Function struct {
	mock.Mock
}

var _ hal.Function = (*Function)(nil)

// NewFunction returns a Function double with no expectations.
func NewFunction() *Function {
	return &Function{}
}

func (f *Function) PinMode(pin hal.Pin, mode hal.PinMode) {
	invoke(&f.Mock, "PinMode", pin, mode)
}

func (f *Function) DigitalWrite(pin hal.Pin, state hal.PinState) {
	invoke(&f.Mock, "DigitalWrite", pin, state)
}

func (f *Function) DigitalRead(pin hal.Pin) hal.PinState {
	return result[hal.PinState](invoke(&f.Mock, "DigitalRead", pin), "DigitalRead", 0)
}

func (f *Function) AnalogRead(pin hal.Pin) int {
	return result[int](invoke(&f.Mock, "AnalogRead", pin), "AnalogRead", 0)
}

func (f *Function) AnalogWrite(pin hal.Pin, value int) {
	invoke(&f.Mock, "AnalogWrite", pin, value)
}

func (f *Function) Millis() uint32 {
	return result[uint32](invoke(&f.Mock, "Millis"), "Millis", 0)
}

func (f *Function) Micros() uint32 {
	return result[uint32](invoke(&f.Mock, "Micros"), "Micros", 0)
}

func (f *Function) Delay(ms uint32) {
	invoke(&f.Mock, "Delay", ms)
}

func (f *Function) DelayMicroseconds(us uint32) {
	invoke(&f.Mock, "DelayMicroseconds", us)
}

func (f *Function) PulseIn(pin hal.Pin, state hal.PinState, timeout uint32) uint32 {
	ret := invoke(&f.Mock, "PulseIn", pin, state, timeout)
	return result[uint32](ret, "PulseIn", 0)
}

func (f *Function) Tone(pin hal.Pin, frequency uint32, duration uint32) {
	invoke(&f.Mock, "Tone", pin, frequency, duration)
}

func (f *Function) NoTone(pin hal.Pin) {
	invoke(&f.Mock, "NoTone", pin)
}

func (f *Function) AttachInterrupt(interrupt uint8, handler func(), mode hal.InterruptMode) {
	invoke(&f.Mock, "AttachInterrupt", interrupt, handler, mode)
}

func (f *Function) DetachInterrupt(interrupt uint8) {
	invoke(&f.Mock, "DetachInterrupt", interrupt)
}

func (f *Function) Random(low, high int32) int32 {
	return result[int32](invoke(&f.Mock, "Random", low, high), "Random", 0)
}

func (f *Function) RandomSeed(seed uint32) {
	invoke(&f.Mock, "RandomSeed", seed)
}
