package board

import (
	"periphfake/core"
	"periphfake/hal"
)

// Board functions. Each forwards to the Function instance of the current
// generation.

func PinMode(pin hal.Pin, mode hal.PinMode) {
	core.Get().Function().PinMode(pin, mode)
}

func DigitalWrite(pin hal.Pin, state hal.PinState) {
	core.Get().Function().DigitalWrite(pin, state)
}

func DigitalRead(pin hal.Pin) hal.PinState {
	return core.Get().Function().DigitalRead(pin)
}

func AnalogRead(pin hal.Pin) int {
	return core.Get().Function().AnalogRead(pin)
}

func AnalogWrite(pin hal.Pin, value int) {
	core.Get().Function().AnalogWrite(pin, value)
}

func Millis() uint32 {
	return core.Get().Function().Millis()
}

func Micros() uint32 {
	return core.Get().Function().Micros()
}

func Delay(ms uint32) {
	core.Get().Function().Delay(ms)
}

func DelayMicroseconds(us uint32) {
	core.Get().Function().DelayMicroseconds(us)
}

func PulseIn(pin hal.Pin, state hal.PinState, timeout uint32) uint32 {
	return core.Get().Function().PulseIn(pin, state, timeout)
}

func Tone(pin hal.Pin, frequency uint32, duration uint32) {
	core.Get().Function().Tone(pin, frequency, duration)
}

func NoTone(pin hal.Pin) {
	core.Get().Function().NoTone(pin)
}

func AttachInterrupt(interrupt uint8, handler func(), mode hal.InterruptMode) {
	core.Get().Function().AttachInterrupt(interrupt, handler, mode)
}

func DetachInterrupt(interrupt uint8) {
	core.Get().Function().DetachInterrupt(interrupt)
}

func Random(low, high int32) int32 {
	return core.Get().Function().Random(low, high)
}

func RandomSeed(seed uint32) {
	core.Get().Function().RandomSeed(seed)
}
