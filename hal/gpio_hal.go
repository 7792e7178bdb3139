package hal

// Pin identifies a board pin number
type Pin uint8

// PinMode selects how a pin is driven
type PinMode uint8

const (
	Input PinMode = iota
	Output
	InputPullUp
	InputPullDown
)

// PinState is the logic level of a digital pin
type PinState uint8

const (
	Low  PinState = 0
	High PinState = 1
)

// InterruptMode selects which edge triggers an attached interrupt
type InterruptMode uint8

const (
	Change InterruptMode = iota + 1
	Falling
	Rising
)

// Function is the board-level API that firmware calls as free functions
// (pin control, analog I/O, time, tone, interrupts, random numbers).
type Function interface {
	// PinMode configures a pin as input or output
	PinMode(pin Pin, mode PinMode)

	// DigitalWrite drives an output pin high or low
	DigitalWrite(pin Pin, state PinState)

	// DigitalRead samples a digital pin
	DigitalRead(pin Pin) PinState

	// AnalogRead samples an ADC channel
	AnalogRead(pin Pin) int

	// AnalogWrite sets a PWM duty cycle
	AnalogWrite(pin Pin, value int)

	// Millis returns milliseconds since boot
	Millis() uint32

	// Micros returns microseconds since boot
	Micros() uint32

	Delay(ms uint32)
	DelayMicroseconds(us uint32)

	// PulseIn measures the length in microseconds of a pulse at state.
	// Returns 0 when no pulse starts within timeout microseconds.
	PulseIn(pin Pin, state PinState, timeout uint32) uint32

	Tone(pin Pin, frequency uint32, duration uint32)
	NoTone(pin Pin)

	AttachInterrupt(interrupt uint8, handler func(), mode InterruptMode)
	DetachInterrupt(interrupt uint8)

	// Random returns a pseudo-random number in [low, high)
	Random(low, high int32) int32
	RandomSeed(seed uint32)
}
