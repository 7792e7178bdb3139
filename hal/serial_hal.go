package hal

// SerialConfig encodes data bits, parity and stop bits of a UART frame.
// The values match the firmware API constants (SERIAL_8N1 and friends).
type SerialConfig uint8

const (
	Serial5N1 SerialConfig = 0x00
	Serial6N1 SerialConfig = 0x02
	Serial7N1 SerialConfig = 0x04
	Serial8N1 SerialConfig = 0x06
	Serial8N2 SerialConfig = 0x0E
	Serial8E1 SerialConfig = 0x26
	Serial8O1 SerialConfig = 0x36
)

// Serial is a UART. A Serial is a Stream, so code holding a Stream may be
// talking to the serial port.
type Serial interface {
	Stream

	// Begin opens the port with the default 8N1 frame
	Begin(baud uint32)

	// BeginWithConfig opens the port with an explicit frame format
	BeginWithConfig(baud uint32, config SerialConfig)

	End()

	// AvailableForWrite returns free space in the transmit buffer
	AvailableForWrite() int

	// Ready reports whether the port is open (USB CDC: host connected)
	Ready() bool
}
