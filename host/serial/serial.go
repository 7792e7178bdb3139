// Package serial connects doubles to real serial ports for
// hardware-in-the-loop tests and traffic capture.
package serial

import (
	"io"
)

//go:generate mockgen -destination "mock_serial_test.go" -package $GOPACKAGE -write_package_comment=false periphfake/host/serial Port

// Port is what a Bridge needs from a serial device. NativePort implements
// it for real hardware.
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate (USB CDC ignores this)
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int

	// Frame is the character format, 8N1 when zero
	Frame Frame
}

// DefaultBaud matches the default of Begin in most firmware sketches
const DefaultBaud = 115200

// DefaultConfig returns a configuration with short reads, so a bridged
// double never blocks the test for long
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        DefaultBaud,
		ReadTimeout: 50,
	}
}
