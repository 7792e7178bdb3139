//go:build !wasm

package serial

import (
	"errors"
	"fmt"
	"time"

	"github.com/tarm/serial"
)

// NativePort is a host serial device opened through tarm/serial.
//
// With a non-zero ReadTimeout, a Read that times out returns 0 and io.EOF.
// Callers polling the port treat that as "nothing yet".
type NativePort struct {
	*serial.Port
	device string
	frame  Frame
}

var _ Port = (*NativePort)(nil)

// Open opens the device described by cfg
func Open(cfg *Config) (*NativePort, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Device == "" {
		return nil, errors.New("no serial device given")
	}

	baud := cfg.Baud
	if baud <= 0 {
		baud = DefaultBaud
	}
	frame := cfg.Frame.normalized()

	stop := serial.Stop1
	if frame.StopBits == 2 {
		stop = serial.Stop2
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
		Size:        frame.DataBits,
		Parity:      serial.Parity(frame.Parity),
		StopBits:    stop,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s (%d %s): %w", cfg.Device, baud, frame, err)
	}

	return &NativePort{Port: port, device: cfg.Device, frame: frame}, nil
}

// Device returns the path the port was opened with
func (p *NativePort) Device() string {
	return p.device
}

// Frame returns the character format in use
func (p *NativePort) Frame() Frame {
	return p.frame
}
