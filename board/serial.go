package board

import (
	"periphfake/core"
	"periphfake/hal"
)

// SerialPort is a UART front-end. Every call is forwarded unchanged to the
// Serial instance of the current generation.
type SerialPort struct {
	streamProxy
	name string
}

var _ hal.Serial = (*SerialPort)(nil)

// Serial is the board's primary UART
var Serial = &SerialPort{
	streamProxy: streamProxy{target: func() hal.Stream { return core.Get().Serial() }},
	name:        "Serial",
}

func (s *SerialPort) String() string {
	return s.name
}

func (s *SerialPort) Begin(baud uint32) {
	core.Get().Serial().Begin(baud)
}

func (s *SerialPort) BeginWithConfig(baud uint32, config hal.SerialConfig) {
	core.Get().Serial().BeginWithConfig(baud, config)
}

func (s *SerialPort) End() {
	core.Get().Serial().End()
}

func (s *SerialPort) AvailableForWrite() int {
	return core.Get().Serial().AvailableForWrite()
}

func (s *SerialPort) Ready() bool {
	return core.Get().Serial().Ready()
}
