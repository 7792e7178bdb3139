package mocks

import (
	"github.com/stretchr/testify/mock"

	"periphfake/hal"
)

// Serial is a double for hal.Serial. Stream and Print calls made on it are
// recorded on the same mock as the UART calls.
type Serial struct {
	mock.Mock
	streamer
}

var _ hal.Serial = (*Serial)(nil)

// NewSerial returns a Serial double with no expectations.
func NewSerial() *Serial {
	s := &Serial{}
	s.streamer = streamer{printer{m: &s.Mock}}
	return s
}

func (s *Serial) Begin(baud uint32) {
	invoke(&s.Mock, "Begin", baud)
}

func (s *Serial) BeginWithConfig(baud uint32, config hal.SerialConfig) {
	invoke(&s.Mock, "BeginWithConfig", baud, config)
}

func (s *Serial) End() {
	invoke(&s.Mock, "End")
}

func (s *Serial) AvailableForWrite() int {
	return result[int](invoke(&s.Mock, "AvailableForWrite"), "AvailableForWrite", 0)
}

func (s *Serial) Ready() bool {
	return result[bool](invoke(&s.Mock, "Ready"), "Ready", 0)
}
