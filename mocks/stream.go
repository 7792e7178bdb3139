package mocks

import (
	"github.com/stretchr/testify/mock"

	"periphfake/hal"
)

// streamer adds the hal.Stream read side to printer.
type streamer struct {
	printer
}

func (s streamer) Available() int {
	return result[int](invoke(s.m, "Available"), "Available", 0)
}

func (s streamer) Read() int {
	return result[int](invoke(s.m, "Read"), "Read", 0)
}

func (s streamer) Peek() int {
	return result[int](invoke(s.m, "Peek"), "Peek", 0)
}

func (s streamer) SetTimeout(ms uint32) {
	invoke(s.m, "SetTimeout", ms)
}

func (s streamer) Timeout() uint32 {
	return result[uint32](invoke(s.m, "Timeout"), "Timeout", 0)
}

func (s streamer) ReadBytes(buf []byte) int {
	return result[int](invoke(s.m, "ReadBytes", buf), "ReadBytes", 0)
}

func (s streamer) ReadBytesUntil(terminator byte, buf []byte) int {
	ret := invoke(s.m, "ReadBytesUntil", terminator, buf)
	return result[int](ret, "ReadBytesUntil", 0)
}

func (s streamer) ReadString() string {
	return result[string](invoke(s.m, "ReadString"), "ReadString", 0)
}

func (s streamer) ReadStringUntil(terminator byte) string {
	ret := invoke(s.m, "ReadStringUntil", terminator)
	return result[string](ret, "ReadStringUntil", 0)
}

func (s streamer) Find(target string) bool {
	return result[bool](invoke(s.m, "Find", target), "Find", 0)
}

func (s streamer) ParseInt() int32 {
	return result[int32](invoke(s.m, "ParseInt"), "ParseInt", 0)
}

func (s streamer) ParseFloat() float32 {
	return result[float32](invoke(s.m, "ParseFloat"), "ParseFloat", 0)
}

// Stream is a double for hal.Stream.
type Stream struct {
	mock.Mock
	streamer
}

var _ hal.Stream = (*Stream)(nil)

// NewStream returns a Stream double with no expectations.
func NewStream() *Stream {
	s := &Stream{}
	s.streamer = streamer{printer{m: &s.Mock}}
	return s
}
