package fixture

import (
	"errors"
	"io"

	"github.com/stretchr/testify/mock"

	"periphfake/trace"
)

// DefaultRXSize is the smallest receive buffer an RX is created with
const DefaultRXSize = 256

// RX is a receive buffer behind a stream double. Once attached, the
// double's Available, Read, Peek and ReadBytes answer from it.
type RX struct {
	fifo *trace.FifoBuffer
}

// NewRX returns an RX holding data
func NewRX(data []byte) *RX {
	size := DefaultRXSize
	if len(data)+1 > size {
		size = len(data) + 1
	}
	r := &RX{fifo: trace.NewFifoBuffer(size)}
	r.fifo.Write(data)
	return r
}

// Push appends data and returns how many bytes fit
func (r *RX) Push(data []byte) int {
	return r.fifo.Write(data)
}

// Available returns the number of bytes not yet read
func (r *RX) Available() int {
	return r.fifo.Available()
}

// Reset drops everything not yet read
func (r *RX) Reset() {
	r.fifo.Reset()
}

func (r *RX) read() int {
	b, ok := r.fifo.ReadByte()
	if !ok {
		return -1
	}
	return int(b)
}

func (r *RX) peek() int {
	b, ok := r.fifo.Peek()
	if !ok {
		return -1
	}
	return int(b)
}

// Attach stubs s so its read side is served from r. The stubs are
// optional: a test that never reads does not fail.
func (r *RX) Attach(s Stub) {
	s.On("Available").Return(func() int { return r.fifo.Available() }).Maybe()
	s.On("Read").Return(func() int { return r.read() }).Maybe()
	s.On("Peek").Return(func() int { return r.peek() }).Maybe()

	var n int
	s.On("ReadBytes", mock.Anything).
		Run(func(args mock.Arguments) { n = r.fifo.Read(args.Get(0).([]byte)) }).
		Return(func() int { return n }).
		Maybe()
}

// Replay builds an RX from the received records of a trace
func Replay(tr *trace.Reader) (*RX, error) {
	var data []byte
	for {
		rec, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if rec.Dir == trace.RX {
			data = append(data, rec.Data...)
		}
	}
	return NewRX(data), nil
}
