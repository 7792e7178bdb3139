package serial

import (
	"errors"
	"fmt"
	"io"

	"github.com/stretchr/testify/mock"

	"periphfake/fixture"
	"periphfake/trace"
)

// Bridge lets firmware talk to a real port through a stream double: output
// goes to the port, input comes from it, and every call is still recorded
// on the double.
type Bridge struct {
	port Port
	rx   *trace.FifoBuffer
	buf  []byte
	rec  *trace.Writer
	err  error
}

// NewBridge returns a Bridge over port
func NewBridge(port Port) *Bridge {
	return &Bridge{
		port: port,
		rx:   trace.NewFifoBuffer(fixture.DefaultRXSize),
		buf:  make([]byte, fixture.DefaultRXSize),
	}
}

// Record copies all traffic through the bridge into w
func (b *Bridge) Record(w *trace.Writer) {
	b.rec = w
}

// Err returns the first error seen on the port or the recorder
func (b *Bridge) Err() error {
	return b.err
}

func (b *Bridge) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *Bridge) record(dir trace.Direction, data []byte) {
	if b.rec == nil || len(data) == 0 {
		return
	}
	if err := b.rec.Write(trace.Record{Dir: dir, Data: data}); err != nil {
		b.fail(err)
	}
}

// pump moves whatever the port delivers within its read timeout into the
// receive buffer
func (b *Bridge) pump() {
	free := b.rx.Free()
	if free == 0 || b.err != nil {
		return
	}
	n, err := b.port.Read(b.buf[:free])
	if n > 0 {
		b.rx.Write(b.buf[:n])
		b.record(trace.RX, b.buf[:n])
	}
	if err != nil && !errors.Is(err, io.EOF) {
		b.fail(fmt.Errorf("bridge read: %w", err))
	}
}

func (b *Bridge) write(data []byte) (int, error) {
	n, err := b.port.Write(data)
	b.record(trace.TX, data[:n])
	if err != nil {
		err = fmt.Errorf("bridge write: %w", err)
		b.fail(err)
	}
	return n, err
}

// Attach stubs the stream methods of s to go through the port. The stubs
// are optional.
func (b *Bridge) Attach(s fixture.Stub) {
	var (
		n   int
		err error
	)

	s.On("Write", mock.Anything).
		Run(func(args mock.Arguments) { n, err = b.write(args.Get(0).([]byte)) }).
		Return(func() int { return n }, func() error { return err }).
		Maybe()

	s.On("WriteByte", mock.Anything).
		Run(func(args mock.Arguments) { _, err = b.write([]byte{args.Get(0).(byte)}) }).
		Return(func() error { return err }).
		Maybe()

	s.On("Print", mock.Anything).
		Run(func(args mock.Arguments) { n, _ = b.write([]byte(fmt.Sprint(args.Get(0).([]any)...))) }).
		Return(func() int { return n }).
		Maybe()

	s.On("Println", mock.Anything).
		Run(func(args mock.Arguments) { n, _ = b.write([]byte(fmt.Sprint(args.Get(0).([]any)...) + "\r\n")) }).
		Return(func() int { return n }).
		Maybe()

	s.On("Printf", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			n, _ = b.write([]byte(fmt.Sprintf(args.String(0), args.Get(1).([]any)...)))
		}).
		Return(func() int { return n }).
		Maybe()

	s.On("Flush").
		Run(func(mock.Arguments) {
			if err := b.port.Flush(); err != nil {
				b.fail(fmt.Errorf("bridge flush: %w", err))
			}
		}).
		Maybe()

	s.On("Available").
		Return(func() int {
			b.pump()
			return b.rx.Available()
		}).
		Maybe()

	s.On("Read").
		Return(func() int {
			if b.rx.IsEmpty() {
				b.pump()
			}
			c, ok := b.rx.ReadByte()
			if !ok {
				return -1
			}
			return int(c)
		}).
		Maybe()

	s.On("Peek").
		Return(func() int {
			if b.rx.IsEmpty() {
				b.pump()
			}
			c, ok := b.rx.Peek()
			if !ok {
				return -1
			}
			return int(c)
		}).
		Maybe()
}
