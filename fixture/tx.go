package fixture

import (
	"bytes"
	"fmt"

	"github.com/stretchr/testify/mock"
)

// TX collects everything the firmware writes to a stream double.
type TX struct {
	buf bytes.Buffer
}

// NewTX returns an empty TX
func NewTX() *TX {
	return &TX{}
}

func (t *TX) Bytes() []byte {
	return t.buf.Bytes()
}

func (t *TX) String() string {
	return t.buf.String()
}

func (t *TX) Reset() {
	t.buf.Reset()
}

// Attach stubs the write side of s (Write, WriteByte, Print, Println,
// Printf) to append to t. Calls are still recorded on s.
func (t *TX) Attach(s Stub) {
	var n int

	s.On("Write", mock.Anything).
		Run(func(args mock.Arguments) { n, _ = t.buf.Write(args.Get(0).([]byte)) }).
		Return(func() int { return n }, nil).
		Maybe()

	s.On("WriteByte", mock.Anything).
		Run(func(args mock.Arguments) { t.buf.WriteByte(args.Get(0).(byte)) }).
		Return(nil).
		Maybe()

	s.On("Print", mock.Anything).
		Run(func(args mock.Arguments) { n, _ = fmt.Fprint(&t.buf, args.Get(0).([]any)...) }).
		Return(func() int { return n }).
		Maybe()

	s.On("Println", mock.Anything).
		Run(func(args mock.Arguments) {
			n, _ = fmt.Fprint(&t.buf, args.Get(0).([]any)...)
			m, _ := t.buf.WriteString("\r\n")
			n += m
		}).
		Return(func() int { return n }).
		Maybe()

	s.On("Printf", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { n, _ = fmt.Fprintf(&t.buf, args.String(0), args.Get(1).([]any)...) }).
		Return(func() int { return n }).
		Maybe()
}
