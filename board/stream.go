package board

import "periphfake/hal"

// streamProxy forwards hal.Stream calls to whatever target returns at call
// time, so a proxy never holds on to an instance across a reset.
type streamProxy struct {
	target func() hal.Stream
}

func (p streamProxy) Write(b []byte) (int, error) {
	return p.target().Write(b)
}

func (p streamProxy) WriteByte(c byte) error {
	return p.target().WriteByte(c)
}

func (p streamProxy) Print(a ...any) int {
	return p.target().Print(a...)
}

func (p streamProxy) Println(a ...any) int {
	return p.target().Println(a...)
}

func (p streamProxy) Printf(format string, a ...any) int {
	return p.target().Printf(format, a...)
}

func (p streamProxy) Flush() {
	p.target().Flush()
}

func (p streamProxy) Available() int {
	return p.target().Available()
}

func (p streamProxy) Read() int {
	return p.target().Read()
}

func (p streamProxy) Peek() int {
	return p.target().Peek()
}

func (p streamProxy) SetTimeout(ms uint32) {
	p.target().SetTimeout(ms)
}

func (p streamProxy) Timeout() uint32 {
	return p.target().Timeout()
}

func (p streamProxy) ReadBytes(buf []byte) int {
	return p.target().ReadBytes(buf)
}

func (p streamProxy) ReadBytesUntil(terminator byte, buf []byte) int {
	return p.target().ReadBytesUntil(terminator, buf)
}

func (p streamProxy) ReadString() string {
	return p.target().ReadString()
}

func (p streamProxy) ReadStringUntil(terminator byte) string {
	return p.target().ReadStringUntil(terminator)
}

func (p streamProxy) Find(target string) bool {
	return p.target().Find(target)
}

func (p streamProxy) ParseInt() int32 {
	return p.target().ParseInt()
}

func (p streamProxy) ParseFloat() float32 {
	return p.target().ParseFloat()
}
