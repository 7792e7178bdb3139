package trace

// OutputBuffer provides an abstraction for writing encoded trace data
type OutputBuffer interface {
	// Output writes data to the buffer
	Output(data []byte)
}

// SliceOutput implements OutputBuffer on a growing byte slice
type SliceOutput struct {
	buf []byte
}

// NewSliceOutput creates a new SliceOutput
func NewSliceOutput() *SliceOutput {
	return &SliceOutput{}
}

func (s *SliceOutput) Output(data []byte) {
	s.buf = append(s.buf, data...)
}

// Result returns the accumulated output data
func (s *SliceOutput) Result() []byte {
	return s.buf
}

// Reset clears the buffer
func (s *SliceOutput) Reset() {
	s.buf = s.buf[:0]
}

// FifoBuffer is a circular byte buffer. One slot is kept free to tell a
// full buffer from an empty one, so it holds capacity-1 bytes.
type FifoBuffer struct {
	buf   []byte
	read  int
	write int
	size  int
}

// NewFifoBuffer creates a new FifoBuffer with the specified capacity
func NewFifoBuffer(capacity int) *FifoBuffer {
	return &FifoBuffer{
		buf:  make([]byte, capacity),
		size: capacity,
	}
}

// Write appends data to the FIFO buffer and returns how much fit
func (f *FifoBuffer) Write(data []byte) int {
	written := 0
	for _, b := range data {
		nextWrite := (f.write + 1) % f.size
		if nextWrite == f.read {
			// Buffer full
			break
		}
		f.buf[f.write] = b
		f.write = nextWrite
		written++
	}
	return written
}

// Read reads up to len(data) bytes from the FIFO buffer
func (f *FifoBuffer) Read(data []byte) int {
	read := 0
	for i := range data {
		if f.read == f.write {
			// Buffer empty
			break
		}
		data[i] = f.buf[f.read]
		f.read = (f.read + 1) % f.size
		read++
	}
	return read
}

// ReadByte consumes one byte
func (f *FifoBuffer) ReadByte() (byte, bool) {
	b, ok := f.Peek()
	if ok {
		f.read = (f.read + 1) % f.size
	}
	return b, ok
}

// Peek returns the next byte without consuming it
func (f *FifoBuffer) Peek() (byte, bool) {
	if f.read == f.write {
		return 0, false
	}
	return f.buf[f.read], true
}

// Available returns the number of bytes available for reading
func (f *FifoBuffer) Available() int {
	if f.write >= f.read {
		return f.write - f.read
	}
	return f.size - f.read + f.write
}

// Free returns the number of bytes available for writing
func (f *FifoBuffer) Free() int {
	return f.size - f.Available() - 1
}

// IsEmpty returns true if the buffer is empty
func (f *FifoBuffer) IsEmpty() bool {
	return f.read == f.write
}

// Reset clears the buffer
func (f *FifoBuffer) Reset() {
	f.read = 0
	f.write = 0
}
