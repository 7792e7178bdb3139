package hal

// Print is the text and byte output surface shared by every stream-like
// peripheral.
type Print interface {
	// Write sends raw bytes and reports how many were accepted
	Write(p []byte) (int, error)

	// WriteByte sends a single byte
	WriteByte(c byte) error

	// Print formats its operands like fmt.Sprint and returns the number of
	// bytes written
	Print(a ...any) int

	// Println is Print followed by "\r\n"
	Println(a ...any) int

	Printf(format string, a ...any) int

	// Flush waits until pending output has been transmitted
	Flush()
}

// Stream is a bidirectional byte stream. Reads never block longer than the
// configured timeout.
type Stream interface {
	Print

	// Available returns the number of bytes ready to read
	Available() int

	// Read consumes one byte, or returns -1 when nothing is available
	Read() int

	// Peek returns the next byte without consuming it, or -1
	Peek() int

	SetTimeout(ms uint32)
	Timeout() uint32

	// ReadBytes fills buf until it is full or the timeout expires
	ReadBytes(buf []byte) int

	// ReadBytesUntil stops early at terminator, which is not stored
	ReadBytesUntil(terminator byte, buf []byte) int

	ReadString() string
	ReadStringUntil(terminator byte) string

	// Find reads until target has been seen or the timeout expires
	Find(target string) bool

	// ParseInt returns the first integer found in the stream
	ParseInt() int32

	// ParseFloat returns the first decimal number found in the stream
	ParseFloat() float32
}
