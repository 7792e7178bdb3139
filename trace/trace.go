// Package trace reads and writes captured peripheral traffic.
//
// A trace file starts with the magic "PFTR", a version byte and a
// length-prefixed session id. Records follow back to back:
//
//	dir     VLQ      0 = received by firmware, 1 = sent by firmware
//	payload VLQ length + bytes
//	crc     2 bytes  CRC16 of dir and payload encoding, big endian
package trace

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/xid"
)

const (
	Magic   = "PFTR"
	Version = 1
)

var (
	ErrBadMagic  = errors.New("trace: not a trace file")
	ErrChecksum  = errors.New("trace: record checksum mismatch")
	ErrDirection = errors.New("trace: unknown record direction")
)

// Direction says which way a record travelled, seen from the firmware
type Direction uint8

const (
	RX Direction = iota
	TX
)

func (d Direction) String() string {
	switch d {
	case RX:
		return "rx"
	case TX:
		return "tx"
	default:
		return fmt.Sprintf("dir(%d)", uint8(d))
	}
}

func (d Direction) valid() bool {
	return d <= TX
}

// Record is one chunk of traffic
type Record struct {
	Dir  Direction
	Data []byte
}

// NewSession returns a fresh, sortable session id
func NewSession() string {
	return xid.New().String()
}

// Writer appends records to a trace
type Writer struct {
	w   io.Writer
	out *SliceOutput
}

// NewWriter writes the trace header for session and returns a Writer
func NewWriter(w io.Writer, session string) (*Writer, error) {
	out := NewSliceOutput()
	out.Output([]byte(Magic))
	out.Output([]byte{Version})
	EncodeVLQString(out, session)
	if _, err := w.Write(out.Result()); err != nil {
		return nil, fmt.Errorf("trace: write header: %w", err)
	}
	out.Reset()
	return &Writer{w: w, out: out}, nil
}

// Write encodes rec and writes it in one call
func (tw *Writer) Write(rec Record) error {
	if !rec.Dir.valid() {
		return fmt.Errorf("%w: %s", ErrDirection, rec.Dir)
	}
	tw.out.Reset()
	EncodeVLQUint(tw.out, uint32(rec.Dir))
	EncodeVLQBytes(tw.out, rec.Data)
	crc := CRC16(tw.out.Result())
	tw.out.Output([]byte{byte(crc >> 8), byte(crc)})

	if _, err := tw.w.Write(tw.out.Result()); err != nil {
		return fmt.Errorf("trace: write record: %w", err)
	}
	return nil
}

// Reader decodes a trace held in memory
type Reader struct {
	session string
	data    []byte
}

// NewReader reads the whole trace from r and checks its header
func NewReader(r io.Reader) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("trace: read: %w", err)
	}
	if len(data) < len(Magic)+1 || string(data[:len(Magic)]) != Magic {
		return nil, ErrBadMagic
	}
	if v := data[len(Magic)]; v != Version {
		return nil, fmt.Errorf("trace: unsupported version %d", v)
	}
	data = data[len(Magic)+1:]

	session, err := DecodeVLQString(&data)
	if err != nil {
		return nil, fmt.Errorf("trace: session: %w", err)
	}
	return &Reader{session: session, data: data}, nil
}

// Session returns the id the trace was recorded under
func (tr *Reader) Session() string {
	return tr.session
}

// Next returns the next record, or io.EOF after the last one
func (tr *Reader) Next() (Record, error) {
	if len(tr.data) == 0 {
		return Record{}, io.EOF
	}

	data := tr.data
	dir, err := DecodeVLQUint(&data)
	if err != nil {
		return Record{}, err
	}
	payload, err := DecodeVLQBytes(&data)
	if err != nil {
		return Record{}, err
	}
	if len(data) < 2 {
		return Record{}, ErrBufferTooSmall
	}

	encoded := tr.data[:len(tr.data)-len(data)]
	if CRC16(encoded) != uint16(data[0])<<8|uint16(data[1]) {
		return Record{}, ErrChecksum
	}

	// The checksum covers the direction, so a bad one was written that way.
	if dir > uint32(TX) {
		return Record{}, fmt.Errorf("%w: %d", ErrDirection, dir)
	}

	tr.data = data[2:]
	return Record{Dir: Direction(dir), Data: payload}, nil
}

// ReadAll returns every remaining record
func (tr *Reader) ReadAll() ([]Record, error) {
	var recs []Record
	for {
		rec, err := tr.Next()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return recs, err
		}
		recs = append(recs, rec)
	}
}
