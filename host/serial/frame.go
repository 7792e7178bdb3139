package serial

import (
	"fmt"
	"strings"

	"periphfake/hal"
)

// Frame is the character format on the wire. The zero Frame is 8N1.
type Frame struct {
	DataBits byte // 5..8, 0 means 8
	Parity   byte // 'N', 'E' or 'O', 0 means 'N'
	StopBits byte // 1 or 2, 0 means 1
}

func (f Frame) normalized() Frame {
	if f.DataBits == 0 {
		f.DataBits = 8
	}
	if f.Parity == 0 {
		f.Parity = 'N'
	}
	if f.StopBits == 0 {
		f.StopBits = 1
	}
	return f
}

func (f Frame) String() string {
	f = f.normalized()
	return fmt.Sprintf("%d%c%d", f.DataBits, f.Parity, f.StopBits)
}

// FrameOf decodes a firmware SerialConfig constant
func FrameOf(c hal.SerialConfig) Frame {
	f := Frame{
		DataBits: 5 + byte(c>>1)&0x03,
		Parity:   'N',
		StopBits: 1,
	}
	switch c & 0x30 {
	case 0x20:
		f.Parity = 'E'
	case 0x30:
		f.Parity = 'O'
	}
	if c&0x08 != 0 {
		f.StopBits = 2
	}
	return f
}

// ParseFrame parses the usual "8N1" notation
func ParseFrame(s string) (Frame, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 3 {
		return Frame{}, fmt.Errorf("invalid frame %q, want e.g. 8N1", s)
	}

	f := Frame{DataBits: s[0] - '0', Parity: s[1], StopBits: s[2] - '0'}
	if f.DataBits < 5 || f.DataBits > 8 {
		return Frame{}, fmt.Errorf("invalid data bits in frame %q", s)
	}
	if f.Parity != 'N' && f.Parity != 'E' && f.Parity != 'O' {
		return Frame{}, fmt.Errorf("invalid parity in frame %q", s)
	}
	if f.StopBits != 1 && f.StopBits != 2 {
		return Frame{}, fmt.Errorf("invalid stop bits in frame %q", s)
	}
	return f, nil
}
