package trace

import (
	"bytes"
	"errors"
	"testing"
)

func TestVLQEncoding(t *testing.T) {
	testCases := []struct {
		value   int32
		encoded []byte
	}{
		{0, []byte{0x00}},
		{95, []byte{0x5F}},
		{96, []byte{0x80, 0x60}},
		{127, []byte{0x80, 0x7F}},
		{-1, []byte{0x7F}},
		{-32, []byte{0x60}},
	}

	for _, tc := range testCases {
		out := NewSliceOutput()
		EncodeVLQInt(out, tc.value)
		if !bytes.Equal(out.Result(), tc.encoded) {
			t.Errorf("EncodeVLQInt(%d) = % X, want % X", tc.value, out.Result(), tc.encoded)
		}

		data := tc.encoded
		got, err := DecodeVLQInt(&data)
		if err != nil {
			t.Errorf("DecodeVLQInt(% X) failed: %v", tc.encoded, err)
			continue
		}
		if got != tc.value {
			t.Errorf("DecodeVLQInt(% X) = %d, want %d", tc.encoded, got, tc.value)
		}
		if len(data) != 0 {
			t.Errorf("DecodeVLQInt(% X) left %d bytes", tc.encoded, len(data))
		}
	}
}

func TestVLQUintRange(t *testing.T) {
	for _, v := range []uint32{0, 1, 128, 65535, 1 << 20, 1<<32 - 1} {
		out := NewSliceOutput()
		EncodeVLQUint(out, v)

		data := out.Result()
		got, err := DecodeVLQUint(&data)
		if err != nil || got != v {
			t.Errorf("uint %d: got %d, err %v", v, got, err)
		}
	}
}

func TestVLQTooLong(t *testing.T) {
	data := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x00}
	if _, err := DecodeVLQInt(&data); !errors.Is(err, ErrInvalidVLQ) {
		t.Errorf("expected ErrInvalidVLQ, got %v", err)
	}
}

func TestVLQTruncated(t *testing.T) {
	for _, data := range [][]byte{{}, {0x81}} {
		d := data
		if _, err := DecodeVLQInt(&d); !errors.Is(err, ErrBufferTooSmall) {
			t.Errorf("% X: expected ErrBufferTooSmall, got %v", data, err)
		}
	}

	// Length prefix promises more than is there
	data := []byte{0x05, 'a', 'b'}
	if _, err := DecodeVLQBytes(&data); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("expected ErrBufferTooSmall, got %v", err)
	}
}

func TestVLQString(t *testing.T) {
	out := NewSliceOutput()
	EncodeVLQString(out, "session")
	EncodeVLQString(out, "")

	data := out.Result()
	first, err := DecodeVLQString(&data)
	if err != nil || first != "session" {
		t.Fatalf("first string: %q, %v", first, err)
	}
	second, err := DecodeVLQString(&data)
	if err != nil || second != "" {
		t.Fatalf("second string: %q, %v", second, err)
	}
}
