package container

import (
	"bytes"
	"errors"
	"testing"
)

// oztBuffer builds a synthetic OZT file: 22-byte header followed by
// width*height BGRA quads.
func oztBuffer(w, h int, depth byte, pixels []byte) []byte {
	buf := make([]byte, 22, 22+len(pixels))
	buf[16] = byte(w)
	buf[17] = byte(w >> 8)
	buf[18] = byte(h)
	buf[19] = byte(h >> 8)
	buf[20] = depth
	return append(buf, pixels...)
}

func TestSniffOZJMarkerWindow(t *testing.T) {
	for offset := 20; offset <= 29; offset++ {
		buf := make([]byte, 64)
		buf[offset] = 0xFF
		buf[offset+1] = 0xD8
		buf[offset+2] = 0xFF

		info, err := Sniff(buf)
		if err != nil {
			t.Fatalf("offset %d: unexpected error: %v", offset, err)
		}
		if info.Kind != KindOZJ {
			t.Fatalf("offset %d: kind got=%v want=OZJ", offset, info.Kind)
		}
		if info.StreamOffset != offset {
			t.Fatalf("offset %d: stream offset got=%d want=%d", offset, info.StreamOffset, offset)
		}
	}
}

func TestSniffOZJMarkerOutsideWindow(t *testing.T) {
	buf := make([]byte, 64)
	buf[30] = 0xFF
	buf[31] = 0xD8
	buf[32] = 0xFF

	if _, err := Sniff(buf); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("error got=%v want=ErrUnsupported", err)
	}
}

func TestSniffOZJOrientationByte(t *testing.T) {
	buf := make([]byte, 64)
	buf[17] = 0x01
	buf[24] = 0xFF
	buf[25] = 0xD8
	buf[26] = 0xFF

	info, err := Sniff(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Orientation != 0x01 {
		t.Fatalf("orientation got=0x%02X want=0x01", info.Orientation)
	}
}

func TestSniffOZT(t *testing.T) {
	pixels := make([]byte, 4*4*4)
	buf := oztBuffer(4, 4, 32, pixels)

	info, err := Sniff(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Kind != KindOZT {
		t.Fatalf("kind got=%v want=OZT", info.Kind)
	}
	if info.Width != 4 || info.Height != 4 || info.Depth != 32 {
		t.Fatalf("dims got=%dx%dx%d want=4x4x32", info.Width, info.Height, info.Depth)
	}
}

func TestSniffRejections(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
	}{
		{"empty", nil},
		{"short", make([]byte, 10)},
		{"zero width", oztBuffer(0, 4, 32, nil)},
		{"zero height", oztBuffer(4, 0, 32, nil)},
		{"oversized width", oztBuffer(1025, 1, 32, make([]byte, 1025*4))},
		{"wrong depth", oztBuffer(2, 2, 24, make([]byte, 16))},
		{"payload too small", oztBuffer(8, 8, 32, make([]byte, 8))},
	}
	for _, tt := range tests {
		if _, err := Sniff(tt.buf); !errors.Is(err, ErrUnsupported) {
			t.Errorf("%s: error got=%v want=ErrUnsupported", tt.name, err)
		}
	}
}

func TestSniffIsPure(t *testing.T) {
	pixels := make([]byte, 2*2*4)
	buf := oztBuffer(2, 2, 32, pixels)
	before := append([]byte(nil), buf...)

	if _, err := Sniff(buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(buf, before) {
		t.Fatal("Sniff mutated its input")
	}
}
