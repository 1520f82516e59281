// Package container classifies and decodes the proprietary OZJ and OZT
// texture containers. OZJ wraps a JPEG stream behind a short header; OZT
// holds raw uncompressed BGRA pixels behind a fixed 22-byte header.
package container

import (
	"errors"
	"fmt"
)

// Kind identifies a recognized container format.
type Kind int

const (
	KindUnknown Kind = iota
	KindOZJ
	KindOZT
)

func (k Kind) String() string {
	switch k {
	case KindOZJ:
		return "OZJ"
	case KindOZT:
		return "OZT"
	default:
		return "unknown"
	}
}

// ErrUnsupported means the buffer matched neither container format.
var ErrUnsupported = errors.New("container: unsupported format")

// ErrTruncated means the declared dimensions need more bytes than the
// buffer holds.
var ErrTruncated = errors.New("container: truncated pixel data")

// DecodeError wraps a failure from the delegated image codec.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("container: decode %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("container: decode: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Info is the result of sniffing a raw buffer.
type Info struct {
	Kind Kind

	// StreamOffset is the byte offset of the embedded JPEG stream.
	// Valid only for KindOZJ.
	StreamOffset int

	// Orientation is header byte 17 of an OZJ file. Historically meant
	// to request a vertical flip; decoding ignores it (see DecodeOZJ).
	Orientation byte

	// Width, Height and Depth are the declared header fields.
	// Valid only for KindOZT.
	Width  int
	Height int
	Depth  int
}

const (
	// The JPEG start marker is searched within this header window.
	ozjScanStart = 20
	ozjScanEnd   = 29

	oztHeaderSize = 22
	oztMaxDim     = 1024
)

// Sniff classifies a raw buffer as OZJ or OZT. It reads only header
// bytes and never touches pixel data.
//
// OZJ detection scans offsets 20 through 29 for the JPEG start marker
// FF D8 FF. OZT detection reads width/height (uint16 LE at offsets 16
// and 18) and bit depth (offset 20) and accepts only plausible 32-bit
// images whose declared pixel payload fits in the buffer.
func Sniff(raw []byte) (Info, error) {
	for k := ozjScanStart; k <= ozjScanEnd && k+3 <= len(raw); k++ {
		if raw[k] == 0xFF && raw[k+1] == 0xD8 && raw[k+2] == 0xFF {
			return Info{Kind: KindOZJ, StreamOffset: k, Orientation: raw[17]}, nil
		}
	}

	if len(raw) >= oztHeaderSize {
		w := int(uint16(raw[16]) | uint16(raw[17])<<8)
		h := int(uint16(raw[18]) | uint16(raw[19])<<8)
		depth := int(raw[20])
		if w > 0 && h > 0 && w <= oztMaxDim && h <= oztMaxDim && depth == 32 &&
			oztHeaderSize+w*h*4 <= len(raw) {
			return Info{Kind: KindOZT, Width: w, Height: h, Depth: depth}, nil
		}
	}

	return Info{}, ErrUnsupported
}
