package container

import "image"

// DecodeOZT decodes a raw BGRA pixel stream behind the fixed 22-byte
// OZT header (16 reserved bytes, width:int16 LE, height:int16 LE,
// depth:uint8, 1 reserved byte).
//
// Source row y maps to destination row y; no vertical flip is applied
// even though some descriptions of the format call it bottom-up. Only
// the channel order changes, BGRA to RGBA.
func DecodeOZT(raw []byte) (*image.NRGBA, error) {
	if len(raw) < oztHeaderSize {
		return nil, ErrTruncated
	}

	w := int(uint16(raw[16]) | uint16(raw[17])<<8)
	h := int(uint16(raw[18]) | uint16(raw[19])<<8)
	depth := int(raw[20])

	if w <= 0 || h <= 0 || w > oztMaxDim || h > oztMaxDim || depth != 32 {
		return nil, ErrUnsupported
	}
	if oztHeaderSize+w*h*4 > len(raw) {
		return nil, ErrTruncated
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	src := raw[oztHeaderSize:]
	for i := 0; i < w*h; i++ {
		s := i * 4
		d := i * 4
		img.Pix[d+0] = src[s+2] // R
		img.Pix[d+1] = src[s+1] // G
		img.Pix[d+2] = src[s+0] // B
		img.Pix[d+3] = src[s+3] // A
	}

	return img, nil
}
